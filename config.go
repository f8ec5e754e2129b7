package showcase

import "time"

// SiteConfig holds all configuration for a showcase site.
type SiteConfig struct {
	Name        string // Site name (default "Showcase")
	URL         string // Canonical URL (default "http://localhost:3000")
	Description string // Site description for RSS and meta tags
	Author      string // Byline written into every article (default "Admin")

	Addr          string // Listen address (default ":3000")
	MongoURI      string // MongoDB connection string (default "mongodb://localhost:27017")
	MongoDatabase string // MongoDB database name (default "showcase")

	AdminEmail    string // Required: the single authorized admin identity
	AdminPassword string // Required: seed password for the admin account
	SessionSecret string // Required: session encryption secret
	CookieSecure  bool   // Set true for HTTPS

	AnalyticsEnabled      bool   // Record page views (default false)
	AnalyticsDatabasePath string // Analytics SQLite path (default "data/analytics.db")

	ArticleCacheTTL time.Duration // Article cache TTL (default 5min)
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "Showcase"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	if c.Author == "" {
		c.Author = "Admin"
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.MongoURI == "" {
		c.MongoURI = "mongodb://localhost:27017"
	}
	if c.MongoDatabase == "" {
		c.MongoDatabase = "showcase"
	}
	if c.AnalyticsDatabasePath == "" {
		c.AnalyticsDatabasePath = "data/analytics.db"
	}
	if c.ArticleCacheTTL == 0 {
		c.ArticleCacheTTL = 5 * time.Minute
	}
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback receives the App before the server starts.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithStaticDir sets the directory for user-owned static assets (default "public").
func WithStaticDir(dir string) Option {
	return func(a *App) {
		a.staticDir = dir
	}
}

// WithStore overrides the MongoDB-backed article store. Intended for tests
// and alternative backends. WithStore skips the MongoDB connection entirely,
// so it must be paired with WithAuth.
func WithStore(s ArticleStore) Option {
	return func(a *App) {
		a.Articles = s
	}
}

// WithAuth overrides the MongoDB-backed auth service.
func WithAuth(v AuthVerifier) Option {
	return func(a *App) {
		a.Auth = v
	}
}
