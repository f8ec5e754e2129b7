// Package showcase is a content-managed blog/portfolio engine built with Go,
// Echo, templ, and MongoDB. It serves a public reader view (latest articles,
// category-grouped listings, detail modals) and an admin view (sign-in,
// create/edit/delete articles) from a single binary.
//
// Users provide their own templ components via the ViewFuncs struct, and
// showcase handles all handler logic, middleware, and store operations.
package showcase

import (
	"context"
	"fmt"
	"io/fs"
	"net/http"
	"time"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"

	"github.com/roofcx/showcase/analytics"
)

// HomePage is the data for the landing page: the newest few entries of each
// collection, with independent failure flags so one broken container never
// blanks the other.
type HomePage struct {
	LatestBlog     []Article
	LatestProjects []Article
	BlogFailed     bool
	ProjectsFailed bool
}

// ArticleForm is the admin create/edit form state. A non-empty EditID means
// submission updates that document instead of creating a new one.
type ArticleForm struct {
	Kind        Collection
	EditID      string
	Title       string
	Summary     string
	ImageURL    string
	FullContent string
	Category    string
}

// SubmitLabel is the text on the form's submit affordance: "Update" while an
// edit target is set, "Publish" otherwise.
func (f ArticleForm) SubmitLabel() string {
	if f.EditID != "" {
		return "Update"
	}
	return "Publish"
}

// AdminPage is the data for the admin dashboard.
type AdminPage struct {
	BlogPosts []Article
	Projects  []Article
	Message   string // success status shown near the form
	ErrorMsg  string // inline failure shown near the form
	Form      ArticleForm
	Stats     []analytics.PageCount
	CsrfToken string
}

// ViewFuncs holds user-provided templ components that the engine calls when
// rendering pages. This is the inversion-of-control mechanism that lets users
// own and customize all templates.
type ViewFuncs struct {
	Home         func(page HomePage, siteURL string) templ.Component
	Blog         func(groups []CategoryGroup, failed bool) templ.Component
	Projects     func(groups []CategoryGroup, failed bool) templ.Component
	ArticleModal func(a Article) templ.Component
	AdminLogin   func(errMsg, csrfToken string) templ.Component
	AdminHome    func(page AdminPage) templ.Component
	AdminForm    func(form ArticleForm, csrfToken string) templ.Component
	AdminImages  func(images []Image, csrfToken string) templ.Component
	NotFound     func() templ.Component
	ServerError  func() templ.Component
}

// App is the central showcase application. It wires together the store,
// cache, auth, handlers, middleware, and user-provided templates.
type App struct {
	Config   SiteConfig
	Echo     *echo.Echo
	Articles ArticleStore
	Cache    *ArticleCache
	Auth     AuthVerifier
	Views    ViewFuncs

	loginLimiter   *loginLimiter
	analyticsStore *analytics.Store
	customRoutes   []func(*App)
	staticDir      string
}

// New creates a new showcase App with the given configuration and view functions.
func New(cfg SiteConfig, views ViewFuncs, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config:    cfg,
		Echo:      echo.New(),
		Views:     views,
		staticDir: "public",
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Start connects to the document store, seeds the admin account, wires
// middleware and routes, and starts the server. It blocks until the server
// stops.
func (a *App) Start() error {
	if a.Config.AdminEmail == "" || a.Config.AdminPassword == "" {
		return fmt.Errorf("showcase: AdminEmail and AdminPassword are required")
	}
	if a.Config.SessionSecret == "" {
		return fmt.Errorf("showcase: SessionSecret is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if a.Articles == nil {
		store, err := Connect(ctx, a.Config.MongoURI, a.Config.MongoDatabase)
		if err != nil {
			return fmt.Errorf("showcase: init store: %w", err)
		}
		if err := store.EnsureIndexes(ctx); err != nil {
			return fmt.Errorf("showcase: ensure indexes: %w", err)
		}
		a.Articles = store

		if a.Auth == nil {
			auth := NewAuthService(store.Database())
			if err := auth.EnsureIndexes(ctx); err != nil {
				return fmt.Errorf("showcase: ensure user indexes: %w", err)
			}
			if err := auth.EnsureAdmin(ctx, a.Config.AdminEmail, a.Config.AdminPassword); err != nil {
				return fmt.Errorf("showcase: seed admin: %w", err)
			}
			a.Auth = auth
		}
	}
	if a.Auth == nil {
		// WithStore bypasses the MongoDB connection, so the caller must
		// supply the auth service too.
		return fmt.Errorf("showcase: no auth service configured; use WithAuth alongside WithStore")
	}

	a.Cache = NewArticleCache(a.Articles, a.Config.ArticleCacheTTL)
	a.loginLimiter = newLoginLimiter(5, time.Minute)

	if a.Config.AnalyticsEnabled {
		store, err := analytics.NewStore(a.Config.AnalyticsDatabasePath)
		if err != nil {
			return fmt.Errorf("showcase: init analytics: %w", err)
		}
		a.analyticsStore = store
		defer a.analyticsStore.Close()
		stopCleanup := store.StartCleanupScheduler(365, 24*time.Hour)
		defer stopCleanup()
	}

	a.setupMiddleware()
	a.setupRoutes()

	for _, fn := range a.customRoutes {
		fn(a)
	}

	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	// Embedded engine assets (app.js drives the accordion and modal behavior),
	// falling through to the user's static dir for everything else.
	embeddedFS, _ := fs.Sub(EmbeddedAssets, "embedded")
	embeddedHandler := http.FileServer(http.FS(embeddedFS))
	e.GET("/public/app.js", echo.WrapHandler(http.StripPrefix("/public/", embeddedHandler)))
	e.GET("/public/site.css", echo.WrapHandler(http.StripPrefix("/public/", embeddedHandler)))

	e.Static("/public", a.staticDir)
	e.GET("/favicon.svg", a.handleFavicon)
	e.GET("/robots.txt", a.handleRobots)

	// Public routes
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleFeed)
	e.GET("/", a.handleHome)
	e.GET("/blog/", a.handleBlog)
	e.GET("/projects/", a.handleProjects)
	e.GET("/article/:collection/:id/", a.handleArticleModal)

	// Admin routes
	e.GET("/admin/", a.handleAdmin)
	e.POST("/admin/login/", a.handleAdminLogin)
	e.POST("/admin/logout/", handleAdminLogout)
	e.POST("/admin/save/", a.handleAdminSave)
	e.GET("/admin/article/:collection/:id/", a.handleAdminEdit)
	e.DELETE("/admin/article/:collection/:id/", a.handleAdminDelete)
	e.GET("/admin/images/", a.handleImageList)
	e.POST("/admin/images/upload/", a.handleImageUpload)
	e.DELETE("/admin/images/:filename/", a.handleImageDelete)
}

// Close cleans up resources. Call this when the app is shutting down.
func (a *App) Close() error {
	if s, ok := a.Articles.(*Store); ok && s != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.Close(ctx)
	}
	if a.analyticsStore != nil {
		a.analyticsStore.Close()
	}
	return nil
}
