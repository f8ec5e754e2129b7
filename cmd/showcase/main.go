// Command showcase runs the blog/portfolio site. All site branding and
// backend settings come from environment variables.
package main

import (
	"log"
	"os"

	"github.com/a-h/templ"

	"github.com/roofcx/showcase"
	"github.com/roofcx/showcase/views"
)

func main() {
	cfg := showcase.SiteConfig{
		Name:        showcase.EnvOr("SITE_NAME", "Showcase"),
		URL:         showcase.EnvOr("SITE_URL", "http://localhost:3000"),
		Description: os.Getenv("SITE_DESCRIPTION"),
		Author:      showcase.EnvOr("SITE_AUTHOR", "Admin"),

		Addr:          showcase.EnvOr("ADDR", ":3000"),
		MongoURI:      showcase.EnvOr("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDatabase: showcase.EnvOr("MONGODB_DATABASE", "showcase"),

		AdminEmail:    showcase.MustEnv("ADMIN_EMAIL"),
		AdminPassword: showcase.MustEnv("ADMIN_PASSWORD"),
		SessionSecret: showcase.MustEnv("SESSION_SECRET"),
		CookieSecure:  os.Getenv("COOKIE_SECURE") == "true",

		AnalyticsEnabled: os.Getenv("ANALYTICS_ENABLED") == "true",
	}

	app := showcase.New(cfg, viewFuncs(cfg))
	defer app.Close()

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}

func viewFuncs(cfg showcase.SiteConfig) showcase.ViewFuncs {
	name := cfg.Name
	return showcase.ViewFuncs{
		Home: func(page showcase.HomePage, siteURL string) templ.Component {
			return views.Home(page, name)
		},
		Blog: func(groups []showcase.CategoryGroup, failed bool) templ.Component {
			return views.Blog(groups, failed, name)
		},
		Projects: func(groups []showcase.CategoryGroup, failed bool) templ.Component {
			return views.Projects(groups, failed, name)
		},
		ArticleModal: views.ArticleModal,
		AdminLogin: func(errMsg, csrfToken string) templ.Component {
			return views.AdminLogin(errMsg, csrfToken, name)
		},
		AdminHome: func(page showcase.AdminPage) templ.Component {
			return views.AdminHome(page, name)
		},
		AdminForm: views.AdminForm,
		AdminImages: func(images []showcase.Image, csrfToken string) templ.Component {
			return views.AdminImages(images, csrfToken, name)
		},
		NotFound: func() templ.Component {
			return views.NotFound(name)
		},
		ServerError: func() templ.Component {
			return views.ServerError(name)
		},
	}
}
