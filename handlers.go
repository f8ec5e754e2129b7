package showcase

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

// handleHome serves the landing page: the three newest entries from each
// collection. A store failure in one section renders that section's
// placeholder without touching the other.
func (a *App) handleHome(c echo.Context) error {
	ctx := c.Request().Context()
	page := HomePage{}

	blog, err := a.Cache.Latest(ctx, CollectionBlog, 3)
	if err != nil {
		c.Logger().Errorf("load latest blog posts: %v", err)
		page.BlogFailed = true
	}
	page.LatestBlog = blog

	projects, err := a.Cache.Latest(ctx, CollectionProjects, 3)
	if err != nil {
		c.Logger().Errorf("load latest projects: %v", err)
		page.ProjectsFailed = true
	}
	page.LatestProjects = projects

	a.recordVisit(c)
	return Render(c, a.Views.Home(page, a.Config.URL))
}

// handleBlog serves blog posts grouped by category as accordion sections.
func (a *App) handleBlog(c echo.Context) error {
	return a.renderGrouped(c, CollectionBlog, a.Views.Blog)
}

// handleProjects serves projects grouped by category as open sections.
func (a *App) handleProjects(c echo.Context) error {
	return a.renderGrouped(c, CollectionProjects, a.Views.Projects)
}

func (a *App) renderGrouped(c echo.Context, coll Collection, view func([]CategoryGroup, bool) templ.Component) error {
	articles, err := a.Cache.List(c.Request().Context(), coll)
	if err != nil {
		c.Logger().Errorf("load %s: %v", coll, err)
		return Render(c, view(nil, true))
	}
	a.recordVisit(c)
	return Render(c, view(GroupByCategory(articles), false))
}

// handleArticleModal serves a single article's full detail for the modal
// overlay. The article is resolved from the in-memory cache by id.
func (a *App) handleArticleModal(c echo.Context) error {
	coll := Collection(c.Param("collection"))
	if !coll.Valid() {
		return echo.NewHTTPError(http.StatusNotFound)
	}
	article, err := a.Cache.GetByID(c.Request().Context(), coll, c.Param("id"))
	if errors.Is(err, ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound)
	}
	if err != nil {
		return err
	}
	return Render(c, a.Views.ArticleModal(article))
}

func (a *App) handleFavicon(c echo.Context) error {
	return c.File(a.staticDir + "/favicon.svg")
}

// handleRobots generates robots.txt dynamically from the site URL.
func (a *App) handleRobots(c echo.Context) error {
	body := fmt.Sprintf("User-agent: *\nAllow: /\nDisallow: /admin/\n\nSitemap: %s/sitemap.xml\n", a.Config.URL)
	return c.String(http.StatusOK, body)
}

// recordVisit fires a page-view record into the analytics store without
// blocking the response.
func (a *App) recordVisit(c echo.Context) {
	if a.analyticsStore == nil {
		return
	}
	path := c.Request().URL.Path
	ip := c.RealIP()
	ua := c.Request().UserAgent()
	logger := c.Logger()
	go func() {
		if err := a.analyticsStore.RecordVisit(path, ip, ua); err != nil {
			logger.Warnf("record visit: %v", err)
		}
	}()
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, a.Views.NotFound())
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
		_ = RenderStatus(c, code, a.Views.ServerError())
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
