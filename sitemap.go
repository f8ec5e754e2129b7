package showcase

import (
	"encoding/xml"
	"net/http"

	"github.com/labstack/echo/v4"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

// handleSitemap lists the site's three pages, dating the listings by their
// newest article.
func (a *App) handleSitemap(c echo.Context) error {
	ctx := c.Request().Context()
	base := a.Config.URL
	urls := []sitemapURL{
		{Loc: BuildURL(base)},
	}
	for _, page := range []struct {
		coll Collection
		path string
	}{
		{CollectionBlog, "blog"},
		{CollectionProjects, "projects"},
	} {
		u := sitemapURL{Loc: BuildURL(base, page.path)}
		if articles, err := a.Cache.List(ctx, page.coll); err == nil && len(articles) > 0 {
			u.LastMod = articles[0].Date.Format("2006-01-02")
		}
		urls = append(urls, u)
	}
	sitemap := sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}
	c.Response().Header().Set(echo.HeaderContentType, "application/xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	c.Response().Write([]byte(xml.Header))
	return xml.NewEncoder(c.Response()).Encode(sitemap)
}
