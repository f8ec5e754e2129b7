package showcase

import (
	"context"
	"encoding/xml"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
)

func feedTestApp(t *testing.T) *App {
	t.Helper()
	return &App{
		Config: SiteConfig{
			Name:        "Showcase",
			URL:         "https://example.com",
			Description: "A test site",
		},
		Cache: NewArticleCache(seedStore(t), time.Minute),
	}
}

func getXML(t *testing.T, handler echo.HandlerFunc, path string, into any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	if err := handler(echo.New().NewContext(req, rec)); err != nil {
		t.Fatalf("handler failed: %v", err)
	}
	if err := xml.Unmarshal(rec.Body.Bytes(), into); err != nil {
		t.Fatalf("parse response: %v\n%s", err, rec.Body.String())
	}
}

func TestFeedListsBlogPosts(t *testing.T) {
	app := feedTestApp(t)

	var feed rssXML
	getXML(t, app.handleFeed, "/feed.xml", &feed)

	if feed.Version != "2.0" {
		t.Errorf("version = %q, want 2.0", feed.Version)
	}
	if feed.Channel.Title != "Showcase" || feed.Channel.Link != "https://example.com" {
		t.Errorf("channel = %q / %q", feed.Channel.Title, feed.Channel.Link)
	}
	if len(feed.Channel.Items) != 4 {
		t.Fatalf("got %d items, want 4 blog posts (projects excluded)", len(feed.Channel.Items))
	}

	newest := feed.Channel.Items[0]
	if newest.Title != "first" {
		t.Errorf("newest item = %q, want %q", newest.Title, "first")
	}
	posts, err := app.Cache.List(context.Background(), CollectionBlog)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if want := "https://example.com/blog/#" + posts[0].ID; newest.Link != want {
		t.Errorf("link = %q, want %q (blog page anchored by article id)", newest.Link, want)
	}
	if newest.GUID != newest.Link {
		t.Errorf("guid = %q, want the item link", newest.GUID)
	}
	pub, err := time.Parse(time.RFC1123Z, newest.PubDate)
	if err != nil {
		t.Fatalf("pubDate %q not RFC1123Z: %v", newest.PubDate, err)
	}
	want := time.Date(2025, 6, 30, 12, 0, 0, 0, time.UTC)
	if !pub.Equal(want) {
		t.Errorf("pubDate = %v, want %v", pub, want)
	}
}

func TestSitemapListsPagesWithLastMod(t *testing.T) {
	app := feedTestApp(t)

	var sm sitemapURLSet
	getXML(t, app.handleSitemap, "/sitemap.xml", &sm)

	if len(sm.URLs) != 3 {
		t.Fatalf("got %d urls, want home, blog, projects", len(sm.URLs))
	}
	if sm.URLs[0].Loc != "https://example.com" {
		t.Errorf("home loc = %q", sm.URLs[0].Loc)
	}
	if sm.URLs[1].Loc != "https://example.com/blog/" {
		t.Errorf("blog loc = %q", sm.URLs[1].Loc)
	}
	// LastMod comes from the newest article in each listing.
	if sm.URLs[1].LastMod != "2025-06-30" {
		t.Errorf("blog lastmod = %q, want 2025-06-30", sm.URLs[1].LastMod)
	}
	if sm.URLs[2].Loc != "https://example.com/projects/" || sm.URLs[2].LastMod != "2025-06-30" {
		t.Errorf("projects url = %+v", sm.URLs[2])
	}
}
