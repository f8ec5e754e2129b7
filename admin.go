package showcase

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
)

func (a *App) handleAdmin(c echo.Context) error {
	if !a.isAdmin(c) {
		return Render(c, a.Views.AdminLogin("", CsrfToken(c)))
	}
	return a.renderAdminHome(c, c.QueryParam("msg"), "", ArticleForm{})
}

func (a *App) handleAdminLogin(c echo.Context) error {
	ip := c.RealIP()
	if !a.loginLimiter.Check(ip) {
		return c.String(http.StatusTooManyRequests, "Too many login attempts. Try again later.")
	}
	email := strings.TrimSpace(c.FormValue("email"))
	password := c.FormValue("password")
	_, err := a.Auth.Verify(c.Request().Context(), email, password)
	if errors.Is(err, ErrInvalidCredentials) {
		a.loginLimiter.Record(ip)
		return Render(c, a.Views.AdminLogin("Login failed: "+err.Error(), CsrfToken(c)))
	}
	if err != nil {
		return err
	}
	if err := setIdentity(c, email); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/admin/")
}

func handleAdminLogout(c echo.Context) error {
	if err := clearIdentity(c); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/admin/")
}

// handleAdminSave dispatches the create/edit form. A hidden edit id switches
// the submission from create to update; either way the form is cleared on
// success and the management list re-rendered from a fresh fetch.
func (a *App) handleAdminSave(c echo.Context) error {
	if !a.isAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	form := ArticleForm{
		Kind:        Collection(c.FormValue("kind")),
		EditID:      strings.TrimSpace(c.FormValue("edit_id")),
		Title:       strings.TrimSpace(c.FormValue("title")),
		Summary:     strings.TrimSpace(c.FormValue("summary")),
		ImageURL:    strings.TrimSpace(c.FormValue("imageUrl")),
		FullContent: c.FormValue("fullContent"),
		Category:    strings.TrimSpace(c.FormValue("category")),
	}
	msg, err := a.saveArticle(c.Request().Context(), form)
	if err != nil {
		// Nothing was applied; keep the form contents so the admin can retry.
		return a.renderAdminHome(c, "", err.Error(), form)
	}
	a.Cache.Invalidate()
	return a.renderAdminHome(c, msg, "", ArticleForm{})
}

// saveArticle validates the form and issues exactly one store call: Update
// when an edit target is set, Create otherwise. The stored date is always
// the submission moment, matching the original publish semantics.
func (a *App) saveArticle(ctx context.Context, form ArticleForm) (string, error) {
	if !form.Kind.Valid() {
		return "", errors.New("choose whether this is a blog post or a project")
	}
	if form.Title == "" {
		return "", errors.New("title is required")
	}
	article := Article{
		Title:       form.Title,
		Summary:     form.Summary,
		ImageURL:    form.ImageURL,
		FullContent: form.FullContent,
		Category:    form.Category,
		Author:      a.Config.Author,
		Date:        time.Now(),
	}
	if form.EditID != "" {
		if err := a.Articles.Update(ctx, form.Kind, form.EditID, article); err != nil {
			return "", err
		}
		return "Article updated successfully!", nil
	}
	if _, err := a.Articles.Create(ctx, form.Kind, article); err != nil {
		return "", err
	}
	return "Article published successfully!", nil
}

// handleAdminEdit loads an article into the form partial and arms the edit
// target, flipping the submit label to "Update".
func (a *App) handleAdminEdit(c echo.Context) error {
	if !a.isAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	coll := Collection(c.Param("collection"))
	if !coll.Valid() {
		return echo.NewHTTPError(http.StatusNotFound)
	}
	article, err := a.Articles.GetByID(c.Request().Context(), coll, c.Param("id"))
	if errors.Is(err, ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound)
	}
	if err != nil {
		return err
	}
	form := ArticleForm{
		Kind:        coll,
		EditID:      article.ID,
		Title:       article.Title,
		Summary:     article.Summary,
		ImageURL:    article.ImageURL,
		FullContent: article.FullContent,
		Category:    article.Category,
	}
	return Render(c, a.Views.AdminForm(form, CsrfToken(c)))
}

// handleAdminDelete permanently removes an article. The dashboard button
// carries the confirmation prompt; a declined confirmation never reaches
// this handler.
func (a *App) handleAdminDelete(c echo.Context) error {
	if !a.isAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	coll := Collection(c.Param("collection"))
	if !coll.Valid() {
		return echo.NewHTTPError(http.StatusNotFound)
	}
	if err := a.Articles.Delete(c.Request().Context(), coll, c.Param("id")); err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound)
		}
		return a.renderAdminHome(c, "", "Error deleting article: "+err.Error(), ArticleForm{})
	}
	a.Cache.Invalidate()
	return a.renderAdminHome(c, "Article deleted successfully!", "", ArticleForm{})
}

// renderAdminHome fetches the management lists for both collections straight
// from the store and renders the dashboard. List failures surface as the
// inline error without dropping the page.
func (a *App) renderAdminHome(c echo.Context, msg, errMsg string, form ArticleForm) error {
	ctx := c.Request().Context()
	page := AdminPage{
		Message:   msg,
		ErrorMsg:  errMsg,
		Form:      form,
		CsrfToken: CsrfToken(c),
	}
	blog, err := a.Articles.List(ctx, CollectionBlog)
	if err != nil && page.ErrorMsg == "" {
		page.ErrorMsg = "Error fetching posts: " + err.Error()
	}
	page.BlogPosts = blog
	projects, err := a.Articles.List(ctx, CollectionProjects)
	if err != nil && page.ErrorMsg == "" {
		page.ErrorMsg = "Error fetching posts: " + err.Error()
	}
	page.Projects = projects

	if a.analyticsStore != nil {
		stats, err := a.analyticsStore.TopPages(30, 10)
		if err != nil {
			c.Logger().Warnf("load analytics summary: %v", err)
		}
		page.Stats = stats
	}
	return Render(c, a.Views.AdminHome(page))
}
