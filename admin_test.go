package showcase

import (
	"context"
	"errors"
	"testing"
)

func testApp(s *memStore) *App {
	return &App{
		Config:   SiteConfig{Author: "Admin"},
		Articles: s,
	}
}

func TestSaveArticleCreatesOnce(t *testing.T) {
	s := newMemStore()
	app := testApp(s)

	msg, err := app.saveArticle(context.Background(), ArticleForm{
		Kind:        CollectionBlog,
		Title:       "New Post",
		Summary:     "A summary",
		FullContent: "Full content here.",
		Category:    "Go",
	})
	if err != nil {
		t.Fatalf("saveArticle failed: %v", err)
	}
	if msg == "" {
		t.Error("expected a success message")
	}
	if s.createCalls != 1 {
		t.Errorf("createCalls = %d, want 1", s.createCalls)
	}
	if s.updateCalls != 0 {
		t.Errorf("updateCalls = %d, want 0", s.updateCalls)
	}

	posts, err := s.List(context.Background(), CollectionBlog)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(posts) != 1 {
		t.Fatalf("got %d posts, want 1", len(posts))
	}
	got := posts[0]
	if got.Title != "New Post" {
		t.Errorf("Title = %q, want %q", got.Title, "New Post")
	}
	if got.Author != "Admin" {
		t.Errorf("Author = %q, want the configured author", got.Author)
	}
	if got.Date.IsZero() {
		t.Error("Date should be stamped at submission time")
	}
}

func TestSaveArticleWithEditTargetUpdatesOnce(t *testing.T) {
	s := newMemStore()
	app := testApp(s)
	ctx := context.Background()

	id, err := s.Create(ctx, CollectionProjects, article("original", "Tools", 0))
	if err != nil {
		t.Fatalf("seed project: %v", err)
	}
	s.createCalls = 0

	_, err = app.saveArticle(ctx, ArticleForm{
		Kind:   CollectionProjects,
		EditID: id,
		Title:  "Renamed",
	})
	if err != nil {
		t.Fatalf("saveArticle failed: %v", err)
	}
	if s.updateCalls != 1 {
		t.Errorf("updateCalls = %d, want 1", s.updateCalls)
	}
	if s.createCalls != 0 {
		t.Errorf("createCalls = %d, want 0", s.createCalls)
	}
	if s.count(CollectionProjects) != 1 {
		t.Errorf("project count = %d, want 1 (update must not grow the list)", s.count(CollectionProjects))
	}

	got, err := s.GetByID(ctx, CollectionProjects, id)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Title != "Renamed" {
		t.Errorf("Title = %q, want %q", got.Title, "Renamed")
	}
	// Full-document overwrite: fields absent from the form are cleared.
	if got.Category != "" {
		t.Errorf("Category = %q, want empty after overwrite", got.Category)
	}
}

func TestSaveArticleValidation(t *testing.T) {
	s := newMemStore()
	app := testApp(s)
	ctx := context.Background()

	if _, err := app.saveArticle(ctx, ArticleForm{Kind: "nonsense", Title: "x"}); err == nil {
		t.Error("expected error for unknown kind")
	}
	if _, err := app.saveArticle(ctx, ArticleForm{Kind: CollectionBlog}); err == nil {
		t.Error("expected error for empty title")
	}
	if s.createCalls != 0 || s.updateCalls != 0 {
		t.Errorf("store touched on invalid form: create=%d update=%d", s.createCalls, s.updateCalls)
	}
}

func TestSaveArticleUpdateMissingID(t *testing.T) {
	s := newMemStore()
	app := testApp(s)

	_, err := app.saveArticle(context.Background(), ArticleForm{
		Kind:   CollectionBlog,
		EditID: "gone",
		Title:  "x",
	})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
	if s.count(CollectionBlog) != 0 {
		t.Error("nothing should be created when the edit target is missing")
	}
}

func TestStartWithCustomStoreRequiresAuth(t *testing.T) {
	app := New(SiteConfig{
		AdminEmail:    "admin@example.com",
		AdminPassword: "secret",
		SessionSecret: "session-secret",
	}, ViewFuncs{}, WithStore(newMemStore()))

	// Without an auth service the login handler would have nothing to
	// verify against, so Start must refuse to bring the server up.
	err := app.Start()
	if err == nil {
		t.Fatal("expected Start to fail when WithStore is used without WithAuth")
	}
	if app.Auth != nil {
		t.Errorf("Auth = %v, want nil when none was configured", app.Auth)
	}
}

func TestDeleteRemovesExactlyTarget(t *testing.T) {
	s := newMemStore()
	ctx := context.Background()

	keep, _ := s.Create(ctx, CollectionBlog, article("keep", "Go", 0))
	drop, _ := s.Create(ctx, CollectionBlog, article("drop", "Go", 1))

	if err := s.Delete(ctx, CollectionBlog, drop); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	posts, _ := s.List(ctx, CollectionBlog)
	if len(posts) != 1 || posts[0].ID != keep {
		t.Errorf("remaining posts = %v, want only %s", posts, keep)
	}
	if err := s.Delete(ctx, CollectionBlog, drop); !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete err = %v, want ErrNotFound", err)
	}
}
