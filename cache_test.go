package showcase

import (
	"context"
	"testing"
	"time"
)

func seedStore(t *testing.T) *memStore {
	t.Helper()
	s := newMemStore()
	ctx := context.Background()
	for i, title := range []string{"first", "second", "third", "fourth"} {
		if _, err := s.Create(ctx, CollectionBlog, article(title, "Go", i)); err != nil {
			t.Fatalf("seed blog post: %v", err)
		}
	}
	if _, err := s.Create(ctx, CollectionProjects, article("proj", "Tools", 0)); err != nil {
		t.Fatalf("seed project: %v", err)
	}
	s.listCalls = 0
	s.createCalls = 0
	return s
}

func TestCacheServesFromSnapshot(t *testing.T) {
	s := seedStore(t)
	cache := NewArticleCache(s, time.Minute)
	ctx := context.Background()

	posts, err := cache.List(ctx, CollectionBlog)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(posts) != 4 {
		t.Fatalf("got %d posts, want 4", len(posts))
	}
	if posts[0].Title != "first" {
		t.Errorf("newest first: got %q, want %q", posts[0].Title, "first")
	}

	// Both collections load in one pass; further reads hit the snapshot.
	loads := s.listCalls
	if _, err := cache.List(ctx, CollectionProjects); err != nil {
		t.Fatalf("List projects failed: %v", err)
	}
	if _, err := cache.Latest(ctx, CollectionBlog, 3); err != nil {
		t.Fatalf("Latest failed: %v", err)
	}
	if s.listCalls != loads {
		t.Errorf("store hit %d more times after warm cache", s.listCalls-loads)
	}
}

func TestCacheLatestTruncates(t *testing.T) {
	s := seedStore(t)
	cache := NewArticleCache(s, time.Minute)

	latest, err := cache.Latest(context.Background(), CollectionBlog, 3)
	if err != nil {
		t.Fatalf("Latest failed: %v", err)
	}
	if len(latest) != 3 {
		t.Errorf("got %d articles, want 3", len(latest))
	}
	if latest[0].Title != "first" {
		t.Errorf("got %q first, want %q", latest[0].Title, "first")
	}
}

func TestCacheLatestNonPositiveN(t *testing.T) {
	s := seedStore(t)
	cache := NewArticleCache(s, time.Minute)
	ctx := context.Background()

	for _, n := range []int{0, -1} {
		latest, err := cache.Latest(ctx, CollectionBlog, n)
		if err != nil {
			t.Fatalf("Latest(%d) failed: %v", n, err)
		}
		if len(latest) != 0 {
			t.Errorf("Latest(%d) returned %d articles, want none", n, len(latest))
		}
	}
}

func TestCacheGetByID(t *testing.T) {
	s := seedStore(t)
	cache := NewArticleCache(s, time.Minute)
	ctx := context.Background()

	posts, err := cache.List(ctx, CollectionBlog)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	got, err := cache.GetByID(ctx, CollectionBlog, posts[0].ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Title != posts[0].Title {
		t.Errorf("GetByID = %q, want %q", got.Title, posts[0].Title)
	}

	// Same id in the other collection is a different namespace.
	if _, err := cache.GetByID(ctx, CollectionProjects, posts[0].ID); err != ErrNotFound {
		t.Errorf("cross-collection lookup err = %v, want ErrNotFound", err)
	}
	if _, err := cache.GetByID(ctx, CollectionBlog, "missing"); err != ErrNotFound {
		t.Errorf("missing id err = %v, want ErrNotFound", err)
	}
}

func TestCacheInvalidateForcesReload(t *testing.T) {
	s := seedStore(t)
	cache := NewArticleCache(s, time.Minute)
	ctx := context.Background()

	if _, err := cache.List(ctx, CollectionBlog); err != nil {
		t.Fatalf("List failed: %v", err)
	}
	id, err := s.Create(ctx, CollectionBlog, article("fresh", "Go", -1))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	// Stale until invalidated.
	posts, _ := cache.List(ctx, CollectionBlog)
	if len(posts) != 4 {
		t.Fatalf("expected stale snapshot of 4 posts, got %d", len(posts))
	}

	cache.Invalidate()
	posts, err = cache.List(ctx, CollectionBlog)
	if err != nil {
		t.Fatalf("List after invalidate failed: %v", err)
	}
	if len(posts) != 5 {
		t.Errorf("got %d posts after invalidate, want 5", len(posts))
	}
	if _, err := cache.GetByID(ctx, CollectionBlog, id); err != nil {
		t.Errorf("new article not resolvable by id after invalidate: %v", err)
	}
}

func TestCachePropagatesStoreFailure(t *testing.T) {
	s := seedStore(t)
	s.failList = true
	cache := NewArticleCache(s, time.Minute)

	if _, err := cache.List(context.Background(), CollectionBlog); err == nil {
		t.Fatal("expected error from failing store")
	}
}
