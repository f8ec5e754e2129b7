package showcase

import (
	"context"
	"sync"
	"time"
)

// ArticleCache keeps an in-memory snapshot of both article collections with
// a TTL, so page renders and modal lookups never need a second store round
// trip. Admin writes call Invalidate so the next read refetches.
type ArticleCache struct {
	mu      sync.RWMutex
	lists   map[Collection][]Article
	byID    map[Collection]map[string]Article
	fetched time.Time
	ttl     time.Duration
	store   ArticleStore
}

// NewArticleCache creates an ArticleCache backed by the given store.
func NewArticleCache(s ArticleStore, ttl time.Duration) *ArticleCache {
	return &ArticleCache{store: s, ttl: ttl}
}

func (c *ArticleCache) valid() bool {
	return c.lists != nil && time.Since(c.fetched) < c.ttl
}

// Invalidate clears the cache so the next read triggers a fresh load.
func (c *ArticleCache) Invalidate() {
	c.mu.Lock()
	c.lists = nil
	c.byID = nil
	c.mu.Unlock()
}

func (c *ArticleCache) load(ctx context.Context) error {
	if c.valid() {
		return nil
	}
	lists := make(map[Collection][]Article, 2)
	byID := make(map[Collection]map[string]Article, 2)
	for _, coll := range []Collection{CollectionBlog, CollectionProjects} {
		articles, err := c.store.List(ctx, coll)
		if err != nil {
			return err
		}
		lists[coll] = articles
		ids := make(map[string]Article, len(articles))
		for _, a := range articles {
			ids[a.ID] = a
		}
		byID[coll] = ids
	}
	c.lists = lists
	c.byID = byID
	c.fetched = time.Now()
	return nil
}

// ensureLoaded returns the snapshot after ensuring the cache is fresh.
// It tries a read lock first; only takes a write lock if a reload is needed.
func (c *ArticleCache) ensureLoaded(ctx context.Context) (map[Collection][]Article, map[Collection]map[string]Article, error) {
	c.mu.RLock()
	if c.valid() {
		lists, byID := c.lists, c.byID
		c.mu.RUnlock()
		return lists, byID, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.load(ctx); err != nil {
		return nil, nil, err
	}
	return c.lists, c.byID, nil
}

// List returns the collection's articles, newest first.
func (c *ArticleCache) List(ctx context.Context, coll Collection) ([]Article, error) {
	lists, _, err := c.ensureLoaded(ctx)
	if err != nil {
		return nil, err
	}
	return lists[coll], nil
}

// Latest returns up to n newest articles from the collection.
func (c *ArticleCache) Latest(ctx context.Context, coll Collection, n int) ([]Article, error) {
	if n <= 0 {
		return nil, nil
	}
	articles, err := c.List(ctx, coll)
	if err != nil {
		return nil, err
	}
	if n < len(articles) {
		articles = articles[:n]
	}
	return articles, nil
}

// GetByID resolves a single article from the snapshot in O(1), or ErrNotFound.
func (c *ArticleCache) GetByID(ctx context.Context, coll Collection, id string) (Article, error) {
	_, byID, err := c.ensureLoaded(ctx)
	if err != nil {
		return Article{}, err
	}
	if a, ok := byID[coll][id]; ok {
		return a, nil
	}
	return Article{}, ErrNotFound
}
