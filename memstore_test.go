package showcase

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// memStore is an in-memory ArticleStore for tests. It mirrors the MongoDB
// implementation's semantics (date-descending lists, opaque ids, ErrNotFound)
// and counts calls so tests can assert on exactly-once behavior.
type memStore struct {
	mu       sync.Mutex
	articles map[Collection]map[string]Article
	nextID   int

	listCalls   int
	createCalls int
	updateCalls int
	deleteCalls int

	failList bool
}

func newMemStore() *memStore {
	return &memStore{
		articles: map[Collection]map[string]Article{
			CollectionBlog:     {},
			CollectionProjects: {},
		},
	}
}

func (m *memStore) List(ctx context.Context, coll Collection) ([]Article, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listCalls++
	if m.failList {
		return nil, fmt.Errorf("store unavailable")
	}
	if !coll.Valid() {
		return nil, fmt.Errorf("unknown collection %q", coll)
	}
	var out []Article
	for _, a := range m.articles[coll] {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out, nil
}

func (m *memStore) Latest(ctx context.Context, coll Collection, n int) ([]Article, error) {
	all, err := m.List(ctx, coll)
	if err != nil {
		return nil, err
	}
	if n < len(all) {
		all = all[:n]
	}
	return all, nil
}

func (m *memStore) GetByID(ctx context.Context, coll Collection, id string) (Article, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if a, ok := m.articles[coll][id]; ok {
		return a, nil
	}
	return Article{}, ErrNotFound
}

func (m *memStore) Create(ctx context.Context, coll Collection, a Article) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.createCalls++
	if !coll.Valid() {
		return "", fmt.Errorf("unknown collection %q", coll)
	}
	m.nextID++
	id := fmt.Sprintf("id-%d", m.nextID)
	a.ID = id
	m.articles[coll][id] = a
	return id, nil
}

func (m *memStore) Update(ctx context.Context, coll Collection, id string, a Article) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.updateCalls++
	if _, ok := m.articles[coll][id]; !ok {
		return ErrNotFound
	}
	a.ID = id
	m.articles[coll][id] = a
	return nil
}

func (m *memStore) Delete(ctx context.Context, coll Collection, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deleteCalls++
	if _, ok := m.articles[coll][id]; !ok {
		return ErrNotFound
	}
	delete(m.articles[coll], id)
	return nil
}

func (m *memStore) count(coll Collection) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.articles[coll])
}
