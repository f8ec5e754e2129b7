package analytics

import (
	"path/filepath"
	"testing"
	"time"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "analytics.db")
	s, err := NewStore(path)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecordAndTopPages(t *testing.T) {
	s := setupTestStore(t)

	for i := 0; i < 3; i++ {
		if err := s.RecordVisit("/blog/", "203.0.113.1", "test-agent"); err != nil {
			t.Fatalf("RecordVisit failed: %v", err)
		}
	}
	if err := s.RecordVisit("/blog/", "203.0.113.2", "test-agent"); err != nil {
		t.Fatalf("RecordVisit failed: %v", err)
	}
	if err := s.RecordVisit("/projects/", "203.0.113.1", "test-agent"); err != nil {
		t.Fatalf("RecordVisit failed: %v", err)
	}

	pages, err := s.TopPages(30, 10)
	if err != nil {
		t.Fatalf("TopPages failed: %v", err)
	}
	if len(pages) != 2 {
		t.Fatalf("got %d pages, want 2", len(pages))
	}
	if pages[0].Path != "/blog/" {
		t.Errorf("top page = %q, want /blog/", pages[0].Path)
	}
	if pages[0].Views != 4 {
		t.Errorf("views = %d, want 4", pages[0].Views)
	}
	if pages[0].Visitors != 2 {
		t.Errorf("visitors = %d, want 2 (same address must collapse)", pages[0].Visitors)
	}
}

func TestSaltPersistsAcrossOpens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "analytics.db")

	s1, err := NewStore(path)
	if err != nil {
		t.Fatalf("first open failed: %v", err)
	}
	salt1 := s1.salt
	s1.Close()

	s2, err := NewStore(path)
	if err != nil {
		t.Fatalf("second open failed: %v", err)
	}
	defer s2.Close()

	if salt1 == "" {
		t.Fatal("salt should be generated on first open")
	}
	if s2.salt != salt1 {
		t.Errorf("salt changed across opens")
	}
}

func TestVisitorIDRotatesDaily(t *testing.T) {
	day1 := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	day2 := day1.AddDate(0, 0, 1)

	a := visitorID("salt", "203.0.113.1", "agent", day1)
	b := visitorID("salt", "203.0.113.1", "agent", day1.Add(2*time.Hour))
	c := visitorID("salt", "203.0.113.1", "agent", day2)

	if a != b {
		t.Error("same visitor on the same day should hash identically")
	}
	if a == c {
		t.Error("visitor hash should rotate across days")
	}
}

func TestPruneOlderThan(t *testing.T) {
	s := setupTestStore(t)

	if err := s.RecordVisit("/", "203.0.113.1", "agent"); err != nil {
		t.Fatalf("RecordVisit failed: %v", err)
	}
	// Backdate the visit beyond the retention window.
	if _, err := s.db.Exec(`UPDATE visits SET visited_at = ?`,
		time.Now().UTC().AddDate(0, 0, -400).Format(time.RFC3339)); err != nil {
		t.Fatalf("backdate failed: %v", err)
	}

	if err := s.PruneOlderThan(365); err != nil {
		t.Fatalf("PruneOlderThan failed: %v", err)
	}
	pages, err := s.TopPages(3650, 10)
	if err != nil {
		t.Fatalf("TopPages failed: %v", err)
	}
	if len(pages) != 0 {
		t.Errorf("expected pruned store to be empty, got %d pages", len(pages))
	}
}
