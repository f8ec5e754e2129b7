package showcase

import (
	"testing"
	"time"
)

func article(title, category string, daysAgo int) Article {
	return Article{
		ID:       "id-" + title,
		Title:    title,
		Category: category,
		Date:     time.Date(2025, 6, 30, 12, 0, 0, 0, time.UTC).AddDate(0, 0, -daysAgo),
	}
}

func TestGroupByCategoryPartitionsInput(t *testing.T) {
	input := []Article{
		article("a", "Go", 0),
		article("b", "Web", 1),
		article("c", "Go", 2),
		article("d", "", 3),
		article("e", "Web", 4),
	}
	groups := GroupByCategory(input)

	total := 0
	seen := make(map[string]bool)
	for _, g := range groups {
		for _, a := range g.Articles {
			if seen[a.ID] {
				t.Errorf("article %s appears in more than one group", a.ID)
			}
			seen[a.ID] = true
			total++
		}
	}
	if total != len(input) {
		t.Errorf("grouped %d articles, want %d", total, len(input))
	}
}

func TestGroupByCategoryFirstSeenOrder(t *testing.T) {
	input := []Article{
		article("a", "Go", 0),
		article("b", "Web", 1),
		article("c", "Go", 2),
	}
	groups := GroupByCategory(input)

	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(groups))
	}
	if groups[0].Category != "Go" || groups[1].Category != "Web" {
		t.Errorf("group order = [%s %s], want [Go Web]", groups[0].Category, groups[1].Category)
	}
	// Within a group the input (date) ordering is preserved.
	if groups[0].Articles[0].Title != "a" || groups[0].Articles[1].Title != "c" {
		t.Errorf("Go group order = [%s %s], want [a c]", groups[0].Articles[0].Title, groups[0].Articles[1].Title)
	}
}

func TestGroupByCategoryUncategorizedSentinel(t *testing.T) {
	groups := GroupByCategory([]Article{
		article("a", "", 0),
		article("b", "Go", 1),
		article("c", "", 2),
	})

	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(groups))
	}
	if groups[0].Category != UncategorizedLabel {
		t.Errorf("first group = %q, want %q", groups[0].Category, UncategorizedLabel)
	}
	if len(groups[0].Articles) != 2 {
		t.Errorf("uncategorized group has %d articles, want 2", len(groups[0].Articles))
	}
}

func TestGroupByCategoryIsDeterministic(t *testing.T) {
	input := []Article{
		article("a", "Go", 0),
		article("b", "", 1),
		article("c", "Web", 2),
		article("d", "Go", 3),
	}
	first := GroupByCategory(input)
	second := GroupByCategory(input)

	if len(first) != len(second) {
		t.Fatalf("group counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Category != second[i].Category {
			t.Errorf("group %d category differs: %q vs %q", i, first[i].Category, second[i].Category)
		}
		if len(first[i].Articles) != len(second[i].Articles) {
			t.Errorf("group %d size differs", i)
		}
	}
}

func TestGroupByCategoryEmptyInput(t *testing.T) {
	if groups := GroupByCategory(nil); len(groups) != 0 {
		t.Errorf("got %d groups for empty input, want 0", len(groups))
	}
}
