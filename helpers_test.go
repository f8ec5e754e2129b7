package showcase

import (
	"testing"
	"time"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"Hello World", "hello-world"},
		{"Web Development", "web-development"},
		{"  Spaces  ", "spaces"},
		{"Already-Slugged", "already-slugged"},
		{"Symbols & Stuff!", "symbols-stuff"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := Slugify(tc.in); got != tc.want {
			t.Errorf("Slugify(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestBuildURL(t *testing.T) {
	cases := []struct {
		base string
		segs []string
		want string
	}{
		{"https://example.com", []string{"blog"}, "https://example.com/blog/"},
		{"https://example.com/", []string{"blog"}, "https://example.com/blog/"},
		{"https://example.com", nil, "https://example.com"},
	}
	for _, tc := range cases {
		if got := BuildURL(tc.base, tc.segs...); got != tc.want {
			t.Errorf("BuildURL(%q, %v) = %q, want %q", tc.base, tc.segs, got, tc.want)
		}
	}
}

func TestDisplayDate(t *testing.T) {
	a := Article{Date: time.Date(2025, 1, 5, 10, 30, 0, 0, time.UTC)}
	if got := a.DisplayDate(); got != "Jan 5, 2025" {
		t.Errorf("DisplayDate = %q, want %q", got, "Jan 5, 2025")
	}
	if got := (Article{}).DisplayDate(); got != "" {
		t.Errorf("zero date DisplayDate = %q, want empty", got)
	}
}

func TestSubmitLabel(t *testing.T) {
	if got := (ArticleForm{}).SubmitLabel(); got != "Publish" {
		t.Errorf("empty form label = %q, want Publish", got)
	}
	if got := (ArticleForm{EditID: "abc"}).SubmitLabel(); got != "Update" {
		t.Errorf("edit form label = %q, want Update", got)
	}
}
