package markdown

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func render(t *testing.T, content string) string {
	t.Helper()
	var buf bytes.Buffer
	if err := Markdown(content).Render(context.Background(), &buf); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	return buf.String()
}

func TestHeadingsAndEmphasis(t *testing.T) {
	out := render(t, "# Title\n\nSome **bold** and *italic* text.")
	for _, want := range []string{"<h1", "Title", "<strong>bold</strong>", "<em>italic</em>"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRawHTMLPassesThrough(t *testing.T) {
	// Article content is admin-authored and may contain inline HTML.
	out := render(t, `Intro with <span class="note">markup</span>.`)
	if !strings.Contains(out, `<span class="note">markup</span>`) {
		t.Errorf("raw HTML was escaped:\n%s", out)
	}
}

func TestGFMTable(t *testing.T) {
	out := render(t, "| a | b |\n|---|---|\n| 1 | 2 |")
	if !strings.Contains(out, "<table>") {
		t.Errorf("expected a table:\n%s", out)
	}
}

func TestPlainParagraph(t *testing.T) {
	out := render(t, "just a line")
	if !strings.Contains(out, "<p>just a line</p>") {
		t.Errorf("expected a paragraph:\n%s", out)
	}
}
