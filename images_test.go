package showcase

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestEnsureUniqueFilename(t *testing.T) {
	app := &App{staticDir: t.TempDir()}
	dir := filepath.Join(app.staticDir, uploadsSubdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create uploads dir: %v", err)
	}

	if got := app.ensureUniqueFilename("pic.jpg"); got != "pic.jpg" {
		t.Errorf("free name = %q, want pic.jpg", got)
	}

	for _, name := range []string{"pic.jpg", "pic-2.jpg"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	if got := app.ensureUniqueFilename("pic.jpg"); got != "pic-3.jpg" {
		t.Errorf("colliding name = %q, want pic-3.jpg", got)
	}
}

func TestEnsureUniqueFilenameUnreadableDir(t *testing.T) {
	// When the uploads directory cannot be probed at all, the candidate is
	// returned as-is so the subsequent write reports the real failure
	// instead of looping.
	app := &App{staticDir: filepath.Join(t.TempDir(), "does-not-exist")}
	if got := app.ensureUniqueFilename("pic.jpg"); got != "pic.jpg" {
		t.Errorf("got %q, want pic.jpg", got)
	}
}

func TestProcessImageResizesAndSlugs(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 1200, 600))
	for x := 0; x < 1200; x += 100 {
		src.Set(x, 300, color.RGBA{R: 255, A: 255})
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, src); err != nil {
		t.Fatalf("encode fixture: %v", err)
	}

	filename, data, err := processImage(&buf, "My Photo!.png")
	if err != nil {
		t.Fatalf("processImage failed: %v", err)
	}
	if filename != "my-photo.jpg" {
		t.Errorf("filename = %q, want my-photo.jpg", filename)
	}

	out, err := jpeg.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if w := out.Bounds().Dx(); w != maxImageWidth {
		t.Errorf("width = %d, want %d", w, maxImageWidth)
	}
	if h := out.Bounds().Dy(); h != 400 {
		t.Errorf("height = %d, want 400 (aspect preserved)", h)
	}
}

func TestProcessImageRejectsGarbage(t *testing.T) {
	if _, _, err := processImage(bytes.NewReader([]byte("not an image")), "x.png"); err == nil {
		t.Error("expected error for undecodable input")
	}
}
