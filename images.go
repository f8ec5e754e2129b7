package showcase

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/image/draw"
)

const (
	maxImageWidth = 800
	jpegQuality   = 80
	maxUploadSize = 10 << 20 // 10MB
	uploadsSubdir = "uploads"
)

// Image is one uploaded file under public/uploads. URL is what the admin
// pastes into an article's imageUrl field.
type Image struct {
	Filename   string
	URL        string
	Size       int64
	UploadedAt time.Time
}

// processImage decodes an image from src, resizes it down to maxImageWidth
// when wider, and encodes it as JPEG. Returns the target filename and bytes.
func processImage(src io.Reader, originalName string) (string, []byte, error) {
	img, _, err := image.Decode(src)
	if err != nil {
		return "", nil, fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w > maxImageWidth {
		newH := h * maxImageWidth / w
		dst := image.NewRGBA(image.Rect(0, 0, maxImageWidth, newH))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
		img = dst
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return "", nil, fmt.Errorf("encode jpeg: %w", err)
	}

	ext := filepath.Ext(originalName)
	name := Slugify(strings.TrimSuffix(originalName, ext))
	if name == "" {
		name = "image"
	}
	return name + ".jpg", buf.Bytes(), nil
}

// ensureUniqueFilename appends a counter while the name collides on disk.
func (a *App) ensureUniqueFilename(filename string) string {
	dir := filepath.Join(a.staticDir, uploadsSubdir)
	base := strings.TrimSuffix(filename, ".jpg")
	candidate := filename
	counter := 1
	for {
		_, err := os.Stat(filepath.Join(dir, candidate))
		if err != nil {
			// Not-exist means the name is free. Any other failure means we
			// cannot probe the directory at all; stop here and let the
			// write surface the real error.
			return candidate
		}
		counter++
		candidate = fmt.Sprintf("%s-%d.jpg", base, counter)
	}
}

func (a *App) handleImageUpload(c echo.Context) error {
	if !a.isAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}

	file, err := c.FormFile("image")
	if err != nil {
		return c.String(http.StatusBadRequest, "No image file provided")
	}
	if file.Size > maxUploadSize {
		return c.String(http.StatusBadRequest, "File too large (max 10MB)")
	}

	src, err := file.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	filename, data, err := processImage(src, file.Filename)
	if err != nil {
		return c.String(http.StatusBadRequest, "Invalid image: "+err.Error())
	}
	filename = a.ensureUniqueFilename(filename)

	dir := filepath.Join(a.staticDir, uploadsSubdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create uploads dir: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, filename), data, 0o644); err != nil {
		return fmt.Errorf("write image: %w", err)
	}

	return a.renderImageList(c)
}

func (a *App) handleImageDelete(c echo.Context) error {
	if !a.isAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	filename := filepath.Base(c.Param("filename"))
	if filename == "" || filename == "." {
		return c.String(http.StatusBadRequest, "Filename required")
	}
	_ = os.Remove(filepath.Join(a.staticDir, uploadsSubdir, filename)) // already gone is fine
	return a.renderImageList(c)
}

func (a *App) handleImageList(c echo.Context) error {
	if !a.isAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	return a.renderImageList(c)
}

func (a *App) renderImageList(c echo.Context) error {
	images, err := a.listImages()
	if err != nil {
		return err
	}
	return Render(c, a.Views.AdminImages(images, CsrfToken(c)))
}

// listImages reads the uploads directory, newest first.
func (a *App) listImages() ([]Image, error) {
	dir := filepath.Join(a.staticDir, uploadsSubdir)
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read uploads dir: %w", err)
	}
	var images []Image
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		images = append(images, Image{
			Filename:   entry.Name(),
			URL:        "/public/" + uploadsSubdir + "/" + entry.Name(),
			Size:       info.Size(),
			UploadedAt: info.ModTime(),
		})
	}
	sort.Slice(images, func(i, j int) bool {
		return images[i].UploadedAt.After(images[j].UploadedAt)
	})
	return images, nil
}
