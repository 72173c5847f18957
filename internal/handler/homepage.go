package handler

// homepage.go serves the homepage document endpoints: the dashboard read,
// the transactional bulk update and the image uploads backing the hero and
// testimonial pictures.

import (
	"crypto/rand"
	"encoding/hex"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/atollway/travel-content-api/internal/icons"
	"github.com/atollway/travel-content-api/internal/repository"
)

// maxImageBytes caps a single uploaded image.
const maxImageBytes = 5 << 20

var imageExts = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".webp": true, ".gif": true,
}

// PublicHomepage returns the homepage document with inactive rows and
// singletons dropped.
func (h *AdminHandler) PublicHomepage(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()
	doc, err := h.Homepage.Document(ctx, true)
	if err != nil {
		return writeRepoErr(c, err)
	}
	return c.JSON(http.StatusOK, doc)
}

// DashboardData returns the full homepage document, inactive rows included,
// for the admin editor.
func (h *AdminHandler) DashboardData(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()
	doc, err := h.Homepage.Document(ctx, false)
	if err != nil {
		return writeRepoErr(c, err)
	}
	return c.JSON(http.StatusOK, doc)
}

// BulkUpdate replaces the whole homepage document in one transaction. The
// lists are stored in array order, so the dashboard sends its current
// editor state and positions come out dense.
func (h *AdminHandler) BulkUpdate(c echo.Context) error {
	var doc repository.HomepageDocument
	if err := c.Bind(&doc); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if msg := validateHomepage(&doc); msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.Homepage.Replace(ctx, &doc); err != nil {
		return writeRepoErr(c, err)
	}

	count := len(doc.Features) + len(doc.Testimonials) + len(doc.Statistics)
	if doc.Hero != nil {
		count++
	}
	if doc.CTASection != nil {
		count++
	}
	if doc.Settings != nil {
		count++
	}
	h.contentChanged(c, GroupHomepage, "homepage", "replaced", 0, count)

	out, err := h.Homepage.Document(ctx, false)
	if err != nil {
		return writeRepoErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func validateHomepage(doc *repository.HomepageDocument) string {
	for _, f := range doc.Features {
		if strings.TrimSpace(f.Title) == "" {
			return "feature title is required"
		}
		if !icons.ValidIcon(f.Icon) {
			return "unknown feature icon"
		}
	}
	for _, t := range doc.Testimonials {
		if strings.TrimSpace(t.Name) == "" {
			return "testimonial name is required"
		}
		if t.Rating < 1 || t.Rating > 5 {
			return "testimonial rating must be between 1 and 5"
		}
	}
	for _, s := range doc.Statistics {
		if strings.TrimSpace(s.Label) == "" {
			return "statistic label is required"
		}
		if !icons.ValidIcon(s.Icon) {
			return "unknown statistic icon"
		}
	}
	return ""
}

// UploadImage stores one multipart image (field "image") under the upload
// directory and returns its public URL.
func (h *AdminHandler) UploadImage(c echo.Context) error {
	fh, err := c.FormFile("image")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "image file required"})
	}
	url, msg := h.saveImage(fh)
	if msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}
	return c.JSON(http.StatusCreated, echo.Map{"url": url})
}

// UploadImages stores every file of the multipart field "images" and
// returns the list of public URLs in upload order.
func (h *AdminHandler) UploadImages(c echo.Context) error {
	form, err := c.MultipartForm()
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "multipart form required"})
	}
	files := form.File["images"]
	if len(files) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "at least one image required"})
	}

	urls := make([]string, 0, len(files))
	for _, fh := range files {
		url, msg := h.saveImage(fh)
		if msg != "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
		}
		urls = append(urls, url)
	}
	return c.JSON(http.StatusCreated, echo.Map{"urls": urls})
}

// saveImage writes one upload to disk under a random name, keeping the
// original extension. It returns the public URL or a client error message.
func (h *AdminHandler) saveImage(fh *multipart.FileHeader) (string, string) {
	if fh.Size > maxImageBytes {
		return "", "image exceeds 5MB limit"
	}
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !imageExts[ext] {
		return "", "unsupported image type"
	}

	src, err := fh.Open()
	if err != nil {
		return "", "unreadable upload"
	}
	defer src.Close()

	var buf [16]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return "", "upload failed"
	}
	name := hex.EncodeToString(buf[:]) + ext

	if err := os.MkdirAll(h.Cfg.UploadDir, 0o755); err != nil {
		return "", "upload failed"
	}
	dst, err := os.Create(filepath.Join(h.Cfg.UploadDir, name))
	if err != nil {
		return "", "upload failed"
	}
	defer dst.Close()
	if _, err := io.Copy(dst, io.LimitReader(src, maxImageBytes)); err != nil {
		return "", "upload failed"
	}

	return h.Cfg.PublicBaseURL + "/uploads/" + name, ""
}
