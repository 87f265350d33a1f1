package helper

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

/* ===============================
   Profile photo upload
   (decode → resize → webp → disk)
=================================*/

const photoMaxWidth = 800

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)

// SavePhotoWebP converts an uploaded image to webp and stores it under
// <baseDir>/<folder>/, returning the relative path persisted on the record.
func SavePhotoWebP(baseDir, folder string, fileHeader *multipart.FileHeader) (string, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	img, _, err := image.Decode(src)
	if err != nil {
		return "", fmt.Errorf("failed to decode image: %w", err)
	}

	if img.Bounds().Dx() > photoMaxWidth {
		img = imaging.Resize(img, photoMaxWidth, 0, imaging.Lanczos)
	}

	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, img, &webp.Options{Lossless: false, Quality: 80}); err != nil {
		return "", fmt.Errorf("failed to encode webp: %w", err)
	}

	dir := filepath.Join(baseDir, folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload dir: %w", err)
	}

	filename := generateUniqueFilename(fileHeader.Filename)
	full := filepath.Join(dir, filename)
	if err := os.WriteFile(full, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("failed to write photo: %w", err)
	}

	return filepath.ToSlash(filepath.Join(folder, filename)), nil
}

func generateUniqueFilename(original string) string {
	base := strings.TrimSuffix(original, filepath.Ext(original))
	base = unsafeFilenameChars.ReplaceAllString(base, "-")
	if base == "" {
		base = "photo"
	}
	return fmt.Sprintf("%s-%d-%s.webp", base, time.Now().Unix(), uuid.NewString()[:8])
}
