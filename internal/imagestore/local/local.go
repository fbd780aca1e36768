package local

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const MaxFileSize = 50 * 1024 * 1024 // 50 MB

// AllowedMimeTypes defines which file types are accepted
var AllowedMimeTypes = map[string]bool{
	"image/jpeg":    true,
	"image/png":     true,
	"image/gif":     true,
	"image/webp":    true,
	"image/svg+xml": true,
}

// Store keeps images on local disk and serves them under a static URL base.
// Filenames are <uuid><ext>, so the public ID derived from a URL maps back
// to exactly one file.
type Store struct {
	baseDir    string
	staticBase string
}

func New(baseDir, staticBase string) (*Store, error) {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &Store{baseDir: baseDir, staticBase: staticBase}, nil
}

func (s *Store) Upload(ctx context.Context, fileHeader *multipart.FileHeader) (string, error) {
	if fileHeader.Size == 0 {
		return "", ErrEmptyFile
	}
	if fileHeader.Size > MaxFileSize {
		return "", ErrFileTooLarge
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	// Detect MIME type from first 512 bytes
	buf := make([]byte, 512)
	n, _ := file.Read(buf)
	mimeType := http.DetectContentType(buf[:n])
	mimeType = strings.Split(mimeType, ";")[0] // strip charset params

	if !AllowedMimeTypes[mimeType] {
		return "", ErrInvalidMimeType
	}

	if seeker, ok := file.(io.Seeker); ok {
		_, _ = seeker.Seek(0, io.SeekStart)
	}

	ext := filepath.Ext(fileHeader.Filename)
	if ext == "" {
		ext = mimeToExt(mimeType)
	}
	filename := uuid.New().String() + ext

	absPath := filepath.Join(s.baseDir, filename)
	dst, err := os.Create(absPath)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		_ = os.Remove(absPath)
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return s.staticBase + "/" + filename, nil
}

func (s *Store) Delete(ctx context.Context, publicID string) error {
	if publicID == "" || strings.ContainsAny(publicID, "/\\") {
		return ErrInvalidPublicID
	}

	matches, err := filepath.Glob(filepath.Join(s.baseDir, publicID+".*"))
	if err != nil {
		return fmt.Errorf("failed to resolve image: %w", err)
	}
	if len(matches) == 0 {
		return ErrImageNotFound
	}

	for _, m := range matches {
		if err := os.Remove(m); err != nil {
			return fmt.Errorf("failed to delete image: %w", err)
		}
	}
	return nil
}

func mimeToExt(mime string) string {
	switch mime {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	default:
		return ".bin"
	}
}
