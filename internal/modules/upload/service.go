package upload

import (
	"context"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"portfolio/internal/domain"

	"github.com/google/uuid"
)

const (
	MaxFileSize   = 10 * 1024 * 1024 // 10 MB
	StaticURLBase = "/uploads"
)

// AllowedMimeTypes limits uploads to the image formats the site renders.
var AllowedMimeTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

type Repository interface {
	Create(ctx context.Context, u *domain.Upload) error
	GetByURL(ctx context.Context, fileURL string) (*domain.Upload, error)
	Delete(ctx context.Context, id string) error
}

// Service stores project images on local disk and records them in the
// database. It stands in for the hosted media service: save file, record it,
// hand back a public URL.
type Service struct {
	repo       Repository
	baseDir    string // absolute path to uploads dir
	staticBase string // URL prefix for serving files
}

func NewService(repo Repository, baseDir string) *Service {
	if baseDir == "" {
		baseDir = "./uploads"
	}
	return &Service{repo: repo, baseDir: baseDir, staticBase: StaticURLBase}
}

// Store saves an image to disk and records it, returning the public URL.
func (s *Service) Store(ctx context.Context, fileHeader *multipart.FileHeader) (*domain.Upload, error) {
	if fileHeader.Size == 0 {
		return nil, ErrEmptyFile
	}
	if fileHeader.Size > MaxFileSize {
		return nil, ErrFileTooLarge
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	// Detect MIME type from the first 512 bytes
	buf := make([]byte, 512)
	n, _ := file.Read(buf)
	mimeType := http.DetectContentType(buf[:n])
	mimeType = strings.Split(mimeType, ";")[0]

	if !AllowedMimeTypes[mimeType] {
		return nil, ErrInvalidMimeType
	}

	if seeker, ok := file.(io.Seeker); ok {
		_, _ = seeker.Seek(0, io.SeekStart)
	}

	// Directory layout: uploads/YYYY/MM/DD/
	now := time.Now()
	relDir := fmt.Sprintf("%d/%02d/%02d", now.Year(), now.Month(), now.Day())
	absDir := filepath.Join(s.baseDir, relDir)
	if err := os.MkdirAll(absDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}

	id := uuid.New().String()
	ext := filepath.Ext(fileHeader.Filename)
	if ext == "" {
		ext = mimeToExt(mimeType)
	}
	filename := fmt.Sprintf("%s_%s%s", id, sanitizeName(fileHeader.Filename), ext)

	absPath := filepath.Join(absDir, filename)
	dst, err := os.Create(absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		_ = os.Remove(absPath)
		return nil, fmt.Errorf("failed to write file: %w", err)
	}

	relPath := filepath.Join(relDir, filename)
	fileURL := s.staticBase + "/" + strings.ReplaceAll(relPath, "\\", "/")

	u := &domain.Upload{
		ID:           id,
		OriginalName: fileHeader.Filename,
		FilePath:     relPath,
		FileURL:      fileURL,
		MimeType:     mimeType,
		Size:         fileHeader.Size,
		CreatedAt:    now,
	}

	if err := s.repo.Create(ctx, u); err != nil {
		_ = os.Remove(absPath) // roll back the file on DB error
		return nil, fmt.Errorf("failed to save upload record: %w", err)
	}

	return u, nil
}

// Remove is the best-effort cleanup hook for replaced or orphaned assets.
// Failures are logged and swallowed: a stale file never fails the caller's
// operation.
func (s *Service) Remove(ctx context.Context, fileURL string) {
	if fileURL == "" || !strings.HasPrefix(fileURL, s.staticBase+"/") {
		return
	}

	u, err := s.repo.GetByURL(ctx, fileURL)
	if err != nil {
		log.Printf("upload cleanup: no record for %s: %v", fileURL, err)
		return
	}

	absPath := filepath.Join(s.baseDir, u.FilePath)
	if err := os.Remove(absPath); err != nil && !os.IsNotExist(err) {
		log.Printf("upload cleanup: remove %s: %v", absPath, err)
	}

	if err := s.repo.Delete(ctx, u.ID); err != nil {
		log.Printf("upload cleanup: delete record %s: %v", u.ID, err)
	}
}

func sanitizeName(name string) string {
	name = filepath.Base(name)
	name = strings.TrimSuffix(name, filepath.Ext(name)) // extension is added separately
	name = strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-' {
			return r
		}
		return '_'
	}, name)
	if len(name) > 40 {
		name = name[:40]
	}
	if name == "" {
		return "file"
	}
	return name
}

func mimeToExt(mimeType string) string {
	switch mimeType {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	}
	return ""
}
