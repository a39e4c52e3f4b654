package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"

	"jobportal_front/pkg/apperrors"
)

// Storage defines the file operations used for company gallery images
type Storage interface {
	// Save stores a file at the given key
	Save(ctx context.Context, key string, reader io.Reader, contentType string) error

	// Delete removes a file; deleting a missing file is not an error
	Delete(ctx context.Context, key string) error

	// GetURL returns a public URL for the file
	GetURL(ctx context.Context, key string) (string, error)

	// KeyFromURL reverses GetURL; false when the URL is not ours
	KeyFromURL(url string) (string, bool)
}

// Config holds storage configuration
type Config struct {
	Type       string // local, s3, cloudflare_r2
	BasePath   string // For local storage
	BaseURL    string // Public URL base
	Bucket     string // For S3/R2
	Region     string // For S3
	AccessKey  string // For S3/R2
	SecretKey  string // For S3/R2
	Endpoint   string // For R2 or custom S3
	PublicRead bool   // Make files public by default
}

// NewStorage creates a new storage instance based on configuration
func NewStorage(cfg Config) (Storage, error) {
	switch cfg.Type {
	case "", "local":
		return NewLocalStorage(cfg)
	case "s3", "cloudflare_r2":
		return NewS3Storage(cfg)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.Type)
	}
}

// Upload - файл изображения из multipart-формы
type Upload struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// Resizer подгоняет изображение под лимиты галереи до сохранения
type Resizer interface {
	Fit(r io.Reader, contentType string) (io.Reader, error)
}

// ImageUploader проверяет размер и тип и кладет файл в хранилище
// под ключом companies/<companyID>/<uuid><ext>.
type ImageUploader struct {
	storage      Storage
	maxSize      int64
	allowedTypes map[string]bool
	resizer      Resizer
}

func NewImageUploader(s Storage, maxSize int64, allowedTypes []string) *ImageUploader {
	allowed := make(map[string]bool, len(allowedTypes))
	for _, t := range allowedTypes {
		allowed[strings.ToLower(strings.TrimSpace(t))] = true
	}
	return &ImageUploader{storage: s, maxSize: maxSize, allowedTypes: allowed}
}

func (u *ImageUploader) WithResizer(r Resizer) *ImageUploader {
	u.resizer = r
	return u
}

func (u *ImageUploader) Upload(ctx context.Context, companyID string, f Upload) (string, error) {
	if u.maxSize > 0 && f.Size > u.maxSize {
		return "", apperrors.ErrFileTooLarge
	}
	contentType := strings.ToLower(strings.TrimSpace(f.ContentType))
	if len(u.allowedTypes) > 0 && !u.allowedTypes[contentType] {
		return "", apperrors.ErrInvalidFileType
	}

	body := f.Body
	if u.resizer != nil {
		fitted, err := u.resizer.Fit(body, contentType)
		if err != nil {
			return "", apperrors.ErrInvalidFileType.WithError(err)
		}
		body = fitted
	}

	key := path.Join("companies", companyID, uuid.NewString()+strings.ToLower(path.Ext(f.Filename)))
	if err := u.storage.Save(ctx, key, body, contentType); err != nil {
		return "", apperrors.InternalError(err)
	}
	return u.storage.GetURL(ctx, key)
}

// Remove удаляет файл по его публичному URL. Чужие URL пропускаются.
func (u *ImageUploader) Remove(ctx context.Context, url string) error {
	key, ok := u.storage.KeyFromURL(url)
	if !ok {
		return nil
	}
	return u.storage.Delete(ctx, key)
}

func trimBase(base, url string) (string, bool) {
	prefix := strings.TrimRight(base, "/") + "/"
	if !strings.HasPrefix(url, prefix) {
		return "", false
	}
	key := strings.TrimPrefix(url, prefix)
	if key == "" || strings.Contains(key, "..") {
		return "", false
	}
	return key, true
}

// presignExpiry - срок ссылки для приватных бакетов
const presignExpiry = 15 * time.Minute
