package storage

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"jobportal_front/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUploader(t *testing.T) (*ImageUploader, string) {
	dir := t.TempDir()
	s, err := NewStorage(Config{Type: "local", BasePath: dir, BaseURL: "/files"})
	require.NoError(t, err)
	return NewImageUploader(s, 1024, []string{"image/png", "image/jpeg"}), dir
}

func TestImageUploader_UploadAndRemove(t *testing.T) {
	u, dir := newUploader(t)
	ctx := context.Background()

	url, err := u.Upload(ctx, "c1", Upload{
		Filename:    "logo.PNG",
		ContentType: "image/png",
		Size:        4,
		Body:        strings.NewReader("data"),
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "/files/companies/c1/"))
	assert.True(t, strings.HasSuffix(url, ".png"))

	key := strings.TrimPrefix(url, "/files/")
	_, err = os.Stat(filepath.Join(dir, filepath.FromSlash(key)))
	require.NoError(t, err)

	require.NoError(t, u.Remove(ctx, url))
	_, err = os.Stat(filepath.Join(dir, filepath.FromSlash(key)))
	assert.True(t, os.IsNotExist(err))

	assert.NoError(t, u.Remove(ctx, "https://cdn.example.com/other.png"))
}

func TestImageUploader_Rejects(t *testing.T) {
	u, _ := newUploader(t)
	ctx := context.Background()

	_, err := u.Upload(ctx, "c1", Upload{Filename: "big.png", ContentType: "image/png", Size: 4096, Body: strings.NewReader("")})
	assert.True(t, apperrors.Is(err, apperrors.ErrFileTooLarge))

	_, err = u.Upload(ctx, "c1", Upload{Filename: "doc.pdf", ContentType: "application/pdf", Size: 10, Body: strings.NewReader("")})
	assert.True(t, apperrors.Is(err, apperrors.ErrInvalidFileType))
}

func TestNewStorage_Unsupported(t *testing.T) {
	_, err := NewStorage(Config{Type: "ftp"})
	assert.Error(t, err)
}

func TestKeyFromURL_RejectsTraversal(t *testing.T) {
	_, ok := trimBase("/files", "/files/../etc/passwd")
	assert.False(t, ok)
}

type failingResizer struct{}

func (failingResizer) Fit(io.Reader, string) (io.Reader, error) {
	return nil, errors.New("corrupt image")
}

type upperResizer struct{}

func (upperResizer) Fit(r io.Reader, _ string) (io.Reader, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return strings.NewReader(strings.ToUpper(string(b))), nil
}

func TestImageUploader_Resizer(t *testing.T) {
	u, dir := newUploader(t)
	ctx := context.Background()

	url, err := u.WithResizer(upperResizer{}).Upload(ctx, "c1", Upload{
		Filename: "a.png", ContentType: "image/png", Size: 4, Body: strings.NewReader("data"),
	})
	require.NoError(t, err)
	got, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(strings.TrimPrefix(url, "/files/"))))
	require.NoError(t, err)
	assert.Equal(t, "DATA", string(got))

	_, err = u.WithResizer(failingResizer{}).Upload(ctx, "c1", Upload{
		Filename: "b.png", ContentType: "image/png", Size: 4, Body: strings.NewReader("data"),
	})
	assert.True(t, apperrors.IsCode(err, apperrors.CodeValidationFailed))
}
