// internal/storage/uploads.go
//
// Package storage persists uploaded idea attachments on the local
// filesystem and hands back the public URL they will be served under.
package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

type UploadStore struct {
	dir     string
	baseURL string
}

func NewUploadStore(dir, baseURL string) (*UploadStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating upload directory: %w", err)
	}
	return &UploadStore{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

// Save writes one multipart file under a fresh name and returns its URL.
// The original filename only contributes its extension; the stored name is
// a UUID so uploads can never collide or traverse paths.
func (s *UploadStore) Save(fh *multipart.FileHeader) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("opening upload: %w", err)
	}
	defer src.Close()

	ext := filepath.Ext(fh.Filename)
	name := uuid.NewString() + ext

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("creating upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("writing upload file: %w", err)
	}

	return s.baseURL + "/" + name, nil
}

// Dir returns the directory uploads are written to, for static serving.
func (s *UploadStore) Dir() string {
	return s.dir
}
