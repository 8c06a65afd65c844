package storage

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// Uploader stores a blob and returns its permanent public URL. The backend
// never inspects file content beyond MIME type and size.
type Uploader interface {
	Upload(ctx context.Context, objectPath, contentType string, data []byte) (string, error)
}

// ObjectPath builds a unique bucket path for an uploaded file, keeping the
// original extension.
func ObjectPath(filename string) string {
	ext := filepath.Ext(filename)
	if ext == "" {
		ext = ".jpg"
	}
	return fmt.Sprintf("public/%d_%s%s", time.Now().UnixMilli(), uuid.New().String(), ext)
}
