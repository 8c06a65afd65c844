package storage

import "context"

// MockUploader returns deterministic local URLs. Used when Supabase is not
// configured (dev) and in handler tests.
type MockUploader struct {
	BaseURL string
}

func (m MockUploader) Upload(ctx context.Context, objectPath, contentType string, data []byte) (string, error) {
	base := m.BaseURL
	if base == "" {
		base = "mock://storage"
	}
	return base + "/" + objectPath, nil
}
