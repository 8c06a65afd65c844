package storage

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"
)

// SupabaseUploader proxies file bytes to Supabase object storage using the
// service key. Clients only ever see the returned public URL.
type SupabaseUploader struct {
	BaseURL    string
	ServiceKey string
	Bucket     string
	Client     *http.Client
}

func (u SupabaseUploader) Upload(ctx context.Context, objectPath, contentType string, data []byte) (string, error) {
	if u.Client == nil {
		u.Client = &http.Client{Timeout: 30 * time.Second}
	}

	uploadURL := fmt.Sprintf("%s/storage/v1/object/%s/%s", u.BaseURL, u.Bucket, objectPath)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, uploadURL, bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+u.ServiceKey)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("x-upsert", "true")

	resp, err := u.Client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("storage upload failed with status %d", resp.StatusCode)
	}

	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", u.BaseURL, u.Bucket, objectPath), nil
}
