// Package storage uploads files to the hosted object-storage collaborator
// and hands back the public URL clients embed (avatars, listing images,
// credential attachments).
package storage

import (
	"bytes"
	"context"
	"fmt"
	"net/http"

	"github.com/skillsprout/marketplace-service/internal/config"
)

type Client struct {
	baseURL    string
	publicURL  string
	apiKey     string
	httpClient *http.Client
}

func New(cfg *config.Config) *Client {
	return &Client{
		baseURL:   cfg.Storage.BaseURL,
		publicURL: cfg.Storage.PublicURL,
		apiKey:    cfg.Storage.APIKey,
		httpClient: &http.Client{
			Timeout: cfg.Storage.Timeout,
		},
	}
}

func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

func (c *Client) Upload(ctx context.Context, bucket, fileName, contentType string, data []byte) (string, error) {
	uploadURL := fmt.Sprintf("%s/object/%s/%s", c.baseURL, bucket, fileName)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, uploadURL, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", contentType)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // .

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return fmt.Sprintf("%s/object/public/%s/%s", c.publicURL, bucket, fileName), nil
}
