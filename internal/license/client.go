package license

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"time"
)

var (
	ErrKeyRejected = errors.New("license key rejected")
)

// KeyMetadata is what the license backend knows about an activated key.
type KeyMetadata struct {
	Key       string     `json:"key"`
	Valid     bool       `json:"valid"`
	ExpiresAt *time.Time `json:"expires_at"`

	SsoEnabled              bool `json:"sso_enabled"`
	AuditLogEnabled         bool `json:"audit_log_enabled"`
	CustomDomainsEnabled    bool `json:"custom_domains_enabled"`
	EmbeddingEnabled        bool `json:"embedding_enabled"`
	AnalyticsEnabled        bool `json:"analytics_enabled"`
	ApiKeysEnabled          bool `json:"api_keys_enabled"`
	ManageTemplatesEnabled  bool `json:"manage_templates_enabled"`
	CustomAppearanceEnabled bool `json:"custom_appearance_enabled"`
}

// Client talks to the external license-verification service.
type Client interface {
	Verify(ctx context.Context, key string) (*KeyMetadata, error)
	GetKey(ctx context.Context, key string) (*KeyMetadata, error)
}

type httpClient struct {
	baseURL string
	client  *http.Client
}

// NewHTTPClient builds a Client against LICENSE_API_URL (or the given
// base URL when non-empty).
func NewHTTPClient(baseURL string) Client {
	if baseURL == "" {
		baseURL = os.Getenv("LICENSE_API_URL")
	}
	if baseURL == "" {
		baseURL = "https://license.example.com"
	}
	return &httpClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *httpClient) Verify(ctx context.Context, key string) (*KeyMetadata, error) {
	body, err := json.Marshal(map[string]string{"license_key": key})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/license-keys/verify", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req)
}

func (c *httpClient) GetKey(ctx context.Context, key string) (*KeyMetadata, error) {
	endpoint := c.baseURL + "/v1/license-keys/" + url.PathEscape(key)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	return c.do(req)
}

func (c *httpClient) do(req *http.Request) (*KeyMetadata, error) {
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound, resp.StatusCode == http.StatusUnprocessableEntity:
		return nil, ErrKeyRejected
	case resp.StatusCode >= 400:
		return nil, fmt.Errorf("license service returned status %d", resp.StatusCode)
	}

	var metadata KeyMetadata
	if err := json.NewDecoder(resp.Body).Decode(&metadata); err != nil {
		return nil, err
	}
	if !metadata.Valid {
		return nil, ErrKeyRejected
	}
	return &metadata, nil
}
