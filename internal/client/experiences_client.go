package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/jpdelos/creative-marketplace/internal/domain"
)

// CatalogClient fetches the shared experience catalog from the external
// Experiences API. The storefront only depends on each item exposing a
// category string; everything else passes through.
type CatalogClient interface {
	// ListExperiences fetches the full catalog.
	ListExperiences(ctx context.Context) ([]domain.Experience, error)
	// FeaturedExperiences fetches the curated discover selection.
	FeaturedExperiences(ctx context.Context) ([]domain.Experience, error)
}

// HTTPCatalogClient implements CatalogClient against the Experiences API.
type HTTPCatalogClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewHTTPCatalogClient creates a new HTTP catalog client.
func NewHTTPCatalogClient(baseURL string) *HTTPCatalogClient {
	return &HTTPCatalogClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// ListExperiences fetches the full catalog from GET {base}/experiences.
func (c *HTTPCatalogClient) ListExperiences(ctx context.Context) ([]domain.Experience, error) {
	return c.fetch(ctx, "/experiences")
}

// FeaturedExperiences fetches the curated selection from GET {base}/discover.
func (c *HTTPCatalogClient) FeaturedExperiences(ctx context.Context) ([]domain.Experience, error) {
	return c.fetch(ctx, "/discover")
}

func (c *HTTPCatalogClient) fetch(ctx context.Context, path string) ([]domain.Experience, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch experiences: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("experiences API returned status %d", resp.StatusCode)
	}

	var experiences []domain.Experience
	if err := json.NewDecoder(resp.Body).Decode(&experiences); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return experiences, nil
}

// NoOpCatalogClient is a no-op implementation for testing or when the
// Experiences API is unavailable.
type NoOpCatalogClient struct{}

// NewNoOpCatalogClient creates a new no-op catalog client.
func NewNoOpCatalogClient() *NoOpCatalogClient {
	return &NoOpCatalogClient{}
}

// ListExperiences returns an empty catalog.
func (c *NoOpCatalogClient) ListExperiences(ctx context.Context) ([]domain.Experience, error) {
	return []domain.Experience{}, nil
}

// FeaturedExperiences returns an empty selection.
func (c *NoOpCatalogClient) FeaturedExperiences(ctx context.Context) ([]domain.Experience, error) {
	return []domain.Experience{}, nil
}
