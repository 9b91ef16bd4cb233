package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPCatalogClientListExperiences(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/experiences", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"id": 1, "title": "Wheel Throwing", "category": "Cerámica", "price": 45.0, "city": "Barcelona"},
			{"id": 2, "title": "Oil Painting", "category": "Pintura", "price": 60.0, "city": "Madrid"}
		]`))
	}))
	defer server.Close()

	client := NewHTTPCatalogClient(server.URL)
	experiences, err := client.ListExperiences(context.Background())
	require.NoError(t, err)
	require.Len(t, experiences, 2)
	assert.Equal(t, 1, experiences[0].ID)
	assert.Equal(t, "Wheel Throwing", experiences[0].Title)
	assert.Equal(t, "Cerámica", experiences[0].Category)
	assert.Equal(t, 45.0, experiences[0].Price)
}

func TestHTTPCatalogClientFeaturedExperiences(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/discover", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id": 7, "title": "Featured Raku", "category": "Cerámica"}]`))
	}))
	defer server.Close()

	client := NewHTTPCatalogClient(server.URL)
	experiences, err := client.FeaturedExperiences(context.Background())
	require.NoError(t, err)
	require.Len(t, experiences, 1)
	assert.Equal(t, "Featured Raku", experiences[0].Title)
}

func TestHTTPCatalogClientErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewHTTPCatalogClient(server.URL)
	_, err := client.ListExperiences(context.Background())
	assert.ErrorContains(t, err, "status 502")
}

func TestHTTPCatalogClientMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"not": "an array"}`))
	}))
	defer server.Close()

	client := NewHTTPCatalogClient(server.URL)
	_, err := client.ListExperiences(context.Background())
	assert.ErrorContains(t, err, "failed to decode")
}

func TestHTTPCatalogClientContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewHTTPCatalogClient(server.URL)
	_, err := client.ListExperiences(ctx)
	assert.Error(t, err)
}

func TestNoOpCatalogClient(t *testing.T) {
	client := NewNoOpCatalogClient()

	experiences, err := client.ListExperiences(context.Background())
	require.NoError(t, err)
	assert.Empty(t, experiences)

	featured, err := client.FeaturedExperiences(context.Background())
	require.NoError(t, err)
	assert.Empty(t, featured)
}
