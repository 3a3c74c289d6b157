package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scholarship-tracker-go/internal/httpx"
)

func TestCatalogRecordsComplete(t *testing.T) {
	c := NewCatalog()

	records, err := c.Fetch(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, records)

	for _, rec := range records {
		assert.NotEmpty(t, rec.Title)
		assert.NotEmpty(t, rec.Description)
		assert.NotEmpty(t, rec.Source)
		assert.NotEmpty(t, rec.URL)
	}
}

func TestAPISourceParsesResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Write([]byte(`{"scholarships": [
			{"title": "Merit Scholarship", "description": "For rank holders", "apply_url": "https://example.com/apply", "amount": "Rs. 10,000", "deadline": "March 31, 2025"},
			{"title": "", "description": "missing title is dropped"}
		]}`))
	}))
	defer server.Close()

	src := NewAPI("TestPortal", server.URL, httpx.New(5*time.Second, 1))

	records, err := src.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)

	assert.Equal(t, "Merit Scholarship", records[0].Title)
	assert.Equal(t, "TestPortal", records[0].Source)
	assert.Equal(t, "https://example.com/apply", records[0].URL)
}

func TestAPISourceFallsBackToPortalURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"scholarships": [{"title": "No Link Scholarship"}]}`))
	}))
	defer server.Close()

	src := NewAPI("TestPortal", server.URL, httpx.New(5*time.Second, 1))

	records, err := src.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, server.URL, records[0].URL)
}

func TestMultiContinuesPastFailingSource(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down for maintenance", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	broken := NewAPI("BrokenPortal", server.URL, httpx.New(time.Second, 1))
	multi := NewMulti(broken, NewCatalog())

	records, err := multi.Fetch(context.Background())
	require.NoError(t, err)

	// The catalog still contributes even though the portal is down.
	assert.NotEmpty(t, records)
	for _, rec := range records {
		assert.NotEqual(t, "BrokenPortal", rec.Source)
	}
}
