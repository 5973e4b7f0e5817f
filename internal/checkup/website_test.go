package checkup

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWebsiteChecks_HealthyHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	p := NewProbe(5 * time.Second)
	results := RunAll(context.Background(), WebsiteChecks(p, srv.URL))
	for _, r := range results {
		assert.True(t, r.Pass, "%s: %s", r.Name, r.Detail)
	}

	conn, ok := resultByName(results, "connectivity")
	require.True(t, ok)
	assert.Contains(t, conn.Detail, "HTTP 200")

	tls, ok := resultByName(results, "tls certificate")
	require.True(t, ok)
	assert.Contains(t, tls.Detail, "skipped")
}

func TestWebsiteChecks_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	p := NewProbe(5 * time.Second)
	results := RunAll(context.Background(), WebsiteChecks(p, srv.URL))
	r, ok := resultByName(results, "connectivity")
	require.True(t, ok)
	assert.False(t, r.Pass)
	assert.Contains(t, r.Detail, "HTTP 500")
}

func TestWebsiteChecks_TLSCertificate(t *testing.T) {
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	p := NewProbe(5 * time.Second).WithHTTPClient(srv.Client())
	results := RunAll(context.Background(), WebsiteChecks(p, srv.URL))
	r, ok := resultByName(results, "tls certificate")
	require.True(t, ok)
	assert.True(t, r.Pass, r.Detail)
	assert.Contains(t, r.Detail, "valid until")
}

func TestWebsiteChecks_Unreachable(t *testing.T) {
	p := NewProbe(time.Second)
	results := RunAll(context.Background(), WebsiteChecks(p, "http://127.0.0.1:1/"))
	r, ok := resultByName(results, "connectivity")
	require.True(t, ok)
	assert.False(t, r.Pass)
}
