package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_IndependentRegistries(t *testing.T) {
	first := New()
	second := New()

	first.RecordLoginAttempt(ResultSuccess)

	assert.Equal(t, 1.0, testutil.ToFloat64(first.LoginAttemptsTotal.WithLabelValues(ResultSuccess)))
	assert.Equal(t, 0.0, testutil.ToFloat64(second.LoginAttemptsTotal.WithLabelValues(ResultSuccess)))
}

func TestRecordRegistration(t *testing.T) {
	m := New()

	m.RecordRegistration(ResultSuccess)
	m.RecordRegistration(ResultConflict)
	m.RecordRegistration(ResultConflict)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.RegistrationsTotal.WithLabelValues(ResultSuccess)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.RegistrationsTotal.WithLabelValues(ResultConflict)))
}

func TestObserveHTTPRequest(t *testing.T) {
	m := New()

	m.ObserveHTTPRequest(http.MethodGet, "/users/{id}", http.StatusOK, 15*time.Millisecond)
	m.ObserveHTTPRequest(http.MethodGet, "/users/{id}", http.StatusNotFound, time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/users/{id}", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/users/{id}", "404")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.HTTPRequestDuration))
}

func TestHandler_ExposesMetrics(t *testing.T) {
	m := New()
	m.RecordLoginAttempt(ResultInvalidCredentials)

	srv := httptest.NewServer(m.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `accounts_login_attempts_total{result="invalid_credentials"} 1`)
	assert.Contains(t, string(body), "go_goroutines")
}
