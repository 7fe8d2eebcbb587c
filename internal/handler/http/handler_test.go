package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-accounts/internal/logger"
	"github.com/MKhiriev/go-accounts/internal/metrics"
	"github.com/MKhiriev/go-accounts/internal/mock"
	"github.com/MKhiriev/go-accounts/internal/service"
	"github.com/MKhiriev/go-accounts/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

type handlerMocks struct {
	accounts *mock.MockAccountService
	tokens   *mock.MockTokenService
	appInfo  *mock.MockAppInfoService
}

// newMockedHandler builds a Handler whose services are gomock mocks.
func newMockedHandler(t *testing.T) (*Handler, handlerMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mocks := handlerMocks{
		accounts: mock.NewMockAccountService(ctrl),
		tokens:   mock.NewMockTokenService(ctrl),
		appInfo:  mock.NewMockAppInfoService(ctrl),
	}
	svcs := &service.Services{
		AccountService: mocks.accounts,
		TokenService:   mocks.tokens,
		AppInfoService: mocks.appInfo,
	}
	return NewHandler(svcs, metrics.New(), 0, logger.Nop()), mocks
}

// do sends a request through the full router.
func do(t *testing.T, h *Handler, method, target, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, req)
	return rr
}

// serve sends a request through an already built router.
func serve(router http.Handler, method, target string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

var zeroUser = models.User{}

func decodeBody[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), rr.Body.String())
	return v
}

// authorized returns the header set of a caller whose token verifies.
func authorized(mocks handlerMocks) map[string]string {
	mocks.tokens.EXPECT().Verify(gomock.Any(), "good-token").
		Return(models.Claims{UserID: 1, Name: "alice"}, nil).AnyTimes()
	return map[string]string{"Authorization": "Bearer good-token"}
}

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler_StoresDependencies(t *testing.T) {
	svc := &service.Services{}
	m := metrics.New()
	log := logger.Nop()

	h := NewHandler(svc, m, 0, log)

	require.NotNil(t, h)
	assert.Equal(t, svc, h.services)
	assert.Equal(t, m, h.metrics)
	assert.Equal(t, log, h.logger)
	assert.Equal(t, DefaultRequestTimeout, h.requestTimeout)
}

func TestNewHandler_WithoutMetrics(t *testing.T) {
	h, mocks := newMockedHandler(t)
	h.metrics = nil
	mocks.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.0.0")

	assert.Equal(t, http.StatusNotFound, do(t, h, http.MethodGet, "/metrics", "", nil).Code)
	assert.Equal(t, http.StatusOK, do(t, h, http.MethodGet, "/version", "", nil).Code)
}

func TestInit_RegistersRoutes(t *testing.T) {
	h, _ := newMockedHandler(t)
	router := h.Init()

	registered := map[string][]string{}
	for _, route := range router.Routes() {
		for method := range route.Handlers {
			registered[route.Pattern] = append(registered[route.Pattern], method)
		}
	}

	want := map[string][]string{
		"/users/create":      {http.MethodPost},
		"/users/login":       {http.MethodPost},
		"/version":           {http.MethodGet},
		"/metrics":           {http.MethodGet},
		"/users":             {http.MethodGet},
		"/users/{id}":        {http.MethodGet, http.MethodPut},
		"/users/{id}/active": {http.MethodPatch},
	}
	for pattern, methods := range want {
		assert.ElementsMatch(t, methods, registered[pattern], pattern)
	}
}
