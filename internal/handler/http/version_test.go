package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestGetServerVersion(t *testing.T) {
	h, mocks := newMockedHandler(t)
	mocks.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.2.3")

	rr := do(t, h, http.MethodGet, "/version", "", nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/plain", rr.Header().Get("Content-Type"))
	assert.Equal(t, "1.2.3", rr.Body.String())
}

func TestGetServerVersion_IsPublic(t *testing.T) {
	h, mocks := newMockedHandler(t)
	mocks.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.2.3")
	mocks.tokens.EXPECT().Verify(gomock.Any(), gomock.Any()).Times(0)

	rr := do(t, h, http.MethodGet, "/version", "", map[string]string{"Authorization": "Bearer junk"})

	assert.Equal(t, http.StatusOK, rr.Code)
}
