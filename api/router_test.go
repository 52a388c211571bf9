package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmoranv/astrbot-plugin-zerochan/config"
	"github.com/vmoranv/astrbot-plugin-zerochan/service"
	"github.com/vmoranv/astrbot-plugin-zerochan/zerochan"
)

func setupTestRouter(t *testing.T, authSecret string) http.Handler {
	t.Helper()

	config.AppConfig = &config.Config{
		Port:              "8888",
		BaseURL:           "http://127.0.0.1:0",
		Username:          "test",
		RequestTimeout:    time.Second,
		DefaultLimit:      3,
		MaxReplyLimit:     10,
		AuthSecret:        authSecret,
		EnableCompression: false,
	}
	t.Cleanup(func() { config.AppConfig = nil })

	return SetupRouter(service.NewSearchServiceWithClient(&zerochan.Client{
		BaseURL: "http://127.0.0.1:0",
		Timeout: time.Second,
	}))
}

func TestHealthEndpoint(t *testing.T) {
	router := setupTestRouter(t, "")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestSearchHandlerRequiresTag(t *testing.T) {
	router := setupTestRouter(t, "")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/search", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestEntryHandlerRejectsBadID(t *testing.T) {
	router := setupTestRouter(t, "")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/entry/abc", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMessageEndpointHelp(t *testing.T) {
	router := setupTestRouter(t, "")

	body := strings.NewReader(`{"message":"/zchelp"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/message", body)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Zerochan")
}

func TestAuthMiddlewareRejectsMissingToken(t *testing.T) {
	router := setupTestRouter(t, "testsecret")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/search?tag=x", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareRejectsBadToken(t *testing.T) {
	router := setupTestRouter(t, "testsecret")

	req := httptest.NewRequest(http.MethodGet, "/api/search?tag=x", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareAcceptsValidToken(t *testing.T) {
	router := setupTestRouter(t, "testsecret")

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte("testsecret"))
	require.NoError(t, err)

	// 用不触达上游的命令接口验证令牌被接受
	body := strings.NewReader(`{"message":"/zchelp"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/message", body)
	req.Header.Set("Authorization", "Bearer "+signed)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
