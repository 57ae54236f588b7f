package routes

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"kubera-backend/internal/config"
	"kubera-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		Environment:           "test",
		JWTSecret:             "routes-test-signing-key-0123456789abcdef",
		AccessTokenTTLMinutes: 30,
		AppDomain:             "kubera.app",
		InvitationTTLHours:    72,
		SessionRetentionDays:  30,
	}
}

// The router is exercised only on paths that never reach the database.
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	svc, err := NewServices(nil, testConfig(), nil)
	require.NoError(t, err)
	return SetupRoutes(nil, testConfig(), svc, nil)
}

func TestNewServicesRejectsWeakSecret(t *testing.T) {
	cfg := testConfig()
	cfg.JWTSecret = "short"

	_, err := NewServices(nil, cfg, nil)
	assert.Error(t, err)
}

func TestLiveness(t *testing.T) {
	router := newTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health/live", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"alive":true`)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	router := newTestRouter(t)

	for _, path := range []string{"/api/v1/auth/me", "/api/v1/sessions", "/api/v1/users", "/api/v1/tags", "/api/v1/audit-logs"} {
		t.Run(path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, path, nil)
			req.Host = "acme.kubera.app"
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestForgedTokenRejected(t *testing.T) {
	httpSuite := &testutils.HTTPTestSuite{Router: newTestRouter(t)}
	headers := testutils.BearerHeader("eyJhbGciOiJub25lIn0.eyJzdWIiOiJuaWEifQ.")
	headers["Host"] = "acme.kubera.app"

	w := httpSuite.MakeRequestWithHeaders(http.MethodGet, "/api/v1/auth/me", nil, headers)

	testutils.AssertErrorResponse(t, w, http.StatusUnauthorized, "")
}

func TestLoginOnPublicHost(t *testing.T) {
	router := newTestRouter(t)

	body := bytes.NewBufferString(`{"email":"nia@acme.test","password":"supersecret"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", body)
	req.Header.Set("Content-Type", "application/json")
	req.Host = "kubera.app"
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "subdomain")
}

func TestUnknownRoute(t *testing.T) {
	router := newTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/organizations", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestClientIPHonoursTrustedProxies(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := testConfig()
	svc, err := NewServices(nil, cfg, nil)
	require.NoError(t, err)

	clientIP := func(trusted []string, remote string) string {
		cfg.TrustedProxies = trusted
		router := SetupRoutes(nil, cfg, svc, nil)
		router.GET("/ip", func(c *gin.Context) { c.String(http.StatusOK, c.ClientIP()) })

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ip", nil)
		req.RemoteAddr = remote
		req.Header.Set("X-Forwarded-For", "1.2.3.4")
		router.ServeHTTP(w, req)
		return w.Body.String()
	}

	assert.Equal(t, "198.51.100.20", clientIP(nil, "198.51.100.20:4000"))
	assert.Equal(t, "198.51.100.20", clientIP([]string{"127.0.0.1"}, "198.51.100.20:4000"))
	assert.Equal(t, "1.2.3.4", clientIP([]string{"127.0.0.1"}, "127.0.0.1:4000"))
}
