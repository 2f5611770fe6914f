package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ClinicaAdmin/backend"
	"ClinicaAdmin/cache"
	"ClinicaAdmin/services"
	"ClinicaAdmin/session"
)

func newLoginRouter(t *testing.T, backendURL string) *gin.Engine {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	c, err := cache.NewCache(client)
	require.NoError(t, err)
	store := session.NewStore(c)
	service := services.NewAuthService(backend.NewClient(backendURL), store, c)
	handler := NewAuthHandler(service)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/auth/login", handler.Login)
	return router
}

func postLogin(router *gin.Engine) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/login",
		strings.NewReader(`{"username":"areyes","password":"s3cret"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestLogin_CredentialRejectionIs401(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"bad credentials"}`))
	}))
	t.Cleanup(upstream.Close)

	w := postLogin(newLoginRouter(t, upstream.URL))

	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Invalid username or password"}`, w.Body.String())
}

func TestLogin_UnreachableBackendIs502(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	upstream.Close() // connection refused from here on

	w := postLogin(newLoginRouter(t, upstream.URL))

	require.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "cannot connect to the clinical backend")
}

func TestLogin_UpstreamFailureKeepsItsStatus(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"error":"maintenance window"}`))
	}))
	t.Cleanup(upstream.Close)

	w := postLogin(newLoginRouter(t, upstream.URL))

	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.JSONEq(t, `{"error":"maintenance window"}`, w.Body.String())
}

func TestLogin_SuccessReturnsConsoleToken(t *testing.T) {
	t.Setenv("SYMMETRIC_KEY", "0123456789abcdef0123456789abcdef")

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"token":"backend-token","user":{"id":7,"username":"areyes","roleId":100}}`))
	}))
	t.Cleanup(upstream.Close)

	w := postLogin(newLoginRouter(t, upstream.URL))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"sessionToken"`)
	assert.Contains(t, w.Body.String(), `"username":"areyes"`)
	assert.NotContains(t, w.Body.String(), "backend-token", "the backend bearer token must stay server-side")
}
