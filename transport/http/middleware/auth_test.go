package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"viagem/config"
	"viagem/infras/jwt"
	"viagem/infras/otel/mocks"
	"viagem/shared/constant"
	"viagem/transport/http/middleware"
)

func newAuthMiddleware(t *testing.T) (middleware.AuthRole, jwt.JWT, *config.Config) {
	t.Helper()

	cfg := &config.Config{}
	cfg.App.Name = "viagem-test"
	cfg.App.LoginURL = "https://id.example.com/login"
	cfg.JWT.AccessSecret = "test-secret"
	cfg.JWT.AccessExpireMin = 15

	jwtService := jwt.New(cfg)

	return middleware.NewAuthRoleMiddleware(jwtService, mocks.NewOtel(), nil, cfg), jwtService, cfg
}

func TestAuthMiddleware_MissingToken_RedirectsToLogin(t *testing.T) {
	authRole, _, _ := newAuthMiddleware(t)

	nextCalled := false
	handler := authRole.Auth(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		nextCalled = true
	}))

	request := httptest.NewRequest(http.MethodGet, "/v1/bookings/mybookings", nil)
	recorder := httptest.NewRecorder()

	handler.ServeHTTP(recorder, request)

	assert.False(t, nextCalled, "handler must not run without authentication")
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	var body struct {
		Error    string `json:"error"`
		LoginURL string `json:"login_url"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))

	assert.NotEmpty(t, body.Error)
	// The login URL carries the requested path so the provider can send the
	// user back after signing in.
	assert.Equal(t, "https://id.example.com/login?redirect=%2Fv1%2Fbookings%2Fmybookings", body.LoginURL)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	authRole, _, _ := newAuthMiddleware(t)

	tests := []struct {
		name   string
		header string
	}{
		{name: "malformed header", header: "not-a-bearer-token"},
		{name: "garbage token", header: "Bearer garbage"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nextCalled := false
			handler := authRole.Auth(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
				nextCalled = true
			}))

			request := httptest.NewRequest(http.MethodGet, "/v1/bookings/", nil)
			request.Header.Set(constant.RequestHeaderAuthorization, tt.header)
			recorder := httptest.NewRecorder()

			handler.ServeHTTP(recorder, request)

			assert.False(t, nextCalled)
			assert.Equal(t, http.StatusUnauthorized, recorder.Code)
			assert.Contains(t, recorder.Body.String(), "login_url")
		})
	}
}

func TestAuthMiddleware_ValidToken_PopulatesContext(t *testing.T) {
	authRole, jwtService, _ := newAuthMiddleware(t)

	token, err := jwtService.GenerateToken("test-user-id", "user@example.com", "admin")
	require.NoError(t, err)

	var gotUserID, gotRole string
	handler := authRole.Auth(http.HandlerFunc(func(_ http.ResponseWriter, request *http.Request) {
		gotUserID, _ = request.Context().Value(constant.ContextKeyUserID).(string)
		gotRole, _ = request.Context().Value(constant.ContextKeyUserRole).(string)
	}))

	request := httptest.NewRequest(http.MethodGet, "/v1/bookings/", nil)
	request.Header.Set(constant.RequestHeaderAuthorization, "Bearer "+token)
	recorder := httptest.NewRecorder()

	handler.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "test-user-id", gotUserID)
	assert.Equal(t, "admin", gotRole)
}

func TestAuthMiddleware_NoLoginURLConfigured(t *testing.T) {
	cfg := &config.Config{}
	cfg.JWT.AccessSecret = "test-secret"

	authRole := middleware.NewAuthRoleMiddleware(jwt.New(cfg), mocks.NewOtel(), nil, cfg)

	handler := authRole.Auth(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

	request := httptest.NewRequest(http.MethodGet, "/v1/bookings/", nil)
	recorder := httptest.NewRecorder()

	handler.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.NotContains(t, recorder.Body.String(), "login_url")
}
