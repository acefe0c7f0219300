//go:build integration

package integration

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"pet-care-api/internal/config"
	"pet-care-api/internal/handler"
	"pet-care-api/internal/middleware"
	"pet-care-api/internal/repository"
	"pet-care-api/internal/router"
	"pet-care-api/internal/service"
)

// newTestServer wires the full router against in-memory stores.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	authService, err := service.NewAuthService("test-secret", time.Hour, repository.NewMemoryUserRepository())
	require.NoError(t, err)
	authMiddleware := middleware.NewAuthMiddleware(authService)
	authHandler := handler.NewAuthHandler(authService)

	petService := service.NewPetService(repository.NewMemoryPetRepository())
	petHandler := handler.NewPetHandler(petService)

	recordService := service.NewRecordService(repository.NewMemoryRecordRepository())
	serviceHandler := handler.NewServiceHandler(recordService)
	dashboardHandler := handler.NewDashboardHandler(recordService)

	cfg := &config.Config{
		ServerPort:       "8080",
		RequestTimeout:   30 * time.Second,
		JWTSecret:        "test-secret",
		JWTTTL:           time.Hour,
		CORSOrigins:      []string{"*"},
		RateLimitRPM:     0,
		AuthRateLimitRPM: 0,
	}

	server := httptest.NewServer(router.New(cfg, authMiddleware, authHandler, petHandler, serviceHandler, dashboardHandler))
	t.Cleanup(server.Close)

	return server
}

// registerUser creates an account and returns its session token.
func registerUser(t *testing.T, server *httptest.Server, username string, email string) string {
	t.Helper()

	resp := doJSON(t, http.MethodPost, server.URL+"/api/v1/auth/register", map[string]string{
		"username": username,
		"email":    email,
		"password": "secret123",
	}, "")
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var parsed struct {
		Success bool `json:"success"`
		Data    struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
	require.True(t, parsed.Success)
	require.NotEmpty(t, parsed.Data.Token)

	return parsed.Data.Token
}

func doJSON(t *testing.T, method string, url string, payload any, token string) *http.Response {
	t.Helper()

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, url, body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func decodeData(t *testing.T, resp *http.Response, out any) {
	t.Helper()

	var envelope struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	require.True(t, envelope.Success)
	require.NoError(t, json.Unmarshal(envelope.Data, out))
}
