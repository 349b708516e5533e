package integrationtests

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"auction-marketplace/internal/config"
	"auction-marketplace/internal/database"
	"auction-marketplace/internal/identity"
	market "auction-marketplace/internal/marketService"
	"auction-marketplace/internal/repository"
	"auction-marketplace/internal/server"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const (
	adminEmail    = "admin@example.com"
	adminPassword = "admin-pass"
)

func init() {
	gin.SetMode(gin.TestMode)
	identity.SetHashCost(bcrypt.MinCost)
}

// TestApp bundles a router wired to a private in-memory database
type TestApp struct {
	Router     *gin.Engine
	Repo       *repository.GormRepo
	AdminToken string
}

// SetupTestRouter builds the full application stack over SQLite and logs in
// the bootstrap administrator.
func SetupTestRouter(t *testing.T) *TestApp {
	t.Helper()

	db, err := database.Open(config.DatabaseConfig{
		Driver: database.DriverSQLite,
		URL:    "file:" + uuid.NewString() + "?mode=memory&cache=shared",
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })

	repo := repository.NewGormRepo(db)
	identitySvc := identity.NewService(repo, "integration-secret", time.Hour)
	require.NoError(t, identitySvc.EnsureAdmin(context.Background(), "admin", adminEmail, adminPassword))

	router := server.SetupRouter(market.NewMarketService(repo, market.DefaultPaymentMethod), identitySvc, []string{"*"})

	app := &TestApp{Router: router, Repo: repo}
	app.AdminToken = app.Login(t, adminEmail, adminPassword)
	return app
}

// Login returns an access token for the given credentials
func (a *TestApp) Login(t *testing.T, email, password string) string {
	t.Helper()
	resp, w := ExecuteRequestAndParse(t, a.Router, http.MethodPost, "/auth/login", "", map[string]any{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	return resp["access_token"].(string)
}

// RegisterUser creates a regular account and returns its id and token
func (a *TestApp) RegisterUser(t *testing.T, name string) (uint, string) {
	t.Helper()
	email := fmt.Sprintf("%s-%s@example.com", name, uuid.NewString()[:8])
	resp, w := ExecuteRequestAndParse(t, a.Router, http.MethodPost, "/auth/register", "", map[string]any{
		"name":     name,
		"email":    email,
		"password": "secret1",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return uint(resp["id"].(float64)), a.Login(t, email, "secret1")
}

// ExecuteRequest executes an HTTP request and returns the response recorder.
func ExecuteRequest(t *testing.T, router *gin.Engine, method, url, token string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// ExecuteRequestAndParse executes an HTTP request on the given router and
// returns the "data" payload of a successful response, or the whole envelope
// of a failed one.
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url, token string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()
	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := ExecuteRequest(t, router, method, url, token, reqBody)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
		if w.Code < 300 {
			if data, ok := resp["data"].(map[string]any); ok {
				resp = data
			}
		}
	}

	return resp, w
}

// ExecuteListRequest executes a GET on a collection and returns its data slice
func ExecuteListRequest(t *testing.T, router *gin.Engine, url, token string) []any {
	t.Helper()
	w := ExecuteRequest(t, router, http.MethodGet, url, token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Data []any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Data
}

// SeedItem creates a category and an item priced at initPrice
func (a *TestApp) SeedItem(t *testing.T, name string, initPrice float64) uint {
	t.Helper()
	category, w := ExecuteRequestAndParse(t, a.Router, http.MethodPost, "/admin/categories", a.AdminToken, map[string]any{
		"name": "cat-" + uuid.NewString()[:8],
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	item, w := ExecuteRequestAndParse(t, a.Router, http.MethodPost, "/items", a.AdminToken, map[string]any{
		"name":        name,
		"description": "seeded item",
		"init_price":  initPrice,
		"category_id": category["id"],
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return uint(item["id"].(float64))
}
