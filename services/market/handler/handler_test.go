package handler

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"auction-marketplace/internal/identity"
	model "auction-marketplace/internal/models"
	"auction-marketplace/services/market/helpers"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

var testUser = &identity.Principal{ID: 2, Name: "ana", Email: "ana@example.com", Role: model.RoleUser}

// newTestRouter builds a router whose requests run as principal p
func newTestRouter(t *testing.T, p *identity.Principal) (*gin.Engine, *MockMarketServiceInterface) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockService := NewMockMarketServiceInterface(ctrl)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		if p != nil {
			helpers.SetPrincipal(c, p)
		}
		c.Next()
	})
	return router, mockService
}

// encodeBody marshals v unless it is already a raw string
func encodeBody(t *testing.T, v any) []byte {
	t.Helper()
	if s, ok := v.(string); ok {
		return []byte(s)
	}
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return b
}

// executeRequest serves one request and decodes the JSON envelope
func executeRequest(t *testing.T, router *gin.Engine, method, path string, body any) (int, map[string]any) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		reader = bytes.NewReader(encodeBody(t, body))
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w.Code, resp
}
