package server

import (
	"context"
	"net/http"
	"strings"
	"time"

	"auction-marketplace/internal/identity"
	"auction-marketplace/services/market/helpers"
	"auction-marketplace/utils"

	"github.com/gin-gonic/gin"
)

const requestIDHeader = "X-Request-ID"

// TokenVerifier resolves a bearer token to the principal behind it
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*identity.Principal, error)
}

// RequestIDMiddleware echoes the caller's request id or assigns a new one
func RequestIDMiddleware(c *gin.Context) {
	id := c.GetHeader(requestIDHeader)
	if id == "" || !utils.IsID(id) {
		id = utils.GenerateID()
	}
	c.Set("request_id", id)
	c.Header(requestIDHeader, id)
	c.Next()
}

// RequestLoggerMiddleware logs incoming requests with timing
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next() // process request

	utils.Info("HTTP Request", map[string]any{
		"method":     c.Request.Method,
		"path":       c.Request.URL.Path,
		"status":     c.Writer.Status(),
		"latency":    time.Since(start).String(),
		"request_id": c.GetString("request_id"),
	})
}

// AuthMiddleware attaches the bearer token's principal to the request.
// Requests without a token continue anonymously and are rejected by the
// services that need a caller; a token that fails verification is rejected here.
func AuthMiddleware(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.Next()
			return
		}

		scheme, token, found := strings.Cut(header, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			utils.JSONError(c, http.StatusUnauthorized, "authorization header must be 'Bearer <token>'", "not authenticated")
			return
		}

		p, err := verifier.Verify(c.Request.Context(), strings.TrimSpace(token))
		if err != nil {
			helpers.RespondError(c, "AuthMiddleware", err, map[string]any{"path": c.Request.URL.Path})
			return
		}

		helpers.SetPrincipal(c, p)
		c.Next()
	}
}
