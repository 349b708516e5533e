package helpers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"auction-marketplace/internal/marketerrors"
	"auction-marketplace/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr.Error(), "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, marketerrors.ErrUnauthenticated):
		return http.StatusUnauthorized, "not authenticated"
	case errors.Is(err, marketerrors.ErrForbidden):
		return http.StatusUnauthorized, "not authorized for this operation"
	case errors.Is(err, marketerrors.ErrInvalidCredentials):
		return http.StatusUnauthorized, "incorrect email or password"
	case errors.Is(err, marketerrors.ErrNotFound):
		return http.StatusNotFound, "resource not found"
	case errors.Is(err, marketerrors.ErrConflict):
		return http.StatusConflict, "resource already exists"
	case errors.Is(err, marketerrors.ErrInvalidTransition):
		return http.StatusConflict, "invalid auction state transition"
	case errors.Is(err, marketerrors.ErrAuctionClosed):
		return http.StatusConflict, "auction is finished"
	case errors.Is(err, marketerrors.ErrInvalidDates):
		return http.StatusBadRequest, "invalid auction dates"
	case errors.Is(err, marketerrors.ErrInvalidState):
		return http.StatusBadRequest, "invalid auction state"
	case errors.Is(err, marketerrors.ErrInvalidBid):
		return http.StatusBadRequest, "invalid bid details"
	case errors.Is(err, marketerrors.ErrInvalidPrice):
		return http.StatusBadRequest, "invalid price"
	case errors.Is(err, marketerrors.ErrInvalidInput):
		return http.StatusBadRequest, "invalid input"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// RespondError writes the mapped error and logs it. Server errors never
// expose their cause to the client.
func RespondError(c *gin.Context, handlerName string, err error, fields map[string]any) {
	status, message := MapErrorToHTTP(err)

	detail := err.Error()
	if status >= http.StatusInternalServerError {
		detail = message
	}
	utils.JSONError(c, status, detail, message)

	logFields := map[string]any{"handler": handlerName, "status": status, "error": err.Error()}
	for k, v := range fields {
		logFields[k] = v
	}
	if status >= http.StatusInternalServerError {
		utils.Error(handlerName+": "+message, logFields)
		return
	}
	utils.Warn(handlerName+": "+message, logFields)
}

// ParseID reads the :id path parameter, answering 400 when it is not a
// positive integer.
func ParseID(c *gin.Context, handlerName string) (uint, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 0)
	if err != nil || id == 0 {
		utils.JSONError(c, http.StatusBadRequest, fmt.Sprintf("invalid id %q", raw), "invalid id")
		utils.Warn(handlerName+": invalid id", map[string]any{"id": raw})
		return 0, false
	}
	return uint(id), true
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
