package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"bomul-market/internal/marketerrors"
	"bomul-market/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message.
// Not-found checks come first: a missing product also wraps ErrInvalidAuction.
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, marketerrors.ErrProductNotFound):
		return http.StatusNotFound, "product not found"
	case errors.Is(err, marketerrors.ErrUserNotFound):
		return http.StatusNotFound, "user not found"
	case errors.Is(err, marketerrors.ErrReportNotFound):
		return http.StatusNotFound, "report not found"
	case errors.Is(err, marketerrors.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid id or password"
	case errors.Is(err, marketerrors.ErrSelfBidForbidden):
		return http.StatusForbidden, "seller cannot instant-win own item"
	case errors.Is(err, marketerrors.ErrInvalidListing),
		errors.Is(err, marketerrors.ErrInvalidBidder),
		errors.Is(err, marketerrors.ErrInvalidReport),
		errors.Is(err, marketerrors.ErrTermsNotAccepted):
		return http.StatusBadRequest, "invalid request details"
	case errors.Is(err, marketerrors.ErrInvalidAuction):
		return http.StatusConflict, "invalid auction"
	case errors.Is(err, marketerrors.ErrBidTooLow):
		return http.StatusConflict, "bid must exceed current price"
	case errors.Is(err, marketerrors.ErrAuctionAlreadyClosed):
		return http.StatusConflict, "auction already closed"
	case errors.Is(err, marketerrors.ErrNoTicketsAvailable):
		return http.StatusConflict, "no tickets available"
	case errors.Is(err, marketerrors.ErrMonthlyLimitExceeded):
		return http.StatusTooManyRequests, "monthly ticket purchase limit exceeded"
	case errors.Is(err, marketerrors.ErrNotExpired):
		return http.StatusConflict, "auction has not reached its end time"
	case errors.Is(err, marketerrors.ErrUserExists), errors.Is(err, marketerrors.ErrDuplicateProduct):
		return http.StatusConflict, "already exists"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// RespondError maps err and writes it, using message when the domain supplied one
func RespondError(c *gin.Context, handlerName string, err error, message string, ctx map[string]any) {
	status, mapped := MapErrorToHTTP(err)
	if message == "" {
		message = mapped
	}
	utils.JSONError(c, status, err, message)

	fields := map[string]any{"handler": handlerName, "status": status, "error": err.Error()}
	for k, v := range ctx {
		fields[k] = v
	}
	if status >= http.StatusInternalServerError {
		utils.Error(handlerName+": request failed", fields)
		return
	}
	utils.Warn(handlerName+": request rejected", fields)
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
