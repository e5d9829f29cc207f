package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/kanso-insights/internal/core/domain"
)

var validationErrors = []error{
	domain.ErrEventNameEmpty,
	domain.ErrEventNameTooLong,
	domain.ErrTimestampRequired,
	domain.ErrInvalidCompliance,
	domain.ErrNotesTooLong,
	domain.ErrInvalidRange,
}

// respondError maps service errors onto HTTP statuses. Anything unrecognised is
// logged and hidden behind a generic 500.
func respondError(c *gin.Context, log *slog.Logger, err error) {
	var parseErr *domain.ParseError
	if errors.As(err, &parseErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": parseErr.Error()})
		return
	}

	for _, target := range validationErrors {
		if errors.Is(err, target) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	switch {
	case errors.Is(err, domain.ErrEventNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrEventConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		log.Error("request failed", "method", c.Request.Method, "path", c.FullPath(), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
