// Package handlers implements the dashboard's HTTP endpoints.
package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"reeyo/internal/domain/entities"
	"reeyo/internal/services"
	"reeyo/internal/simulate"
)

// writeError maps domain errors onto the JSON error envelope.
//
// Go Learning Note — errors.As vs errors.Is:
// errors.Is matches a sentinel value anywhere in the wrap chain
// (ErrMutationInProgress); errors.As finds an error of a given type and
// fills the target (*entities.ValidationError) so its fields can be used.
func writeError(c *gin.Context, err error) {
	var (
		validation *entities.ValidationError
		notFound   *entities.NotFoundError
		loadErr    *entities.LoadError
	)
	switch {
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "field": validation.Field})
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrMutationInProgress):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.As(err, &loadErr), errors.Is(err, simulate.ErrInjectedFailure):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, context.DeadlineExceeded):
		c.JSON(http.StatusGatewayTimeout, gin.H{"error": "request timed out"})
	case errors.Is(err, context.Canceled):
		c.Status(499)
	default:
		log.Printf("[API] %s %s: %v", c.Request.Method, c.FullPath(), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// badRequest reports a request that failed binding.
func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}
