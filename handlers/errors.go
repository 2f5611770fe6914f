package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"ClinicaAdmin/backend"
	"ClinicaAdmin/middlewares"
)

// respondBackendError maps an access-layer error onto the console response:
// backend-authored statuses and messages pass through verbatim, transport
// failures become a generic 502.
func respondBackendError(c *gin.Context, err error) {
	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
		c.JSON(apiErr.StatusCode, gin.H{"error": apiErr.Message})
		return
	}
	middlewares.HttpError(c, "cannot connect to the clinical backend", 502, err)
}

// respondUserError splits a service error into its validation or backend
// presentation.
func respondUserError(c *gin.Context, err error) {
	var fieldErrors validation.Errors
	if errors.As(err, &fieldErrors) {
		respondValidationError(c, err)
		return
	}
	respondBackendError(c, err)
}

// respondValidationError keeps the form open on the caller's side: field
// errors are returned inline and nothing was sent upstream.
func respondValidationError(c *gin.Context, err error) {
	var fieldErrors validation.Errors
	if errors.As(err, &fieldErrors) {
		c.JSON(400, gin.H{"error": "Validation failed", "fields": fieldErrors})
		return
	}
	c.JSON(400, gin.H{"error": "Validation failed: " + err.Error()})
}
