package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"book-library-api/internal/models"
	"book-library-api/internal/repositories"
	"book-library-api/internal/services"
	"book-library-api/pkg/lambda"
)

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// isValidationError checks if an error is a client input fault
func isValidationError(err error) bool {
	var validationErrs models.ValidationErrors
	var validationErr *models.ValidationError
	return services.IsInvalidInput(err) ||
		errors.As(err, &validationErrs) ||
		errors.As(err, &validationErr)
}

// isNotFoundError checks if an error reports a missing record
func isNotFoundError(err error) bool {
	return repositories.IsNotFound(err)
}

// isIntegrityError checks if an error reports a malformed stored record
func isIntegrityError(err error) bool {
	return services.IsDataIntegrity(err)
}

// writeResponse renders a handler outcome through gin. Errors that a Lambda trigger would
// receive as invocation failures become 500s on the local server.
func writeResponse(c *gin.Context, resp *lambda.Response, err error) {
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		return
	}

	for key, value := range resp.Headers {
		if key == "Content-Type" {
			continue
		}
		c.Header(key, value)
	}
	c.Data(resp.StatusCode, resp.Headers["Content-Type"], resp.Body)
}
