// Package httpapi renders service results onto the wire.
package httpapi

import (
	"errors"
	"net/http"

	"github.com/bookclub/bookclub-api/internal/service"
	"github.com/bookclub/bookclub-api/pkg/logger"
	"github.com/gin-gonic/gin"
)

// ErrorResponse is the body of every non-2XX response.
type ErrorResponse struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
}

// Fail renders err with the status implied by the service taxonomy: user
// errors become 400 with their message, everything else a generic 500. The
// underlying cause of internal errors is logged, never sent.
func Fail(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	message := "An internal error occurred."
	var svcErr *service.Error
	if errors.As(err, &svcErr) && svcErr.IsUser() {
		status = http.StatusBadRequest
		message = svcErr.Error()
	}
	if status == http.StatusInternalServerError {
		cause := errors.Unwrap(err)
		if cause == nil {
			cause = err
		}
		logger.Errorf("%s %s: %v", c.Request.Method, c.Request.URL.Path, cause)
	}
	c.JSON(status, ErrorResponse{StatusCode: status, Message: message})
}

// BadRequest renders a 400 for malformed request bodies, before any service
// call is made.
func BadRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, ErrorResponse{StatusCode: http.StatusBadRequest, Message: err.Error()})
}
