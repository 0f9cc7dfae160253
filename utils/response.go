// utils/response.go
package utils

import (
	"errors"
	"log"
	"net/http"

	"eventhub-backend/apperr"

	"github.com/gin-gonic/gin"
)

func RespondWithError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// RespondWithAppError maps a service error onto the taxonomy's HTTP
// status. Internal failures keep their detail out of the response.
func RespondWithAppError(c *gin.Context, err error) {
	kind := apperr.KindOf(err)
	if kind == apperr.Internal {
		log.Printf("internal error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		RespondWithError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	message := http.StatusText(kind.HTTPStatus())
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		message = appErr.Message
	}
	RespondWithError(c, kind.HTTPStatus(), message)
}
