// Package render is the shared response shaping for the console's JSON
// surface. Handlers stay free of error-mapping logic: controller state goes
// out as-is and gateway errors are translated to HTTP status codes here.
package render

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cannahub/admin-console/internal/session"
	"github.com/cannahub/admin-console/internal/upstream"
)

func State(c *gin.Context, state interface{}) {
	c.JSON(http.StatusOK, state)
}

func Created(c *gin.Context, body interface{}) {
	c.JSON(http.StatusCreated, body)
}

// Err maps the gateway's error taxonomy onto the console's responses.
// Validation failures keep their per-field messages so the form modal can
// render them inline without closing.
func Err(c *gin.Context, err error) {
	var verr *upstream.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":          "validation failed",
			"fields":         verr.Fields,
			"field_messages": verr.FieldMessages(),
		})
		return
	}

	var aerr *upstream.APIError
	if errors.As(err, &aerr) {
		c.JSON(http.StatusBadGateway, gin.H{"error": aerr.Error()})
		return
	}

	var terr *upstream.TransportError
	if errors.As(err, &terr) {
		c.JSON(http.StatusBadGateway, gin.H{"error": "upstream unreachable"})
		return
	}

	if errors.Is(err, session.ErrNoToken) || errors.Is(err, session.ErrTokenExpired) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}
