package handlers

import (
	"fmt"
	"net/http"

	"github.com/chatappointment/services/internal/models"
	"github.com/gin-gonic/gin"
)

// NotFound answers every request that matched no route.
func NotFound(c *gin.Context) {
	respondError(c, http.StatusNotFound,
		fmt.Sprintf("Cannot %s %s", c.Request.Method, c.Request.URL.Path))
}

func respondError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, models.ErrorResponse{
		StatusCode: status,
		Message:    message,
		Error:      http.StatusText(status),
	})
}
