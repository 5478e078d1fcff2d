package resp

import (
	"net/http"

	"github.com/23CSE311-SeeFood/seeFood-Backend/pkg/apperr"
	"github.com/gin-gonic/gin"
)

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}

func Unauthorized(c *gin.Context, msg string) {
	c.JSON(http.StatusUnauthorized, gin.H{"error": msg})
}

func NotFound(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, gin.H{"error": msg})
}

// Error writes err as {"error": msg}. Only the apperr message reaches the
// client; the full error goes to c.Errors for the request logger.
func Error(c *gin.Context, err error) {
	_ = c.Error(err)
	if e, ok := apperr.As(err); ok {
		c.JSON(e.Status(), gin.H{"error": e.Message})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
