package middlewares

import (
	"github.com/23CSE311-SeeFood/seeFood-Backend/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-ID"

// RequestID keeps an incoming X-Request-ID or makes a new one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}
		utils.SetRequestID(c, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}
