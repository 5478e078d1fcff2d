package middlewares

import (
	"strings"

	"github.com/23CSE311-SeeFood/seeFood-Backend/pkg/apperr"
	"github.com/23CSE311-SeeFood/seeFood-Backend/pkg/resp"
	"github.com/23CSE311-SeeFood/seeFood-Backend/utils"
	"github.com/gin-gonic/gin"
)

// TokenParser is satisfied by services.AuthService.
type TokenParser interface {
	ParseToken(token string) (*utils.Claims, error)
}

// AuthMiddleware requires a valid "Authorization: Bearer <jwt>" header and
// stores the student id and email on the context.
func AuthMiddleware(tokens TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			resp.Unauthorized(c, "missing or invalid token")
			c.Abort()
			return
		}
		tokenStr := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))

		claims, err := tokens.ParseToken(tokenStr)
		if err != nil {
			resp.Error(c, err)
			c.Abort()
			return
		}
		id, err := claims.StudentID()
		if err != nil {
			resp.Error(c, apperr.Unauthorized("invalid token"))
			c.Abort()
			return
		}

		utils.SetStudent(c, claims, id)
		c.Next()
	}
}
