package utils

import "github.com/gin-gonic/gin"

const (
	ctxStudentID = "studentId"
	ctxEmail     = "email"
	ctxRequestID = "requestId"
)

func SetStudent(c *gin.Context, claims *Claims, id int64) {
	c.Set(ctxStudentID, id)
	c.Set(ctxEmail, claims.Email)
}

func CurrentStudentID(c *gin.Context) int64 {
	return c.GetInt64(ctxStudentID)
}

func CurrentEmail(c *gin.Context) string {
	return c.GetString(ctxEmail)
}

func SetRequestID(c *gin.Context, id string) {
	c.Set(ctxRequestID, id)
}

func RequestID(c *gin.Context) string {
	return c.GetString(ctxRequestID)
}
