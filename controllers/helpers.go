package controllers

import (
	"bytes"

	"github.com/23CSE311-SeeFood/seeFood-Backend/pkg/resp"
	"github.com/23CSE311-SeeFood/seeFood-Backend/validators"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// bindBody decodes the JSON body into req. An empty body counts as {} so
// required-field checks produce their own messages.
func bindBody(c *gin.Context, req any) bool {
	body, err := c.GetRawData()
	if err != nil {
		resp.BadRequest(c, "invalid request body")
		return false
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return true
	}
	if err := binding.JSON.BindBody(body, req); err != nil {
		resp.BadRequest(c, "invalid JSON body")
		return false
	}
	return true
}

// pathID reads an integer path parameter or writes a 400 naming it.
func pathID(c *gin.Context, param, label string) (int64, bool) {
	id, ok := validators.ParseID(c.Param(param))
	if !ok {
		resp.BadRequest(c, label+" must be an integer")
		return 0, false
	}
	return id, true
}
