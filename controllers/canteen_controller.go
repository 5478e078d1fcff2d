// controllers/canteen_controller.go
package controllers

import (
	"github.com/23CSE311-SeeFood/seeFood-Backend/pkg/resp"
	"github.com/23CSE311-SeeFood/seeFood-Backend/services"
	"github.com/23CSE311-SeeFood/seeFood-Backend/validators"
	"github.com/gin-gonic/gin"
)

type CanteenController struct {
	Service *services.CanteenService
}

func NewCanteenController(s *services.CanteenService) *CanteenController {
	return &CanteenController{Service: s}
}

// GET /canteens
func (ctl *CanteenController) List(c *gin.Context) {
	canteens, err := ctl.Service.List(c.Request.Context())
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, canteens)
}

// POST /canteens
func (ctl *CanteenController) Create(c *gin.Context) {
	var req validators.CanteenRequest
	if !bindBody(c, &req) {
		return
	}

	canteen, err := ctl.Service.Create(c.Request.Context(), req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, canteen)
}

// DELETE /canteens/:canteenId
func (ctl *CanteenController) Delete(c *gin.Context) {
	id, ok := pathID(c, "canteenId", "id")
	if !ok {
		return
	}

	if err := ctl.Service.Delete(c.Request.Context(), id); err != nil {
		resp.Error(c, err)
		return
	}
	resp.NoContent(c)
}
