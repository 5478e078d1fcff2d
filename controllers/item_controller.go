// controllers/item_controller.go
package controllers

import (
	"github.com/23CSE311-SeeFood/seeFood-Backend/pkg/resp"
	"github.com/23CSE311-SeeFood/seeFood-Backend/services"
	"github.com/23CSE311-SeeFood/seeFood-Backend/validators"
	"github.com/gin-gonic/gin"
)

type ItemController struct {
	Service *services.ItemService
}

func NewItemController(s *services.ItemService) *ItemController {
	return &ItemController{Service: s}
}

// GET /canteens/:canteenId/items
func (ctl *ItemController) List(c *gin.Context) {
	canteenID, ok := pathID(c, "canteenId", "canteenId")
	if !ok {
		return
	}

	items, err := ctl.Service.List(c.Request.Context(), canteenID)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, items)
}

// POST /canteens/:canteenId/items
func (ctl *ItemController) Create(c *gin.Context) {
	canteenID, ok := pathID(c, "canteenId", "canteenId")
	if !ok {
		return
	}
	var req validators.ItemRequest
	if !bindBody(c, &req) {
		return
	}

	item, err := ctl.Service.Create(c.Request.Context(), canteenID, req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, item)
}

// PUT /canteens/:canteenId/items/:id
func (ctl *ItemController) Update(c *gin.Context) {
	canteenID, ok := pathID(c, "canteenId", "canteenId")
	if !ok {
		return
	}
	var req validators.ItemRequest
	if !bindBody(c, &req) {
		return
	}

	item, err := ctl.Service.Update(c.Request.Context(), canteenID, c.Param("id"), req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, item)
}

// DELETE /canteens/:canteenId/items/:id
func (ctl *ItemController) Delete(c *gin.Context) {
	canteenID, ok := pathID(c, "canteenId", "canteenId")
	if !ok {
		return
	}

	if err := ctl.Service.Delete(c.Request.Context(), canteenID, c.Param("id")); err != nil {
		resp.Error(c, err)
		return
	}
	resp.NoContent(c)
}
