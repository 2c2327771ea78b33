package controllers

import (
	"errors"
	"strconv"

	"github.com/smartZeee/worker-side/pkg/resp"
	"github.com/smartZeee/worker-side/services"

	"github.com/gin-gonic/gin"
)

type MenuController struct {
	Menu *services.MenuService
}

func NewMenuController(menu *services.MenuService) *MenuController {
	return &MenuController{Menu: menu}
}

// GET /menu
func (ctl *MenuController) List(c *gin.Context) {
	items, err := ctl.Menu.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// GET /menu/:id
func (ctl *MenuController) Get(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	item, err := ctl.Menu.Get(uint(id))
	if err != nil {
		ctl.writeMenuError(c, err)
		return
	}
	resp.OK(c, item)
}

// POST /admin/menu
func (ctl *MenuController) Create(c *gin.Context) {
	var req services.CreateMenuItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item, err := ctl.Menu.Create(&req)
	if err != nil {
		ctl.writeMenuError(c, err)
		return
	}
	resp.Created(c, item)
}

// PATCH /admin/menu/:id
func (ctl *MenuController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req services.UpdateMenuItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item, err := ctl.Menu.Update(uint(id), &req)
	if err != nil {
		ctl.writeMenuError(c, err)
		return
	}
	resp.OK(c, item)
}

type SetStockRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// PATCH /admin/menu/:id/stock (quick stock control; 0 = sold out)
func (ctl *MenuController) SetStock(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req SetStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item, err := ctl.Menu.SetQuantity(uint(id), *req.Quantity)
	if err != nil {
		ctl.writeMenuError(c, err)
		return
	}
	resp.OK(c, item)
}

// DELETE /admin/menu/:id
func (ctl *MenuController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	if err := ctl.Menu.Delete(uint(id)); err != nil {
		ctl.writeMenuError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}

func (ctl *MenuController) writeMenuError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrMenuNotFound):
		resp.NotFound(c, err.Error())
	case errors.Is(err, services.ErrBadField):
		resp.BadRequest(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}
