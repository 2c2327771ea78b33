package controllers

import (
	"errors"
	"strconv"

	"github.com/smartZeee/worker-side/entity"
	"github.com/smartZeee/worker-side/pkg/resp"
	"github.com/smartZeee/worker-side/services"
	"github.com/smartZeee/worker-side/utils"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	Orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{Orders: orders}
}

// POST /orders รับ event การสั่งอาหารจากต้นทาง
func (ctl *OrderController) Place(c *gin.Context) {
	var req services.PlaceOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := ctl.Orders.Place(&req)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, order)
}

// GET /orders (admin) ?active=1 เอาเฉพาะที่ยังไม่จบ
func (ctl *OrderController) List(c *gin.Context) {
	var (
		orders []entity.Order
		err    error
	)
	if c.Query("active") == "1" {
		orders, err = ctl.Orders.ListActive()
	} else {
		orders, err = ctl.Orders.List()
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": orders})
}

// GET /kitchen/orders ?mine=1 เอาเฉพาะออเดอร์ของตัวเอง
func (ctl *OrderController) ListForKitchen(c *gin.Context) {
	var (
		orders []entity.Order
		err    error
	)
	if c.Query("mine") == "1" {
		orders, err = ctl.Orders.ListForWorker(utils.CurrentEmployeeID(c))
	} else {
		orders, err = ctl.Orders.ListActive()
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": orders})
}

// GET /orders/:id
func (ctl *OrderController) Detail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	order, err := ctl.Orders.Get(uint(id))
	if err != nil {
		ctl.writeOrderError(c, err)
		return
	}
	resp.OK(c, order)
}

// PATCH /orders/:id/advance เลื่อนสถานะไปขั้นถัดไป
func (ctl *OrderController) Advance(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	order, err := ctl.Orders.Advance(uint(id))
	if err != nil {
		ctl.writeOrderError(c, err)
		return
	}
	resp.OK(c, order)
}

type SetStatusRequest struct {
	Status entity.OrderStatus `json:"status" binding:"required"`
}

// PATCH /orders/:id/status ตั้งสถานะตรง ๆ (รับเฉพาะสถานะถัดไปเท่านั้น)
func (ctl *OrderController) SetStatus(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := ctl.Orders.SetStatus(uint(id), req.Status)
	if err != nil {
		ctl.writeOrderError(c, err)
		return
	}
	resp.OK(c, order)
}

func (ctl *OrderController) writeOrderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrOrderNotFound):
		resp.NotFound(c, err.Error())
	case errors.Is(err, services.ErrAlreadyTerminal):
		resp.Conflict(c, err.Error())
	case errors.Is(err, services.ErrInvalidTransition):
		resp.BadRequest(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}
