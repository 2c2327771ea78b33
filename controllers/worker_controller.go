package controllers

import (
	"errors"

	"github.com/smartZeee/worker-side/pkg/resp"
	"github.com/smartZeee/worker-side/services"

	"github.com/gin-gonic/gin"
)

type WorkerController struct {
	Workers *services.WorkerService
}

func NewWorkerController(workers *services.WorkerService) *WorkerController {
	return &WorkerController{Workers: workers}
}

// GET /admin/workers
func (ctl *WorkerController) List(c *gin.Context) {
	workers, err := ctl.Workers.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": workers})
}

// GET /admin/workers/:id
func (ctl *WorkerController) Get(c *gin.Context) {
	w, err := ctl.Workers.Get(c.Param("id"))
	if err != nil {
		ctl.writeWorkerError(c, err)
		return
	}
	resp.OK(c, w)
}

// POST /admin/workers
func (ctl *WorkerController) Create(c *gin.Context) {
	var req services.CreateWorkerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	w, err := ctl.Workers.Create(&req)
	if err != nil {
		ctl.writeWorkerError(c, err)
		return
	}
	resp.Created(c, w)
}

// PATCH /admin/workers/:id
func (ctl *WorkerController) Update(c *gin.Context) {
	var req services.UpdateWorkerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	w, err := ctl.Workers.Update(c.Param("id"), &req)
	if err != nil {
		ctl.writeWorkerError(c, err)
		return
	}
	resp.OK(c, w)
}

type SetActiveRequest struct {
	IsActive *bool `json:"isActive" binding:"required"`
}

// PATCH /admin/workers/:id/active เปิด/ปิดบัญชี
func (ctl *WorkerController) SetActive(c *gin.Context) {
	var req SetActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	w, err := ctl.Workers.SetActive(c.Param("id"), *req.IsActive)
	if err != nil {
		ctl.writeWorkerError(c, err)
		return
	}
	resp.OK(c, w)
}

// DELETE /admin/workers/:id
func (ctl *WorkerController) Delete(c *gin.Context) {
	if err := ctl.Workers.Delete(c.Param("id")); err != nil {
		ctl.writeWorkerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": services.CanonicalID(c.Param("id"))})
}

func (ctl *WorkerController) writeWorkerError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrWorkerNotFound):
		resp.NotFound(c, err.Error())
	case errors.Is(err, services.ErrWorkerExists):
		resp.Conflict(c, err.Error())
	case errors.Is(err, services.ErrBadField):
		resp.BadRequest(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}
