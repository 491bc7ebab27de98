package controllers

import (
	"strconv"

	"restman/pkg/resp"
	"restman/services"

	"github.com/gin-gonic/gin"
)

type DishTypeController struct{ Svc *services.DishTypeService }

func NewDishTypeController(svc *services.DishTypeService) *DishTypeController {
	return &DishTypeController{Svc: svc}
}

type dishTypeRequest struct {
	Name string `json:"name" binding:"required"`
}

// GET /dish-types
func (ctl *DishTypeController) List(c *gin.Context) {
	types, err := ctl.Svc.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": types})
}

// GET /dish-types/:id
func (ctl *DishTypeController) Get(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	dt, err := ctl.Svc.Get(uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, dt)
}

// POST /dish-types
func (ctl *DishTypeController) Create(c *gin.Context) {
	var req dishTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	dt, err := ctl.Svc.Create(req.Name)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, dt)
}

// PATCH /dish-types/:id
func (ctl *DishTypeController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var req dishTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	dt, err := ctl.Svc.Update(uint(id), req.Name)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, dt)
}

// DELETE /dish-types/:id
func (ctl *DishTypeController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := ctl.Svc.Delete(uint(id)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "dish type deleted"})
}
