package controllers

import (
	"strconv"

	"restman/pkg/resp"
	"restman/services"

	"github.com/gin-gonic/gin"
)

type IngredientController struct{ Svc *services.IngredientService }

func NewIngredientController(svc *services.IngredientService) *IngredientController {
	return &IngredientController{Svc: svc}
}

type ingredientRequest struct {
	Name string `json:"name" binding:"required"`
}

// GET /ingredients
func (ctl *IngredientController) List(c *gin.Context) {
	ingredients, err := ctl.Svc.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": ingredients})
}

// GET /ingredients/:id
func (ctl *IngredientController) Get(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	ing, err := ctl.Svc.Get(uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, ing)
}

// POST /ingredients
func (ctl *IngredientController) Create(c *gin.Context) {
	var req ingredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	ing, err := ctl.Svc.Create(req.Name)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, ing)
}

// PATCH /ingredients/:id
func (ctl *IngredientController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var req ingredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	ing, err := ctl.Svc.Update(uint(id), req.Name)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, ing)
}

// DELETE /ingredients/:id
func (ctl *IngredientController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := ctl.Svc.Delete(uint(id)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "ingredient deleted"})
}
