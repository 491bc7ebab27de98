package controllers

import (
	"strconv"

	"restman/pkg/resp"
	"restman/services"

	"github.com/gin-gonic/gin"
)

type MenuController struct{ Svc *services.MenuService }

func NewMenuController(svc *services.MenuService) *MenuController {
	return &MenuController{Svc: svc}
}

// GET /menus
func (ctl *MenuController) List(c *gin.Context) {
	menus, err := ctl.Svc.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": menus})
}

// GET /menus/:id — read projection with the linked recipe ids
func (ctl *MenuController) Get(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	view, err := ctl.Svc.View(uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, view)
}

// POST /menus
func (ctl *MenuController) Create(c *gin.Context) {
	var req services.MenuIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	menu, err := ctl.Svc.Create(&req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, menu)
}

// PATCH /menus/:id
func (ctl *MenuController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var req services.MenuIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	menu, err := ctl.Svc.Update(uint(id), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, menu)
}

// DELETE /menus/:id
func (ctl *MenuController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := ctl.Svc.Delete(uint(id)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "menu deleted"})
}

// POST /menus/:id/recipes
func (ctl *MenuController) AddRecipe(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var req struct {
		RecipeID uint `json:"recipeId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := ctl.Svc.AddRecipe(uint(id), req.RecipeID); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "recipe added"})
}

// DELETE /menus/:id/recipes/:recipeId
func (ctl *MenuController) RemoveRecipe(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	recipeID, _ := strconv.Atoi(c.Param("recipeId"))
	if err := ctl.Svc.RemoveRecipe(uint(id), uint(recipeID)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "recipe removed"})
}
