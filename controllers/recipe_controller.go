package controllers

import (
	"strconv"

	"restman/pkg/resp"
	"restman/services"

	"github.com/gin-gonic/gin"
)

type RecipeController struct{ Svc *services.RecipeService }

func NewRecipeController(svc *services.RecipeService) *RecipeController {
	return &RecipeController{Svc: svc}
}

// GET /recipes
func (ctl *RecipeController) List(c *gin.Context) {
	recipes, err := ctl.Svc.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": recipes})
}

// GET /recipes/:id
func (ctl *RecipeController) Get(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	recipe, err := ctl.Svc.Get(uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, recipe)
}

// GET /recipes/:id/ingredients
func (ctl *RecipeController) Ingredients(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	pairs, err := ctl.Svc.Ingredients(uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"items": pairs})
}

// POST /recipes
func (ctl *RecipeController) Create(c *gin.Context) {
	var req services.RecipeIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	recipe, err := ctl.Svc.Create(&req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, recipe)
}

// PATCH /recipes/:id
func (ctl *RecipeController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var req services.RecipeIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	recipe, err := ctl.Svc.Update(uint(id), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, recipe)
}

// DELETE /recipes/:id
func (ctl *RecipeController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := ctl.Svc.Delete(uint(id)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "recipe deleted"})
}

// POST /recipes/:id/ingredients
func (ctl *RecipeController) AddIngredient(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var req struct {
		IngredientID uint    `json:"ingredientId" binding:"required"`
		Weight       float64 `json:"weight" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := ctl.Svc.AddIngredient(uint(id), req.IngredientID, req.Weight); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "ingredient added"})
}

// DELETE /recipes/:id/ingredients/:ingredientId
func (ctl *RecipeController) RemoveIngredient(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	ingID, _ := strconv.Atoi(c.Param("ingredientId"))
	if err := ctl.Svc.RemoveIngredient(uint(id), uint(ingID)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "ingredient removed"})
}
