package controllers

import (
	"strconv"
	"time"

	"restman/pkg/resp"
	"restman/services"
	"restman/utils"

	"github.com/gin-gonic/gin"
)

type OrderController struct{ Svc *services.OrderService }

func NewOrderController(svc *services.OrderService) *OrderController {
	return &OrderController{Svc: svc}
}

// scope returns the owner filter for the caller: staff see every order,
// customers only their own.
func scope(c *gin.Context) uint {
	switch utils.CurrentRole(c) {
	case "admin", "manager":
		return 0
	default:
		return utils.CurrentUserID(c)
	}
}

// POST /orders
func (ctl *OrderController) Create(c *gin.Context) {
	order, err := ctl.Svc.Create(utils.CurrentUserID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, order)
}

// GET /orders/:id
func (ctl *OrderController) Get(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	view, err := ctl.Svc.Get(uint(id), scope(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, view)
}

// GET /orders — the caller's own orders
func (ctl *OrderController) ListForMe(c *gin.Context) {
	orders, err := ctl.Svc.ListForUser(utils.CurrentUserID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"items": orders})
}

// PATCH /orders/:id
func (ctl *OrderController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var req struct {
		OrderDate time.Time `json:"orderDate" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := ctl.Svc.UpdateDate(uint(id), scope(c), req.OrderDate); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "order updated"})
}

// DELETE /orders/:id
func (ctl *OrderController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := ctl.Svc.Delete(uint(id), scope(c)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "order deleted"})
}

// POST /orders/:id/items
func (ctl *OrderController) AddItem(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var req struct {
		MenuID uint `json:"menuId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := ctl.Svc.AddMenuItem(uint(id), req.MenuID, scope(c)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "menu added to order"})
}

// DELETE /orders/:id/items/:menuId
func (ctl *OrderController) RemoveItem(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	menuID, _ := strconv.Atoi(c.Param("menuId"))
	if err := ctl.Svc.RemoveMenuItem(uint(id), uint(menuID), scope(c)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "menu removed from order"})
}

// POST /orders/:id/single-items
func (ctl *OrderController) AddSingleItem(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var req struct {
		RecipeID uint `json:"recipeId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := ctl.Svc.AddSingleItem(uint(id), req.RecipeID, scope(c)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "recipe added to order"})
}

// DELETE /orders/:id/single-items/:recipeId
func (ctl *OrderController) RemoveSingleItem(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	recipeID, _ := strconv.Atoi(c.Param("recipeId"))
	if err := ctl.Svc.RemoveSingleItem(uint(id), uint(recipeID), scope(c)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "recipe removed from order"})
}
