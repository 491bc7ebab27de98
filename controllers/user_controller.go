package controllers

import (
	"strconv"

	"restman/pkg/resp"
	"restman/repository"

	"github.com/gin-gonic/gin"
)

type UserController struct{ Repo *repository.UserRepository }

func NewUserController(repo *repository.UserRepository) *UserController {
	return &UserController{Repo: repo}
}

// GET /admin/users
func (ctl *UserController) List(c *gin.Context) {
	users, err := ctl.Repo.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": users})
}

// PATCH /admin/users/:id/role
func (ctl *UserController) UpdateRole(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req struct {
		Role string `json:"role" binding:"required,oneof=admin manager customer"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if _, err := ctl.Repo.FindByID(uint(id)); err != nil {
		resp.NotFound(c, "user not found")
		return
	}
	if err := ctl.Repo.Update(uint(id), map[string]any{"role": req.Role}); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"id": id, "role": req.Role})
}

// DELETE /admin/users/:id
func (ctl *UserController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	if _, err := ctl.Repo.FindByID(uint(id)); err != nil {
		resp.NotFound(c, "user not found")
		return
	}
	if err := ctl.Repo.Delete(uint(id)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "user deleted"})
}
