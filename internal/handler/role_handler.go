package handler

import (
	"errors"
	"net/http"

	"sarasblogg/internal/service"

	"github.com/gin-gonic/gin"
)

type RoleHandler struct {
	svc *service.RoleService
}

type CreateRoleReq struct {
	Name string `json:"name" binding:"required"`
}

func NewRoleHandler() *RoleHandler {
	return &RoleHandler{svc: service.NewRoleService()}
}

func (h *RoleHandler) List(c *gin.Context) {
	roles, err := h.svc.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "list roles failed"})
		return
	}
	c.JSON(http.StatusOK, roles)
}

func (h *RoleHandler) Create(c *gin.Context) {
	var req CreateRoleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}
	if err := h.svc.Create(req.Name); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok"})
}

func (h *RoleHandler) Delete(c *gin.Context) {
	name := c.Param("name")
	if err := h.svc.Delete(name); err != nil {
		switch {
		case errors.Is(err, service.ErrRoleProtected):
			c.JSON(http.StatusForbidden, gin.H{"msg": err.Error()})
		case errors.Is(err, service.ErrRoleNotFound):
			c.JSON(http.StatusNotFound, gin.H{"msg": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "delete role failed"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok"})
}
