package handler

import (
	"errors"
	"net/http"

	"sarasblogg/internal/service"

	"github.com/gin-gonic/gin"
)

type LikeHandler struct {
	svc *service.LikeService
}

type LikeReq struct {
	UserID string `json:"user_id" binding:"required"`
}

func NewLikeHandler() *LikeHandler {
	return &LikeHandler{svc: service.NewLikeService()}
}

func (h *LikeHandler) Get(c *gin.Context) {
	bloggID, err := parseID(c, "bloggId")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid blogg id"})
		return
	}
	status, err := h.svc.Get(bloggID, c.Query("user_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "get likes failed"})
		return
	}
	c.JSON(http.StatusOK, status)
}

func (h *LikeHandler) Add(c *gin.Context) {
	bloggID, err := parseID(c, "bloggId")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid blogg id"})
		return
	}
	var req LikeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}
	status, err := h.svc.Add(bloggID, req.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "like failed"})
		return
	}
	c.JSON(http.StatusOK, status)
}

func (h *LikeHandler) Remove(c *gin.Context) {
	bloggID, err := parseID(c, "bloggId")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid blogg id"})
		return
	}
	userID := c.Query("user_id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "user_id is required"})
		return
	}
	status, err := h.svc.Remove(bloggID, userID)
	if err != nil {
		if errors.Is(err, service.ErrLikeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"msg": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "unlike failed"})
		return
	}
	c.JSON(http.StatusOK, status)
}
