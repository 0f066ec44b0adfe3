package handler

import (
	"errors"
	"net/http"
	"time"

	"sarasblogg/internal/model"
	"sarasblogg/internal/service"

	"github.com/gin-gonic/gin"
)

type BloggHandler struct {
	svc *service.BloggService
}

type BloggReq struct {
	Title      string     `json:"title"`
	Content    string     `json:"content"`
	Author     string     `json:"author"`
	LaunchDate *time.Time `json:"launch_date"`
	Hidden     bool       `json:"hidden"`
	IsArchived bool       `json:"is_archived"`
}

func NewBloggHandler(svc *service.BloggService) *BloggHandler {
	return &BloggHandler{svc: svc}
}

func (h *BloggHandler) List(c *gin.Context) {
	bloggs, err := h.svc.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "list bloggs failed"})
		return
	}
	c.JSON(http.StatusOK, bloggs)
}

func (h *BloggHandler) Get(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid id"})
		return
	}
	blogg, err := h.svc.Get(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "get blogg failed"})
		return
	}
	if blogg == nil {
		c.JSON(http.StatusNotFound, gin.H{"msg": "blogg not found"})
		return
	}
	c.JSON(http.StatusOK, blogg)
}

func (h *BloggHandler) Create(c *gin.Context) {
	var req BloggReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	blogg := model.Blogg{
		Title:      req.Title,
		Content:    req.Content,
		Author:     req.Author,
		Hidden:     req.Hidden,
		IsArchived: req.IsArchived,
	}
	if req.LaunchDate != nil {
		blogg.LaunchDate = *req.LaunchDate
	}
	if err := h.svc.Create(&blogg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, blogg)
}

func (h *BloggHandler) Update(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid id"})
		return
	}

	var req BloggReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	blogg := model.Blogg{
		ID:         id,
		Title:      req.Title,
		Content:    req.Content,
		Author:     req.Author,
		Hidden:     req.Hidden,
		IsArchived: req.IsArchived,
	}
	if req.LaunchDate != nil {
		blogg.LaunchDate = *req.LaunchDate
	}
	if err := h.svc.Update(&blogg); err != nil {
		if errors.Is(err, service.ErrBloggNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"msg": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok"})
}

func (h *BloggHandler) Delete(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid id"})
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrBloggNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"msg": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "delete blogg failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok"})
}
