package handler

import (
	"errors"
	"net/http"

	"sarasblogg/internal/model"
	"sarasblogg/internal/service"

	"github.com/gin-gonic/gin"
)

type AboutMeHandler struct {
	svc *service.AboutMeService
}

type AboutMeReq struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	ImageURL string `json:"image_url"`
}

func NewAboutMeHandler() *AboutMeHandler {
	return &AboutMeHandler{svc: service.NewAboutMeService()}
}

func (h *AboutMeHandler) Get(c *gin.Context) {
	aboutMe, err := h.svc.Get()
	if err != nil {
		if errors.Is(err, service.ErrAboutMeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"msg": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "get about-me failed"})
		return
	}
	c.JSON(http.StatusOK, aboutMe)
}

func (h *AboutMeHandler) Save(c *gin.Context) {
	var req AboutMeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}
	aboutMe := model.AboutMe{
		Title:    req.Title,
		Content:  req.Content,
		ImageURL: req.ImageURL,
	}
	if err := h.svc.Save(&aboutMe); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "save about-me failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok"})
}

func (h *AboutMeHandler) Delete(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid id"})
		return
	}
	if err := h.svc.Delete(id); err != nil {
		if errors.Is(err, service.ErrAboutMeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"msg": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "delete about-me failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok"})
}
