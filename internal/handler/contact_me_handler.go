package handler

import (
	"errors"
	"net/http"

	"sarasblogg/internal/model"
	"sarasblogg/internal/service"

	"github.com/gin-gonic/gin"
)

type ContactMeHandler struct {
	svc *service.ContactMeService
}

type ContactReq struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func NewContactMeHandler(svc *service.ContactMeService) *ContactMeHandler {
	return &ContactMeHandler{svc: svc}
}

func (h *ContactMeHandler) List(c *gin.Context) {
	messages, err := h.svc.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "list messages failed"})
		return
	}
	c.JSON(http.StatusOK, messages)
}

func (h *ContactMeHandler) Create(c *gin.Context) {
	var req ContactReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}
	contact := model.ContactMe{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}
	if err := h.svc.Create(&contact); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"msg": "ok"})
}

func (h *ContactMeHandler) Delete(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid id"})
		return
	}
	if err := h.svc.Delete(id); err != nil {
		if errors.Is(err, service.ErrContactNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"msg": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "delete failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok"})
}
