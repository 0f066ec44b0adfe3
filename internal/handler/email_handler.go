package handler

import (
	"net/http"

	"sarasblogg/internal/service"

	"github.com/gin-gonic/gin"
)

type EmailHandler struct {
	svc *service.EmailService
}

type SendCodeReq struct {
	Email string `json:"email" binding:"required,email"`
}

func NewEmailHandler(svc *service.EmailService) *EmailHandler {
	return &EmailHandler{svc: svc}
}

// SendCode mails a one-shot verification code; scope comes from the
// path (register or reset).
func (h *EmailHandler) SendCode(c *gin.Context) {
	var req SendCodeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	if err := h.svc.SendCode(c.Param("scope"), req.Email); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "Send code successfully"})
}
