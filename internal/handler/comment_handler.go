package handler

import (
	"errors"
	"net/http"
	"strconv"

	"sarasblogg/internal/middleware"
	"sarasblogg/internal/service"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	svc *service.CommentService
}

type CreateCommentReq struct {
	BloggID uint64 `json:"blogg_id" binding:"required"`
	Name    string `json:"name"`
	Content string `json:"content"`
}

func NewCommentHandler(svc *service.CommentService) *CommentHandler {
	return &CommentHandler{svc: svc}
}

func (h *CommentHandler) List(c *gin.Context) {
	views, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "list comments failed"})
		return
	}
	c.JSON(http.StatusOK, views)
}

func (h *CommentHandler) Get(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid id"})
		return
	}
	view, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "get comment failed"})
		return
	}
	if view == nil {
		c.JSON(http.StatusNotFound, gin.H{"msg": "comment not found"})
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *CommentHandler) ListByBlogg(c *gin.Context) {
	bloggID, err := parseID(c, "bloggId")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid blogg id"})
		return
	}
	views, err := h.svc.ListByBlogg(c.Request.Context(), bloggID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "list comments failed"})
		return
	}
	c.JSON(http.StatusOK, views)
}

// Create accepts both anonymous and logged-in submissions; a token, if
// present, decides whose name ends up on the comment.
func (h *CommentHandler) Create(c *gin.Context) {
	var req CreateCommentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	view, err := h.svc.Create(c.Request.Context(), caller(c), req.Name, req.Content, req.BloggID)
	if err != nil {
		status := commentErrStatus(err)
		c.JSON(status, gin.H{"msg": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, view)
}

func (h *CommentHandler) Delete(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid id"})
		return
	}
	if err := h.svc.Delete(c.Request.Context(), caller(c), id); err != nil {
		c.JSON(commentErrStatus(err), gin.H{"msg": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok"})
}

func (h *CommentHandler) DeleteByBlogg(c *gin.Context) {
	bloggID, err := parseID(c, "bloggId")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid blogg id"})
		return
	}
	count, err := h.svc.DeleteByBlogg(c.Request.Context(), caller(c), bloggID)
	if err != nil {
		c.JSON(commentErrStatus(err), gin.H{"msg": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok", "deleted": count})
}

func commentErrStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrContentRequired),
		errors.Is(err, service.ErrUnsafeName),
		errors.Is(err, service.ErrUnsafeContent):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrAuthRequired):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrForbidden),
		errors.Is(err, service.ErrModeratorOnly):
		return http.StatusForbidden
	case errors.Is(err, service.ErrCommentNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func caller(c *gin.Context) service.Caller {
	email := middleware.Email(c)
	return service.Caller{Email: email, Authenticated: email != ""}
}

func parseID(c *gin.Context, param string) (uint64, error) {
	return strconv.ParseUint(c.Param(param), 10, 64)
}
