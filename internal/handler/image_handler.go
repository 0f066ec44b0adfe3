package handler

import (
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"sarasblogg/internal/service"

	"github.com/gin-gonic/gin"
)

const maxImageSize = 5 << 20 // 5 MB

var allowedImageExts = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
}

type ImageHandler struct {
	svc *service.ImageService
}

type ReorderReq struct {
	ImageIDs []uint64 `json:"image_ids" binding:"required"`
}

func NewImageHandler(svc *service.ImageService) *ImageHandler {
	return &ImageHandler{svc: svc}
}

func (h *ImageHandler) ListByBlogg(c *gin.Context) {
	bloggID, err := parseID(c, "bloggId")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid blogg id"})
		return
	}
	images, err := h.svc.ListByBlogg(bloggID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "list images failed"})
		return
	}
	c.JSON(http.StatusOK, images)
}

// Upload takes a multipart "file" field. Extension, declared MIME type
// and size are all checked before anything leaves the process.
func (h *ImageHandler) Upload(c *gin.Context) {
	bloggID, err := parseID(c, "bloggId")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid blogg id"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "file is required"})
		return
	}
	if fileHeader.Size > maxImageSize {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "file exceeds 5 MB"})
		return
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	wantMIME, ok := allowedImageExts[ext]
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "unsupported file type"})
		return
	}
	if contentType := fileHeader.Header.Get("Content-Type"); contentType != "" && contentType != wantMIME {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "file type mismatch"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "read file failed"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxImageSize+1))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "read file failed"})
		return
	}
	if len(data) > maxImageSize {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "file exceeds 5 MB"})
		return
	}

	image, err := h.svc.Upload(c.Request.Context(), bloggID, fileHeader.Filename, data)
	if err != nil {
		if errors.Is(err, service.ErrBloggNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"msg": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "upload failed"})
		return
	}
	c.JSON(http.StatusCreated, image)
}

func (h *ImageHandler) Reorder(c *gin.Context) {
	bloggID, err := parseID(c, "bloggId")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid blogg id"})
		return
	}

	var req ReorderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}
	if err := h.svc.Reorder(bloggID, req.ImageIDs); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "reorder failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok"})
}

// DeleteByBlogg wipes every image of a post, remote files included.
func (h *ImageHandler) DeleteByBlogg(c *gin.Context) {
	bloggID, err := parseID(c, "bloggId")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid blogg id"})
		return
	}
	if err := h.svc.DeleteByBlogg(c.Request.Context(), bloggID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "delete failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok"})
}

func (h *ImageHandler) Delete(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid id"})
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrImageNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"msg": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "delete failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok"})
}
