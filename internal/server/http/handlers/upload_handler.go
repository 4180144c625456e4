package handlers

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/ecomlite/internal/domain/errors"
	"github.com/polkiloo/ecomlite/internal/domain/model"
	"github.com/polkiloo/ecomlite/internal/server/http/dto"
	"github.com/polkiloo/ecomlite/internal/server/http/middleware"
)

const (
	uploadField = "image"
	// multipartOverhead leaves room for boundaries and part headers.
	multipartOverhead = 1 << 20
)

// UploadHandler stores and removes product images.
type UploadHandler struct {
	facade MediaFacade
}

// NewUploadHandler constructs UploadHandler.
func NewUploadHandler(facade MediaFacade) *UploadHandler {
	return &UploadHandler{facade: facade}
}

// Upload handles POST /api/upload with a multipart "image" field.
func (h *UploadHandler) Upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, model.MaxImageSize+multipartOverhead)

	header, err := c.FormFile(uploadField)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			_ = c.Error(domainErrors.ErrFileTooLarge)
			return
		}
		_ = c.Error(domainErrors.ErrNoFile)
		return
	}

	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image") {
		_ = c.Error(domainErrors.ErrNotAnImage)
		return
	}
	if header.Size > model.MaxImageSize {
		_ = c.Error(domainErrors.ErrFileTooLarge)
		return
	}

	file, err := header.Open()
	if err != nil {
		_ = c.Error(err)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, model.MaxImageSize+1))
	if err != nil {
		_ = c.Error(err)
		return
	}

	stored, err := h.facade.UploadImage(c.Request.Context(), model.ImageUpload{
		Filename:    header.Filename,
		ContentType: contentType,
		Data:        data,
	})
	if err != nil {
		if errors.Is(err, domainErrors.ErrUpstream) {
			err = middleware.WithMessage(err, "Error uploading image")
		}
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.UploadResponse{
		Message:  "Image uploaded successfully",
		URL:      stored.URL,
		PublicID: stored.PublicID,
	})
}

// Delete handles DELETE /api/upload/*publicId. Public ids contain the folder
// prefix, so the wildcard keeps slashes.
func (h *UploadHandler) Delete(c *gin.Context) {
	if err := h.facade.DeleteImage(c.Request.Context(), c.Param("publicId")); err != nil {
		if errors.Is(err, domainErrors.ErrUpstream) {
			err = middleware.WithMessage(err, "Error deleting image")
		}
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Image deleted successfully"})
}
