package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/support-tracker/internal/application"
	"github.com/linskybing/support-tracker/pkg/response"
	"github.com/linskybing/support-tracker/pkg/utils"
)

// multipartOverhead is allowed on top of the file size limit for form framing.
const multipartOverhead = 1 << 20

type AttachmentHandler struct {
	svc *application.AttachmentService
}

func NewAttachmentHandler(svc *application.AttachmentService) *AttachmentHandler {
	return &AttachmentHandler{svc: svc}
}

// List godoc
// @Summary List ticket attachments
// @Tags attachments
// @Produce json
// @Param id path int true "Ticket ID"
// @Success 200 {object} response.DataResponse{data=[]attachment.Attachment}
// @Failure 400 {object} response.ErrorResponse "Attachments disabled"
// @Failure 403 {object} response.ErrorResponse
// @Router /api/tickets/{id}/attachments [get]
func (h *AttachmentHandler) List(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	list, err := h.svc.List(c.Request.Context(), utils.GetIdentityFromContext(c), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, list)
}

// Upload godoc
// @Summary Attach a file to a ticket
// @Tags attachments
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Ticket ID"
// @Param file formData file true "File"
// @Success 201 {object} response.DataResponse{data=attachment.Attachment}
// @Failure 400 {object} response.ErrorResponse "Attachments disabled"
// @Failure 422 {object} response.ErrorResponse "Missing or oversized file"
// @Router /api/tickets/{id}/attachments [post]
func (h *AttachmentHandler) Upload(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if h.svc.MaxBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.svc.MaxBytes+multipartOverhead)
	}

	fh, err := c.FormFile("file")
	if err != nil {
		response.Error(c, application.Validation("file is required"))
		return
	}
	file, err := fh.Open()
	if err != nil {
		response.Error(c, err)
		return
	}
	defer file.Close()

	a, err := h.svc.Upload(c.Request.Context(), utils.GetIdentityFromContext(c), id, application.UploadInput{
		FileName:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		Body:        file,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, a)
}

// Download godoc
// @Summary Download an attachment
// @Tags attachments
// @Produce octet-stream
// @Param id path int true "Ticket ID"
// @Param attachmentId path int true "Attachment ID"
// @Success 200 {file} binary
// @Failure 403 {object} response.ErrorResponse
// @Failure 422 {object} response.ErrorResponse "Not found"
// @Router /api/tickets/{id}/attachments/{attachmentId} [get]
func (h *AttachmentHandler) Download(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	attachmentID, ok := pathID(c, "attachmentId")
	if !ok {
		return
	}

	a, body, err := h.svc.Open(c.Request.Context(), utils.GetIdentityFromContext(c), id, attachmentID)
	if err != nil {
		response.Error(c, err)
		return
	}
	defer body.Close()

	c.DataFromReader(http.StatusOK, a.Size, a.ContentType, body, map[string]string{
		"Content-Disposition": fmt.Sprintf("attachment; filename=%q", a.FileName),
	})
}
