package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/linskybing/support-tracker/internal/application"
	"github.com/linskybing/support-tracker/internal/domain/tag"
	"github.com/linskybing/support-tracker/pkg/response"
)

type TagHandler struct {
	svc *application.TagService
}

func NewTagHandler(svc *application.TagService) *TagHandler {
	return &TagHandler{svc: svc}
}

// List godoc
// @Summary List tags
// @Tags tags
// @Produce json
// @Success 200 {object} response.DataResponse{data=[]tag.Tag}
// @Router /api/tags [get]
func (h *TagHandler) List(c *gin.Context) {
	tags, err := h.svc.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, tags)
}

// Create godoc
// @Summary Create a tag
// @Tags tags
// @Accept json
// @Produce json
// @Param input body tag.TagInput true "Tag"
// @Success 201 {object} response.DataResponse{data=tag.Tag}
// @Failure 422 {object} response.ErrorResponse
// @Router /api/tags [post]
func (h *TagHandler) Create(c *gin.Context) {
	var input tag.TagInput
	if !bindJSON(c, &input) {
		return
	}
	t, err := h.svc.Create(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, t)
}

// Update godoc
// @Summary Update a tag
// @Tags tags
// @Accept json
// @Produce json
// @Param id path int true "Tag ID"
// @Param input body tag.TagInput true "Tag"
// @Success 200 {object} response.DataResponse{data=tag.Tag}
// @Failure 422 {object} response.ErrorResponse
// @Router /api/tags/{id} [put]
func (h *TagHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var input tag.TagInput
	if !bindJSON(c, &input) {
		return
	}
	t, err := h.svc.Update(c.Request.Context(), id, input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, t)
}

// Delete godoc
// @Summary Delete a tag
// @Tags tags
// @Produce json
// @Param id path int true "Tag ID"
// @Success 200 {object} response.DataResponse{data=response.DeletedResponse}
// @Failure 422 {object} response.ErrorResponse
// @Router /api/tags/{id} [delete]
func (h *TagHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Deleted(c)
}
