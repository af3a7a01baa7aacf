package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/linskybing/support-tracker/internal/application"
	"github.com/linskybing/support-tracker/internal/domain/status"
	"github.com/linskybing/support-tracker/pkg/response"
)

type StatusHandler struct {
	svc *application.StatusService
}

func NewStatusHandler(svc *application.StatusService) *StatusHandler {
	return &StatusHandler{svc: svc}
}

// List godoc
// @Summary List statuses
// @Tags statuses
// @Produce json
// @Success 200 {object} response.DataResponse{data=[]status.Status}
// @Router /api/statuses [get]
func (h *StatusHandler) List(c *gin.Context) {
	statuses, err := h.svc.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, statuses)
}

// Create godoc
// @Summary Create a status
// @Tags statuses
// @Accept json
// @Produce json
// @Param input body status.StatusInput true "Status"
// @Success 201 {object} response.DataResponse{data=status.Status}
// @Failure 422 {object} response.ErrorResponse
// @Router /api/statuses [post]
func (h *StatusHandler) Create(c *gin.Context) {
	var input status.StatusInput
	if !bindJSON(c, &input) {
		return
	}
	st, err := h.svc.Create(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, st)
}

// Update godoc
// @Summary Update a status
// @Tags statuses
// @Accept json
// @Produce json
// @Param id path int true "Status ID"
// @Param input body status.StatusInput true "Status"
// @Success 200 {object} response.DataResponse{data=status.Status}
// @Failure 422 {object} response.ErrorResponse
// @Router /api/statuses/{id} [put]
func (h *StatusHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var input status.StatusInput
	if !bindJSON(c, &input) {
		return
	}
	st, err := h.svc.Update(c.Request.Context(), id, input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, st)
}

// Delete godoc
// @Summary Delete a status
// @Tags statuses
// @Produce json
// @Param id path int true "Status ID"
// @Success 200 {object} response.DataResponse{data=response.DeletedResponse}
// @Failure 422 {object} response.ErrorResponse
// @Router /api/statuses/{id} [delete]
func (h *StatusHandler) Delete(c *gin.Context) {
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
