package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/linskybing/support-tracker/internal/application"
	"github.com/linskybing/support-tracker/internal/domain/ticket"
	"github.com/linskybing/support-tracker/pkg/response"
	"github.com/linskybing/support-tracker/pkg/utils"
)

type TicketHandler struct {
	tickets *application.TicketService
	admin   *application.TicketAdminService
	audit   *application.AuditService
}

func NewTicketHandler(tickets *application.TicketService, admin *application.TicketAdminService, audit *application.AuditService) *TicketHandler {
	return &TicketHandler{tickets: tickets, admin: admin, audit: audit}
}

// List godoc
// @Summary List tickets
// @Description Clients see their own tickets. Admins see all tickets with scope=all.
// @Tags tickets
// @Produce json
// @Param status query string false "Status id or name"
// @Param search query string false "Substring of title or description"
// @Param dateFrom query string false "YYYY-MM-DD or RFC 3339"
// @Param dateTo query string false "YYYY-MM-DD or RFC 3339, inclusive"
// @Param sort query string false "field:dir, e.g. created_at:desc"
// @Param page query int false "Page, from 1"
// @Param perPage query int false "Page size, 1..100"
// @Param scope query string false "all"
// @Success 200 {object} ticket.Page
// @Failure 401 {object} response.ErrorResponse
// @Failure 422 {object} response.ErrorResponse
// @Router /api/tickets [get]
func (h *TicketHandler) List(c *gin.Context) {
	var params ticket.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		response.Error(c, application.BadRequest("invalid query"))
		return
	}

	page, err := h.tickets.List(c.Request.Context(), utils.GetIdentityFromContext(c), params)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.List(c, page.Data, page.Meta)
}

// Create godoc
// @Summary File a ticket
// @Tags tickets
// @Accept json
// @Produce json
// @Param input body ticket.CreateTicketInput true "Ticket"
// @Success 201 {object} response.DataResponse{data=ticket.Ticket}
// @Failure 403 {object} response.ErrorResponse "Clients only"
// @Failure 422 {object} response.ErrorResponse
// @Router /api/tickets [post]
func (h *TicketHandler) Create(c *gin.Context) {
	var input ticket.CreateTicketInput
	if !bindJSON(c, &input) {
		return
	}

	identity := utils.GetIdentityFromContext(c)
	if identity == nil {
		response.Error(c, application.ErrUnauthenticated)
		return
	}
	t, err := h.tickets.Create(c.Request.Context(), identity.UserID, input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, t)
}

// Get godoc
// @Summary Get a ticket with tags and replies
// @Tags tickets
// @Produce json
// @Param id path int true "Ticket ID"
// @Success 200 {object} response.DataResponse{data=ticket.Ticket}
// @Failure 403 {object} response.ErrorResponse "Not the owner"
// @Failure 422 {object} response.ErrorResponse "Not found"
// @Router /api/tickets/{id} [get]
func (h *TicketHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	t, err := h.tickets.FindByID(c.Request.Context(), utils.GetIdentityFromContext(c), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, t)
}

// Update godoc
// @Summary Change status and tags
// @Description Omitted fields are left unchanged. tags replaces the whole set; [] clears it.
// @Tags tickets
// @Accept json
// @Produce json
// @Param id path int true "Ticket ID"
// @Param input body ticket.UpdateTicketInput true "Changes"
// @Success 200 {object} response.DataResponse{data=ticket.Ticket}
// @Failure 403 {object} response.ErrorResponse "Admins only"
// @Failure 422 {object} response.ErrorResponse
// @Router /api/tickets/{id} [patch]
func (h *TicketHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var input ticket.UpdateTicketInput
	if !bindJSON(c, &input) {
		return
	}

	t, err := h.admin.Update(c.Request.Context(), utils.GetIdentityFromContext(c), id, input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, t)
}

// Reply godoc
// @Summary Reply to a ticket
// @Tags tickets
// @Accept json
// @Produce json
// @Param id path int true "Ticket ID"
// @Param input body ticket.ReplyInput true "Reply"
// @Success 201 {object} response.DataResponse{data=ticket.Reply}
// @Failure 403 {object} response.ErrorResponse "Admins only"
// @Failure 422 {object} response.ErrorResponse
// @Router /api/tickets/{id}/reply [post]
func (h *TicketHandler) Reply(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var input ticket.ReplyInput
	if !bindJSON(c, &input) {
		return
	}

	identity := utils.GetIdentityFromContext(c)
	if identity == nil {
		response.Error(c, application.ErrUnauthenticated)
		return
	}
	reply, err := h.admin.AddReply(c.Request.Context(), id, identity.UserID, input.Message)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, reply)
}

// History godoc
// @Summary Audit history of a ticket
// @Tags tickets
// @Produce json
// @Param id path int true "Ticket ID"
// @Success 200 {object} response.DataResponse{data=[]audit.AuditLog}
// @Failure 403 {object} response.ErrorResponse "Admins only"
// @Router /api/tickets/{id}/history [get]
func (h *TicketHandler) History(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	logs, err := h.audit.History(c.Request.Context(), utils.GetIdentityFromContext(c), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, logs)
}
