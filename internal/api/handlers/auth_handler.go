package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/linskybing/support-tracker/internal/api/middleware"
	"github.com/linskybing/support-tracker/internal/application"
	"github.com/linskybing/support-tracker/internal/domain/session"
	"github.com/linskybing/support-tracker/internal/domain/user"
	"github.com/linskybing/support-tracker/pkg/response"
	"github.com/linskybing/support-tracker/pkg/utils"
)

type AuthHandler struct {
	svc *application.AuthService
}

func NewAuthHandler(svc *application.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

func (h *AuthHandler) startSession(c *gin.Context, sess session.Session) bool {
	token, err := middleware.GenerateToken(sess)
	if err != nil {
		response.Error(c, err)
		return false
	}
	middleware.SetSessionCookie(c, token, sess.ExpiresAt)
	return true
}

// Register godoc
// @Summary Register a client account
// @Tags auth
// @Accept json
// @Produce json
// @Param input body user.RegisterInput true "Credentials"
// @Success 201 {object} response.DataResponse{data=user.User}
// @Failure 400 {object} response.ErrorResponse "Malformed body"
// @Failure 422 {object} response.ErrorResponse "Invalid email, short password or email taken"
// @Router /api/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var input user.RegisterInput
	if !bindJSON(c, &input) {
		return
	}

	usr, sess, err := h.svc.Register(c.Request.Context(), input, user.RoleClient)
	if err != nil {
		response.Error(c, err)
		return
	}
	if !h.startSession(c, sess) {
		return
	}
	response.Created(c, usr)
}

// Login godoc
// @Summary Log in
// @Tags auth
// @Accept json
// @Produce json
// @Param input body user.LoginInput true "Credentials"
// @Success 200 {object} response.DataResponse{data=user.User}
// @Failure 422 {object} response.ErrorResponse "Invalid credentials"
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var input user.LoginInput
	if !bindJSON(c, &input) {
		return
	}

	usr, sess, err := h.svc.Login(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}
	if !h.startSession(c, sess) {
		return
	}
	response.OK(c, usr)
}

// Logout godoc
// @Summary Log out
// @Tags auth
// @Produce json
// @Success 200 {object} response.DataResponse{data=response.MessageResponse}
// @Failure 401 {object} response.ErrorResponse
// @Router /api/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	identity := utils.GetIdentityFromContext(c)
	if identity == nil {
		response.Error(c, application.ErrUnauthenticated)
		return
	}
	if err := h.svc.Logout(c.Request.Context(), identity.SessionID); err != nil {
		response.Error(c, err)
		return
	}
	middleware.ClearSessionCookie(c)
	response.OK(c, response.MessageResponse{Message: "logged out"})
}

// Me godoc
// @Summary Current user
// @Description Returns the signed-in user, or null data when anonymous.
// @Tags auth
// @Produce json
// @Success 200 {object} response.DataResponse{data=user.User}
// @Router /api/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	usr, err := h.svc.Me(c.Request.Context(), utils.GetIdentityFromContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	if usr == nil {
		response.OK(c, nil)
		return
	}
	response.OK(c, usr)
}
