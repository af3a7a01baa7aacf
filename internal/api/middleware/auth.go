package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/linskybing/support-tracker/internal/domain/user"
	"github.com/linskybing/support-tracker/pkg/response"
	"github.com/linskybing/support-tracker/pkg/utils"
)

// Auth guards routes by session and role.
type Auth struct{}

func NewAuth() *Auth {
	return &Auth{}
}

// Require aborts unless the caller has a session and, when role is set,
// exactly that role.
func (a *Auth) Require(role user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := utils.Authorize(utils.GetIdentityFromContext(c), role); err != nil {
			response.Error(c, err)
			return
		}
		c.Next()
	}
}

// Authenticated requires any session.
func (a *Auth) Authenticated() gin.HandlerFunc {
	return a.Require("")
}

func (a *Auth) Admin() gin.HandlerFunc {
	return a.Require(user.RoleAdmin)
}

func (a *Auth) Client() gin.HandlerFunc {
	return a.Require(user.RoleClient)
}
