package utils

import (
	"github.com/gin-gonic/gin"
	"github.com/linskybing/support-tracker/internal/application"
	"github.com/linskybing/support-tracker/internal/domain/user"
	"github.com/linskybing/support-tracker/pkg/types"
)

// IdentityKey is the gin context key holding the *types.Identity of the caller.
const IdentityKey = "identity"

// GetIdentityFromContext returns the caller resolved by the session
// middleware, or nil for anonymous requests.
var GetIdentityFromContext = func(c *gin.Context) *types.Identity {
	val, exists := c.Get(IdentityKey)
	if !exists {
		return nil
	}
	identity, ok := val.(*types.Identity)
	if !ok {
		return nil
	}
	return identity
}

// Authorize checks identity against a required role. An empty role only
// requires a session. Roles must match exactly, so an admin is refused on
// client-only actions.
func Authorize(identity *types.Identity, required user.Role) error {
	if identity == nil {
		return application.ErrUnauthenticated
	}
	if required == "" {
		return nil
	}
	if identity.Role != required {
		return application.ErrForbidden
	}
	return nil
}
