package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/linskybing/support-tracker/internal/application"
	"github.com/linskybing/support-tracker/internal/config"
	"github.com/linskybing/support-tracker/internal/domain/session"
	"github.com/linskybing/support-tracker/pkg/response"
	"github.com/linskybing/support-tracker/pkg/types"
	"github.com/linskybing/support-tracker/pkg/utils"
)

var (
	sessionKey []byte

	ErrInvalidToken = errors.New("invalid session token")
)

// Init sets the session cookie signing key.
func Init(secret string) {
	sessionKey = []byte(secret)
}

// GenerateToken signs the cookie value for a session.
var GenerateToken = func(sess session.Session) (string, error) {
	claims := &types.SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sess.ID,
			ExpiresAt: jwt.NewNumericDate(sess.ExpiresAt),
			IssuedAt:  jwt.NewNumericDate(sess.CreatedAt),
			Issuer:    config.Issuer,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(sessionKey)
}

// ParseToken validates a cookie value and returns its claims.
func ParseToken(tokenStr string) (*types.SessionClaims, error) {
	claims := &types.SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return sessionKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.ID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// SetSessionCookie stores token in the session cookie until expiresAt.
func SetSessionCookie(c *gin.Context, token string, expiresAt time.Time) {
	maxAge := int(time.Until(expiresAt).Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(config.SessionName, token, maxAge, "/", "", config.IsProduction, true)
}

func ClearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(config.SessionName, "", -1, "/", "", config.IsProduction, true)
}

func tokenFromRequest(c *gin.Context) string {
	if authHeader := c.GetHeader("Authorization"); authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && parts[0] == "Bearer" {
			return parts[1]
		}
		return ""
	}
	if cookie, err := c.Cookie(config.SessionName); err == nil {
		return cookie
	}
	return ""
}

// Session resolves the caller from the session cookie (or a Bearer token)
// and stores the identity in the context. Requests without a valid session
// continue anonymously; authorization is left to Auth.Require.
func Session(auth *application.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := types.WithRequestMeta(c.Request.Context(), types.RequestMeta{
			IP:        c.ClientIP(),
			UserAgent: c.GetHeader("User-Agent"),
		})
		c.Request = c.Request.WithContext(ctx)

		tokenStr := tokenFromRequest(c)
		if tokenStr == "" {
			c.Next()
			return
		}

		claims, err := ParseToken(tokenStr)
		if err != nil {
			c.Next()
			return
		}

		identity, err := auth.Resolve(ctx, claims.ID)
		if err != nil {
			response.Error(c, err)
			return
		}
		if identity != nil {
			c.Set(utils.IdentityKey, identity)
		}
		c.Next()
	}
}
