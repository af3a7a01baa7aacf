package types

import "github.com/golang-jwt/jwt/v5"

// SessionClaims is the signed payload of the session cookie. The session id
// travels as the registered jti claim.
type SessionClaims struct {
	jwt.RegisteredClaims
}
