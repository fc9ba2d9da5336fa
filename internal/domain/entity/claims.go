package entity

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the decoded content of an access token.
type Claims struct {
	UserID  string
	IsAdmin bool
	jwt.RegisteredClaims
}
