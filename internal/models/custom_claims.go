package models

import "github.com/golang-jwt/jwt/v5"

// TokenTypeSession marks tokens issued by an unlock.
const TokenTypeSession = "session"

// CustomClaims represents the custom claims in our JWT tokens
type CustomClaims struct {
	jwt.RegisteredClaims
	SessionVersion int    `json:"session_version"`
	UnlockMethod   string `json:"unlock_method"`
	TokenType      string `json:"token_type"`
}
