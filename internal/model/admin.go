package model

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Admin is a survey owner account. PasswordHash is a bcrypt hash and is
// never serialized out.
type Admin struct {
	Username     string    `json:"username" bson:"_id"`
	PasswordHash string    `json:"-" bson:"passwordHash"`
	CreatedAt    time.Time `json:"created_at" bson:"createdAt"`
}

// AdminClaims is the JWT payload for admin tokens.
type AdminClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// LoginResponse is returned after a successful admin login.
type LoginResponse struct {
	Token    string `json:"jwt"`
	Username string `json:"username"`
}
