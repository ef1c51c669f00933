package model

import (
	"github.com/dgrijalva/jwt-go"
	"time"
)

type User struct {
	ID        uint      `gorm:"primary_key"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Email    string `json:"email,omitempty"`
	Username string `json:"username,omitempty"`
	Password string `json:"password,omitempty"`
	IsAdmin  bool   `json:"is_admin,omitempty"`
}

// jwtCustomClaims are custom claims extending default ones.
type JwtCustomClaims struct {
	User User
	jwt.StandardClaims
}
