package domain

import (
	"errors"
	"time"
)

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrIdentityUnresolved = errors.New("identity unresolved")
var ErrForbidden = errors.New("access forbidden")

// User models an authenticated actor in the system.
type User struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	Name         string    `json:"name" bson:"name"`
	Email        string    `json:"email" bson:"email"`
	PasswordHash string    `json:"-" bson:"password_hash"`
	Role         Role      `json:"role" bson:"role"`
	ShopID       string    `json:"shop_id,omitempty" bson:"shop_id,omitempty"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" bson:"updated_at"`
}

// SessionIdentity is the identity snapshot feature code reads. It is written
// only by the session sync path into the session store; handlers never
// interpret raw token claims themselves.
type SessionIdentity struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`
	ShopID string `json:"shop_id,omitempty"`
}
