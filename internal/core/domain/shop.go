package domain

import (
	"errors"
	"time"
)

var ErrShopNotFound = errors.New("shop not found")

// Shop is a vendor storefront. Balance figures are settled remotely and
// mirrored here for display.
type Shop struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	OwnerID     string    `json:"owner_id" bson:"owner_id"`
	Name        string    `json:"name" bson:"name"`
	Slug        string    `json:"slug" bson:"slug"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	IsActive    bool      `json:"is_active" bson:"is_active"`
	Balance     float64   `json:"balance" bson:"balance"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updated_at"`
}
