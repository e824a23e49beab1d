package domain

import (
	"errors"
	"strings"
	"time"
)

// ProductStatus is the normalized publication state of a product.
type ProductStatus string

const (
	ProductPublish ProductStatus = "PUBLISH"
	ProductDraft   ProductStatus = "DRAFT"
)

var knownProductStatuses = map[ProductStatus]struct{}{
	ProductPublish: {},
	ProductDraft:   {},
}

var ErrProductNotFound = errors.New("product not found")

// NormalizeProductStatus upper-cases raw and maps it into the known product
// status set, degrading to StatusOther. Total; never errors.
func NormalizeProductStatus(raw string) string {
	s := ProductStatus(strings.ToUpper(strings.TrimSpace(raw)))
	if _, ok := knownProductStatuses[s]; ok {
		return string(s)
	}
	return StatusOther
}

// ValidProductStatus reports whether raw names a known product status.
func ValidProductStatus(raw string) bool {
	_, ok := knownProductStatuses[ProductStatus(strings.ToUpper(strings.TrimSpace(raw)))]
	return ok
}

// Product is a catalog item owned by a shop.
type Product struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	Name        string    `json:"name" bson:"name"`
	Slug        string    `json:"slug" bson:"slug"`
	ShopID      string    `json:"shop_id" bson:"shop_id"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	Price       float64   `json:"price" bson:"price"`
	SalePrice   float64   `json:"sale_price,omitempty" bson:"sale_price,omitempty"`
	Quantity    int       `json:"quantity" bson:"quantity"`
	ProductType string    `json:"product_type" bson:"product_type"`
	RawStatus   string    `json:"status" bson:"status"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updated_at"`
}
