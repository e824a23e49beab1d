package domain

import (
	"errors"
	"time"
)

// CatalogKind discriminates the taxonomy-like resources that share one
// storage shape: categories, brands, tags, attributes, terms and FAQs.
type CatalogKind string

const (
	KindCategory  CatalogKind = "category"
	KindBrand     CatalogKind = "brand"
	KindTag       CatalogKind = "tag"
	KindAttribute CatalogKind = "attribute"
	KindTerm      CatalogKind = "term"
	KindFAQ       CatalogKind = "faq"
)

var knownCatalogKinds = map[CatalogKind]struct{}{
	KindCategory:  {},
	KindBrand:     {},
	KindTag:       {},
	KindAttribute: {},
	KindTerm:      {},
	KindFAQ:       {},
}

// ValidCatalogKind reports whether k names a known catalog resource.
func ValidCatalogKind(k CatalogKind) bool {
	_, ok := knownCatalogKinds[k]
	return ok
}

var ErrCatalogItemNotFound = errors.New("catalog item not found")
var ErrSlugTaken = errors.New("slug already in use")
var ErrUnknownCatalogKind = errors.New("unknown catalog kind")

// CatalogItem is the shared shape of the taxonomy resources. Values is only
// populated for attributes; ParentID only for nested categories; Details
// carries FAQ answers and term bodies.
type CatalogItem struct {
	ID        string      `json:"id" bson:"_id,omitempty"`
	Kind      CatalogKind `json:"kind" bson:"kind"`
	Name      string      `json:"name" bson:"name"`
	Slug      string      `json:"slug" bson:"slug"`
	ParentID  string      `json:"parent_id,omitempty" bson:"parent_id,omitempty"`
	Details   string      `json:"details,omitempty" bson:"details,omitempty"`
	Icon      string      `json:"icon,omitempty" bson:"icon,omitempty"`
	Values    []string    `json:"values,omitempty" bson:"values,omitempty"`
	CreatedAt time.Time   `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time   `json:"updated_at" bson:"updated_at"`
}
