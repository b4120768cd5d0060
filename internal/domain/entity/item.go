package entity

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Item is a catalog entry. Price and stock live on its variants; the item
// itself only carries descriptive data.
type Item struct {
	ID          string        `gorm:"size:100;primary_key" json:"id"`
	CategoryID  string        `gorm:"size:100;not null;index" json:"category"`
	Subcategory string        `gorm:"size:255" json:"subcategory"`
	Name        string        `gorm:"size:255;not null" json:"name"`
	Description string        `gorm:"type:text" json:"description,omitempty"`
	Variants    []ItemVariant `gorm:"foreignKey:ItemID;constraint:OnDelete:CASCADE" json:"variants"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// TableName returns the table name for the Item model
func (Item) TableName() string {
	return "items"
}

// Variant returns the variant with the given ID, or nil.
func (i *Item) Variant(variantID string) *ItemVariant {
	for idx := range i.Variants {
		if i.Variants[idx].ID == variantID {
			return &i.Variants[idx]
		}
	}
	return nil
}

// VariantBySize returns the variant matching the size label
// (case-insensitive), or nil.
func (i *Item) VariantBySize(size string) *ItemVariant {
	for idx := range i.Variants {
		if strings.EqualFold(i.Variants[idx].Size, size) {
			return &i.Variants[idx]
		}
	}
	return nil
}

// ItemVariant is a size/price option under an item and the addressable unit
// of stock. Stock is the authoritative on-hand count for that size; it may go
// negative after a sale against a stale count.
type ItemVariant struct {
	ID        string    `gorm:"size:150;primary_key" json:"id"`
	ItemID    string    `gorm:"size:100;not null;index" json:"-"`
	Size      string    `gorm:"size:50;not null" json:"size"`
	Price     float64   `gorm:"not null" json:"price"`
	Stock     int       `gorm:"default:0" json:"stock"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the table name for the ItemVariant model
func (ItemVariant) TableName() string {
	return "item_variants"
}

// VariantID derives a variant's ID from its parent item, size and price, so
// re-saving an edited variant stays idempotent (e.g. "s1-M-1299").
func VariantID(itemID, size string, price float64) string {
	return fmt.Sprintf("%s-%s-%s", itemID, size, strconv.FormatFloat(price, 'f', -1, 64))
}
