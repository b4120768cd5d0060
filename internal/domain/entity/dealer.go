package entity

import (
	"fmt"
	"sync/atomic"
	"time"
)

// Dealer is a wholesale supplier the shop buys stock from.
type Dealer struct {
	ID             string    `gorm:"size:100;primary_key" json:"id"`
	DealerName     string    `gorm:"size:255;not null" json:"dealer_name"`
	ShopName       string    `gorm:"size:255;not null" json:"shop_name"`
	MobileNumber   string    `gorm:"size:20;not null;uniqueIndex" json:"mobile_number"`
	WhatsappNumber string    `gorm:"size:20" json:"whatsapp_number,omitempty"`
	Address        string    `gorm:"type:text" json:"address"`
	Notes          string    `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// TableName returns the table name for the Dealer model
func (Dealer) TableName() string {
	return "dealers"
}

// DealerPurchase is a stock-in event against a dealer. It is created
// complete, never mutated after saving, and drives variant stock increments.
type DealerPurchase struct {
	ID            string         `gorm:"size:100;primary_key" json:"id"`
	DealerID      string         `gorm:"size:100;not null;index" json:"dealer_id"`
	DealerName    string         `gorm:"size:255;not null" json:"dealer_name"`
	PurchaseDate  time.Time      `gorm:"type:date;not null" json:"purchase_date"`
	Items         []PurchaseItem `gorm:"foreignKey:PurchaseID;constraint:OnDelete:CASCADE" json:"items"`
	TotalQuantity int            `gorm:"not null" json:"total_quantity"`
	TotalValue    float64        `gorm:"not null" json:"total_value"`
	Notes         string         `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
}

// TableName returns the table name for the DealerPurchase model
func (DealerPurchase) TableName() string {
	return "dealer_purchases"
}

var lastPurchaseMilli atomic.Int64

// NewPurchaseID derives a purchase ID from the creation instant, with the
// same millisecond bump as bill IDs.
func NewPurchaseID(t time.Time) string {
	return fmt.Sprintf("PURCHASE-%d", nextMilli(&lastPurchaseMilli, t))
}

// PurchaseItem is one line of a dealer purchase. ItemName and Size are
// add-time snapshots, same as bill lines.
type PurchaseItem struct {
	ID         uint    `gorm:"primaryKey;autoIncrement" json:"-"`
	PurchaseID string  `gorm:"size:100;index" json:"-"`
	ItemID     string  `gorm:"size:100;not null" json:"item_id"`
	ItemName   string  `gorm:"size:255;not null" json:"item_name"`
	VariantID  string  `gorm:"size:150;not null" json:"variant_id"`
	Size       string  `gorm:"size:50" json:"size"`
	Quantity   int     `gorm:"not null" json:"quantity"`
	CostPrice  float64 `gorm:"not null" json:"cost_price"`
	Subtotal   float64 `gorm:"not null" json:"subtotal"`
}

// TableName returns the table name for the PurchaseItem model
func (PurchaseItem) TableName() string {
	return "purchase_items"
}
