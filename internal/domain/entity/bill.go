package entity

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/Prathamesh404NotFound/Billing-System/internal/domain/enum"
)

// Bill is a sale. While being assembled it is a register-scoped draft held in
// memory; once saved it is an immutable historical record.
type Bill struct {
	ID           string            `gorm:"size:100;primary_key" json:"id"`
	Date         time.Time         `gorm:"not null;index" json:"date"`
	CustomerName string            `gorm:"size:255" json:"customer_name,omitempty"`
	Items        []BillItem        `gorm:"foreignKey:BillID;constraint:OnDelete:CASCADE" json:"items"`
	Subtotal     float64           `gorm:"not null" json:"subtotal"`
	Discount     float64           `gorm:"not null" json:"discount"`
	DiscountType enum.DiscountType `gorm:"size:20;not null" json:"discount_type"`
	Total        float64           `gorm:"not null" json:"total"`
	PaymentMode  enum.PaymentMode  `gorm:"size:20;not null" json:"payment_mode"`
	CreatedAt    time.Time         `json:"created_at"`
}

// TableName returns the table name for the Bill model
func (Bill) TableName() string {
	return "bills"
}

var lastBillMilli atomic.Int64

// NewBillID derives a bill ID from the creation instant. IDs are primary
// keys, so the millisecond is bumped past the previous one when two bills
// are minted within the same millisecond.
func NewBillID(t time.Time) string {
	return fmt.Sprintf("BILL-%d", nextMilli(&lastBillMilli, t))
}

// nextMilli returns t in unix milliseconds, advanced past the last value
// handed out so consecutive calls never repeat.
func nextMilli(last *atomic.Int64, t time.Time) int64 {
	ms := t.UnixMilli()
	for {
		prev := last.Load()
		if ms <= prev {
			ms = prev + 1
		}
		if last.CompareAndSwap(prev, ms) {
			return ms
		}
	}
}

// BillItem is one line of a bill. ItemName and Size are snapshots taken at
// add-time and do not follow later catalog renames. Lines are unique per
// (variant, price): the same variant at a manually entered different price is
// a separate line.
type BillItem struct {
	ID        uint    `gorm:"primaryKey;autoIncrement" json:"-"`
	BillID    string  `gorm:"size:100;index" json:"-"`
	ItemID    string  `gorm:"size:100;not null" json:"item_id"`
	ItemName  string  `gorm:"size:255;not null" json:"item_name"`
	Price     float64 `gorm:"not null" json:"price"`
	Quantity  int     `gorm:"not null" json:"quantity"`
	Subtotal  float64 `gorm:"not null" json:"subtotal"`
	VariantID string  `gorm:"size:150;not null" json:"variant_id"`
	Size      string  `gorm:"size:50" json:"size"`
}

// TableName returns the table name for the BillItem model
func (BillItem) TableName() string {
	return "bill_items"
}
