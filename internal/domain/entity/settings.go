package entity

import "time"

// ShopSettings is the single shop-wide configuration record. It is replaced
// wholesale on save.
type ShopSettings struct {
	ID              uint      `gorm:"primaryKey" json:"-"`
	Name            string    `gorm:"size:255;not null" json:"name"`
	Address         string    `gorm:"type:text" json:"address"`
	ContactNumber   string    `gorm:"size:20" json:"contact_number"`
	WhatsappNumber  string    `gorm:"size:20" json:"whatsapp_number"`
	DefaultDiscount float64   `gorm:"default:0" json:"default_discount"`
	Theme           string    `gorm:"size:20;default:'light'" json:"theme"`
	AccentColor     string    `gorm:"size:20;default:'#4f46e5'" json:"accent_color"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// TableName returns the table name for the ShopSettings model
func (ShopSettings) TableName() string {
	return "shop_settings"
}

// DefaultShopSettings returns the configuration used until the shop saves its
// own.
func DefaultShopSettings() *ShopSettings {
	return &ShopSettings{
		ID:              1,
		Name:            "Fashion Hub Clothing",
		Address:         "123 Market Street, City Center",
		ContactNumber:   "+91 98765 43210",
		WhatsappNumber:  "+91 98765 43210",
		DefaultDiscount: 0,
		Theme:           "light",
		AccentColor:     "#4f46e5",
	}
}
