package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Alteration tracks a garment alteration job. Independent of billing and
// inventory.
type Alteration struct {
	ID                 string     `gorm:"size:100;primary_key" json:"id"`
	CustomerName       string     `gorm:"size:255;not null" json:"customer_name"`
	ContactNumber      string     `gorm:"size:20" json:"contact_number,omitempty"`
	GarmentDescription string     `gorm:"type:text;not null" json:"garment_description"`
	Measurements       string     `gorm:"type:text;not null" json:"measurements"`
	DueDate            *time.Time `gorm:"type:date" json:"due_date,omitempty"`
	Notes              string     `gorm:"type:text" json:"notes,omitempty"`
	IsCompleted        bool       `gorm:"default:false" json:"is_completed"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

// BeforeCreate assigns an ID before creating a new alteration
func (a *Alteration) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	return nil
}

// TableName returns the table name for the Alteration model
func (Alteration) TableName() string {
	return "alterations"
}
