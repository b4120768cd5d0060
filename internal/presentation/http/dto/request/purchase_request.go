package request

// PurchaseLineRequest is one line of a purchase entry
type PurchaseLineRequest struct {
	ItemID    string  `json:"item_id" binding:"required"`
	VariantID string  `json:"variant_id" binding:"required"`
	Size      string  `json:"size"`
	Quantity  int     `json:"quantity" binding:"required,min=1"`
	CostPrice float64 `json:"cost_price" binding:"required,gt=0"`
}

// CreatePurchaseRequest represents a purchase entry creation request.
// PurchaseDate is RFC 3339; empty means "now".
type CreatePurchaseRequest struct {
	DealerID     string                `json:"dealer_id" binding:"required"`
	PurchaseDate string                `json:"purchase_date"`
	Notes        string                `json:"notes"`
	Items        []PurchaseLineRequest `json:"items" binding:"required,min=1,dive"`
}

// PurchaseFilterRequest represents purchase filter parameters
type PurchaseFilterRequest struct {
	DealerID string `form:"dealer_id"`
	Page     int    `form:"page"`
	PerPage  int    `form:"per_page"`
}
