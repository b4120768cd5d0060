package request

// AddBillItemRequest adds one line to the register's draft bill. Price is
// optional; zero means "use the catalog price for this variant".
type AddBillItemRequest struct {
	ItemID    string  `json:"item_id" binding:"required"`
	VariantID string  `json:"variant_id" binding:"required"`
	Quantity  int     `json:"quantity" binding:"required,min=1"`
	Price     float64 `json:"price"`
}

// UpdateBillItemRequest changes the quantity of a draft line
type UpdateBillItemRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}

// SetDiscountRequest sets the draft's discount value and type
type SetDiscountRequest struct {
	Value float64 `json:"value"`
	Type  string  `json:"type" binding:"required"`
}

// SaveBillRequest finalizes the draft into a saved bill
type SaveBillRequest struct {
	PaymentMode  string `json:"payment_mode" binding:"required"`
	CustomerName string `json:"customer_name"`
}

// BillFilterRequest represents bill history filter parameters
type BillFilterRequest struct {
	From    string `form:"from"`
	To      string `form:"to"`
	Page    int    `form:"page"`
	PerPage int    `form:"per_page"`
}
