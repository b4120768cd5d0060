package request

// AlterationRequest represents an alteration create/update request.
// DueDate is RFC 3339; empty means no due date.
type AlterationRequest struct {
	CustomerName       string `json:"customer_name" binding:"required"`
	ContactNumber      string `json:"contact_number"`
	GarmentDescription string `json:"garment_description" binding:"required"`
	Measurements       string `json:"measurements" binding:"required"`
	DueDate            string `json:"due_date"`
	Notes              string `json:"notes"`
}

// AlterationFilterRequest represents alteration filter parameters
type AlterationFilterRequest struct {
	Search    string `form:"search"`
	Completed *bool  `form:"completed"`
	Page      int    `form:"page"`
	PerPage   int    `form:"per_page"`
}
