package request

// DealerRequest represents a dealer create/update request
type DealerRequest struct {
	DealerName     string `json:"dealer_name" binding:"required"`
	ShopName       string `json:"shop_name"`
	MobileNumber   string `json:"mobile_number" binding:"required"`
	WhatsappNumber string `json:"whatsapp_number"`
	Address        string `json:"address"`
	Notes          string `json:"notes"`
}

// DealerFilterRequest represents dealer filter parameters
type DealerFilterRequest struct {
	Search  string `form:"search"`
	Page    int    `form:"page"`
	PerPage int    `form:"per_page"`
}
