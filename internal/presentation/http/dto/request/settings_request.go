package request

// SaveSettingsRequest replaces the shop settings wholesale
type SaveSettingsRequest struct {
	Name            string  `json:"name" binding:"required"`
	Address         string  `json:"address"`
	ContactNumber   string  `json:"contact_number"`
	WhatsappNumber  string  `json:"whatsapp_number"`
	DefaultDiscount float64 `json:"default_discount"`
	Theme           string  `json:"theme"`
	AccentColor     string  `json:"accent_color"`
}
