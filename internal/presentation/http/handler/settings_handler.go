package handler

import (
	"github.com/Prathamesh404NotFound/Billing-System/internal/application/service"
	"github.com/Prathamesh404NotFound/Billing-System/internal/presentation/http/dto/request"
	"github.com/Prathamesh404NotFound/Billing-System/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// SettingsHandler handles shop-settings HTTP requests
type SettingsHandler struct {
	settingsService *service.SettingsService
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// Get handles retrieving the shop settings
func (h *SettingsHandler) Get(c *gin.Context) {
	settings, err := h.settingsService.GetSettings(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Settings retrieved successfully", settings)
}

// Save handles replacing the shop settings
func (h *SettingsHandler) Save(c *gin.Context) {
	var req request.SaveSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	settings, err := h.settingsService.SaveSettings(c.Request.Context(), &service.SettingsInput{
		Name:            req.Name,
		Address:         req.Address,
		ContactNumber:   req.ContactNumber,
		WhatsappNumber:  req.WhatsappNumber,
		DefaultDiscount: req.DefaultDiscount,
		Theme:           req.Theme,
		AccentColor:     req.AccentColor,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Settings saved successfully", settings)
}
