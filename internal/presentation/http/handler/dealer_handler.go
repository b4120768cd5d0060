package handler

import (
	"github.com/Prathamesh404NotFound/Billing-System/internal/application/service"
	"github.com/Prathamesh404NotFound/Billing-System/internal/presentation/http/dto/request"
	"github.com/Prathamesh404NotFound/Billing-System/internal/presentation/http/dto/response"
	"github.com/Prathamesh404NotFound/Billing-System/pkg/pagination"
	"github.com/gin-gonic/gin"
)

// DealerHandler handles dealer-related HTTP requests
type DealerHandler struct {
	dealerService *service.DealerService
}

// NewDealerHandler creates a new dealer handler
func NewDealerHandler(dealerService *service.DealerService) *DealerHandler {
	return &DealerHandler{dealerService: dealerService}
}

// List handles listing dealers
func (h *DealerHandler) List(c *gin.Context) {
	var filter request.DealerFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &pagination.PaginationParams{
		Page:    filter.Page,
		PerPage: filter.PerPage,
	}
	params.Validate()

	result, err := h.dealerService.ListDealers(c.Request.Context(), params, filter.Search)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Dealers retrieved successfully", result)
}

// Get handles getting a single dealer
func (h *DealerHandler) Get(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, "Dealer ID is required")
		return
	}

	dealer, err := h.dealerService.GetDealer(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Dealer retrieved successfully", dealer)
}

// Create handles creating a dealer
func (h *DealerHandler) Create(c *gin.Context) {
	var req request.DealerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	dealer, err := h.dealerService.CreateDealer(c.Request.Context(), dealerInput(&req))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Dealer created successfully", dealer)
}

// Update handles updating a dealer
func (h *DealerHandler) Update(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, "Dealer ID is required")
		return
	}

	var req request.DealerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	dealer, err := h.dealerService.UpdateDealer(c.Request.Context(), id, dealerInput(&req))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Dealer updated successfully", dealer)
}

// Delete handles deleting a dealer
func (h *DealerHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, "Dealer ID is required")
		return
	}

	if err := h.dealerService.DeleteDealer(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

func dealerInput(req *request.DealerRequest) *service.DealerInput {
	return &service.DealerInput{
		DealerName:     req.DealerName,
		ShopName:       req.ShopName,
		MobileNumber:   req.MobileNumber,
		WhatsappNumber: req.WhatsappNumber,
		Address:        req.Address,
		Notes:          req.Notes,
	}
}
