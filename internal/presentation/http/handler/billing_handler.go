package handler

import (
	"time"

	"github.com/Prathamesh404NotFound/Billing-System/internal/application/service"
	"github.com/Prathamesh404NotFound/Billing-System/internal/domain/enum"
	"github.com/Prathamesh404NotFound/Billing-System/internal/domain/repository"
	"github.com/Prathamesh404NotFound/Billing-System/internal/presentation/http/dto/request"
	"github.com/Prathamesh404NotFound/Billing-System/internal/presentation/http/dto/response"
	"github.com/Prathamesh404NotFound/Billing-System/pkg/pagination"
	"github.com/gin-gonic/gin"
)

// BillingHandler handles draft-bill and bill-history HTTP requests
type BillingHandler struct {
	billingService *service.BillingService
}

// NewBillingHandler creates a new billing handler
func NewBillingHandler(billingService *service.BillingService) *BillingHandler {
	return &BillingHandler{billingService: billingService}
}

// GetDraft returns the register's current draft, creating one if needed
func (h *BillingHandler) GetDraft(c *gin.Context) {
	registerID := GetRegisterID(c)

	draft := h.billingService.GetDraft(registerID)
	if draft == nil {
		draft = h.billingService.CreateNewBill(c.Request.Context(), registerID)
	}

	response.OK(c, "Draft retrieved successfully", draft)
}

// NewDraft discards the register's draft and starts a fresh one
func (h *BillingHandler) NewDraft(c *gin.Context) {
	registerID := GetRegisterID(c)

	draft := h.billingService.CreateNewBill(c.Request.Context(), registerID)

	response.OK(c, "New draft started", draft)
}

// AddItem adds a line to the register's draft
func (h *BillingHandler) AddItem(c *gin.Context) {
	registerID := GetRegisterID(c)

	var req request.AddBillItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	draft, err := h.billingService.AddItemToBill(c.Request.Context(), registerID, req.ItemID, req.VariantID, req.Quantity, req.Price)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item added to bill", draft)
}

// UpdateItem changes the quantity of a draft line
func (h *BillingHandler) UpdateItem(c *gin.Context) {
	registerID := GetRegisterID(c)

	variantID := c.Param("variant_id")
	if variantID == "" {
		response.BadRequest(c, "Variant ID is required")
		return
	}

	var req request.UpdateBillItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	draft, err := h.billingService.UpdateBillItem(registerID, variantID, req.Quantity)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Bill item updated", draft)
}

// RemoveItem removes a line from the register's draft
func (h *BillingHandler) RemoveItem(c *gin.Context) {
	registerID := GetRegisterID(c)

	variantID := c.Param("variant_id")
	if variantID == "" {
		response.BadRequest(c, "Variant ID is required")
		return
	}

	draft, err := h.billingService.RemoveItemFromBill(registerID, variantID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item removed from bill", draft)
}

// SetDiscount sets the draft's discount value and type
func (h *BillingHandler) SetDiscount(c *gin.Context) {
	registerID := GetRegisterID(c)

	var req request.SetDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	draft, err := h.billingService.SetDiscount(registerID, req.Value, enum.DiscountType(req.Type))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Discount applied", draft)
}

// Save finalizes the register's draft into an immutable bill record
func (h *BillingHandler) Save(c *gin.Context) {
	registerID := GetRegisterID(c)

	var req request.SaveBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	bill, err := h.billingService.SaveBill(c.Request.Context(), registerID, enum.PaymentMode(req.PaymentMode), req.CustomerName)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Bill saved successfully", bill)
}

// Get returns a saved bill by its ID
func (h *BillingHandler) Get(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, "Bill ID is required")
		return
	}

	bill, err := h.billingService.GetBill(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Bill retrieved successfully", bill)
}

// List returns saved bills, newest first
func (h *BillingHandler) List(c *gin.Context) {
	var filter request.BillFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.BillFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    filter.Page,
			PerPage: filter.PerPage,
		},
	}
	params.Pagination.Validate()

	if filter.From != "" {
		from, err := time.Parse(time.RFC3339, filter.From)
		if err != nil {
			response.BadRequest(c, "Invalid 'from' date; expected RFC 3339")
			return
		}
		params.From = from
	}
	if filter.To != "" {
		to, err := time.Parse(time.RFC3339, filter.To)
		if err != nil {
			response.BadRequest(c, "Invalid 'to' date; expected RFC 3339")
			return
		}
		params.To = to
	}

	result, err := h.billingService.ListBills(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Bills retrieved successfully", result)
}
