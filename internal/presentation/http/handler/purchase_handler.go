package handler

import (
	"io"
	"time"

	"github.com/Prathamesh404NotFound/Billing-System/internal/application/service"
	"github.com/Prathamesh404NotFound/Billing-System/internal/domain/repository"
	"github.com/Prathamesh404NotFound/Billing-System/internal/presentation/http/dto/request"
	"github.com/Prathamesh404NotFound/Billing-System/internal/presentation/http/dto/response"
	"github.com/Prathamesh404NotFound/Billing-System/pkg/pagination"
	"github.com/gin-gonic/gin"
)

// maxBillImageSize bounds uploaded bill photos at 10 MiB.
const maxBillImageSize = 10 << 20

// PurchaseHandler handles dealer-purchase HTTP requests, including
// AI-assisted extraction from bill photos.
type PurchaseHandler struct {
	purchaseService   *service.PurchaseService
	extractionService *service.ExtractionService
}

// NewPurchaseHandler creates a new purchase handler
func NewPurchaseHandler(purchaseService *service.PurchaseService, extractionService *service.ExtractionService) *PurchaseHandler {
	return &PurchaseHandler{
		purchaseService:   purchaseService,
		extractionService: extractionService,
	}
}

// List handles listing purchases, optionally filtered by dealer
func (h *PurchaseHandler) List(c *gin.Context) {
	var filter request.PurchaseFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.PurchaseFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    filter.Page,
			PerPage: filter.PerPage,
		},
		DealerID: filter.DealerID,
	}
	params.Pagination.Validate()

	result, err := h.purchaseService.ListPurchases(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Purchases retrieved successfully", result)
}

// Get handles getting a single purchase
func (h *PurchaseHandler) Get(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, "Purchase ID is required")
		return
	}

	purchase, err := h.purchaseService.GetPurchase(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Purchase retrieved successfully", purchase)
}

// Create handles recording a purchase entry
func (h *PurchaseHandler) Create(c *gin.Context) {
	var req request.CreatePurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	input := &service.CreatePurchaseInput{
		DealerID: req.DealerID,
		Notes:    req.Notes,
	}

	if req.PurchaseDate != "" {
		purchaseDate, err := time.Parse(time.RFC3339, req.PurchaseDate)
		if err != nil {
			response.BadRequest(c, "Invalid purchase date; expected RFC 3339")
			return
		}
		input.PurchaseDate = purchaseDate
	}

	for _, line := range req.Items {
		input.Items = append(input.Items, service.PurchaseLineInput{
			ItemID:    line.ItemID,
			VariantID: line.VariantID,
			Size:      line.Size,
			Quantity:  line.Quantity,
			CostPrice: line.CostPrice,
		})
	}

	purchase, err := h.purchaseService.CreatePurchase(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Purchase recorded successfully", purchase)
}

// Extract handles reading a purchase bill photo and matching its lines
// against the catalog. The result is a proposal for the operator to review;
// nothing is persisted here.
func (h *PurchaseHandler) Extract(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		response.BadRequest(c, "Bill image is required")
		return
	}
	if fileHeader.Size > maxBillImageSize {
		response.BadRequest(c, "Bill image is too large")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.BadRequest(c, "Could not read bill image")
		return
	}
	defer file.Close()

	image, err := io.ReadAll(io.LimitReader(file, maxBillImageSize))
	if err != nil {
		response.BadRequest(c, "Could not read bill image")
		return
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "image/jpeg"
	}

	result, err := h.extractionService.ExtractPurchaseBill(c.Request.Context(), image, mimeType)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Bill extracted successfully", result)
}
