package handler

import (
	"time"

	"github.com/Prathamesh404NotFound/Billing-System/internal/application/service"
	"github.com/Prathamesh404NotFound/Billing-System/internal/domain/repository"
	"github.com/Prathamesh404NotFound/Billing-System/internal/presentation/http/dto/request"
	"github.com/Prathamesh404NotFound/Billing-System/internal/presentation/http/dto/response"
	"github.com/Prathamesh404NotFound/Billing-System/pkg/pagination"
	"github.com/gin-gonic/gin"
)

// AlterationHandler handles alteration-job HTTP requests
type AlterationHandler struct {
	alterationService *service.AlterationService
}

// NewAlterationHandler creates a new alteration handler
func NewAlterationHandler(alterationService *service.AlterationService) *AlterationHandler {
	return &AlterationHandler{alterationService: alterationService}
}

// List handles listing alteration jobs
func (h *AlterationHandler) List(c *gin.Context) {
	var filter request.AlterationFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.AlterationFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    filter.Page,
			PerPage: filter.PerPage,
		},
		Search:    filter.Search,
		Completed: filter.Completed,
	}
	params.Pagination.Validate()

	result, err := h.alterationService.ListAlterations(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Alterations retrieved successfully", result)
}

// Get handles getting a single alteration job
func (h *AlterationHandler) Get(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, "Alteration ID is required")
		return
	}

	alteration, err := h.alterationService.GetAlteration(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Alteration retrieved successfully", alteration)
}

// Create handles recording an alteration job
func (h *AlterationHandler) Create(c *gin.Context) {
	var req request.AlterationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	input, err := alterationInput(&req)
	if err != nil {
		response.BadRequest(c, "Invalid due date; expected RFC 3339")
		return
	}

	alteration, err := h.alterationService.CreateAlteration(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Alteration created successfully", alteration)
}

// Update handles updating an alteration job
func (h *AlterationHandler) Update(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, "Alteration ID is required")
		return
	}

	var req request.AlterationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	input, err := alterationInput(&req)
	if err != nil {
		response.BadRequest(c, "Invalid due date; expected RFC 3339")
		return
	}

	alteration, err := h.alterationService.UpdateAlteration(c.Request.Context(), id, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Alteration updated successfully", alteration)
}

// ToggleComplete flips the alteration between pending and completed
func (h *AlterationHandler) ToggleComplete(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, "Alteration ID is required")
		return
	}

	alteration, err := h.alterationService.ToggleComplete(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Alteration status updated", alteration)
}

// Delete handles deleting an alteration job
func (h *AlterationHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, "Alteration ID is required")
		return
	}

	if err := h.alterationService.DeleteAlteration(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

func alterationInput(req *request.AlterationRequest) (*service.AlterationInput, error) {
	input := &service.AlterationInput{
		CustomerName:       req.CustomerName,
		ContactNumber:      req.ContactNumber,
		GarmentDescription: req.GarmentDescription,
		Measurements:       req.Measurements,
		Notes:              req.Notes,
	}

	if req.DueDate != "" {
		dueDate, err := time.Parse(time.RFC3339, req.DueDate)
		if err != nil {
			return nil, err
		}
		input.DueDate = &dueDate
	}

	return input, nil
}
