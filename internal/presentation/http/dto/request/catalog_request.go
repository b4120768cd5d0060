package request

// VariantRequest is one size/price/stock row of an item
type VariantRequest struct {
	Size  string  `json:"size" binding:"required"`
	Price float64 `json:"price" binding:"required,gt=0"`
	Stock int     `json:"stock"`
}

// CreateItemRequest represents an item creation request
type CreateItemRequest struct {
	ID          string           `json:"id"`
	CategoryID  string           `json:"category_id" binding:"required"`
	Subcategory string           `json:"subcategory"`
	Name        string           `json:"name" binding:"required,min=2,max=255"`
	Description string           `json:"description"`
	Variants    []VariantRequest `json:"variants" binding:"required,min=1,dive"`
}

// UpdateItemRequest represents an item update request
type UpdateItemRequest struct {
	CategoryID  string           `json:"category_id" binding:"required"`
	Subcategory string           `json:"subcategory"`
	Name        string           `json:"name" binding:"required,min=2,max=255"`
	Description string           `json:"description"`
	Variants    []VariantRequest `json:"variants" binding:"required,min=1,dive"`
}

// ItemFilterRequest represents item filter parameters
type ItemFilterRequest struct {
	Search     string `form:"search"`
	CategoryID string `form:"category_id"`
	Page       int    `form:"page"`
	PerPage    int    `form:"per_page"`
}

// CategoryRequest represents a category create/update request
type CategoryRequest struct {
	Name string `json:"name" binding:"required,min=2,max=100"`
	Icon string `json:"icon"`
}
