// Ruthwik | 2026
// dto.go

package product

import (
	"time"
)

type CreateProductRequest struct {
	Name        string   `json:"name"        validate:"required,min=1,max=100"`
	Description string   `json:"description" validate:"required,min=1,max=1000"`
	Price       *float64 `json:"price"       validate:"required,gte=0"`
	Stock       *int     `json:"stock"       validate:"required,gte=0"`
	Category    string   `json:"category"    validate:"required,min=1"`
	Images      []Image  `json:"images"      validate:"omitempty,dive"`
}

type UpdateProductRequest struct {
	Name        *string  `json:"name,omitempty"        validate:"omitempty,min=1,max=100"`
	Description *string  `json:"description,omitempty" validate:"omitempty,min=1,max=1000"`
	Price       *float64 `json:"price,omitempty"       validate:"omitempty,gte=0"`
	Stock       *int     `json:"stock,omitempty"       validate:"omitempty,gte=0"`
	Category    *string  `json:"category,omitempty"    validate:"omitempty,min=1"`
	Images      *[]Image `json:"images,omitempty"      validate:"omitempty,dive"`
}

type ProductResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Stock       int       `json:"stock"`
	Category    string    `json:"category"`
	Images      []Image   `json:"images"`
	Sales       int       `json:"sales"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Stats are the dashboard aggregates derived from the catalog.
type Stats struct {
	TotalProducts  int            `json:"total_products"`
	InStock        int            `json:"in_stock"`
	LowStock       int            `json:"low_stock"`
	OutOfStock     int            `json:"out_of_stock"`
	InventoryValue float64        `json:"inventory_value"`
	Categories     map[string]int `json:"categories"`
}

func ToProductResponse(p *Product) ProductResponse {
	images := p.Images
	if images == nil {
		images = ImageList{}
	}

	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock,
		Category:    p.Category,
		Images:      images,
		Sales:       p.Sales,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func ToProductResponseList(products []Product) []ProductResponse {
	responses := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		responses = append(responses, ToProductResponse(&p))
	}
	return responses
}
