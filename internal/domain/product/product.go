package product

import "errors"

// CategoryAll is a caller convention, not a stored category: handlers pass it
// to mean "do not filter by category".
const CategoryAll = "all"

type Product struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	Featured    bool    `json:"featured"`
}

var ErrNotFound = errors.New("product not found")

// CreateProductRequest carries a candidate record for POST /products.
// Binding "required" rejects zero values, so a price of 0 fails validation
// the same way an absent price does.
type CreateProductRequest struct {
	Name        string  `json:"name" binding:"required"`
	Price       float64 `json:"price" binding:"required"`
	Category    string  `json:"category" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Image       string  `json:"image" binding:"required"`
	Featured    bool    `json:"featured"`
}
