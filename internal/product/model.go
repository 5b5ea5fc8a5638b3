package product

import "time"

type Product struct {
	ID         string    `json:"id"`
	StoreID    string    `json:"store_id"`
	Name       string    `json:"name"`
	Price      float64   `json:"price"`
	Stock      int       `json:"stock"`
	Location   *string   `json:"location"`
	CategoryID *string   `json:"category_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// UpdateParams carries a partial update; nil fields keep their value.
type UpdateParams struct {
	Name       *string
	Price      *float64
	Stock      *int
	Location   *string
	CategoryID *string
}

func (p UpdateParams) HasAnyField() bool {
	return p.Name != nil ||
		p.Price != nil ||
		p.Stock != nil ||
		p.Location != nil ||
		p.CategoryID != nil
}
