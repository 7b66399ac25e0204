package product

import "time"

// Product is the catalog payload carried by product lifecycle events.
// Quantity is the stock level; stock-update events republish the whole
// document with the new quantity rather than a delta.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
	InStock     bool      `json:"inStock"`
	Quantity    int       `json:"quantity"`
	CreatedAt   time.Time `json:"createdAt,omitempty"`
	UpdatedAt   time.Time `json:"updatedAt,omitempty"`
}
