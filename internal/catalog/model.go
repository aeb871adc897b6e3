package catalog

// Product is a single catalog row. Description is optional and defaults to
// empty; price is required but its value is not otherwise validated.
type Product struct {
	ID          int64   `json:"id" db:"id"`
	Name        string  `json:"name" db:"name"`
	Description string  `json:"description" db:"description"`
	Price       float64 `json:"price" db:"price"`
}
