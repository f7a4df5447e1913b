package domain

// Product is a row in the catalog store. Color and Spin are opaque display
// attributes; the cart never interprets them.
type Product struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Image       string  `json:"image,omitempty"`
	Color       string  `json:"color"`
	Spin        string  `json:"spin"`
}
