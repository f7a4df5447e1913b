package domain

// CartLine is one product's entry in the cart. At most one line exists per
// product id and Quantity is always >= 1; a decrement that would reach zero
// removes the line instead.
type CartLine struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// CartTotals is the derived view of a cart: sum of price*quantity and sum of
// quantities. Both are zero for an empty cart.
type CartTotals struct {
	Subtotal float64 `json:"subtotal"`
	Count    int     `json:"count"`
}
