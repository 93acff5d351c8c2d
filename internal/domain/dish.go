package domain

// Dish is a menu entry. Price is in currency minor units and is always a
// positive integer once stored.
type Dish struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int    `json:"price"`
	ImageURL    string `json:"image_url"`
}
