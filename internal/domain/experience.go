package domain

// Experience represents a bookable experience from the external catalog
// service. The storefront only depends on Category for tenant scoping; the
// remaining fields pass through to the rendering layer untouched.
type Experience struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	ShopName    string  `json:"shop_name"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Duration    int     `json:"duration"`
	Level       string  `json:"level"`
	City        string  `json:"city"`
	Latitude    float64 `json:"latitude,omitempty"`
	Longitude   float64 `json:"longitude,omitempty"`
}
