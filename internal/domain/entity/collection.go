package entity

// Collection is a canonical product collection (a BigCommerce category or a
// Shopify collection).
type Collection struct {
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Image       *Media    `json:"image,omitempty"`
	Products    []Product `json:"products"`
}
