package entity

// Media describes an image attached to a product or variant.
type Media struct {
	ID             string `json:"id,omitempty"`
	Name           string `json:"name,omitempty"`
	Src            string `json:"src"`
	TransformedSrc string `json:"transformedSrc,omitempty"`
	Alt            string `json:"alt,omitempty"`
	Width          int    `json:"width,omitempty"`
	Height         int    `json:"height,omitempty"`
}

// Order is a canonical customer order.
type Order struct {
	ID                 string         `json:"id"`
	Name               string         `json:"name"` // human-readable order number
	ProcessedAt        string         `json:"processedAt"`
	FulfillmentStatus  string         `json:"fulfillmentStatus"`
	FinancialStatus    string         `json:"financialStatus,omitempty"`
	SubtotalPrice      *Money         `json:"subtotalPrice,omitempty"`
	TotalShippingPrice *Money         `json:"totalShippingPrice,omitempty"`
	TotalPrice         Money          `json:"totalPrice"`
	Products           []OrderProduct `json:"products"`
}

// OrderProduct is a line item within an order.
type OrderProduct struct {
	Title                string               `json:"title"`
	Quantity             int                  `json:"quantity"`
	OriginalTotalPrice   Money                `json:"originalTotalPrice"`
	DiscountedTotalPrice Money                `json:"discountedTotalPrice"`
	Variant              *OrderProductVariant `json:"variant,omitempty"`
}

// OrderProductVariant identifies the purchased variant of an order line item.
type OrderProductVariant struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Image *Media `json:"image,omitempty"`
}
