package entity

// CheckoutLineItem is the canonical cart line item. LineItemID is populated
// for BigCommerce only; Modifiers carries BigCommerce option selections so a
// quantity update can round-trip them.
type CheckoutLineItem struct {
	ID         string            `json:"id"`
	LineItemID string            `json:"lineItemId,omitempty"`
	Title      string            `json:"title"`
	Subtitle   string            `json:"subtitle,omitempty"`
	Price      string            `json:"price,omitempty"`
	Quantity   int               `json:"quantity"`
	VariantID  string            `json:"variantId,omitempty"`
	ImageURL   string            `json:"imageUrl,omitempty"`
	Slug       string            `json:"slug,omitempty"`
	Modifiers  []OptionSelection `json:"modifiers,omitempty"`
}

// OptionSelection is the numeric option/value pair the BigCommerce line-item
// API requires.
type OptionSelection struct {
	OptionID    int `json:"optionId"`
	OptionValue int `json:"optionValue"`
}

// OptionState is the UI's selection state for a single product option, keyed
// by option id in the selection map. A nil Value means nothing is selected
// yet.
type OptionState struct {
	Value    *string `json:"value"`
	Required bool    `json:"required"`
}
