// Package bigcommerce holds the raw BigCommerce payload shapes and their
// mapping into and out of the canonical records. BigCommerce omits keys it
// has no value for; pointer fields mark the scalars the normalizers must
// treat as optional.
package bigcommerce

import (
	"storefront/internal/domain/entity"
	"storefront/internal/platform"
)

// Customer mirrors the customer state exposed by the BigCommerce SDK.
type Customer struct {
	ID         *platform.ID `json:"id"`
	FirstName  *string      `json:"firstName"`
	LastName   *string      `json:"lastName"`
	Email      *string      `json:"email"`
	Phone      *string      `json:"phone"`
	IsLoggedIn bool         `json:"isLoggedIn"`
	Status     string       `json:"status"`
	Addresses  []Address    `json:"addresses"`
	Orders     []Order      `json:"orders"`
}

// Address mirrors a BigCommerce customer address. Unlike Shopify, the SDK
// returns complete records with plain (never null) fields.
type Address struct {
	ID          platform.ID `json:"id"`
	Address1    string      `json:"address1"`
	Address2    string      `json:"address2"`
	City        string      `json:"city"`
	Company     string      `json:"company"`
	Country     string      `json:"country"`
	CountryCode string      `json:"countryCode"`
	FirstName   string      `json:"firstName"`
	LastName    string      `json:"lastName"`
	Phone       string      `json:"phone"`
	State       string      `json:"state"`
	PostalCode  string      `json:"postalCode"`
}

// Order mirrors a BigCommerce order. Money values arrive as bare decimal
// strings without a currency, resolved against the order currency code.
type Order struct {
	ID                  platform.ID       `json:"id"`
	DateCreated         string            `json:"dateCreated"`
	Status              string            `json:"status"`
	PaymentStatus       *string           `json:"paymentStatus"`
	TotalIncTax         platform.Decimal  `json:"totalIncTax"`
	SubtotalIncTax      *platform.Decimal `json:"subtotalIncTax"`
	ShippingCostIncTax  *platform.Decimal `json:"shippingCostIncTax"`
	CurrencyCode        string            `json:"currencyCode"`
	DefaultCurrencyCode string            `json:"defaultCurrencyCode"`
	Products            []OrderProduct    `json:"products"`
}

// OrderProduct is one purchased product within an order.
type OrderProduct struct {
	Name             string               `json:"name"`
	Quantity         int                  `json:"quantity"`
	TotalIncTax      platform.Decimal     `json:"totalIncTax"`
	AppliedDiscounts []AppliedDiscount    `json:"appliedDiscounts"`
	ProductOptions   []OrderProductOption `json:"productOptions"`
}

// AppliedDiscount is a per-product discount applied to an order line.
type AppliedDiscount struct {
	Amount platform.Decimal `json:"amount"`
}

// OrderProductOption is the customer-facing option selection recorded on an
// order line.
type OrderProductOption struct {
	DisplayName  string `json:"display_name_customer"`
	DisplayValue string `json:"display_value_customer"`
}

// Product mirrors a CMS-delivered BigCommerce product.
type Product struct {
	ID                platform.ID             `json:"id"`
	Name              string                  `json:"name"`
	Price             platform.Decimal        `json:"price"`
	URL               string                  `json:"url"`
	Description       string                  `json:"description"`
	Images            []Image                 `json:"images"`
	Variants          []Variant               `json:"variants"`
	Modifiers         []Option                `json:"modifiers"`
	Options           []Option                `json:"options"`
	PageTitle         string                  `json:"page_title"`
	MetaDescription   string                  `json:"meta_description"`
	InventoryTracking string                  `json:"inventoryTracking"`
	HighlightResult   *entity.SearchHighlight `json:"_highlightResult"`
}

// Image is a CMS image entry: an id alongside the image payload.
type Image struct {
	ID    platform.ID `json:"_id"`
	Media MediaDetail `json:"media"`
}

// MediaDetail is the image payload of a CMS image entry.
type MediaDetail struct {
	Name   string `json:"name"`
	Src    string `json:"src"`
	Alt    string `json:"alt"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// Variant is a purchasable BigCommerce variant, keyed by numeric id.
type Variant struct {
	ID           platform.ID          `json:"id"`
	Price        platform.Decimal     `json:"price"`
	SKU          string               `json:"sku"`
	OptionValues []VariantOptionValue `json:"optionValues"`
}

// VariantOptionValue links a variant to the option values that define it.
type VariantOptionValue struct {
	ID       platform.ID `json:"id"`
	Label    string      `json:"label"`
	OptionID platform.ID `json:"optionId"`
}

// Option is a variant-defining option or a modifier. Required is omitted for
// variant options (they are always required) and optional on modifiers.
type Option struct {
	ID           platform.ID   `json:"id"`
	DisplayName  string        `json:"displayName"`
	Required     *bool         `json:"required"`
	OptionValues []OptionValue `json:"optionValues"`
}

// OptionValue is one selectable value of an option or modifier.
type OptionValue struct {
	ID        platform.ID `json:"id"`
	IsDefault bool        `json:"isDefault"`
	Label     string      `json:"label"`
}

// Category mirrors a CMS-delivered BigCommerce category.
type Category struct {
	Name        string       `json:"name"`
	URL         string       `json:"url"`
	Description string       `json:"description"`
	Image       *MediaDetail `json:"image"`
	Products    []Product    `json:"products"`
}

// CheckoutLineItem mirrors a BigCommerce cart line item.
type CheckoutLineItem struct {
	ID               platform.ID              `json:"id"`
	LineItemID       string                   `json:"lineItemId"`
	Brand            string                   `json:"brand"`
	Name             string                   `json:"name"`
	ImageURL         string                   `json:"imageUrl"`
	ListPrice        platform.Decimal         `json:"listPrice"`
	Quantity         int                      `json:"quantity"`
	VariantID        platform.ID              `json:"variantId"`
	OptionSelections []entity.OptionSelection `json:"optionSelections"`
}

// SearchResult is a search-index hit for a BigCommerce product.
type SearchResult struct {
	ID              platform.ID             `json:"id"`
	Images          []Image                 `json:"images"`
	Name            string                  `json:"name"`
	Path            string                  `json:"path"`
	Price           platform.Decimal        `json:"price"`
	SKU             string                  `json:"sku"`
	HighlightResult *entity.SearchHighlight `json:"_highlightResult"`
}
