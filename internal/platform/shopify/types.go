// Package shopify holds the raw Shopify payload shapes and their mapping into
// and out of the canonical records. Shopify uses explicit JSON null for "not
// set", so optional scalars are pointers; a nil pointer covers both null and
// an omitted key.
package shopify

import (
	"storefront/internal/domain/entity"
	"storefront/internal/platform"
)

// Money mirrors a Shopify MoneyV2 value.
type Money struct {
	Amount       platform.Decimal `json:"amount"`
	CurrencyCode string           `json:"currencyCode"`
}

// Customer mirrors the customer state exposed by the Shopify storefront SDK.
type Customer struct {
	ID          *platform.ID `json:"id"`
	FirstName   *string      `json:"firstName"`
	LastName    *string      `json:"lastName"`
	DisplayName *string      `json:"displayName"`
	Email       *string      `json:"email"`
	Phone       *string      `json:"phone"`
	IsLoggedIn  bool         `json:"isLoggedIn"`
	Status      string       `json:"status"`
	Addresses   []Address    `json:"addresses"`
	Orders      []Order      `json:"orders"`
}

// Address mirrors a Shopify mailing address.
type Address struct {
	ID        platform.ID `json:"id"`
	Address1  *string     `json:"address1"`
	Address2  *string     `json:"address2"`
	City      *string     `json:"city"`
	Company   *string     `json:"company"`
	Country   *string     `json:"country"`
	FirstName *string     `json:"firstName"`
	LastName  *string     `json:"lastName"`
	Phone     *string     `json:"phone"`
	Province  *string     `json:"province"`
	Zip       *string     `json:"zip"`
	IsDefault bool        `json:"isDefault"`
}

// Order mirrors a Shopify storefront order with its connection-style
// paginated line items.
type Order struct {
	ID                   platform.ID        `json:"id"`
	Name                 string             `json:"name"`
	ProcessedAt          string             `json:"processedAt"`
	FulfillmentStatus    string             `json:"fulfillmentStatus"`
	FinancialStatus      *string            `json:"financialStatus"`
	TotalPriceV2         Money              `json:"totalPriceV2"`
	SubtotalPriceV2      *Money             `json:"subtotalPriceV2"`
	TotalShippingPriceV2 *Money             `json:"totalShippingPriceV2"`
	LineItems            LineItemConnection `json:"lineItems"`
}

// LineItemConnection is the GraphQL connection wrapper around order line items.
type LineItemConnection struct {
	Edges []LineItemEdge `json:"edges"`
}

// LineItemEdge wraps a single order line item node.
type LineItemEdge struct {
	Node LineItem `json:"node"`
}

// LineItem is one purchased product within an order.
type LineItem struct {
	Title                string          `json:"title"`
	Quantity             int             `json:"quantity"`
	OriginalTotalPrice   Money           `json:"originalTotalPrice"`
	DiscountedTotalPrice Money           `json:"discountedTotalPrice"`
	Variant              LineItemVariant `json:"variant"`
}

// LineItemVariant is the purchased variant of an order line item.
type LineItemVariant struct {
	ID    platform.ID  `json:"id"`
	Title string       `json:"title"`
	Image VariantImage `json:"image"`
}

// VariantImage is the image attached to an order line-item variant.
type VariantImage struct {
	ID             platform.ID `json:"id"`
	OriginalSrc    string      `json:"originalSrc"`
	TransformedSrc string      `json:"transformedSrc"`
	AltText        string      `json:"altText"`
	Width          int         `json:"width"`
	Height         int         `json:"height"`
}

// Product mirrors a CMS-delivered Shopify product.
type Product struct {
	ExternalID      *platform.ID            `json:"externalId"`
	Name            string                  `json:"name"`
	Slug            string                  `json:"slug"`
	Description     string                  `json:"description"`
	DescriptionHTML string                  `json:"descriptionHtml"`
	Media           []MediaItem             `json:"media"`
	Thumbnail       *Thumbnail              `json:"thumbnail"`
	Variants        []Variant               `json:"variants"`
	MetaTitle       string                  `json:"metaTitle"`
	MetaDescription string                  `json:"metaDescription"`
	HighlightResult *entity.SearchHighlight `json:"_highlightResult"`
}

// MediaItem is a CMS media entry: an id alongside the image details.
type MediaItem struct {
	ID      platform.ID `json:"_id"`
	Details MediaDetail `json:"details"`
}

// MediaDetail is the image payload of a CMS media entry.
type MediaDetail struct {
	Name   string `json:"name"`
	Src    string `json:"src"`
	Alt    string `json:"alt"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// Thumbnail is the CMS product thumbnail.
type Thumbnail struct {
	Name     string `json:"name"`
	Src      string `json:"src"`
	Alt      string `json:"alt"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	MimeType string `json:"mimeType"`
	Size     int    `json:"size"`
}

// Variant is a Shopify product variant. StorefrontID is an opaque string on
// the GraphQL API and a numeric id on the REST API.
type Variant struct {
	StorefrontID platform.ID      `json:"storefrontId"`
	Name         string           `json:"name"`
	Price        platform.Decimal `json:"price"`
	SKU          string           `json:"sku"`
}

// SearchResult is a search-index hit for a Shopify product.
type SearchResult struct {
	ExternalID      *platform.ID            `json:"externalId"`
	Name            string                  `json:"name"`
	Slug            string                  `json:"slug"`
	Description     string                  `json:"description"`
	DescriptionHTML string                  `json:"descriptionHtml"`
	Media           []MediaItem             `json:"media"`
	Thumbnail       *Thumbnail              `json:"thumbnail"`
	Variants        []Variant               `json:"variants"`
	HighlightResult *entity.SearchHighlight `json:"_highlightResult"`
}

// Collection mirrors a CMS-delivered Shopify collection.
type Collection struct {
	Name            string       `json:"name"`
	Slug            string       `json:"slug"`
	Description     string       `json:"description"`
	DescriptionHTML string       `json:"descriptionHtml"`
	Image           *MediaDetail `json:"image"`
	Products        []Product    `json:"products"`
}

// CheckoutLineItem mirrors a Shopify cart line item. The REST API returns the
// flat snake_case fields with prices in cents; the GraphQL API nests the
// variant detail.
type CheckoutLineItem struct {
	ID        platform.ID      `json:"id"`
	VariantID platform.ID      `json:"variant_id"`
	Price     platform.Decimal `json:"price"`
	Image     string           `json:"image"`
	Handle    string           `json:"handle"`
	Quantity  int              `json:"quantity"`
	Title     string           `json:"title"`
	Variant   *CheckoutVariant `json:"variant"`
}

// CheckoutVariant is the GraphQL-side variant detail of a cart line item.
type CheckoutVariant struct {
	ID      platform.ID           `json:"id"`
	Image   CheckoutVariantImage  `json:"image"`
	Price   platform.Decimal      `json:"price"`
	Product *CheckoutVariantOwner `json:"product"`
	Title   string                `json:"title"`
}

// CheckoutVariantImage carries the variant image source.
type CheckoutVariantImage struct {
	Src string `json:"src"`
}

// CheckoutVariantOwner carries the product handle of a cart line-item variant.
type CheckoutVariantOwner struct {
	Handle string `json:"handle"`
}
