package entity

// InventoryTracking tells the option-selection UI at which level stock is kept.
type InventoryTracking string

const (
	InventoryTrackingProduct InventoryTracking = "product"
	InventoryTrackingVariant InventoryTracking = "variant"
	InventoryTrackingNone    InventoryTracking = "none"
)

// Product is the canonical product record used for display and option
// selection. Options is always populated with at least one option so the
// selection UI is uniform across platforms; for Shopify a synthetic single
// "Variant" option is manufactured from the variant list.
type Product struct {
	ID                string            `json:"id,omitempty"`
	Slug              string            `json:"slug"`
	Name              string            `json:"name"`
	Description       string            `json:"description"`
	Price             string            `json:"price,omitempty"`
	Media             []Media           `json:"media"`
	Thumbnail         *Media            `json:"thumbnail,omitempty"`
	Variants          []ProductVariant  `json:"variants"`
	Options           []ProductOption   `json:"options"`
	MetaTitle         string            `json:"metaTitle"`
	MetaDescription   string            `json:"metaDescription"`
	SearchResult      *SearchHighlight  `json:"searchResult,omitempty"`
	InventoryTracking InventoryTracking `json:"inventoryTracking,omitempty"`

	// Origin records which platform produced this record. A non-empty Origin
	// marks the record as already canonical.
	Origin Platform `json:"origin"`
}

// IsCanonical reports whether the record has already been normalized.
func (p Product) IsCanonical() bool {
	return p.Origin != ""
}

// ProductVariant is a purchasable variant of a product. StorefrontID carries
// the platform cart key: an opaque string for the Shopify GraphQL API, a
// stringified numeric id for the Shopify REST and BigCommerce APIs.
type ProductVariant struct {
	StorefrontID string               `json:"storefrontId"`
	Name         string               `json:"name"`
	Price        string               `json:"price,omitempty"`
	SKU          string               `json:"sku,omitempty"`
	OptionValues []VariantOptionValue `json:"optionValues,omitempty"`
}

// ProductOption is a variant-defining option or a BigCommerce modifier,
// merged into one shape for the selection UI.
type ProductOption struct {
	ID           string               `json:"id"`
	DisplayName  string               `json:"displayName"`
	OptionValues []ProductOptionValue `json:"optionValues"`
	Required     bool                 `json:"required"`
	DefaultValue string               `json:"defaultValue,omitempty"`
}

// ProductOptionValue is one selectable value of an option.
type ProductOptionValue struct {
	Text  string `json:"text"`
	Value string `json:"value"`
}

// VariantOptionValue links an option value back to the option it belongs to.
type VariantOptionValue struct {
	OptionID string `json:"optionId"`
	Text     string `json:"text"`
	Value    string `json:"value"`
}

// SearchHighlight carries the search-engine highlight payload for a product
// hit, preserved verbatim for the result list renderer.
type SearchHighlight struct {
	Name        *HighlightField `json:"name,omitempty"`
	Description *HighlightField `json:"description,omitempty"`
}

// HighlightField is a single highlighted attribute of a search hit.
type HighlightField struct {
	Value            string   `json:"value"`
	MatchLevel       string   `json:"matchLevel,omitempty"`
	MatchedWords     []string `json:"matchedWords,omitempty"`
	FullyHighlighted bool     `json:"fullyHighlighted,omitempty"`
}
