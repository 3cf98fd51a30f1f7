package usecase

import (
	"storefront/internal/domain/entity"
	"storefront/internal/platform/bigcommerce"
	"storefront/internal/platform/shopify"
)

// RawProduct is the tagged union of the product shapes this layer accepts.
type RawProduct struct {
	Canonical   *entity.Product
	Shopify     *shopify.Product
	BigCommerce *bigcommerce.Product
}

// RawSearchResults carries a page of raw search hits from the active
// platform's search index.
type RawSearchResults struct {
	Shopify     []shopify.SearchResult
	BigCommerce []bigcommerce.SearchResult
}

// RawCollection is the tagged union of the collection shapes. BigCommerce
// calls these categories.
type RawCollection struct {
	Shopify     *shopify.Collection
	BigCommerce *bigcommerce.Category
}

// CatalogUsecase normalizes product, search and collection payloads.
type CatalogUsecase interface {
	// NormalizeProduct maps a raw platform product to the canonical record.
	// A nil input yields nil; an already-canonical input is returned
	// unchanged.
	NormalizeProduct(raw RawProduct) (*entity.Product, error)

	// NormalizeSearchResults maps a page of raw search hits to lightweight
	// canonical products.
	NormalizeSearchResults(raw RawSearchResults) ([]entity.Product, error)

	// NormalizeCollection maps a raw collection and its member products to
	// the canonical record. A nil input yields nil.
	NormalizeCollection(raw RawCollection) (*entity.Collection, error)
}
