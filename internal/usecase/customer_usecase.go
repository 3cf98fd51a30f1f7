// Package usecase defines the normalization contracts between the raw
// platform payloads and the canonical records the view layer consumes.
package usecase

import (
	"storefront/internal/domain/entity"
	"storefront/internal/platform/bigcommerce"
	"storefront/internal/platform/shopify"
)

// RawCustomer is the tagged union of the customer shapes this layer accepts:
// exactly one variant is set. Canonical carries an already-normalized record
// for the idempotent passthrough.
type RawCustomer struct {
	Canonical   *entity.Customer
	Shopify     *shopify.Customer
	BigCommerce *bigcommerce.Customer
}

// AddressPayload is the platform-specific address create payload; the variant
// matching the active platform is set.
type AddressPayload struct {
	Shopify     *shopify.AddressPayload     `json:"shopify,omitempty"`
	BigCommerce *bigcommerce.AddressPayload `json:"bigCommerce,omitempty"`
}

// UpdateAddressPayload is the platform-specific address update payload.
type UpdateAddressPayload struct {
	Shopify     *shopify.UpdateAddressPayload     `json:"shopify,omitempty"`
	BigCommerce *bigcommerce.UpdateAddressPayload `json:"bigCommerce,omitempty"`
}

// DeleteAddressID is the platform-typed identifier of an address delete:
// Shopify keys addresses by string, BigCommerce by number.
type DeleteAddressID struct {
	Shopify     *string `json:"shopify,omitempty"`
	BigCommerce *int    `json:"bigCommerce,omitempty"`
}

// CustomerUsecase normalizes platform customer state and shapes the address
// CRUD payloads. All methods are pure; the platform is fixed at construction.
type CustomerUsecase interface {
	// NormalizeCustomer maps a raw platform customer to the canonical record.
	// An already-canonical input is returned unchanged; a logged-out input
	// yields the minimal logged-out shape.
	NormalizeCustomer(raw RawCustomer) (entity.Customer, error)

	// DenormalizeCreateAddress shapes the address create payload for the
	// active platform.
	DenormalizeCreateAddress(input entity.AddressInput) (AddressPayload, error)

	// DenormalizeUpdateAddress shapes the address update payload, coercing
	// the target identifier to the platform's type.
	DenormalizeUpdateAddress(input entity.AddressInput, addressID string) (UpdateAddressPayload, error)

	// DenormalizeDeleteAddress coerces the target identifier for an address
	// delete.
	DenormalizeDeleteAddress(addressID string) (DeleteAddressID, error)
}
