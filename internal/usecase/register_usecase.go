package usecase

import (
	"encoding/json"

	"storefront/internal/domain/entity"
	"storefront/internal/platform/bigcommerce"
	"storefront/internal/platform/shopify"
)

// RegisterPayload is the platform-specific account create payload.
type RegisterPayload struct {
	Shopify     *shopify.RegisterPayload     `json:"shopify,omitempty"`
	BigCommerce *bigcommerce.RegisterPayload `json:"bigCommerce,omitempty"`
}

// RawRegisterResult is the platform's response to an account create. Errors
// arrives either as an array of messages or as a field-keyed object, so it is
// kept raw until normalization.
type RawRegisterResult struct {
	Errors json.RawMessage `json:"errors"`
}

// RegisterUsecase validates and shapes account registration data.
type RegisterUsecase interface {
	// ValidateRegisterData reports whether the data carries every field the
	// active platform requires.
	ValidateRegisterData(data entity.RegisterData) bool

	// DenormalizeRegisterData shapes the account create payload, failing
	// when a required field is missing.
	DenormalizeRegisterData(data entity.RegisterData) (RegisterPayload, error)

	// NormalizeRegisterResult maps the platform's registration response to
	// the canonical form error list.
	NormalizeRegisterResult(raw RawRegisterResult) entity.RegisterResult
}
