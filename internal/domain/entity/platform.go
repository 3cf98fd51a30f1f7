package entity

import "github.com/pkg/errors"

// Platform identifies the commerce backend a record came from or is headed
// to.
type Platform string

const (
	PlatformShopify     Platform = "shopify"
	PlatformBigCommerce Platform = "big_commerce"
)

// APIType identifies which of a platform's API families produced a payload.
// The families disagree on field naming and numeric encoding, so normalizers
// branch on it.
type APIType string

const (
	APITypeGraphQL    APIType = "graphql"
	APITypeREST       APIType = "rest"
	APITypeManagement APIType = "management"
)

// PlatformContext is the validated platform and API family a storefront runs
// against. Construct it with NewPlatformContext; the zero value is invalid.
type PlatformContext struct {
	Platform Platform `json:"platform"`
	APIType  APIType  `json:"apiType"`
}

// NewPlatformContext validates the configured platform pair. BigCommerce
// storefronts never speak REST, only graphql or management.
func NewPlatformContext(platform, apiType string) (PlatformContext, error) {
	p := Platform(platform)
	switch p {
	case PlatformShopify, PlatformBigCommerce:
	default:
		return PlatformContext{}, errors.Errorf("unsupported platform %q", platform)
	}

	a := APIType(apiType)
	switch a {
	case APITypeGraphQL, APITypeREST, APITypeManagement:
	default:
		return PlatformContext{}, errors.Errorf("unsupported api type %q", apiType)
	}

	if p == PlatformBigCommerce && a == APITypeREST {
		return PlatformContext{}, errors.Errorf("platform %q does not support api type %q", platform, apiType)
	}

	return PlatformContext{Platform: p, APIType: a}, nil
}
