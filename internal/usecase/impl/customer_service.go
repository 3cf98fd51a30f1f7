// Package impl provides the platform-aware implementations of the usecase
// contracts. Every service is constructed against a validated
// entity.PlatformContext and dispatches on it; the services themselves hold
// no mutable state.
package impl

import (
	"log/slog"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/platform/bigcommerce"
	"storefront/internal/platform/shopify"
	"storefront/internal/usecase"
)

type customerService struct {
	platform entity.PlatformContext
	logger   *slog.Logger
}

// NewCustomerService creates a customer normalization service bound to the
// given platform.
func NewCustomerService(platform entity.PlatformContext, logger *slog.Logger) usecase.CustomerUsecase {
	return &customerService{
		platform: platform,
		logger:   logger,
	}
}

func (s *customerService) NormalizeCustomer(raw usecase.RawCustomer) (entity.Customer, error) {
	switch {
	case raw.Canonical != nil:
		// Already normalized, nothing to do.
		return *raw.Canonical, nil

	case raw.Shopify != nil:
		if !raw.Shopify.IsLoggedIn {
			return loggedOutCustomer(raw.Shopify.Status, entity.PlatformShopify), nil
		}

		customer, err := shopify.NormalizeCustomer(*raw.Shopify)
		if err != nil {
			s.logger.Error("normalize shopify customer failed", slog.Any("error", err))
			return entity.Customer{}, err
		}
		return customer, nil

	case raw.BigCommerce != nil:
		if !raw.BigCommerce.IsLoggedIn {
			return loggedOutCustomer(raw.BigCommerce.Status, entity.PlatformBigCommerce), nil
		}

		customer, err := bigcommerce.NormalizeCustomer(*raw.BigCommerce)
		if err != nil {
			s.logger.Error("normalize bigcommerce customer failed", slog.Any("error", err))
			return entity.Customer{}, err
		}
		return customer, nil

	default:
		return entity.Customer{}, domainerrors.ErrUnknownPlatformRecord.WrapMessage("normalize customer")
	}
}

func (s *customerService) DenormalizeCreateAddress(input entity.AddressInput) (usecase.AddressPayload, error) {
	switch s.platform.Platform {
	case entity.PlatformShopify:
		payload := shopify.DenormalizeAddressInput(input)
		return usecase.AddressPayload{Shopify: &payload}, nil

	case entity.PlatformBigCommerce:
		payload, err := bigcommerce.DenormalizeAddressInput(input)
		if err != nil {
			return usecase.AddressPayload{}, err
		}
		return usecase.AddressPayload{BigCommerce: &payload}, nil

	default:
		return usecase.AddressPayload{}, domainerrors.ErrUnsupportedPlatform.WrapMessage("denormalize create address")
	}
}

func (s *customerService) DenormalizeUpdateAddress(input entity.AddressInput, addressID string) (usecase.UpdateAddressPayload, error) {
	switch s.platform.Platform {
	case entity.PlatformShopify:
		payload := shopify.DenormalizeUpdateAddressInput(input, addressID)
		return usecase.UpdateAddressPayload{Shopify: &payload}, nil

	case entity.PlatformBigCommerce:
		payload, err := bigcommerce.DenormalizeUpdateAddressInput(input, addressID)
		if err != nil {
			return usecase.UpdateAddressPayload{}, err
		}
		return usecase.UpdateAddressPayload{BigCommerce: &payload}, nil

	default:
		return usecase.UpdateAddressPayload{}, domainerrors.ErrUnsupportedPlatform.WrapMessage("denormalize update address")
	}
}

func (s *customerService) DenormalizeDeleteAddress(addressID string) (usecase.DeleteAddressID, error) {
	switch s.platform.Platform {
	case entity.PlatformShopify:
		id := shopify.DenormalizeDeleteAddressID(addressID)
		return usecase.DeleteAddressID{Shopify: &id}, nil

	case entity.PlatformBigCommerce:
		id, err := bigcommerce.DenormalizeDeleteAddressID(addressID)
		if err != nil {
			return usecase.DeleteAddressID{}, err
		}
		return usecase.DeleteAddressID{BigCommerce: &id}, nil

	default:
		return usecase.DeleteAddressID{}, domainerrors.ErrUnsupportedPlatform.WrapMessage("denormalize delete address")
	}
}

// loggedOutCustomer is the minimal canonical shape for an anonymous visitor.
func loggedOutCustomer(status string, origin entity.Platform) entity.Customer {
	return entity.Customer{
		IsLoggedIn: false,
		Status:     entity.CustomerStatus(status),
		Origin:     origin,
	}
}
