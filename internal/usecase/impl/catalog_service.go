package impl

import (
	"log/slog"

	"github.com/google/uuid"

	"storefront/internal/domain/entity"
	"storefront/internal/platform/bigcommerce"
	"storefront/internal/platform/shopify"
	"storefront/internal/usecase"
)

type catalogService struct {
	platform    entity.PlatformContext
	logger      *slog.Logger
	newOptionID func(base string) string
}

// NewCatalogService creates a catalog normalization service bound to the
// given platform. Synthetic option ids are minted per product so repeated
// normalizations of the same payload never collide in the option state map.
func NewCatalogService(platform entity.PlatformContext, logger *slog.Logger) usecase.CatalogUsecase {
	return &catalogService{
		platform:    platform,
		logger:      logger,
		newOptionID: newOptionID,
	}
}

func newOptionID(base string) string {
	return base + "-" + uuid.NewString()
}

func (s *catalogService) NormalizeProduct(raw usecase.RawProduct) (*entity.Product, error) {
	switch {
	case raw.Canonical != nil:
		return raw.Canonical, nil

	case raw.Shopify != nil:
		product := shopify.NormalizeProduct(*raw.Shopify, s.newOptionID("variant"))
		return &product, nil

	case raw.BigCommerce != nil:
		product := bigcommerce.NormalizeProduct(*raw.BigCommerce)
		return &product, nil

	default:
		return nil, nil
	}
}

func (s *catalogService) NormalizeSearchResults(raw usecase.RawSearchResults) ([]entity.Product, error) {
	switch {
	case raw.Shopify != nil:
		products := make([]entity.Product, 0, len(raw.Shopify))
		for _, result := range raw.Shopify {
			products = append(products, shopify.NormalizeSearchResult(result))
		}
		return products, nil

	case raw.BigCommerce != nil:
		products := make([]entity.Product, 0, len(raw.BigCommerce))
		for _, result := range raw.BigCommerce {
			products = append(products, bigcommerce.NormalizeSearchResult(result))
		}
		return products, nil

	default:
		return nil, nil
	}
}

func (s *catalogService) NormalizeCollection(raw usecase.RawCollection) (*entity.Collection, error) {
	switch {
	case raw.Shopify != nil:
		collection := shopify.NormalizeCollection(*raw.Shopify, s.newOptionID)
		return &collection, nil

	case raw.BigCommerce != nil:
		collection := bigcommerce.NormalizeCategory(*raw.BigCommerce)
		return &collection, nil

	default:
		return nil, nil
	}
}
