package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	"storefront/internal/platform/bigcommerce"
	"storefront/internal/platform/shopify"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	Platform  entity.PlatformContext
	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// CatalogHandler serves product, search and collection normalization.
type CatalogHandler struct {
	platform  entity.PlatformContext
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		platform:  params.Platform,
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// NormalizeProduct maps a raw platform product payload to the canonical
// record.
func (h *CatalogHandler) NormalizeProduct(c echo.Context) error {
	body, err := readBody(c)
	if err != nil {
		return err
	}

	raw, err := h.rawProduct(body)
	if err != nil {
		return err
	}

	product, err := h.catalogUC.NormalizeProduct(raw)
	if err != nil {
		return errors.WithStack(err)
	}
	if product == nil {
		return response.NotFound(c, "PRODUCT_EMPTY", "No product in payload")
	}

	return response.Success(c, http.StatusOK, product, "Product normalized")
}

func (h *CatalogHandler) rawProduct(body []byte) (usecase.RawProduct, error) {
	if originOf(body) != "" {
		var canonical entity.Product
		if err := decodeInto(body, &canonical); err != nil {
			return usecase.RawProduct{}, err
		}

		return usecase.RawProduct{Canonical: &canonical}, nil
	}

	switch h.platform.Platform {
	case entity.PlatformShopify:
		var raw shopify.Product
		if err := decodeInto(body, &raw); err != nil {
			return usecase.RawProduct{}, err
		}

		return usecase.RawProduct{Shopify: &raw}, nil

	default:
		var raw bigcommerce.Product
		if err := decodeInto(body, &raw); err != nil {
			return usecase.RawProduct{}, err
		}

		return usecase.RawProduct{BigCommerce: &raw}, nil
	}
}

// NormalizeSearchResults maps a page of raw search hits to canonical
// products.
func (h *CatalogHandler) NormalizeSearchResults(c echo.Context) error {
	body, err := readBody(c)
	if err != nil {
		return err
	}

	var raw usecase.RawSearchResults
	switch h.platform.Platform {
	case entity.PlatformShopify:
		if err := decodeInto(body, &raw.Shopify); err != nil {
			return err
		}
	default:
		if err := decodeInto(body, &raw.BigCommerce); err != nil {
			return err
		}
	}

	products, err := h.catalogUC.NormalizeSearchResults(raw)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products, "Search results normalized")
}

// NormalizeCollection maps a raw platform collection payload to the
// canonical record.
func (h *CatalogHandler) NormalizeCollection(c echo.Context) error {
	body, err := readBody(c)
	if err != nil {
		return err
	}

	var raw usecase.RawCollection
	switch h.platform.Platform {
	case entity.PlatformShopify:
		var collection shopify.Collection
		if err := decodeInto(body, &collection); err != nil {
			return err
		}
		raw.Shopify = &collection

	default:
		var category bigcommerce.Category
		if err := decodeInto(body, &category); err != nil {
			return err
		}
		raw.BigCommerce = &category
	}

	collection, err := h.catalogUC.NormalizeCollection(raw)
	if err != nil {
		return errors.WithStack(err)
	}
	if collection == nil {
		return response.NotFound(c, "COLLECTION_EMPTY", "No collection in payload")
	}

	return response.Success(c, http.StatusOK, collection, "Collection normalized")
}
