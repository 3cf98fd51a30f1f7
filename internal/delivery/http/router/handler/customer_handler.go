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

// CustomerHandlerParams holds dependencies for CustomerHandler, injected by Fx.
type CustomerHandlerParams struct {
	fx.In

	Platform   entity.PlatformContext
	CustomerUC usecase.CustomerUsecase
	Logger     *slog.Logger
}

// CustomerHandler serves customer normalization and address payload shaping.
type CustomerHandler struct {
	platform   entity.PlatformContext
	customerUC usecase.CustomerUsecase
	logger     *slog.Logger
}

// NewCustomerHandler is the constructor for CustomerHandler
func NewCustomerHandler(params CustomerHandlerParams) *CustomerHandler {
	return &CustomerHandler{
		platform:   params.Platform,
		customerUC: params.CustomerUC,
		logger:     params.Logger,
	}
}

// NormalizeCustomer maps a raw platform customer payload to the canonical
// record. An already-canonical payload passes through unchanged.
func (h *CustomerHandler) NormalizeCustomer(c echo.Context) error {
	body, err := readBody(c)
	if err != nil {
		return err
	}

	raw, err := h.rawCustomer(body)
	if err != nil {
		return err
	}

	customer, err := h.customerUC.NormalizeCustomer(raw)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, customer, "Customer normalized")
}

func (h *CustomerHandler) rawCustomer(body []byte) (usecase.RawCustomer, error) {
	if originOf(body) != "" {
		var canonical entity.Customer
		if err := decodeInto(body, &canonical); err != nil {
			return usecase.RawCustomer{}, err
		}

		return usecase.RawCustomer{Canonical: &canonical}, nil
	}

	switch h.platform.Platform {
	case entity.PlatformShopify:
		var raw shopify.Customer
		if err := decodeInto(body, &raw); err != nil {
			return usecase.RawCustomer{}, err
		}

		return usecase.RawCustomer{Shopify: &raw}, nil

	default:
		var raw bigcommerce.Customer
		if err := decodeInto(body, &raw); err != nil {
			return usecase.RawCustomer{}, err
		}

		return usecase.RawCustomer{BigCommerce: &raw}, nil
	}
}

// CreateAddressPayload shapes the platform payload for an address create.
func (h *CustomerHandler) CreateAddressPayload(c echo.Context) error {
	var input entity.AddressInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid address input")
	}

	payload, err := h.customerUC.DenormalizeCreateAddress(input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, payload, "Address payload shaped")
}

// UpdateAddressPayload shapes the platform payload for an address update.
func (h *CustomerHandler) UpdateAddressPayload(c echo.Context) error {
	addressID := c.Param("id")
	if addressID == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Address id is required")
	}

	var input entity.AddressInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid address input")
	}

	payload, err := h.customerUC.DenormalizeUpdateAddress(input, addressID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, payload, "Address payload shaped")
}

// DeleteAddressPayload resolves the platform identifier for an address
// delete.
func (h *CustomerHandler) DeleteAddressPayload(c echo.Context) error {
	addressID := c.Param("id")
	if addressID == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Address id is required")
	}

	payload, err := h.customerUC.DenormalizeDeleteAddress(addressID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, payload, "Address id resolved")
}
