package handler

import (
	"log/slog"
	"net/http"

	"storefront/config"
	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	"storefront/internal/format"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// StoreHandlerParams holds dependencies for StoreHandler, injected by Fx.
type StoreHandlerParams struct {
	fx.In

	Config   *config.Config
	Platform entity.PlatformContext
	Logger   *slog.Logger
}

// StoreHandler serves the store's platform context and display formatting.
type StoreHandler struct {
	cfg      *config.Config
	platform entity.PlatformContext
	logger   *slog.Logger
}

// NewStoreHandler is the constructor for StoreHandler
func NewStoreHandler(params StoreHandlerParams) *StoreHandler {
	return &StoreHandler{
		cfg:      params.Config,
		platform: params.Platform,
		logger:   params.Logger,
	}
}

// Info returns the validated platform context and display conventions.
func (h *StoreHandler) Info(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{
		"platform": string(h.platform.Platform),
		"apiType":  string(h.platform.APIType),
		"locale":   h.cfg.Store.Locale,
		"currency": h.cfg.Store.Currency,
	}, "Store info")
}

// FormatMoneyRequest carries a money value to render for display.
type FormatMoneyRequest struct {
	Amount       string `json:"amount" validate:"required"`
	CurrencyCode string `json:"currencyCode"`
}

// FormatMoney renders a money value in the store's locale. A missing
// currency code falls back to the store currency.
func (h *StoreHandler) FormatMoney(c echo.Context) error {
	var req FormatMoneyRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid money input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	currencyCode := req.CurrencyCode
	if currencyCode == "" {
		currencyCode = h.cfg.Store.Currency
	}

	display, err := format.Money(req.Amount, currencyCode, h.cfg.Store.Locale)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", err.Error())
	}

	return response.Success(c, http.StatusOK, map[string]string{
		"display": display,
	}, "Money formatted")
}

// FormatTimestampRequest carries a platform timestamp to render for display.
type FormatTimestampRequest struct {
	Value string `json:"value" validate:"required"`
	Style string `json:"style"`
}

// FormatTimestamp renders a platform timestamp in the requested style,
// defaulting to the store's configured one.
func (h *StoreHandler) FormatTimestamp(c echo.Context) error {
	var req FormatTimestampRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid timestamp input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	style := format.DateStyle(req.Style)
	if req.Style == "" {
		style = format.DateStyle(h.cfg.Store.DateStyle)
	}

	display, err := format.Timestamp(req.Value, style)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", err.Error())
	}

	return response.Success(c, http.StatusOK, map[string]string{
		"display": display,
	}, "Timestamp formatted")
}
