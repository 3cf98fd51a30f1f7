package handler

import (
	"log/slog"
	"net/http"

	"storefront/config"
	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	"storefront/internal/platform/bigcommerce"
	"storefront/internal/platform/shopify"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// CheckoutHandlerParams holds dependencies for CheckoutHandler, injected by Fx.
type CheckoutHandlerParams struct {
	fx.In

	Config     *config.Config
	Platform   entity.PlatformContext
	CheckoutUC usecase.CheckoutUsecase
	Logger     *slog.Logger
}

// CheckoutHandler serves cart line normalization and cart mutation shaping.
type CheckoutHandler struct {
	cfg        *config.Config
	platform   entity.PlatformContext
	checkoutUC usecase.CheckoutUsecase
	logger     *slog.Logger
}

// NewCheckoutHandler is the constructor for CheckoutHandler
func NewCheckoutHandler(params CheckoutHandlerParams) *CheckoutHandler {
	return &CheckoutHandler{
		cfg:        params.Config,
		platform:   params.Platform,
		checkoutUC: params.CheckoutUC,
		logger:     params.Logger,
	}
}

// NormalizeItem maps a raw platform cart line item to the canonical shape.
func (h *CheckoutHandler) NormalizeItem(c echo.Context) error {
	body, err := readBody(c)
	if err != nil {
		return err
	}

	var raw usecase.RawCheckoutItem
	switch h.platform.Platform {
	case entity.PlatformShopify:
		var item shopify.CheckoutLineItem
		if err := decodeInto(body, &item); err != nil {
			return err
		}
		raw.Shopify = &item

	default:
		var item bigcommerce.CheckoutLineItem
		if err := decodeInto(body, &item); err != nil {
			return err
		}
		raw.BigCommerce = &item
	}

	item, err := h.checkoutUC.NormalizeCheckoutItem(raw)
	if err != nil {
		return errors.WithStack(err)
	}
	if item == nil {
		return response.NotFound(c, "ITEM_EMPTY", "No cart item in payload")
	}

	return response.Success(c, http.StatusOK, item, "Cart item normalized")
}

// CartPriceRequest carries a raw cart-level price string.
type CartPriceRequest struct {
	Price string `json:"price"`
}

// NormalizeCartPrice maps a raw cart price to a display amount.
func (h *CheckoutHandler) NormalizeCartPrice(c echo.Context) error {
	var req CartPriceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart price input")
	}

	return response.Success(c, http.StatusOK, map[string]string{
		"price": h.checkoutUC.NormalizeCartPrice(req.Price),
	}, "Cart price normalized")
}

// CartTargetRequest names the product, variant and cart line an operation
// acts on. Any subset may be supplied.
type CartTargetRequest struct {
	Product      *entity.Product          `json:"product"`
	Variant      *entity.ProductVariant   `json:"variant"`
	CheckoutItem *entity.CheckoutLineItem `json:"checkoutItem"`
}

func (r CartTargetRequest) target() usecase.CartTarget {
	return usecase.CartTarget{
		Product:      r.Product,
		Variant:      r.Variant,
		CheckoutItem: r.CheckoutItem,
	}
}

// ResolveCartItemID resolves the identifier an add-to-cart mutation targets.
func (h *CheckoutHandler) ResolveCartItemID(c echo.Context) error {
	var req CartTargetRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart target input")
	}

	id, ok := h.checkoutUC.ResolveCartItemID(req.target())

	return response.Success(c, http.StatusOK, map[string]any{
		"id":       id,
		"resolved": ok,
	}, "Cart item id resolved")
}

// RemoveItemRequest carries the cart line to resolve a remove identifier for.
type RemoveItemRequest struct {
	Item entity.CheckoutLineItem `json:"item"`
}

// CartRemoveID resolves the identifier a remove-from-cart mutation targets.
func (h *CheckoutHandler) CartRemoveID(c echo.Context) error {
	var req RemoveItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart item input")
	}

	id, ok := h.checkoutUC.CartRemoveID(req.Item)

	return response.Success(c, http.StatusOK, map[string]any{
		"id":       id,
		"resolved": ok,
	}, "Cart remove id resolved")
}

// UpdateItemRequest carries a cart line and its new quantity.
type UpdateItemRequest struct {
	Item     entity.CheckoutLineItem `json:"item"`
	Quantity int                     `json:"quantity" validate:"min=0"`
}

// UpdateItemPayload shapes the platform payload for a quantity update.
func (h *CheckoutHandler) UpdateItemPayload(c echo.Context) error {
	var req UpdateItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart update input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	payload, err := h.checkoutUC.DenormalizeUpdateItem(req.Item, req.Quantity)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, payload, "Cart update payload shaped")
}

// OptionsRequest carries the option selection state keyed by option id.
type OptionsRequest struct {
	Selections map[string]entity.OptionState `json:"selections"`
}

// OptionsPayload maps the option selection state to the platform's option
// payload.
func (h *CheckoutHandler) OptionsPayload(c echo.Context) error {
	var req OptionsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid options input")
	}

	selections, err := h.checkoutUC.DenormalizeOptions(req.Selections)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"optionSelections": selections,
	}, "Options payload shaped")
}

// MaxQuantityRequest carries the stock level and the product-level limit.
type MaxQuantityRequest struct {
	Inventory          int `json:"inventory"`
	ProductMaxQuantity int `json:"productMaxQuantity"`
}

// MaxQuantity resolves the effective purchase cap, combining the request's
// limits with the store-wide one.
func (h *CheckoutHandler) MaxQuantity(c echo.Context) error {
	var req MaxQuantityRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid quantity input")
	}

	limit := h.checkoutUC.MaxPurchaseQuantity(req.Inventory, h.cfg.Cart.MaxQuantity, req.ProductMaxQuantity)

	return response.Success(c, http.StatusOK, map[string]int{
		"maxQuantity": limit,
	}, "Purchase limit resolved")
}

// AddToCartStateRequest carries everything the add-to-cart control depends
// on.
type AddToCartStateRequest struct {
	CartTargetRequest
	Selections map[string]entity.OptionState `json:"selections"`
	InStock    bool                          `json:"inStock"`
}

// AddToCartState evaluates whether the add-to-cart control is enabled.
func (h *CheckoutHandler) AddToCartState(c echo.Context) error {
	var req AddToCartStateRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid add-to-cart input")
	}

	state := h.checkoutUC.EvaluateAddToCart(req.target(), req.Selections, req.InStock)

	return response.Success(c, http.StatusOK, state, "Add-to-cart state evaluated")
}
