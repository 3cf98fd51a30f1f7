package impl

import (
	"log/slog"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/platform/bigcommerce"
	"storefront/internal/platform/shopify"
	"storefront/internal/usecase"
)

// Disabled-control reasons surfaced by EvaluateAddToCart.
const (
	ReasonOutOfStock     = "out of stock"
	ReasonMissingOptions = "please select the required options"
	ReasonUnavailable    = "unavailable"
)

type checkoutService struct {
	platform entity.PlatformContext
	logger   *slog.Logger
}

// NewCheckoutService creates a cart normalization service bound to the given
// platform.
func NewCheckoutService(platform entity.PlatformContext, logger *slog.Logger) usecase.CheckoutUsecase {
	return &checkoutService{
		platform: platform,
		logger:   logger,
	}
}

func (s *checkoutService) NormalizeCheckoutItem(raw usecase.RawCheckoutItem) (*entity.CheckoutLineItem, error) {
	switch {
	case raw.Shopify != nil:
		item := shopify.NormalizeCheckoutItem(*raw.Shopify, s.platform.APIType)
		return &item, nil

	case raw.BigCommerce != nil:
		item := bigcommerce.NormalizeCheckoutItem(*raw.BigCommerce)
		return &item, nil

	default:
		return nil, nil
	}
}

// NormalizeCartPrice maps a raw cart-level price to a display amount. Only
// Shopify's REST cart reports prices in cents; every other source already
// uses major units.
func (s *checkoutService) NormalizeCartPrice(price string) string {
	if s.platform.Platform == entity.PlatformShopify && s.platform.APIType == entity.APITypeREST {
		return shopify.CentsToAmount(price)
	}
	return price
}

// ResolveCartItemID resolves the identifier an add-to-cart mutation targets.
// BigCommerce carts key on the product id and Shopify carts on the variant's
// storefront id, but each platform accepts the other id when its preferred
// one is absent.
func (s *checkoutService) ResolveCartItemID(target usecase.CartTarget) (string, bool) {
	productID := s.productID(target)
	variantID := s.variantID(target)

	switch s.platform.Platform {
	case entity.PlatformBigCommerce:
		if productID != "" {
			return productID, true
		}
		if variantID != "" {
			return variantID, true
		}

	case entity.PlatformShopify:
		if variantID != "" {
			return variantID, true
		}
		if productID != "" {
			return productID, true
		}
	}

	return "", false
}

func (s *checkoutService) productID(target usecase.CartTarget) string {
	if target.Product != nil && target.Product.ID != "" {
		return target.Product.ID
	}
	if target.CheckoutItem != nil {
		return target.CheckoutItem.ID
	}
	return ""
}

func (s *checkoutService) variantID(target usecase.CartTarget) string {
	if target.Variant != nil && target.Variant.StorefrontID != "" {
		return target.Variant.StorefrontID
	}
	if target.CheckoutItem != nil {
		return target.CheckoutItem.VariantID
	}
	return ""
}

// CartRemoveID resolves the identifier a remove-from-cart mutation targets.
// BigCommerce removes by cart line item id, Shopify by the line's own id.
func (s *checkoutService) CartRemoveID(item entity.CheckoutLineItem) (string, bool) {
	var id string
	switch s.platform.Platform {
	case entity.PlatformBigCommerce:
		id = item.LineItemID
	case entity.PlatformShopify:
		id = item.ID
	}

	return id, id != ""
}

func (s *checkoutService) DenormalizeUpdateItem(item entity.CheckoutLineItem, quantity int) (usecase.CartItemUpdate, error) {
	switch s.platform.Platform {
	case entity.PlatformShopify:
		return usecase.CartItemUpdate{
			Shopify: &shopify.CartItemUpdate{
				ID:       item.ID,
				Quantity: quantity,
			},
		}, nil

	case entity.PlatformBigCommerce:
		// Older cart payloads carry the product id under variantId only.
		id := item.ID
		if id == "" {
			id = item.VariantID
		}

		return usecase.CartItemUpdate{
			BigCommerce: &bigcommerce.CartItemUpdate{
				ID:               id,
				LineItemID:       item.LineItemID,
				Quantity:         quantity,
				OptionSelections: item.Modifiers,
			},
		}, nil

	default:
		return usecase.CartItemUpdate{}, domainerrors.ErrUnsupportedPlatform.WrapMessage("denormalize cart update")
	}
}

// DenormalizeOptions maps option selections to the platform's option payload.
// Shopify has no separate option payload; the selection is already encoded in
// the variant identifier.
func (s *checkoutService) DenormalizeOptions(selections map[string]entity.OptionState) ([]entity.OptionSelection, error) {
	if s.platform.Platform != entity.PlatformBigCommerce {
		return nil, nil
	}
	return bigcommerce.DenormalizeOptionSelections(selections)
}

// MaxPurchaseQuantity resolves the effective purchase cap. Inventory bounds
// the store-wide limit, and the product-level limit only ever lowers the
// result. Zero means a limit is unset.
func (s *checkoutService) MaxPurchaseQuantity(inventory, maxQuantity, productMax int) int {
	max := maxQuantity
	if inventory > 0 {
		max = inventory
		if maxQuantity > 0 && maxQuantity < inventory {
			max = maxQuantity
		}
	}

	if productMax > 0 {
		if max <= 0 || max > productMax {
			return productMax
		}
	}

	return max
}

func (s *checkoutService) EvaluateAddToCart(target usecase.CartTarget, selections map[string]entity.OptionState, inStock bool) usecase.AddToCartState {
	if !inStock {
		return usecase.AddToCartState{Reason: ReasonOutOfStock}
	}

	for _, state := range selections {
		if state.Required && state.Value == nil {
			return usecase.AddToCartState{Reason: ReasonMissingOptions}
		}
	}

	if _, ok := s.ResolveCartItemID(target); !ok {
		return usecase.AddToCartState{Reason: ReasonUnavailable}
	}

	return usecase.AddToCartState{Enabled: true}
}
