package usecase

import (
	"storefront/internal/domain/entity"
	"storefront/internal/platform/bigcommerce"
	"storefront/internal/platform/shopify"
)

// RawCheckoutItem is the tagged union of the cart line item shapes.
type RawCheckoutItem struct {
	Shopify     *shopify.CheckoutLineItem
	BigCommerce *bigcommerce.CheckoutLineItem
}

// CartTarget names the thing a cart mutation acts on. Any subset of the
// fields may be set; identifier resolution walks them in platform order.
type CartTarget struct {
	Product      *entity.Product
	Variant      *entity.ProductVariant
	CheckoutItem *entity.CheckoutLineItem
}

// CartItemUpdate is the platform-specific quantity update payload.
type CartItemUpdate struct {
	Shopify     *shopify.CartItemUpdate     `json:"shopify,omitempty"`
	BigCommerce *bigcommerce.CartItemUpdate `json:"bigCommerce,omitempty"`
}

// AddToCartState is the evaluated state of the add-to-cart control.
type AddToCartState struct {
	Enabled bool   `json:"enabled"`
	Reason  string `json:"reason,omitempty"`
}

// CheckoutUsecase normalizes cart line items and shapes cart mutations.
type CheckoutUsecase interface {
	// NormalizeCheckoutItem maps a raw cart line item to the canonical
	// shape. A nil input yields nil.
	NormalizeCheckoutItem(raw RawCheckoutItem) (*entity.CheckoutLineItem, error)

	// NormalizeCartPrice maps a raw cart-level price string to a display
	// amount. Shopify's REST cart prices arrive in cents.
	NormalizeCartPrice(price string) string

	// ResolveCartItemID resolves the identifier an add-to-cart mutation
	// needs from whatever parts of the target are known. ok is false when
	// nothing resolvable is present.
	ResolveCartItemID(target CartTarget) (id string, ok bool)

	// CartRemoveID resolves the identifier a remove-from-cart mutation
	// needs for the given line item.
	CartRemoveID(item entity.CheckoutLineItem) (id string, ok bool)

	// DenormalizeUpdateItem shapes the quantity update payload for the
	// given line item.
	DenormalizeUpdateItem(item entity.CheckoutLineItem, quantity int) (CartItemUpdate, error)

	// DenormalizeOptions maps the option selection state to the platform's
	// option payload. Shopify encodes selections in the variant identifier,
	// so its result is always nil.
	DenormalizeOptions(selections map[string]entity.OptionState) ([]entity.OptionSelection, error)

	// MaxPurchaseQuantity resolves the effective purchase cap from the
	// available inventory and the configured limits. Zero means unset.
	MaxPurchaseQuantity(inventory, maxQuantity, productMax int) int

	// EvaluateAddToCart decides whether the add-to-cart control is enabled
	// for the target, given the current option selections and stock.
	EvaluateAddToCart(target CartTarget, selections map[string]entity.OptionState, inStock bool) AddToCartState
}
