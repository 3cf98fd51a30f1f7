package impl

import (
	"testing"

	"storefront/internal/domain/entity"
	"storefront/internal/platform/bigcommerce"
	"storefront/internal/platform/shopify"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckoutService_NormalizeCheckoutItem_ShopifyGraphQL(t *testing.T) {
	service := NewCheckoutService(shopifyGraphQL(), testLogger())

	raw := shopify.CheckoutLineItem{
		ID:       "line-1",
		Title:    "Mug",
		Quantity: 2,
		Variant: &shopify.CheckoutVariant{
			ID:      "v-1",
			Title:   "Small",
			Price:   "10.00",
			Image:   shopify.CheckoutVariantImage{Src: "https://cdn/mug.jpg"},
			Product: &shopify.CheckoutVariantOwner{Handle: "/mug/"},
		},
	}

	got, err := service.NormalizeCheckoutItem(usecase.RawCheckoutItem{Shopify: &raw})
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, "line-1", got.ID)
	assert.Equal(t, "Small", got.Subtitle)
	assert.Equal(t, "10.00", got.Price)
	assert.Equal(t, "v-1", got.VariantID)
	assert.Equal(t, "https://cdn/mug.jpg", got.ImageURL)
	assert.Equal(t, "/mug/", got.Slug)
}

func TestCheckoutService_NormalizeCheckoutItem_ShopifyREST(t *testing.T) {
	service := NewCheckoutService(shopifyREST(), testLogger())

	raw := shopify.CheckoutLineItem{
		ID:        "1001",
		VariantID: "2002",
		Title:     "Mug",
		Price:     "1999",
		Image:     "https://cdn/mug.jpg",
		Handle:    "/mug/",
		Quantity:  1,
	}

	got, err := service.NormalizeCheckoutItem(usecase.RawCheckoutItem{Shopify: &raw})
	require.NoError(t, err)
	require.NotNil(t, got)

	// REST prices arrive in cents.
	assert.Equal(t, "19.99", got.Price)
	assert.Equal(t, "2002", got.VariantID)
	assert.Equal(t, "Mug", got.Subtitle)
}

func TestCheckoutService_NormalizeCheckoutItem_BigCommerce(t *testing.T) {
	service := NewCheckoutService(bigCommerceGraphQL(), testLogger())

	raw := bigcommerce.CheckoutLineItem{
		ID:         "77",
		LineItemID: "li-abc",
		Brand:      "Acme",
		Name:       "Shirt",
		ListPrice:  "25",
		Quantity:   3,
		VariantID:  "500",
		OptionSelections: []entity.OptionSelection{
			{OptionID: 100, OptionValue: 200},
		},
	}

	got, err := service.NormalizeCheckoutItem(usecase.RawCheckoutItem{BigCommerce: &raw})
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, "77", got.ID)
	assert.Equal(t, "li-abc", got.LineItemID)
	assert.Equal(t, "Acme", got.Subtitle)
	assert.Equal(t, []entity.OptionSelection{{OptionID: 100, OptionValue: 200}}, got.Modifiers)
}

func TestCheckoutService_NormalizeCheckoutItem_Nil(t *testing.T) {
	service := NewCheckoutService(shopifyGraphQL(), testLogger())

	got, err := service.NormalizeCheckoutItem(usecase.RawCheckoutItem{})
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCheckoutService_NormalizeCartPrice(t *testing.T) {
	restSvc := NewCheckoutService(shopifyREST(), testLogger())
	assert.Equal(t, "19.99", restSvc.NormalizeCartPrice("1999"))

	graphqlSvc := NewCheckoutService(shopifyGraphQL(), testLogger())
	assert.Equal(t, "19.99", graphqlSvc.NormalizeCartPrice("19.99"))

	bcSvc := NewCheckoutService(bigCommerceGraphQL(), testLogger())
	assert.Equal(t, "25", bcSvc.NormalizeCartPrice("25"))
}

func TestCheckoutService_ResolveCartItemID_Shopify(t *testing.T) {
	service := NewCheckoutService(shopifyGraphQL(), testLogger())

	// A selected variant wins over everything else.
	id, ok := service.ResolveCartItemID(usecase.CartTarget{
		Product: &entity.Product{ID: "p-1", Variants: []entity.ProductVariant{{StorefrontID: "v-1"}}},
		Variant: &entity.ProductVariant{StorefrontID: "v-2"},
	})
	require.True(t, ok)
	assert.Equal(t, "v-2", id)

	id, ok = service.ResolveCartItemID(usecase.CartTarget{
		CheckoutItem: &entity.CheckoutLineItem{VariantID: "v-3"},
	})
	require.True(t, ok)
	assert.Equal(t, "v-3", id)

	// Without any variant id the product id stands in.
	id, ok = service.ResolveCartItemID(usecase.CartTarget{
		Product: &entity.Product{ID: "p-1"},
	})
	require.True(t, ok)
	assert.Equal(t, "p-1", id)

	_, ok = service.ResolveCartItemID(usecase.CartTarget{})
	assert.False(t, ok)
}

func TestCheckoutService_ResolveCartItemID_BigCommerce(t *testing.T) {
	service := NewCheckoutService(bigCommerceGraphQL(), testLogger())

	id, ok := service.ResolveCartItemID(usecase.CartTarget{
		Product: &entity.Product{ID: "77"},
		Variant: &entity.ProductVariant{StorefrontID: "500"},
	})
	require.True(t, ok)
	assert.Equal(t, "77", id, "BigCommerce carts key on the product id")

	id, ok = service.ResolveCartItemID(usecase.CartTarget{
		CheckoutItem: &entity.CheckoutLineItem{ID: "78"},
	})
	require.True(t, ok)
	assert.Equal(t, "78", id)

	// Without any product id the variant id stands in.
	id, ok = service.ResolveCartItemID(usecase.CartTarget{
		Variant: &entity.ProductVariant{StorefrontID: "500"},
	})
	require.True(t, ok)
	assert.Equal(t, "500", id)

	_, ok = service.ResolveCartItemID(usecase.CartTarget{})
	assert.False(t, ok)
}

func TestCheckoutService_CartRemoveID(t *testing.T) {
	item := entity.CheckoutLineItem{ID: "77", LineItemID: "li-abc"}

	shopifySvc := NewCheckoutService(shopifyGraphQL(), testLogger())
	id, ok := shopifySvc.CartRemoveID(item)
	require.True(t, ok)
	assert.Equal(t, "77", id)

	bcSvc := NewCheckoutService(bigCommerceGraphQL(), testLogger())
	id, ok = bcSvc.CartRemoveID(item)
	require.True(t, ok)
	assert.Equal(t, "li-abc", id)

	_, ok = bcSvc.CartRemoveID(entity.CheckoutLineItem{ID: "77"})
	assert.False(t, ok)
}

func TestCheckoutService_DenormalizeUpdateItem_Shopify(t *testing.T) {
	service := NewCheckoutService(shopifyGraphQL(), testLogger())

	got, err := service.DenormalizeUpdateItem(entity.CheckoutLineItem{ID: "line-1"}, 4)
	require.NoError(t, err)
	require.NotNil(t, got.Shopify)
	assert.Nil(t, got.BigCommerce)
	assert.Equal(t, &shopify.CartItemUpdate{ID: "line-1", Quantity: 4}, got.Shopify)
}

func TestCheckoutService_DenormalizeUpdateItem_BigCommerce(t *testing.T) {
	service := NewCheckoutService(bigCommerceGraphQL(), testLogger())

	item := entity.CheckoutLineItem{
		ID:         "77",
		LineItemID: "li-abc",
		Modifiers:  []entity.OptionSelection{{OptionID: 100, OptionValue: 200}},
	}

	got, err := service.DenormalizeUpdateItem(item, 2)
	require.NoError(t, err)
	require.NotNil(t, got.BigCommerce)
	assert.Equal(t, "77", got.BigCommerce.ID)
	assert.Equal(t, "li-abc", got.BigCommerce.LineItemID)
	assert.Equal(t, item.Modifiers, got.BigCommerce.OptionSelections)

	// Legacy cart payloads only carry the product id under variantId.
	got, err = service.DenormalizeUpdateItem(entity.CheckoutLineItem{VariantID: "500", LineItemID: "li-abc"}, 2)
	require.NoError(t, err)
	require.NotNil(t, got.BigCommerce)
	assert.Equal(t, "500", got.BigCommerce.ID)
}

func TestCheckoutService_DenormalizeOptions(t *testing.T) {
	value := "200"
	selections := map[string]entity.OptionState{
		"100": {Value: &value, Required: true},
		"101": {Value: nil},
	}

	shopifySvc := NewCheckoutService(shopifyGraphQL(), testLogger())
	got, err := shopifySvc.DenormalizeOptions(selections)
	require.NoError(t, err)
	assert.Nil(t, got)

	bcSvc := NewCheckoutService(bigCommerceGraphQL(), testLogger())
	got, err = bcSvc.DenormalizeOptions(selections)
	require.NoError(t, err)
	assert.Equal(t, []entity.OptionSelection{{OptionID: 100, OptionValue: 200}}, got)

	bad := "not-a-number"
	_, err = bcSvc.DenormalizeOptions(map[string]entity.OptionState{
		"100": {Value: &bad},
	})
	require.Error(t, err)
}

func TestCheckoutService_MaxPurchaseQuantity(t *testing.T) {
	service := NewCheckoutService(bigCommerceGraphQL(), testLogger())

	// Inventory bounds the store-wide limit.
	assert.Equal(t, 5, service.MaxPurchaseQuantity(5, 10, 0))
	// The product-level limit only ever lowers the result.
	assert.Equal(t, 2, service.MaxPurchaseQuantity(5, 3, 2))
	assert.Equal(t, 3, service.MaxPurchaseQuantity(5, 3, 7))
	assert.Equal(t, 3, service.MaxPurchaseQuantity(10, 3, 7))
	assert.Equal(t, 3, service.MaxPurchaseQuantity(5, 3, 0))
	// A product limit alone still caps an unknown inventory.
	assert.Equal(t, 4, service.MaxPurchaseQuantity(0, 0, 4))
	// No limit configured: inventory is the cap.
	assert.Equal(t, 7, service.MaxPurchaseQuantity(7, 0, 0))
	// Unknown inventory: the configured limit stands.
	assert.Equal(t, 10, service.MaxPurchaseQuantity(0, 10, 0))
}

func TestCheckoutService_EvaluateAddToCart(t *testing.T) {
	service := NewCheckoutService(shopifyGraphQL(), testLogger())

	target := usecase.CartTarget{
		Variant: &entity.ProductVariant{StorefrontID: "v-1"},
	}
	value := "v-1"

	state := service.EvaluateAddToCart(target, map[string]entity.OptionState{
		"opt": {Value: &value, Required: true},
	}, true)
	assert.True(t, state.Enabled)
	assert.Empty(t, state.Reason)

	state = service.EvaluateAddToCart(target, nil, false)
	assert.False(t, state.Enabled)
	assert.Equal(t, ReasonOutOfStock, state.Reason)

	state = service.EvaluateAddToCart(target, map[string]entity.OptionState{
		"opt": {Value: nil, Required: true},
	}, true)
	assert.False(t, state.Enabled)
	assert.Equal(t, ReasonMissingOptions, state.Reason)

	state = service.EvaluateAddToCart(usecase.CartTarget{}, nil, true)
	assert.False(t, state.Enabled)
	assert.Equal(t, ReasonUnavailable, state.Reason)
}
