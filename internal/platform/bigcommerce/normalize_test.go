package bigcommerce

import (
	"testing"

	"storefront/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeOrder(t *testing.T) {
	paymentStatus := "captured"

	order := Order{
		ID:            "321",
		DateCreated:   "Tue, 02 May 2023 12:00:00 +0000",
		Status:        "Shipped",
		PaymentStatus: &paymentStatus,
		TotalIncTax:   "100",
		CurrencyCode:  "USD",
		Products: []OrderProduct{
			{
				Name:        "Shirt",
				Quantity:    1,
				TotalIncTax: "100",
				AppliedDiscounts: []AppliedDiscount{
					{Amount: "10"},
					{Amount: "5"},
				},
				ProductOptions: []OrderProductOption{
					{DisplayName: "Size", DisplayValue: "Small"},
					{DisplayName: "Color", DisplayValue: "Red"},
				},
			},
		},
	}

	got, err := NormalizeOrder(order)
	require.NoError(t, err)

	assert.Equal(t, "321", got.ID)
	assert.Equal(t, "#321", got.Name)
	assert.Equal(t, "Shipped", got.FulfillmentStatus)
	assert.Equal(t, "captured", got.FinancialStatus)
	assert.Equal(t, entity.Money{Amount: "100", CurrencyCode: "USD"}, got.TotalPrice)
	assert.Nil(t, got.SubtotalPrice)

	require.Len(t, got.Products, 1)
	product := got.Products[0]
	assert.Equal(t, "100", product.OriginalTotalPrice.Amount)
	// 100 - (10 + 5), formatted without a trailing fraction.
	assert.Equal(t, "85", product.DiscountedTotalPrice.Amount)

	require.NotNil(t, product.Variant)
	assert.Equal(t, "n/a", product.Variant.ID)
	assert.Equal(t, "Size: Small, Color: Red", product.Variant.Title)
}

func TestNormalizeOrder_CurrencyFallback(t *testing.T) {
	got, err := NormalizeOrder(Order{
		ID:                  "1",
		TotalIncTax:         "10",
		DefaultCurrencyCode: "EUR",
	})
	require.NoError(t, err)
	assert.Equal(t, "EUR", got.TotalPrice.CurrencyCode)
}

func TestNormalizeOrder_NoOptionsNoVariant(t *testing.T) {
	got, err := NormalizeOrder(Order{
		ID:           "1",
		TotalIncTax:  "10",
		CurrencyCode: "USD",
		Products: []OrderProduct{
			{Name: "Shirt", Quantity: 1, TotalIncTax: "10"},
		},
	})
	require.NoError(t, err)

	require.Len(t, got.Products, 1)
	assert.Nil(t, got.Products[0].Variant)
	assert.Equal(t, "10", got.Products[0].DiscountedTotalPrice.Amount)
}

func TestNormalizeOrder_BadAmount(t *testing.T) {
	_, err := NormalizeOrder(Order{
		ID:          "1",
		TotalIncTax: "10",
		Products: []OrderProduct{
			{Name: "Shirt", TotalIncTax: "not-a-number"},
		},
	})
	require.Error(t, err)
}

func TestNormalizeAddress(t *testing.T) {
	got := NormalizeAddress(Address{
		ID:          "11",
		Address1:    "1 Main St",
		City:        "Austin",
		CountryCode: "US",
		State:       "Texas",
		PostalCode:  "78701",
	})

	assert.Equal(t, "Texas", got.Province)
	assert.Equal(t, "78701", got.Zip)
	assert.Equal(t, "US", got.CountryCode)
}

func TestSearchPathToSlug(t *testing.T) {
	assert.Equal(t, "shirt/", searchPathToSlug("/product/shirt"))
	assert.Equal(t, "/", searchPathToSlug("/product/"))
	assert.Equal(t, "/", searchPathToSlug(""))
}
