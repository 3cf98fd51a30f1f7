package shopify

import (
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/platform"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string {
	return &s
}

func TestNormalizeAddress(t *testing.T) {
	got, err := NormalizeAddress(Address{
		ID:       "addr-1",
		Address1: strPtr("1 Main St"),
		City:     strPtr("Portland"),
		Country:  strPtr("United States"),
		Zip:      strPtr("97201"),
	})
	require.NoError(t, err)

	assert.Equal(t, "US", got.CountryCode)
	assert.Equal(t, "United States", got.Country)
	// No subdivision supplied.
	assert.Equal(t, "n/a", got.Province)
}

func TestNormalizeAddress_MissingRequired(t *testing.T) {
	complete := func() Address {
		return Address{
			ID:       "addr-1",
			Address1: strPtr("1 Main St"),
			City:     strPtr("Portland"),
			Country:  strPtr("United States"),
			Zip:      strPtr("97201"),
		}
	}

	missingZip := complete()
	missingZip.Zip = nil
	_, err := NormalizeAddress(missingZip)
	require.ErrorIs(t, err, domainerrors.ErrIncompleteAddress)

	missingCity := complete()
	missingCity.City = nil
	_, err = NormalizeAddress(missingCity)
	require.ErrorIs(t, err, domainerrors.ErrIncompleteAddress)

	missingCountry := complete()
	missingCountry.Country = nil
	_, err = NormalizeAddress(missingCountry)
	require.ErrorIs(t, err, domainerrors.ErrIncompleteAddress)
}

func TestNormalizeCustomer_FirstDefaultAddressWins(t *testing.T) {
	address := func(id string) Address {
		return Address{
			ID:        platform.ID(id),
			Address1:  strPtr("1 Main St"),
			City:      strPtr("Portland"),
			Country:   strPtr("United States"),
			Zip:       strPtr("97201"),
			IsDefault: true,
		}
	}

	got, err := NormalizeCustomer(Customer{
		IsLoggedIn: true,
		Addresses:  []Address{address("addr-1"), address("addr-2")},
	})
	require.NoError(t, err)

	require.NotNil(t, got.DefaultAddress)
	assert.Equal(t, "addr-1", got.DefaultAddress.ID)
}

func TestCodeByCountry(t *testing.T) {
	assert.Equal(t, "US", CodeByCountry("United States"))
	assert.Equal(t, "GB", CodeByCountry("United Kingdom"))
	assert.Equal(t, "", CodeByCountry("Atlantis"))
}

func TestNormalizeOrder(t *testing.T) {
	financial := "PAID"
	order := Order{
		ID:                "order-1",
		Name:              "#1001",
		ProcessedAt:       "2023-05-01T12:00:00Z",
		FulfillmentStatus: "FULFILLED",
		FinancialStatus:   &financial,
		TotalPriceV2:      Money{Amount: "25.00", CurrencyCode: "USD"},
		SubtotalPriceV2:   &Money{Amount: "20.00", CurrencyCode: "USD"},
		LineItems: LineItemConnection{
			Edges: []LineItemEdge{
				{
					Node: LineItem{
						Title:                "Mug",
						Quantity:             2,
						OriginalTotalPrice:   Money{Amount: "25.00", CurrencyCode: "USD"},
						DiscountedTotalPrice: Money{Amount: "20.00", CurrencyCode: "USD"},
						Variant: LineItemVariant{
							ID:    "v-1",
							Title: "Small",
							Image: VariantImage{
								ID:             "img-1",
								OriginalSrc:    "https://cdn/mug.jpg",
								TransformedSrc: "https://cdn/mug-small.jpg",
								AltText:        "A mug",
							},
						},
					},
				},
			},
		},
	}

	got := NormalizeOrder(order)

	assert.Equal(t, "order-1", got.ID)
	assert.Equal(t, "#1001", got.Name)
	assert.Equal(t, "PAID", got.FinancialStatus)
	require.NotNil(t, got.SubtotalPrice)
	assert.Equal(t, "20.00", got.SubtotalPrice.Amount)
	assert.Nil(t, got.TotalShippingPrice)

	require.Len(t, got.Products, 1)
	product := got.Products[0]
	assert.Equal(t, "Mug", product.Title)
	require.NotNil(t, product.Variant)
	assert.Equal(t, "v-1", product.Variant.ID)
	require.NotNil(t, product.Variant.Image)
	assert.Equal(t, "n/a", product.Variant.Image.Name)
	assert.Equal(t, "https://cdn/mug-small.jpg", product.Variant.Image.TransformedSrc)
}

func TestNormalizeCheckoutItem_GraphQL(t *testing.T) {
	item := CheckoutLineItem{
		ID:       "line-1",
		Title:    "Mug",
		Quantity: 1,
		Variant: &CheckoutVariant{
			ID:      "v-1",
			Title:   "Small",
			Price:   "10.00",
			Image:   CheckoutVariantImage{Src: "https://cdn/mug.jpg"},
			Product: &CheckoutVariantOwner{Handle: "/mug/"},
		},
	}

	got := NormalizeCheckoutItem(item, entity.APITypeGraphQL)
	assert.Equal(t, "10.00", got.Price)
	assert.Equal(t, "Small", got.Subtitle)
	assert.Equal(t, "/mug/", got.Slug)
}

func TestNormalizeCheckoutItem_REST(t *testing.T) {
	item := CheckoutLineItem{
		ID:        "1001",
		VariantID: "2002",
		Title:     "Mug",
		Price:     "1050",
		Handle:    "/mug/",
		Quantity:  1,
	}

	got := NormalizeCheckoutItem(item, entity.APITypeREST)
	assert.Equal(t, "10.50", got.Price)
	assert.Equal(t, "Mug", got.Subtitle)
	assert.Equal(t, "2002", got.VariantID)
}

func TestCentsToAmount(t *testing.T) {
	assert.Equal(t, "19.99", CentsToAmount("1999"))
	assert.Equal(t, "10.00", CentsToAmount("1000"))
	assert.Equal(t, "", CentsToAmount(""))
	assert.Equal(t, "", CentsToAmount("abc"))
}
