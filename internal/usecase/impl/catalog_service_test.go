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

// fixedOptionService returns a catalog service whose synthetic option ids are
// deterministic, so assertions can reference them.
func fixedOptionService(platform entity.PlatformContext) *catalogService {
	return &catalogService{
		platform: platform,
		logger:   testLogger(),
		newOptionID: func(base string) string {
			return base + "-option"
		},
	}
}

func TestCatalogService_NormalizeProduct_Nil(t *testing.T) {
	service := NewCatalogService(shopifyGraphQL(), testLogger())

	got, err := service.NormalizeProduct(usecase.RawProduct{})
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCatalogService_NormalizeProduct_CanonicalPassthrough(t *testing.T) {
	service := NewCatalogService(shopifyGraphQL(), testLogger())

	canonical := &entity.Product{
		Name:   "Mug",
		Slug:   "/mug/",
		Origin: entity.PlatformShopify,
	}

	got, err := service.NormalizeProduct(usecase.RawProduct{Canonical: canonical})
	require.NoError(t, err)
	assert.Same(t, canonical, got)
}

func TestCatalogService_NormalizeProduct_Shopify(t *testing.T) {
	service := fixedOptionService(shopifyGraphQL())

	raw := shopify.Product{
		ExternalID:      rawID("123"),
		Name:            "Mug",
		Slug:            "mug",
		Description:     "A mug.",
		DescriptionHTML: "<p>A mug.</p>",
		Variants: []shopify.Variant{
			{StorefrontID: "v-1", Name: "Small", Price: "10.00", SKU: "MUG-S"},
			{StorefrontID: "v-2", Name: "Large", Price: "12.00", SKU: "MUG-L"},
		},
		MetaTitle: "Mug",
	}

	got, err := service.NormalizeProduct(usecase.RawProduct{Shopify: &raw})
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, "123", got.ID)
	assert.Equal(t, "/mug/", got.Slug)
	assert.Equal(t, "<p>A mug.</p>", got.Description)
	assert.Equal(t, entity.InventoryTrackingVariant, got.InventoryTracking)
	assert.Equal(t, entity.PlatformShopify, got.Origin)
	assert.True(t, got.IsCanonical())

	require.Len(t, got.Options, 1)
	option := got.Options[0]
	assert.Equal(t, "variant-option", option.ID)
	assert.Equal(t, "Variant", option.DisplayName)
	assert.True(t, option.Required)
	assert.Equal(t, "v-1", option.DefaultValue)
	require.Len(t, option.OptionValues, 2)
	assert.Equal(t, entity.ProductOptionValue{Text: "Large", Value: "v-2"}, option.OptionValues[1])

	require.Len(t, got.Variants, 2)
	assert.Equal(t, []entity.VariantOptionValue{
		{OptionID: "variant-option", Text: "Small", Value: "v-1"},
	}, got.Variants[0].OptionValues)
}

func TestCatalogService_NormalizeProduct_ShopifyNoVariants(t *testing.T) {
	service := fixedOptionService(shopifyGraphQL())

	got, err := service.NormalizeProduct(usecase.RawProduct{
		Shopify: &shopify.Product{Name: "Gift Card", Slug: "gift-card"},
	})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Empty(t, got.Options)
	assert.Empty(t, got.Variants)
}

func TestCatalogService_NormalizeProduct_BigCommerce(t *testing.T) {
	service := NewCatalogService(bigCommerceGraphQL(), testLogger())

	required := true
	raw := bigcommerce.Product{
		ID:          "77",
		Name:        "Shirt",
		Price:       "25",
		URL:         "/shirt/",
		Description: "A shirt.",
		Options: []bigcommerce.Option{
			{
				ID:          "100",
				DisplayName: "Size",
				OptionValues: []bigcommerce.OptionValue{
					{ID: "200", Label: "Small"},
					{ID: "201", Label: "Large", IsDefault: true},
				},
			},
		},
		Modifiers: []bigcommerce.Option{
			{
				ID:          "101",
				DisplayName: "Gift Wrap",
				Required:    &required,
				OptionValues: []bigcommerce.OptionValue{
					{ID: "300", Label: "Yes"},
				},
			},
			{
				ID:          "102",
				DisplayName: "Engraving",
				OptionValues: []bigcommerce.OptionValue{
					{ID: "400", Label: "None"},
				},
			},
		},
		Variants: []bigcommerce.Variant{
			{
				ID:    "500",
				Price: "25",
				SKU:   "SHIRT-S",
				OptionValues: []bigcommerce.VariantOptionValue{
					{ID: "200", Label: "Small", OptionID: "100"},
				},
			},
		},
		InventoryTracking: "product",
	}

	got, err := service.NormalizeProduct(usecase.RawProduct{BigCommerce: &raw})
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, "77", got.ID)
	assert.Equal(t, "/shirt/", got.Slug)
	assert.Equal(t, "25", got.Price)
	assert.Equal(t, entity.InventoryTrackingProduct, got.InventoryTracking)
	assert.Equal(t, entity.PlatformBigCommerce, got.Origin)

	require.Len(t, got.Options, 3)
	assert.True(t, got.Options[0].Required, "variant options are always required")
	assert.Equal(t, "201", got.Options[0].DefaultValue)
	assert.True(t, got.Options[1].Required)
	assert.False(t, got.Options[2].Required, "modifiers default to optional")

	require.Len(t, got.Variants, 1)
	assert.Equal(t, "500", got.Variants[0].StorefrontID)
	assert.Equal(t, "SHIRT-S", got.Variants[0].Name)
	assert.Equal(t, []entity.VariantOptionValue{
		{OptionID: "100", Text: "Small", Value: "200"},
	}, got.Variants[0].OptionValues)
}

func TestCatalogService_NormalizeSearchResults_Shopify(t *testing.T) {
	service := NewCatalogService(shopifyGraphQL(), testLogger())

	got, err := service.NormalizeSearchResults(usecase.RawSearchResults{
		Shopify: []shopify.SearchResult{
			{
				Name: "Mug",
				Slug: "mug",
				Variants: []shopify.Variant{
					{StorefrontID: "v-1", Name: "Small", Price: "10.00"},
				},
			},
		},
	})
	require.NoError(t, err)

	require.Len(t, got, 1)
	assert.Equal(t, "/mug/", got[0].Slug)
	assert.Empty(t, got[0].Options)
	assert.Nil(t, got[0].SearchResult)
}

func TestCatalogService_NormalizeSearchResults_BigCommerce(t *testing.T) {
	service := NewCatalogService(bigCommerceGraphQL(), testLogger())

	got, err := service.NormalizeSearchResults(usecase.RawSearchResults{
		BigCommerce: []bigcommerce.SearchResult{
			{
				ID:    "9",
				Name:  "Shirt",
				Path:  "/product/shirt",
				Price: "25",
				SKU:   "SHIRT",
				HighlightResult: &entity.SearchHighlight{
					Name: &entity.HighlightField{Value: "<em>Shirt</em>"},
				},
			},
		},
	})
	require.NoError(t, err)

	require.Len(t, got, 1)
	assert.Equal(t, "shirt/", got[0].Slug)
	require.Len(t, got[0].Variants, 1)
	assert.Equal(t, "25", got[0].Variants[0].Price)
	require.NotNil(t, got[0].SearchResult)
	assert.Equal(t, "<em>Shirt</em>", got[0].SearchResult.Name.Value)
}

func TestCatalogService_NormalizeSearchResults_Nil(t *testing.T) {
	service := NewCatalogService(shopifyGraphQL(), testLogger())

	got, err := service.NormalizeSearchResults(usecase.RawSearchResults{})
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCatalogService_NormalizeCollection_Shopify(t *testing.T) {
	service := fixedOptionService(shopifyGraphQL())

	raw := shopify.Collection{
		Name:        "Summer",
		Slug:        "/collections/summer/",
		Description: "Summer picks.",
		Products: []shopify.Product{
			{
				Name: "Mug",
				Slug: "mug",
				Variants: []shopify.Variant{
					{StorefrontID: "v-1", Name: "Small"},
				},
			},
		},
	}

	got, err := service.NormalizeCollection(usecase.RawCollection{Shopify: &raw})
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, "Summer", got.Name)
	require.Len(t, got.Products, 1)
	require.Len(t, got.Products[0].Options, 1)
	assert.Equal(t, "Mug-option", got.Products[0].Options[0].ID)
}

func TestCatalogService_NormalizeCollection_BigCommerce(t *testing.T) {
	service := NewCatalogService(bigCommerceGraphQL(), testLogger())

	raw := bigcommerce.Category{
		Name: "Shirts",
		URL:  "shirts",
		Products: []bigcommerce.Product{
			{ID: "77", Name: "Shirt", URL: "/shirt/"},
		},
	}

	got, err := service.NormalizeCollection(usecase.RawCollection{BigCommerce: &raw})
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, "/shirts/", got.Slug)
	require.Len(t, got.Products, 1)
	assert.Equal(t, entity.PlatformBigCommerce, got.Products[0].Origin)
}
