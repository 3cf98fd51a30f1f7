package shopify

import (
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
)

// NormalizeAddress maps a Shopify address to the canonical shape. Addresses
// from the SDK are expected to always be complete; a missing address1,
// country, city or zip is a data-contract breach and fails loudly.
func NormalizeAddress(address Address) (entity.Address, error) {
	if address.Address1 == nil || address.Country == nil || address.City == nil || address.Zip == nil {
		return entity.Address{}, domainerrors.ErrIncompleteAddress.WrapMessage("can't normalize Shopify address")
	}

	normalized := entity.Address{
		ID:          address.ID.String(),
		Address1:    *address.Address1,
		City:        *address.City,
		Country:     *address.Country,
		CountryCode: CodeByCountry(*address.Country),
		Zip:         *address.Zip,
		Province:    "n/a",
	}

	if address.Address2 != nil {
		normalized.Address2 = *address.Address2
	}
	if address.Company != nil {
		normalized.Company = *address.Company
	}
	if address.FirstName != nil {
		normalized.FirstName = *address.FirstName
	}
	if address.LastName != nil {
		normalized.LastName = *address.LastName
	}
	if address.Phone != nil {
		normalized.Phone = *address.Phone
	}
	if address.Province != nil && *address.Province != "" {
		normalized.Province = *address.Province
	}

	return normalized, nil
}

// NormalizeOrder maps a Shopify order and its line-item connection to the
// canonical shape. Shopify already supplies the discounted line totals, so
// they are trusted as-is. Optional money fields are carried over only when
// the platform sent a value rather than null.
func NormalizeOrder(order Order) entity.Order {
	products := make([]entity.OrderProduct, 0, len(order.LineItems.Edges))
	for _, edge := range order.LineItems.Edges {
		item := edge.Node
		image := item.Variant.Image

		products = append(products, entity.OrderProduct{
			Title:                item.Title,
			Quantity:             item.Quantity,
			OriginalTotalPrice:   normalizeMoney(item.OriginalTotalPrice),
			DiscountedTotalPrice: normalizeMoney(item.DiscountedTotalPrice),
			Variant: &entity.OrderProductVariant{
				ID:    item.Variant.ID.String(),
				Title: item.Variant.Title,
				Image: &entity.Media{
					ID:             image.ID.String(),
					Name:           "n/a",
					Src:            image.OriginalSrc,
					TransformedSrc: image.TransformedSrc,
					Alt:            image.AltText,
					Width:          image.Width,
					Height:         image.Height,
				},
			},
		})
	}

	normalized := entity.Order{
		ID:                order.ID.String(),
		Name:              order.Name,
		ProcessedAt:       order.ProcessedAt,
		FulfillmentStatus: order.FulfillmentStatus,
		TotalPrice:        normalizeMoney(order.TotalPriceV2),
		Products:          products,
	}

	if order.FinancialStatus != nil {
		normalized.FinancialStatus = *order.FinancialStatus
	}
	if order.SubtotalPriceV2 != nil {
		subtotal := normalizeMoney(*order.SubtotalPriceV2)
		normalized.SubtotalPrice = &subtotal
	}
	if order.TotalShippingPriceV2 != nil {
		shipping := normalizeMoney(*order.TotalShippingPriceV2)
		normalized.TotalShippingPrice = &shipping
	}

	return normalized
}

// NormalizeCustomer maps the Shopify customer state to the canonical shape.
// Shopify reports "not set" as explicit null, so every identity field is
// copied only when present.
func NormalizeCustomer(customer Customer) (entity.Customer, error) {
	normalized := entity.Customer{
		IsLoggedIn: customer.IsLoggedIn,
		Status:     entity.CustomerStatus(customer.Status),
		Origin:     entity.PlatformShopify,
	}

	if customer.ID != nil {
		normalized.ID = customer.ID.String()
	}
	if customer.FirstName != nil {
		normalized.FirstName = *customer.FirstName
	}
	if customer.LastName != nil {
		normalized.LastName = *customer.LastName
	}
	if customer.DisplayName != nil {
		normalized.DisplayName = *customer.DisplayName
	}
	if customer.Email != nil {
		normalized.Email = *customer.Email
	}
	if customer.Phone != nil {
		normalized.Phone = *customer.Phone
	}

	if customer.Addresses != nil {
		addresses := make([]entity.Address, 0, len(customer.Addresses))
		for _, address := range customer.Addresses {
			normalizedAddress, err := NormalizeAddress(address)
			if err != nil {
				return entity.Customer{}, err
			}
			addresses = append(addresses, normalizedAddress)

			// First default wins.
			if address.IsDefault && normalized.DefaultAddress == nil {
				defaultAddress := normalizedAddress
				normalized.DefaultAddress = &defaultAddress
			}
		}
		normalized.Addresses = addresses
	}

	if customer.Orders != nil {
		orders := make([]entity.Order, 0, len(customer.Orders))
		for _, order := range customer.Orders {
			orders = append(orders, NormalizeOrder(order))
		}
		normalized.Orders = orders
	}

	return normalized, nil
}

// NormalizeProduct maps a Shopify product to the canonical shape. Shopify has
// no native option concept, so a single synthetic "Variant" option is
// manufactured from the variant list under the supplied option id; its
// default value is the first variant's storefront id and it is always
// required.
func NormalizeProduct(product Product, optionID string) entity.Product {
	variants := make([]entity.ProductVariant, 0, len(product.Variants))
	for _, variant := range product.Variants {
		variants = append(variants, entity.ProductVariant{
			StorefrontID: variant.StorefrontID.String(),
			Name:         variant.Name,
			Price:        variant.Price.String(),
			SKU:          variant.SKU,
			OptionValues: []entity.VariantOptionValue{
				{OptionID: optionID, Value: variant.StorefrontID.String(), Text: variant.Name},
			},
		})
	}

	var options []entity.ProductOption
	if len(variants) > 0 {
		optionValues := make([]entity.ProductOptionValue, 0, len(variants))
		for _, variant := range variants {
			optionValues = append(optionValues, entity.ProductOptionValue{
				Text:  variant.Name,
				Value: variant.StorefrontID,
			})
		}

		options = []entity.ProductOption{
			{
				ID:           optionID,
				DisplayName:  "Variant",
				DefaultValue: variants[0].StorefrontID,
				OptionValues: optionValues,
				Required:     true,
			},
		}
	}

	normalized := entity.Product{
		Slug:              "/" + product.Slug + "/",
		Name:              product.Name,
		Description:       description(product.DescriptionHTML, product.Description),
		Media:             normalizeMedia(product.Media),
		Variants:          variants,
		Options:           options,
		InventoryTracking: entity.InventoryTrackingVariant,
		Thumbnail:         normalizeThumbnail(product.Thumbnail),
		MetaTitle:         product.MetaTitle,
		MetaDescription:   product.MetaDescription,
		SearchResult:      product.HighlightResult,
		Origin:            entity.PlatformShopify,
	}

	if product.ExternalID != nil {
		normalized.ID = product.ExternalID.String()
	}

	return normalized
}

// NormalizeSearchResult maps a search-index hit to a canonical product. Search
// hits carry no option metadata or SEO fields, so those stay empty.
func NormalizeSearchResult(result SearchResult) entity.Product {
	variants := make([]entity.ProductVariant, 0, len(result.Variants))
	for _, variant := range result.Variants {
		variants = append(variants, entity.ProductVariant{
			StorefrontID: variant.StorefrontID.String(),
			Name:         variant.Name,
			Price:        variant.Price.String(),
			SKU:          variant.SKU,
		})
	}

	normalized := entity.Product{
		Slug:         "/" + result.Slug + "/",
		Name:         result.Name,
		Description:  description(result.DescriptionHTML, result.Description),
		Media:        normalizeMedia(result.Media),
		Variants:     variants,
		Options:      []entity.ProductOption{},
		Thumbnail:    normalizeThumbnail(result.Thumbnail),
		SearchResult: result.HighlightResult,
		Origin:       entity.PlatformShopify,
	}

	if result.ExternalID != nil {
		normalized.ID = result.ExternalID.String()
	}

	return normalized
}

// NormalizeCollection maps a Shopify collection to the canonical shape.
// newOptionID supplies the synthetic option id for each contained product.
func NormalizeCollection(collection Collection, newOptionID func(base string) string) entity.Collection {
	products := make([]entity.Product, 0, len(collection.Products))
	for _, product := range collection.Products {
		products = append(products, NormalizeProduct(product, newOptionID(product.Name)))
	}

	normalized := entity.Collection{
		Name:        collection.Name,
		Slug:        collection.Slug,
		Description: description(collection.DescriptionHTML, collection.Description),
		Products:    products,
	}

	if collection.Image != nil {
		normalized.Image = &entity.Media{
			Name:   collection.Image.Name,
			Src:    collection.Image.Src,
			Alt:    collection.Image.Alt,
			Width:  collection.Image.Width,
			Height: collection.Image.Height,
		}
	}

	return normalized
}

// NormalizeCheckoutItem maps a Shopify cart line item to the canonical shape.
// The GraphQL API nests the variant detail; the REST API returns flat fields
// with the price in cents, converted here to a major-unit decimal string.
func NormalizeCheckoutItem(item CheckoutLineItem, apiType entity.APIType) entity.CheckoutLineItem {
	normalized := entity.CheckoutLineItem{
		ID:       item.ID.String(),
		Title:    item.Title,
		Quantity: item.Quantity,
	}

	if apiType == entity.APITypeGraphQL && item.Variant != nil {
		normalized.Subtitle = item.Variant.Title
		normalized.Price = item.Variant.Price.String()
		normalized.VariantID = item.Variant.ID.String()
		normalized.ImageURL = item.Variant.Image.Src
		if item.Variant.Product != nil {
			normalized.Slug = item.Variant.Product.Handle
		}

		return normalized
	}

	normalized.Subtitle = item.Title
	normalized.Price = CentsToAmount(item.Price.String())
	normalized.VariantID = item.VariantID.String()
	normalized.ImageURL = item.Image
	normalized.Slug = item.Handle

	return normalized
}

func normalizeMoney(money Money) entity.Money {
	return entity.Money{Amount: money.Amount.String(), CurrencyCode: money.CurrencyCode}
}

func normalizeMedia(media []MediaItem) []entity.Media {
	normalized := make([]entity.Media, 0, len(media))
	for _, item := range media {
		normalized = append(normalized, entity.Media{
			ID:     item.ID.String(),
			Name:   item.Details.Name,
			Src:    item.Details.Src,
			Alt:    item.Details.Alt,
			Width:  item.Details.Width,
			Height: item.Details.Height,
		})
	}

	return normalized
}

func normalizeThumbnail(thumbnail *Thumbnail) *entity.Media {
	if thumbnail == nil {
		return nil
	}

	return &entity.Media{
		Name:   thumbnail.Name,
		Src:    thumbnail.Src,
		Alt:    thumbnail.Alt,
		Width:  thumbnail.Width,
		Height: thumbnail.Height,
	}
}

func description(html, plain string) string {
	if html != "" {
		return html
	}

	return plain
}
