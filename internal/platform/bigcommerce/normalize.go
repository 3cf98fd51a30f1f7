package bigcommerce

import (
	"strings"

	"storefront/internal/domain/entity"
	"storefront/internal/platform"
)

// NormalizeAddress maps a BigCommerce address to the canonical shape:
// state becomes province and postalCode becomes zip.
func NormalizeAddress(address Address) entity.Address {
	return entity.Address{
		ID:          address.ID.String(),
		Address1:    address.Address1,
		Address2:    address.Address2,
		City:        address.City,
		Company:     address.Company,
		Country:     address.Country,
		CountryCode: address.CountryCode,
		FirstName:   address.FirstName,
		LastName:    address.LastName,
		Phone:       address.Phone,
		Province:    address.State,
		Zip:         address.PostalCode,
	}
}

// NormalizeOrder maps a BigCommerce order to the canonical shape. The
// discounted line total is computed here as totalIncTax minus the sum of the
// applied discounts; BigCommerce does not supply it pre-computed. A variant
// title is built by joining the recorded option selections, and the variant
// is omitted entirely when there are none.
func NormalizeOrder(order Order) (entity.Order, error) {
	currencyCode := order.CurrencyCode
	if currencyCode == "" {
		currencyCode = order.DefaultCurrencyCode
	}

	products := make([]entity.OrderProduct, 0, len(order.Products))
	for _, product := range order.Products {
		total, err := product.TotalIncTax.Float()
		if err != nil {
			return entity.Order{}, err
		}

		totalDiscount := 0.0
		for _, discount := range product.AppliedDiscounts {
			amount, err := discount.Amount.Float()
			if err != nil {
				return entity.Order{}, err
			}
			totalDiscount += amount
		}

		normalizedProduct := entity.OrderProduct{
			Title:              product.Name,
			Quantity:           product.Quantity,
			OriginalTotalPrice: entity.Money{Amount: product.TotalIncTax.String(), CurrencyCode: currencyCode},
			DiscountedTotalPrice: entity.Money{
				Amount:       platform.FormatAmount(total - totalDiscount),
				CurrencyCode: currencyCode,
			},
		}

		titleParts := make([]string, 0, len(product.ProductOptions))
		for _, option := range product.ProductOptions {
			titleParts = append(titleParts, option.DisplayName+": "+option.DisplayValue)
		}

		if variantTitle := strings.Join(titleParts, ", "); variantTitle != "" {
			normalizedProduct.Variant = &entity.OrderProductVariant{
				ID:    "n/a",
				Title: variantTitle,
			}
		}

		products = append(products, normalizedProduct)
	}

	normalized := entity.Order{
		ID:                order.ID.String(),
		Name:              "#" + order.ID.String(),
		ProcessedAt:       order.DateCreated,
		FulfillmentStatus: order.Status,
		TotalPrice:        entity.Money{Amount: order.TotalIncTax.String(), CurrencyCode: currencyCode},
		Products:          products,
	}

	if order.PaymentStatus != nil {
		normalized.FinancialStatus = *order.PaymentStatus
	}
	if order.SubtotalIncTax != nil {
		normalized.SubtotalPrice = &entity.Money{Amount: order.SubtotalIncTax.String(), CurrencyCode: currencyCode}
	}
	if order.ShippingCostIncTax != nil {
		normalized.TotalShippingPrice = &entity.Money{Amount: order.ShippingCostIncTax.String(), CurrencyCode: currencyCode}
	}

	return normalized, nil
}

// NormalizeCustomer maps the BigCommerce customer state to the canonical
// shape. BigCommerce has no explicit default-address flag; the first address
// in the list is the default.
func NormalizeCustomer(customer Customer) (entity.Customer, error) {
	normalized := entity.Customer{
		IsLoggedIn: customer.IsLoggedIn,
		Status:     entity.CustomerStatus(customer.Status),
		Origin:     entity.PlatformBigCommerce,
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
	if customer.Email != nil {
		normalized.Email = *customer.Email
	}
	if customer.Phone != nil {
		normalized.Phone = *customer.Phone
	}

	if customer.Addresses != nil {
		addresses := make([]entity.Address, 0, len(customer.Addresses))
		for _, address := range customer.Addresses {
			addresses = append(addresses, NormalizeAddress(address))
		}
		normalized.Addresses = addresses

		if len(addresses) > 0 {
			defaultAddress := addresses[0]
			normalized.DefaultAddress = &defaultAddress
		}
	}

	if customer.Orders != nil {
		orders := make([]entity.Order, 0, len(customer.Orders))
		for _, order := range customer.Orders {
			normalizedOrder, err := NormalizeOrder(order)
			if err != nil {
				return entity.Customer{}, err
			}
			orders = append(orders, normalizedOrder)
		}
		normalized.Orders = orders
	}

	return normalized, nil
}

// NormalizeProduct maps a BigCommerce product to the canonical shape. The two
// raw concepts, variant-defining options and modifiers, merge into one
// canonical option list: variant options are always required, modifiers
// default to optional, and the value flagged isDefault becomes the default.
func NormalizeProduct(product Product) entity.Product {
	options := make([]entity.ProductOption, 0, len(product.Options)+len(product.Modifiers))
	for _, option := range product.Options {
		options = append(options, normalizeOption(option, true))
	}
	for _, modifier := range product.Modifiers {
		required := false
		if modifier.Required != nil {
			required = *modifier.Required
		}
		options = append(options, normalizeOption(modifier, required))
	}

	variants := make([]entity.ProductVariant, 0, len(product.Variants))
	for _, variant := range product.Variants {
		normalizedVariant := entity.ProductVariant{
			StorefrontID: variant.ID.String(),
			Name:         variant.SKU,
			Price:        variant.Price.String(),
			SKU:          variant.SKU,
		}

		if variant.OptionValues != nil {
			optionValues := make([]entity.VariantOptionValue, 0, len(variant.OptionValues))
			for _, value := range variant.OptionValues {
				optionValues = append(optionValues, entity.VariantOptionValue{
					OptionID: value.OptionID.String(),
					Text:     value.Label,
					Value:    value.ID.String(),
				})
			}
			normalizedVariant.OptionValues = optionValues
		}

		variants = append(variants, normalizedVariant)
	}

	return entity.Product{
		ID:                product.ID.String(),
		Name:              product.Name,
		Slug:              product.URL,
		Description:       product.Description,
		Price:             product.Price.String(),
		Media:             normalizeImages(product.Images),
		Variants:          variants,
		Options:           options,
		InventoryTracking: entity.InventoryTracking(product.InventoryTracking),
		MetaTitle:         product.PageTitle,
		MetaDescription:   product.MetaDescription,
		SearchResult:      product.HighlightResult,
		Origin:            entity.PlatformBigCommerce,
	}
}

// NormalizeSearchResult maps a search-index hit to a canonical product. Hits
// carry a single price and SKU, exposed as one synthetic variant, and a
// "/products/..." path whose prefix is stripped to form the slug.
func NormalizeSearchResult(result SearchResult) entity.Product {
	return entity.Product{
		ID:          result.ID.String(),
		Name:        result.Name,
		Slug:        searchPathToSlug(result.Path),
		Description: "",
		Media:       normalizeImages(result.Images),
		Variants: []entity.ProductVariant{
			{
				StorefrontID: "",
				Name:         result.Name,
				SKU:          result.SKU,
				Price:        result.Price.String(),
			},
		},
		Options:      []entity.ProductOption{},
		SearchResult: result.HighlightResult,
		Origin:       entity.PlatformBigCommerce,
	}
}

// NormalizeCategory maps a BigCommerce category to a canonical collection.
func NormalizeCategory(category Category) entity.Collection {
	products := make([]entity.Product, 0, len(category.Products))
	for _, product := range category.Products {
		products = append(products, NormalizeProduct(product))
	}

	normalized := entity.Collection{
		Name:        category.Name,
		Slug:        "/" + category.URL + "/",
		Description: category.Description,
		Products:    products,
	}

	if category.Image != nil {
		normalized.Image = &entity.Media{
			Name:   category.Image.Name,
			Src:    category.Image.Src,
			Alt:    category.Image.Alt,
			Width:  category.Image.Width,
			Height: category.Image.Height,
		}
	}

	return normalized
}

// NormalizeCheckoutItem maps a BigCommerce cart line item to the canonical
// shape, carrying the option selections through as modifiers so a later
// quantity update can round-trip them.
func NormalizeCheckoutItem(item CheckoutLineItem) entity.CheckoutLineItem {
	return entity.CheckoutLineItem{
		ID:         item.ID.String(),
		LineItemID: item.LineItemID,
		Title:      item.Name,
		Subtitle:   item.Brand,
		Price:      item.ListPrice.String(),
		Quantity:   item.Quantity,
		VariantID:  item.VariantID.String(),
		ImageURL:   item.ImageURL,
		Modifiers:  item.OptionSelections,
	}
}

func normalizeOption(option Option, required bool) entity.ProductOption {
	normalized := entity.ProductOption{
		ID:          option.ID.String(),
		DisplayName: option.DisplayName,
		Required:    required,
	}

	optionValues := make([]entity.ProductOptionValue, 0, len(option.OptionValues))
	for _, value := range option.OptionValues {
		optionValues = append(optionValues, entity.ProductOptionValue{
			Text:  value.Label,
			Value: value.ID.String(),
		})

		if value.IsDefault {
			normalized.DefaultValue = value.ID.String()
		}
	}
	normalized.OptionValues = optionValues

	return normalized
}

func normalizeImages(images []Image) []entity.Media {
	normalized := make([]entity.Media, 0, len(images))
	for _, image := range images {
		normalized = append(normalized, entity.Media{
			ID:     image.ID.String(),
			Name:   image.Media.Name,
			Src:    image.Media.Src,
			Alt:    image.Media.Alt,
			Width:  image.Media.Width,
			Height: image.Media.Height,
		})
	}

	return normalized
}

// searchPathToSlug strips the "/product/" prefix the search index stores on
// hit paths and normalizes the trailing slash.
func searchPathToSlug(path string) string {
	const prefixLen = len("/product/")
	if len(path) <= prefixLen {
		return "/"
	}

	return path[prefixLen:] + "/"
}
