package shopify

import (
	"strconv"

	"storefront/internal/domain/entity"
	"storefront/internal/platform"
)

// RegisterRequiredFields lists the registration fields the Shopify customer
// API rejects when empty.
var RegisterRequiredFields = []string{"firstName", "lastName", "email", "password"}

// RegisterPayload is the customer-create input of the Shopify API.
type RegisterPayload struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// DenormalizeRegisterData shapes the registration payload. The address fields
// of the form are not part of Shopify registration.
func DenormalizeRegisterData(data entity.RegisterData) RegisterPayload {
	return RegisterPayload{
		FirstName: data.FirstName,
		LastName:  data.LastName,
		Email:     data.Email,
		Password:  data.Password,
	}
}

// AddressPayload is the address create input of the Shopify API. The field
// names match the canonical shape; only the identifier handling differs.
type AddressPayload struct {
	Address1  string `json:"address1"`
	Address2  string `json:"address2,omitempty"`
	City      string `json:"city"`
	Company   string `json:"company,omitempty"`
	Country   string `json:"country,omitempty"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Province  string `json:"province"`
	Zip       string `json:"zip"`
}

// UpdateAddressPayload is the address update input: the create payload plus
// the string identifier of the target address.
type UpdateAddressPayload struct {
	ID      string         `json:"id"`
	Address AddressPayload `json:"address"`
}

// DenormalizeAddressInput shapes the address create payload.
func DenormalizeAddressInput(input entity.AddressInput) AddressPayload {
	return AddressPayload{
		Address1:  input.Address1,
		Address2:  input.Address2,
		City:      input.City,
		Company:   input.Company,
		Country:   input.Country,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Phone:     input.Phone,
		Province:  input.Province,
		Zip:       input.Zip,
	}
}

// DenormalizeUpdateAddressInput shapes the address update payload. Shopify
// keys addresses by string id.
func DenormalizeUpdateAddressInput(input entity.AddressInput, addressID string) UpdateAddressPayload {
	return UpdateAddressPayload{
		ID:      addressID,
		Address: DenormalizeAddressInput(input),
	}
}

// DenormalizeDeleteAddressID coerces the target identifier for an address
// delete. Shopify expects the string form.
func DenormalizeDeleteAddressID(addressID string) string {
	return addressID
}

// CartItemUpdate is the Shopify quantity-update payload for a cart line item.
type CartItemUpdate struct {
	ID       string `json:"id"`
	Quantity int    `json:"quantity"`
}

// CentsToAmount converts a REST-API price in cents to a major-unit decimal
// string ("1999" -> "19.99"). Unparseable input yields the empty string.
func CentsToAmount(price string) string {
	if price == "" {
		return ""
	}

	cents, err := platform.Decimal(price).Float()
	if err != nil {
		return ""
	}

	return strconv.FormatFloat(cents/100, 'f', 2, 64)
}
