package bigcommerce

import (
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/platform"
)

// RegisterRequiredFields lists the registration fields the BigCommerce
// customer API rejects when empty. Registration creates the first customer
// address, so the address fields are required too.
var RegisterRequiredFields = []string{
	"firstName", "lastName", "email", "password",
	"address1", "city", "countryCode", "province", "zip",
}

// RegisterPayload is the customer-create input of the BigCommerce API.
type RegisterPayload struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	CountryCode string `json:"countryCode"`
	State       string `json:"state"`
	City        string `json:"city"`
	PostalCode  string `json:"postalCode"`
	Address1    string `json:"address1"`
	Address2    string `json:"address2,omitempty"`
}

// DenormalizeRegisterData shapes the registration payload, renaming the
// canonical province/zip fields to the state/postalCode keys BigCommerce
// expects.
func DenormalizeRegisterData(data entity.RegisterData) RegisterPayload {
	return RegisterPayload{
		FirstName:   data.FirstName,
		LastName:    data.LastName,
		Email:       data.Email,
		Password:    data.Password,
		CountryCode: data.CountryCode,
		State:       data.Province,
		City:        data.City,
		PostalCode:  data.Zip,
		Address1:    data.Address1,
		Address2:    data.Address2,
	}
}

// AddressPayload is the address create input of the BigCommerce API.
type AddressPayload struct {
	Address1    string `json:"address1"`
	Address2    string `json:"address2,omitempty"`
	City        string `json:"city"`
	Company     string `json:"company,omitempty"`
	CountryCode string `json:"countryCode"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Phone       string `json:"phone,omitempty"`
	State       string `json:"state"`
	PostalCode  string `json:"postalCode"`
}

// UpdateAddressPayload is the address update input: the create payload plus
// the numeric identifier of the target address.
type UpdateAddressPayload struct {
	ID      int            `json:"id"`
	Address AddressPayload `json:"address"`
}

// DenormalizeAddressInput shapes the address create payload. BigCommerce
// rejects a partial address, so the required fields are checked up front.
func DenormalizeAddressInput(input entity.AddressInput) (AddressPayload, error) {
	if input.Address1 == "" || input.City == "" || input.FirstName == "" || input.LastName == "" ||
		input.Province == "" || input.Zip == "" || input.CountryCode == "" {
		return AddressPayload{}, domainerrors.ErrIncompleteAddress.WrapMessage("can't denormalize address input for BigCommerce")
	}

	return AddressPayload{
		Address1:    input.Address1,
		Address2:    input.Address2,
		City:        input.City,
		Company:     input.Company,
		CountryCode: input.CountryCode,
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		Phone:       input.Phone,
		State:       input.Province,
		PostalCode:  input.Zip,
	}, nil
}

// DenormalizeUpdateAddressInput shapes the address update payload.
// BigCommerce keys addresses by numeric id.
func DenormalizeUpdateAddressInput(input entity.AddressInput, addressID string) (UpdateAddressPayload, error) {
	id, err := platform.ID(addressID).Int()
	if err != nil {
		return UpdateAddressPayload{}, err
	}

	address, err := DenormalizeAddressInput(input)
	if err != nil {
		return UpdateAddressPayload{}, err
	}

	return UpdateAddressPayload{ID: id, Address: address}, nil
}

// DenormalizeDeleteAddressID coerces the target identifier for an address
// delete to the numeric form BigCommerce expects.
func DenormalizeDeleteAddressID(addressID string) (int, error) {
	return platform.ID(addressID).Int()
}

// CartItemUpdate is the BigCommerce quantity-update payload for a cart line
// item. OptionSelections must be carried forward or the update drops them.
type CartItemUpdate struct {
	ID               string                   `json:"id"`
	LineItemID       string                   `json:"lineItemId"`
	Quantity         int                      `json:"quantity"`
	OptionSelections []entity.OptionSelection `json:"optionSelections"`
}

// DenormalizeOptionSelections converts the UI's option-selection state into
// the numeric pairs the BigCommerce line-item API requires. Unset values are
// skipped; a non-numeric option id or value is a contract breach.
func DenormalizeOptionSelections(selections map[string]entity.OptionState) ([]entity.OptionSelection, error) {
	if len(selections) == 0 {
		return nil, nil
	}

	pairs := make([]entity.OptionSelection, 0, len(selections))
	for key, state := range selections {
		if state.Value == nil {
			continue
		}

		optionID, err := platform.ID(key).Int()
		if err != nil {
			return nil, err
		}
		optionValue, err := platform.ID(*state.Value).Int()
		if err != nil {
			return nil, err
		}

		pairs = append(pairs, entity.OptionSelection{OptionID: optionID, OptionValue: optionValue})
	}

	return pairs, nil
}
