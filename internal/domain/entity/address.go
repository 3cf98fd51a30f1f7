package entity

// Address is the canonical customer address. Address1, City, CountryCode,
// Province and Zip are always populated on a normalized address; Province is
// the literal "n/a" when the platform has no subdivision for the country.
type Address struct {
	ID          string `json:"id"`
	Address1    string `json:"address1"`
	Address2    string `json:"address2,omitempty"`
	City        string `json:"city"`
	Company     string `json:"company,omitempty"`
	Country     string `json:"country,omitempty"`
	CountryCode string `json:"countryCode"`
	FirstName   string `json:"firstName,omitempty"`
	LastName    string `json:"lastName,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Province    string `json:"province"`
	Zip         string `json:"zip"`
}

// AddressInput is an address without an identifier, as collected from the
// address form. Denormalizers turn it into the platform create/update payload.
type AddressInput struct {
	Address1    string `json:"address1"`
	Address2    string `json:"address2,omitempty"`
	City        string `json:"city"`
	Company     string `json:"company,omitempty"`
	Country     string `json:"country,omitempty"`
	CountryCode string `json:"countryCode"`
	FirstName   string `json:"firstName,omitempty"`
	LastName    string `json:"lastName,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Province    string `json:"province"`
	Zip         string `json:"zip"`
}

// Input strips the identifier from a canonical address.
func (a Address) Input() AddressInput {
	return AddressInput{
		Address1:    a.Address1,
		Address2:    a.Address2,
		City:        a.City,
		Company:     a.Company,
		Country:     a.Country,
		CountryCode: a.CountryCode,
		FirstName:   a.FirstName,
		LastName:    a.LastName,
		Phone:       a.Phone,
		Province:    a.Province,
		Zip:         a.Zip,
	}
}
