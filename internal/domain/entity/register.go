package entity

// RegisterData is the normalized registration form state: account credentials
// plus the address fields BigCommerce requires at registration time.
type RegisterData struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	Address1    string `json:"address1,omitempty"`
	Address2    string `json:"address2,omitempty"`
	City        string `json:"city,omitempty"`
	Company     string `json:"company,omitempty"`
	Country     string `json:"country,omitempty"`
	CountryCode string `json:"countryCode,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Province    string `json:"province,omitempty"`
	Zip         string `json:"zip,omitempty"`
}

// Field returns the value of a register field by its canonical name. Unknown
// names return the empty string, which required-field checks treat as unset.
func (d RegisterData) Field(name string) string {
	switch name {
	case "firstName":
		return d.FirstName
	case "lastName":
		return d.LastName
	case "email":
		return d.Email
	case "password":
		return d.Password
	case "address1":
		return d.Address1
	case "address2":
		return d.Address2
	case "city":
		return d.City
	case "company":
		return d.Company
	case "country":
		return d.Country
	case "countryCode":
		return d.CountryCode
	case "phone":
		return d.Phone
	case "province":
		return d.Province
	case "zip":
		return d.Zip
	}

	return ""
}

// FormError is a user-facing validation or API error, surfaced to the view as
// inline form data rather than thrown.
type FormError struct {
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
	Code    string `json:"code,omitempty"`
}

// RegisterResult is the normalized outcome of a registration attempt. An
// empty Errors slice means success.
type RegisterResult struct {
	Errors []FormError `json:"errors,omitempty"`
}
