package entity

// CustomerStatus mirrors the lifecycle of the platform customer state.
type CustomerStatus string

const (
	CustomerStatusInitial CustomerStatus = "initial"
	CustomerStatusLoading CustomerStatus = "loading"
	CustomerStatusLoaded  CustomerStatus = "loaded"
	CustomerStatusError   CustomerStatus = "error"
)

// Customer is the canonical customer record. It is a derived, read-only view
// rebuilt from the latest platform state on every access, never mutated in
// place and never the system of record.
//
// When IsLoggedIn is false only the login state and origin tag are populated.
type Customer struct {
	ID          string `json:"id,omitempty"`
	FirstName   string `json:"firstName,omitempty"`
	LastName    string `json:"lastName,omitempty"`
	DisplayName string `json:"displayName,omitempty"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`

	IsLoggedIn bool           `json:"isLoggedIn"`
	Status     CustomerStatus `json:"status"`

	DefaultAddress *Address  `json:"defaultAddress,omitempty"`
	Addresses      []Address `json:"addresses,omitempty"`
	Orders         []Order   `json:"orders,omitempty"`

	// Origin records which platform produced this record. A non-empty Origin
	// marks the record as already canonical.
	Origin Platform `json:"origin"`
}

// IsCanonical reports whether the record has already been normalized.
func (c Customer) IsCanonical() bool {
	return c.Origin != ""
}
