package entity

// Money is a decimal amount paired with its ISO 4217 currency code. The
// amount stays a string end to end so platform precision survives.
type Money struct {
	Amount       string `json:"amount"`
	CurrencyCode string `json:"currencyCode"`
}
