package models

import "strings"

// Product is a catalog entry. Price is in cents.
type Product struct {
	ID          string
	Name        string
	Model       string
	Description string
	Price       int64
}

// FormattedPrice returns the price as shown on the storefront
func (p Product) FormattedPrice() string {
	return FormatPrice(p.Price)
}

// Matches reports whether the product name contains term, ignoring case
func (p Product) Matches(term string) bool {
	term = strings.TrimSpace(term)
	if term == "" {
		return false
	}
	return strings.Contains(strings.ToLower(p.Name), strings.ToLower(term))
}
