package models

import "strings"

// Customer represents a storefront customer fetched from the commerce platform.
type Customer struct {
	ID             string   `json:"id"`
	FirstName      string   `json:"firstName"`
	LastName       string   `json:"lastName"`
	Email          string   `json:"email"`
	DefaultAddress *Address `json:"defaultAddress"` // nil when the customer has no saved address
}

// DisplayName returns the customer's full name for reporting.
func (c Customer) DisplayName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}
