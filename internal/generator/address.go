package generator

import (
	"fmt"
	"strconv"

	"orderseed/internal/models"
)

// Fixed pools for synthesized addresses, ten entries each.
var (
	streetNames = []string{
		"Maple Street",
		"Oak Avenue",
		"Cedar Lane",
		"Elm Street",
		"Washington Avenue",
		"Lake Drive",
		"Hillcrest Road",
		"Sunset Boulevard",
		"Park Place",
		"River Road",
	}

	cityNames = []string{
		"Springfield",
		"Riverside",
		"Franklin",
		"Greenville",
		"Bristol",
		"Clinton",
		"Fairview",
		"Salem",
		"Madison",
		"Georgetown",
	}

	states = []stateEntry{
		{"California", "CA"},
		{"Texas", "TX"},
		{"New York", "NY"},
		{"Florida", "FL"},
		{"Illinois", "IL"},
		{"Washington", "WA"},
		{"Colorado", "CO"},
		{"Georgia", "GA"},
		{"Ohio", "OH"},
		{"Arizona", "AZ"},
	}
)

type stateEntry struct {
	name string
	code string
}

// ShippingAddress returns the address a generated order ships to. A customer
// with a saved default address keeps it, with the name fields refreshed from
// the customer record; everyone else gets a synthesized US address.
func (g *Generator) ShippingAddress(customer models.Customer) models.Address {
	if customer.DefaultAddress != nil {
		addr := *customer.DefaultAddress
		addr.FirstName = customer.FirstName
		addr.LastName = customer.LastName
		return addr
	}
	return g.syntheticAddress(customer)
}

func (g *Generator) syntheticAddress(customer models.Customer) models.Address {
	state := states[g.index(len(states))]
	return models.Address{
		FirstName:    customer.FirstName,
		LastName:     customer.LastName,
		Address1:     fmt.Sprintf("%d %s", g.intBetween(100, 9999), streetNames[g.index(len(streetNames))]),
		City:         cityNames[g.index(len(cityNames))],
		Province:     state.name,
		ProvinceCode: state.code,
		Zip:          strconv.Itoa(g.intBetween(10000, 99999)),
		Country:      "United States",
		CountryCode:  "US",
		Phone:        fmt.Sprintf("%d-%d-%d", g.intBetween(200, 999), g.intBetween(200, 999), g.intBetween(1000, 9999)),
	}
}
