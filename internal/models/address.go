package models

// Address is a postal address in the field shape of the platform's
// MailingAddressInput, so the same struct is used for addresses read from
// a customer record and addresses sent back on a draft order.
type Address struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Company      string `json:"company"`
	Address1     string `json:"address1"`
	Address2     string `json:"address2"`
	City         string `json:"city"`
	Province     string `json:"province"`
	ProvinceCode string `json:"provinceCode"`
	Zip          string `json:"zip"`
	Country      string `json:"country"`
	CountryCode  string `json:"countryCode"`
	Phone        string `json:"phone"`
}
