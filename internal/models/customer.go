package models

type CustomerType string

const (
	CustomerIndividual CustomerType = "individual"
	CustomerCorporate  CustomerType = "corporate"
)

// Customer is created on demand from the POS and immutable afterwards.
type Customer struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"` // person or company name
	Type         CustomerType `json:"type"`
	Phone        string       `json:"phone"`
	Email        string       `json:"email,omitempty"`
	NationalID   string       `json:"national_id,omitempty"`   // individual national code or corporate registration ID
	EconomicCode string       `json:"economic_code,omitempty"` // corporate only
	Province     string       `json:"province,omitempty"`
	City         string       `json:"city,omitempty"`
	Address      string       `json:"address,omitempty"`
	PostalCode   string       `json:"postal_code,omitempty"`
	Documents    bool         `json:"documents"` // KYC documents on file
}
