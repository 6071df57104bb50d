package models

// Client is a billed party row.
type Client struct {
	ClientID       string `db:"client_id"`
	Name           string `db:"name"`
	ContactInfo    string `db:"contact_info"`
	LineOfBusiness string `db:"line_of_business"`
	Status         string `db:"status"`
	AuditFields
}
