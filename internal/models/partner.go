package models

// Partner represents one of the two business co-owners.
type Partner struct {
	PartnerID string `db:"partner_id"`
	Name      string `db:"name"`
	Email     string `db:"email"`
	IconColor string `db:"icon_color"`
	AuditFields
}
