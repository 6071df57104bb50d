package domain

// Partner represents one of the two co-owners of the business.
// All settlement arithmetic assumes exactly two active partners; the
// settlement engine rejects any other cardinality.
type Partner struct {
	PartnerID string `json:"partnerID"` // Primary Key (UUID)
	Name      string `json:"name"`
	Email     string `json:"email"`
	IconColor string `json:"iconColor"` // UI hint only
	AuditFields
}
