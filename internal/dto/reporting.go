package dto

// ReportParams defines query parameters shared by the settlement and
// analytics reports. Year defaults to the current year when omitted.
type ReportParams struct {
	Year int `form:"year"`
}
