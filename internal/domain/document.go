package domain

// Document is a read-only reference to a tariff or contract document scoped to
// an account: a URL plus the embedded document payload.
type Document struct {
	URL      string `json:"url" validate:"required,url"`
	Document string `json:"document" validate:"required"`
}
