package model

// Attribute is a single named attribute of a directory entry. Values is
// never empty for attributes present on a record.
type Attribute struct {
	Name   string   `json:"name" binding:"required"`
	Values []string `json:"values" binding:"required,min=1"`
}

// AccountRecord is the directory entry for the account whose password is
// being changed. Attribute order is preserved from the source.
type AccountRecord struct {
	Attributes []Attribute `json:"attributes"`
}

// IdentityHint carries the optional username and display name resolved from
// an account record. Constructed per evaluation and discarded after.
type IdentityHint struct {
	Username    string
	DisplayName string
}

// HasUsername reports whether a username was resolved. The evaluator uses
// this to pick the identity-aware dictionary check variant.
func (h IdentityHint) HasUsername() bool {
	return h.Username != ""
}
