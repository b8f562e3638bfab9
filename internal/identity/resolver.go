// Package identity extracts the optional username and display name from a
// directory account record.
package identity

import (
	"github.com/passvet/passvet/internal/model"
)

// Directory attribute names read by the resolver. Matching is exact and
// case-sensitive.
const (
	attrUsername    = "uid"
	attrDisplayName = "gecos"
)

// Resolve scans the record's attributes once and returns the first value of
// the uid and gecos attributes. Absence of either is not an error. The
// returned boolean reports whether a username was found.
func Resolve(record *model.AccountRecord) (model.IdentityHint, bool) {
	var hint model.IdentityHint
	if record == nil {
		return hint, false
	}

	for _, attr := range record.Attributes {
		if hint.Username != "" && hint.DisplayName != "" {
			break
		}
		if len(attr.Values) == 0 {
			continue
		}
		switch attr.Name {
		case attrUsername:
			if hint.Username == "" {
				hint.Username = attr.Values[0]
			}
		case attrDisplayName:
			if hint.DisplayName == "" {
				hint.DisplayName = attr.Values[0]
			}
		}
	}

	return hint, hint.HasUsername()
}
