// Package dictionary provides crack-resistance checking of candidate
// passwords against a dictionary resource.
package dictionary

import "context"

// Checker tests a password against a crack-resistance dictionary. An empty
// reason means the password is acceptable; a non-empty reason is surfaced to
// the user verbatim. A returned error means the check could not complete
// (for example the dictionary resource is unreadable) and is distinct from a
// rejection: callers must fail closed on it.
type Checker interface {
	// Check runs the identity-agnostic variant.
	Check(ctx context.Context, password, dictPath string) (string, error)

	// CheckWithUser additionally screens the password against the user's
	// username and display name.
	CheckWithUser(ctx context.Context, password, dictPath, username, displayName string) (string, error)
}
