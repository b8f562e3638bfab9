package policy

// CharClass is the character class assigned to a single byte of a password.
type CharClass int

const (
	ClassDigit CharClass = iota
	ClassLower
	ClassUpper
	ClassPunct
	ClassSpace
	ClassOther

	numClasses
)

// Classify maps a byte to exactly one character class. Classification is
// pinned to ASCII so results do not vary with the host locale: digits first,
// then lowercase and uppercase letters, then printable punctuation, then
// whitespace. Everything else, including all non-ASCII bytes, is ClassOther.
func Classify(c byte) CharClass {
	switch {
	case c >= '0' && c <= '9':
		return ClassDigit
	case c >= 'a' && c <= 'z':
		return ClassLower
	case c >= 'A' && c <= 'Z':
		return ClassUpper
	case c > ' ' && c < 0x7f:
		// Printable, not alphanumeric: the digit and letter ranges were
		// already taken above.
		return ClassPunct
	case c == ' ' || c == '\t' || c == '\n' || c == '\v' || c == '\f' || c == '\r':
		return ClassSpace
	default:
		return ClassOther
	}
}

// ClassCounts holds per-class occurrence counts over a password. The counts
// always sum to the password length.
type ClassCounts [numClasses]int

// CountClasses tallies the class of every byte in password.
func CountClasses(password string) ClassCounts {
	var counts ClassCounts
	for i := 0; i < len(password); i++ {
		counts[Classify(password[i])]++
	}
	return counts
}
