package policy

// lower folds a single ASCII byte to lowercase. Non-letters pass through.
func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

// IsPalindrome reports whether the password reads the same forward and
// backward, ignoring ASCII case. Strings shorter than two bytes are never
// palindromes: a single character trivially equals its own reverse but is
// not a palindrome failure mode.
func IsPalindrome(password string) bool {
	if len(password) < 2 {
		return false
	}
	for i, j := 0, len(password)-1; i < j; i, j = i+1, j-1 {
		if lower(password[i]) != lower(password[j]) {
			return false
		}
	}
	return true
}
