package policy

import (
	"github.com/passvet/passvet/internal/model"
)

// MinLength is the policy floor on password length. Anything shorter is
// rejected before any distribution analysis runs.
const MinLength = 8

const (
	// otherWaiver is the "other" percentage at or above which the
	// class-balance checks are waived outright. A password dominated by
	// unclassified or non-ASCII bytes has an enormous search space and is
	// presumed strong enough without class mixing.
	otherWaiver = 20

	// dominanceMax is the highest percentage any single byte value may
	// occupy before the password is rejected as repetitive.
	dominanceMax = 60
)

// balanceRule bounds the percentage of one character class. A negative min
// disables the lower bound.
type balanceRule struct {
	class  CharClass
	max    int
	maxMsg string
	min    int
	minMsg string
}

// Ordered rule table, evaluated in sequence with the first violation winning.
//
// Digits and whitespace are small alphabets, so their share is capped low.
// Letter classes tolerate a wide band but each needs a floor to force case
// mixing. Punctuation meaningfully raises entropy and is rarely targeted
// first by crackers, so it gets the widest band.
var balanceRules = []balanceRule{
	{ClassDigit, 40, model.ReasonTooManyDigits, 5, model.ReasonTooFewDigits},
	{ClassLower, 60, model.ReasonTooManyLower, 10, model.ReasonTooFewLower},
	{ClassUpper, 60, model.ReasonTooManyUpper, 10, model.ReasonTooFewUpper},
	{ClassPunct, 70, model.ReasonTooMuchPunct, 5, model.ReasonTooLittlePunct},
	{ClassSpace, 10, model.ReasonTooMuchSpace, -1, ""},
}

// Score classifies a password as acceptable or structurally simple. Checks
// run in a fixed order and short-circuit: length, class balance (unless
// waived by a high "other" share), then single-character dominance.
// Percentages are integer floor divisions of the password length.
func Score(password string) model.Verdict {
	total := len(password)
	if total < MinLength {
		return model.Reject(model.ReasonTooShort)
	}

	counts := CountClasses(password)
	if counts[ClassOther]*100/total < otherWaiver {
		for _, r := range balanceRules {
			pct := counts[r.class] * 100 / total
			if pct > r.max {
				return model.Reject(r.maxMsg)
			}
			if r.min >= 0 && pct < r.min {
				return model.Reject(r.minMsg)
			}
		}
	}

	// Dominance check runs even when the balance block is waived. Stop once
	// every occurring byte has been visited; the remaining slots are zero.
	var freq [256]int
	for i := 0; i < total; i++ {
		freq[password[i]]++
	}
	seen := 0
	for i := 0; i < len(freq) && seen < total; i++ {
		if freq[i]*100/total > dominanceMax {
			return model.Reject(model.ReasonRepeatedChar)
		}
		seen += freq[i]
	}

	return model.Accept()
}
