package policy

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/passvet/passvet/internal/model"
)

func TestScoreTooShort(t *testing.T) {
	for _, p := range []string{"", "a", "1234567", "A1b2c3!"} {
		v := Score(p)
		assert.False(t, v.Accepted, "password %q", p)
		assert.Equal(t, model.ReasonTooShort, v.Reason)
	}
}

func TestScoreAcceptsBalancedPassword(t *testing.T) {
	v := Score("aB3!xYz9")
	assert.True(t, v.Accepted)
	assert.Empty(t, v.Reason)
}

func TestScoreClassBalance(t *testing.T) {
	tests := []struct {
		name     string
		password string
		reason   string
	}{
		{
			// 41 digits, 30 lowercase, 29 uppercase over length 100.
			"too many digits at 41 percent",
			strings.Repeat("0123456789", 4) + "1" + strings.Repeat("abc", 10) + strings.Repeat("XYZ", 9) + "QW",
			model.ReasonTooManyDigits,
		},
		{"too few digits", "abcdXYZ!", model.ReasonTooFewDigits},
		{"too many lowercase", "abcdefg1", model.ReasonTooManyLower},
		{"too few lowercase", "ABCDEF12", model.ReasonTooFewLower},
		{"too many uppercase", "aABCDEF1", model.ReasonTooManyUpper},
		{"too few uppercase", "abcd12!@", model.ReasonTooFewUpper},
		{"too much punctuation", "1abAB!@#$%^&*()_+{}|", model.ReasonTooMuchPunct},
		{"too little punctuation", "aBcd1EFg", model.ReasonTooLittlePunct},
		{"too much whitespace", "a B1!c d", model.ReasonTooMuchSpace},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Score(tt.password)
			assert.False(t, v.Accepted)
			assert.Equal(t, tt.reason, v.Reason)
		})
	}
}

func TestScoreDigitBoundaryIsExclusive(t *testing.T) {
	// Exactly 40% digits at length 10: the cap is strictly greater-than.
	v := Score("1234abcDE!")
	assert.True(t, v.Accepted)
}

func TestScoreOtherWaivesBalanceChecks(t *testing.T) {
	// Two unclassified bytes out of eight is 25% "other": the password has
	// no digits at all yet must pass, because the balance block is skipped.
	v := Score("\x80\x81abcXYZ")
	assert.True(t, v.Accepted)

	// Same shape without the unclassified bytes fails the digit floor.
	v = Score("abcdeXYZ")
	assert.False(t, v.Accepted)
	assert.Equal(t, model.ReasonTooFewDigits, v.Reason)
}

func TestScoreSingleCharacterDominance(t *testing.T) {
	// 13 of 20 bytes (65%) are the same non-ASCII byte. The balance checks
	// are waived at 65% "other", but the dominance check still fires.
	v := Score(strings.Repeat("\xc3", 13) + "aB3!xyz")
	assert.False(t, v.Accepted)
	assert.Equal(t, model.ReasonRepeatedChar, v.Reason)

	// Dominant ASCII letter with the balance block waived by other bytes.
	v = Score(strings.Repeat("a", 13) + "\x80\x81\x82\x83\x84\x85\x86")
	assert.False(t, v.Accepted)
	assert.Equal(t, model.ReasonRepeatedChar, v.Reason)
}

func TestScoreDominanceCoversHighBytes(t *testing.T) {
	// A password that is mostly 0xff must be caught like any other byte.
	v := Score(strings.Repeat("\xff", 13) + "aB3!xyz")
	assert.False(t, v.Accepted)
	assert.Equal(t, model.ReasonRepeatedChar, v.Reason)
}

func TestScoreIsIdempotent(t *testing.T) {
	for _, p := range []string{"aB3!xYz9", "abcdefg1", strings.Repeat("\xc3", 13) + "aB3!xyz"} {
		first := Score(p)
		second := Score(p)
		assert.Equal(t, first, second)
	}
}
