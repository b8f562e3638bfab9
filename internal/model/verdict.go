package model

// Rejection reasons surfaced to the end user. These are complete sentences
// suitable for direct display on a failed password change.
const (
	ReasonTooShort       = "Password is too short"
	ReasonPalindrome     = "Password is a palindrome"
	ReasonTooManyDigits  = "Password contains too many digits"
	ReasonTooFewDigits   = "Password contains too few digits"
	ReasonTooManyLower   = "Password contains too many lowercase letters"
	ReasonTooFewLower    = "Password contains too few lowercase letters"
	ReasonTooManyUpper   = "Password contains too many uppercase letters"
	ReasonTooFewUpper    = "Password contains too few uppercase letters"
	ReasonTooMuchPunct   = "Password contains too much punctuation"
	ReasonTooLittlePunct = "Password contains too little punctuation"
	ReasonTooMuchSpace   = "Password contains too much whitespace"
	ReasonRepeatedChar   = "Password contains too many of a single character"
	ReasonDictionaryWord = "Password is based on a dictionary word"
	ReasonContainsUser   = "Password is based on your username"
	ReasonContainsName   = "Password is based on your name"
	ReasonEasilyGuessed  = "Password is too easily guessed"
)

// Verdict is the outcome of a password evaluation. Exactly one of the two
// states is active: accepted, or rejected with a reason.
type Verdict struct {
	Accepted bool   `json:"accepted"`
	Reason   string `json:"reason,omitempty"`
}

func Accept() Verdict {
	return Verdict{Accepted: true}
}

func Reject(reason string) Verdict {
	return Verdict{Accepted: false, Reason: reason}
}
