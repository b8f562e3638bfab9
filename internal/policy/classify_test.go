package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		c    byte
		want CharClass
	}{
		{"digit zero", '0', ClassDigit},
		{"digit nine", '9', ClassDigit},
		{"lowercase a", 'a', ClassLower},
		{"lowercase z", 'z', ClassLower},
		{"uppercase A", 'A', ClassUpper},
		{"uppercase Z", 'Z', ClassUpper},
		{"exclamation", '!', ClassPunct},
		{"tilde", '~', ClassPunct},
		{"at sign", '@', ClassPunct},
		{"space", ' ', ClassSpace},
		{"tab", '\t', ClassSpace},
		{"newline", '\n', ClassSpace},
		{"nul", 0x00, ClassOther},
		{"delete", 0x7f, ClassOther},
		{"high bit", 0xc3, ClassOther},
		{"max byte", 0xff, ClassOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.c))
		})
	}
}

func TestClassifyIsTotal(t *testing.T) {
	// Every byte value maps to exactly one class.
	for c := 0; c < 256; c++ {
		class := Classify(byte(c))
		assert.GreaterOrEqual(t, int(class), int(ClassDigit))
		assert.LessOrEqual(t, int(class), int(ClassOther))
	}
}

func TestCountClasses(t *testing.T) {
	counts := CountClasses("aB3! \xc3")
	assert.Equal(t, 1, counts[ClassLower])
	assert.Equal(t, 1, counts[ClassUpper])
	assert.Equal(t, 1, counts[ClassDigit])
	assert.Equal(t, 1, counts[ClassPunct])
	assert.Equal(t, 1, counts[ClassSpace])
	assert.Equal(t, 1, counts[ClassOther])
}

func TestCountClassesSumsToLength(t *testing.T) {
	for _, s := range []string{"", "password", "P@ssw0rd With Space", "\x00\xff\x80abcXYZ123"} {
		counts := CountClasses(s)
		sum := 0
		for _, n := range counts {
			sum += n
		}
		assert.Equal(t, len(s), sum, "counts must sum to length of %q", s)
	}
}
