package dictionary

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/passvet/passvet/internal/model"
)

func writeDict(t *testing.T, words string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte(words), 0o600))
	return path
}

const strongPassword = "kV9#mQ2$wX7!pLz4"

func TestCheckFailsClosedOnMissingDictionary(t *testing.T) {
	c := NewWordlistChecker(0)

	reason, err := c.Check(context.Background(), strongPassword, "/nonexistent/words.txt")
	assert.Error(t, err)
	assert.Empty(t, reason)
}

func TestCheckDictionaryMatches(t *testing.T) {
	dict := writeDict(t, "penguin\ntrousers\ncorrecthorse\n# a comment\n\n")
	c := NewWordlistChecker(0)
	ctx := context.Background()

	tests := []struct {
		name     string
		password string
		reason   string
	}{
		{"exact word", "penguin", model.ReasonDictionaryWord},
		{"exact word case folded", "PeNgUiN", model.ReasonDictionaryWord},
		{"reversed word", "niugnep", model.ReasonDictionaryWord},
		{"embedded long word", "xXtrousers99", model.ReasonDictionaryWord},
		{"strong password passes", strongPassword, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reason, err := c.Check(ctx, tt.password, dict)
			require.NoError(t, err)
			assert.Equal(t, tt.reason, reason)
		})
	}
}

func TestCheckRejectsGuessablePasswords(t *testing.T) {
	dict := writeDict(t, "penguin\n")
	c := NewWordlistChecker(0)

	reason, err := c.Check(context.Background(), "abcabc121", dict)
	require.NoError(t, err)
	assert.Equal(t, model.ReasonEasilyGuessed, reason)
}

func TestCheckWithUserScreensIdentity(t *testing.T) {
	dict := writeDict(t, "penguin\n")
	c := NewWordlistChecker(0)
	ctx := context.Background()

	reason, err := c.CheckWithUser(ctx, "xjdoe!K9$mQ2wZ", dict, "jdoe", "")
	require.NoError(t, err)
	assert.Equal(t, model.ReasonContainsUser, reason)

	reason, err = c.CheckWithUser(ctx, "k9$Doe!mQ2wZxv", dict, "jd", "Jane Doe,Room 4")
	require.NoError(t, err)
	assert.Equal(t, model.ReasonContainsName, reason)

	// Short tokens are not screened for.
	reason, err = c.CheckWithUser(ctx, strongPassword, dict, "kV", "")
	require.NoError(t, err)
	assert.Empty(t, reason)
}

func TestWordlistCacheSurvivesFileRemoval(t *testing.T) {
	dict := writeDict(t, "penguin\n")
	c := NewWordlistChecker(time.Minute)
	ctx := context.Background()

	reason, err := c.Check(ctx, "penguin", dict)
	require.NoError(t, err)
	assert.Equal(t, model.ReasonDictionaryWord, reason)

	// The parsed wordlist is served from cache within the TTL.
	require.NoError(t, os.Remove(dict))
	reason, err = c.Check(ctx, "penguin", dict)
	require.NoError(t, err)
	assert.Equal(t, model.ReasonDictionaryWord, reason)
}
