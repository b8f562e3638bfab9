package dictionary

import (
	"context"
	"strings"
	"time"

	zxcvbn "github.com/ccojocar/zxcvbn-go"
	"github.com/patrickmn/go-cache"

	"github.com/passvet/passvet/internal/model"
)

const (
	// minScore is the lowest acceptable zxcvbn score (0-4).
	minScore = 3

	// minTokenLen is the shortest username or name token screened for.
	minTokenLen = 3

	defaultCacheTTL = 5 * time.Minute
)

// WordlistChecker is the default Checker implementation. It screens the
// password against a wordlist file, the user's personal information, and a
// zxcvbn guess-resistance estimate. Parsed wordlists are cached per path so
// repeated evaluations do not re-read the file.
type WordlistChecker struct {
	cache *cache.Cache
}

func NewWordlistChecker(ttl time.Duration) *WordlistChecker {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &WordlistChecker{
		cache: cache.New(ttl, 2*ttl),
	}
}

func (c *WordlistChecker) Check(ctx context.Context, password, dictPath string) (string, error) {
	return c.check(ctx, password, dictPath, nil)
}

func (c *WordlistChecker) CheckWithUser(ctx context.Context, password, dictPath, username, displayName string) (string, error) {
	lowered := strings.ToLower(password)
	if containsToken(lowered, username) {
		return model.ReasonContainsUser, nil
	}
	for _, token := range nameTokens(displayName) {
		if containsToken(lowered, token) {
			return model.ReasonContainsName, nil
		}
	}

	inputs := make([]string, 0, 2)
	if username != "" {
		inputs = append(inputs, username)
	}
	if displayName != "" {
		inputs = append(inputs, displayName)
	}
	return c.check(ctx, password, dictPath, inputs)
}

func (c *WordlistChecker) check(_ context.Context, password, dictPath string, userInputs []string) (string, error) {
	wl, err := c.load(dictPath)
	if err != nil {
		return "", err
	}
	if wl.matches(password) {
		return model.ReasonDictionaryWord, nil
	}

	if zxcvbn.PasswordStrength(password, userInputs).Score < minScore {
		return model.ReasonEasilyGuessed, nil
	}

	return "", nil
}

func (c *WordlistChecker) load(path string) (*wordlist, error) {
	if cached, ok := c.cache.Get(path); ok {
		return cached.(*wordlist), nil
	}

	wl, err := loadWordlist(path)
	if err != nil {
		return nil, err
	}
	c.cache.SetDefault(path, wl)
	return wl, nil
}

// nameTokens splits a gecos-style display name into screenable tokens.
// Gecos fields separate subfields with commas and names with spaces.
func nameTokens(displayName string) []string {
	return strings.FieldsFunc(displayName, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t'
	})
}

func containsToken(loweredPassword, token string) bool {
	if len(token) < minTokenLen {
		return false
	}
	return strings.Contains(loweredPassword, strings.ToLower(token))
}
