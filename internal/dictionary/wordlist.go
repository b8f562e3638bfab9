package dictionary

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// minContainsLen is the shortest dictionary word considered for substring
// matching. Shorter words only match the password exactly or reversed,
// otherwise common two- and three-letter words would reject almost anything.
const minContainsLen = 5

// wordlist is a parsed dictionary resource: one lowercase word per line,
// blank lines and #-comments skipped.
type wordlist struct {
	exact map[string]struct{}
	long  []string
}

func loadWordlist(path string) (*wordlist, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dictionary %s: %w", path, err)
	}
	defer f.Close()

	wl := &wordlist{exact: make(map[string]struct{})}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		word := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		wl.exact[word] = struct{}{}
		if len(word) >= minContainsLen {
			wl.long = append(wl.long, word)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read dictionary %s: %w", path, err)
	}

	return wl, nil
}

// matches reports whether the password is a dictionary word, a reversed
// dictionary word, or contains a long dictionary word.
func (wl *wordlist) matches(password string) bool {
	lowered := strings.ToLower(password)
	if _, ok := wl.exact[lowered]; ok {
		return true
	}
	if _, ok := wl.exact[reverse(lowered)]; ok {
		return true
	}
	for _, word := range wl.long {
		if strings.Contains(lowered, word) {
			return true
		}
	}
	return false
}

func reverse(s string) string {
	b := []byte(s)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}
