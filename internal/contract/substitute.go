package contract

import (
	"fmt"
	"strings"

	"github.com/pkordes/hostel-desk/internal/domain"
)

// Mode selects how a placeholder map is applied to a paragraph.
type Mode string

const (
	// Sequential replaces every occurrence of each key in map order, each
	// pass working on the output of the previous one. A value that contains
	// a later key is substituted again. Existing templates rely on this.
	Sequential Mode = "sequential"

	// SinglePass scans the original text once, left to right, replacing the
	// longest key that matches at each position. Replaced text is never
	// rescanned.
	SinglePass Mode = "single-pass"
)

// ParseMode parses a configured substitution mode. Empty means Sequential.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "", Sequential:
		return Sequential, nil
	case SinglePass:
		return SinglePass, nil
	default:
		return "", fmt.Errorf("unknown substitution mode %q (want %q or %q)", s, Sequential, SinglePass)
	}
}

// Substitute applies placeholders to text using mode.
// Pairs with an empty key are ignored.
func Substitute(text string, placeholders domain.Placeholders, mode Mode) string {
	if mode == SinglePass {
		return substituteOnce(text, placeholders)
	}
	return substituteSequential(text, placeholders)
}

func substituteSequential(text string, placeholders domain.Placeholders) string {
	for _, ph := range placeholders {
		if ph.Key == "" {
			continue
		}
		text = strings.ReplaceAll(text, ph.Key, ph.Value)
	}
	return text
}

func substituteOnce(text string, placeholders domain.Placeholders) string {
	var b strings.Builder
	b.Grow(len(text))

	for i := 0; i < len(text); {
		best, bestLen := -1, 0
		for j, ph := range placeholders {
			if len(ph.Key) > bestLen && strings.HasPrefix(text[i:], ph.Key) {
				best, bestLen = j, len(ph.Key)
			}
		}
		if best < 0 {
			b.WriteByte(text[i])
			i++
			continue
		}
		b.WriteString(placeholders[best].Value)
		i += bestLen
	}
	return b.String()
}
