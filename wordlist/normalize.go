package wordlist

import (
	"maps"
	"slices"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// WordSet is an unordered set of distinct, case-sensitive words
type WordSet map[string]struct{}

// Slice returns the words of the set in sorted order
func (s WordSet) Slice() []string {
	return slices.Sorted(maps.Keys(s))
}

// CaseMutation selects which case variants are added next to every original word
type CaseMutation struct {
	Capitalize bool // first letter upper-cased, the rest unchanged
	Upper      bool // every letter upper-cased
}

// Normalize turns raw multi-line text into the set of distinct trimmed non-empty lines.
// Case variants requested by mut are added alongside the original words.
func Normalize(raw string, mut CaseMutation) (WordSet, error) {
	words := make(WordSet)
	for _, line := range strings.Split(raw, "\n") {
		if w := strings.TrimSpace(line); w != "" {
			words[w] = struct{}{}
		}
	}
	if len(words) == 0 {
		return nil, ErrEmptyCategory
	}
	if !mut.Capitalize && !mut.Upper {
		return words, nil
	}

	up := cases.Upper(language.Und)
	originals := words.Slice()
	for _, w := range originals {
		if mut.Capitalize {
			words[capitalize(up, w)] = struct{}{}
		}
		if mut.Upper {
			words[up.String(w)] = struct{}{}
		}
	}
	return words, nil
}

func capitalize(up cases.Caser, w string) string {
	r, size := utf8.DecodeRuneInString(w)
	if r == utf8.RuneError {
		return w
	}
	return up.String(string(r)) + w[size:]
}
