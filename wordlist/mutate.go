package wordlist

import (
	"strings"
	"unicode/utf8"
)

// leetTable is the fixed substitution table applied by the leet mutation
var leetTable = map[rune]rune{
	'o': '0', 'O': '0',
	'a': '4', 'A': '4',
	'e': '3', 'E': '3',
	'i': '1', 'I': '1',
	's': '5', 'S': '5',
}

// Leet substitutes every character found in the leet table
func Leet(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if sub, ok := leetTable[r]; ok {
			b.WriteRune(sub)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Mutator filters candidates by length and adds their decorated variants to a ResultSet
type Mutator struct {
	Append  string
	Prepend string
	Leet    bool
	Min     int
	Max     int
}

// Apply joins parts into the base candidate and records every surviving variant in set.
// It reports whether the base candidate was inside the length window.
//
// Append and prepend forms of the base candidate must fit within Max. Leet forms,
// decorated or not, are added without any length check.
func (m Mutator) Apply(set *ResultSet, parts []string) bool {
	base := strings.Join(parts, "")
	n := utf8.RuneCountInString(base)
	if n < m.Min || n > m.Max {
		return false
	}
	set.Add(base + "\n")
	if m.Append != "" && n+utf8.RuneCountInString(m.Append) <= m.Max {
		set.Add(base + m.Append + "\n")
	}
	if m.Prepend != "" && utf8.RuneCountInString(m.Prepend)+n <= m.Max {
		set.Add(m.Prepend + base + "\n")
	}
	if m.Leet {
		leet := Leet(base)
		set.Add(leet + "\n")
		if m.Append != "" {
			set.Add(leet + m.Append + "\n")
		}
		if m.Prepend != "" {
			set.Add(m.Prepend + leet + "\n")
		}
	}
	return true
}
