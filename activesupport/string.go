package activesupport

import (
	"strings"
)

type String string

// IsBlank returns true when the string is empty or contains only
// whitespace characters.
func (s String) IsBlank() bool {
	return strings.TrimSpace(string(s)) == ""
}

func (s String) IsEmpty() bool {
	return len(s) == 0
}

type StringSlice []string

func (ss StringSlice) ToHash() Hash {
	h := make(Hash, len(ss))
	for _, s := range ss {
		h[s] = struct{}{}
	}
	return h
}

func (ss StringSlice) Contains(s string) bool {
	for i := range ss {
		if ss[i] == s {
			return true
		}
	}
	return false
}

func (ss StringSlice) Copy() StringSlice {
	sscopy := make(StringSlice, len(ss))
	copy(sscopy, ss)
	return sscopy
}
