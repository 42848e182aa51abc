package headlines

import (
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Seen is a case-insensitive set of headline texts. A Seen is owned by a
// single extraction run and is not safe for concurrent use.
type Seen map[uint64]struct{}

// NewSeen returns an empty Seen.
func NewSeen() Seen {
	return make(Seen)
}

func seenKey(text string) uint64 {
	return xxhash.Sum64String(strings.ToLower(text))
}

// Has reports whether text was added before, ignoring case.
func (s Seen) Has(text string) bool {
	_, ok := s[seenKey(text)]
	return ok
}

// Add records text. Returns false if it was already present.
func (s Seen) Add(text string) bool {
	k := seenKey(text)
	if _, ok := s[k]; ok {
		return false
	}
	s[k] = struct{}{}
	return true
}
