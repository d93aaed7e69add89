package pkg

import (
	"sort"
)

// Result is an immutable snapshot of one encoding run. Decoded is the
// round-trip output of feeding Encoded back through the tree; callers are
// expected to compare it against their input.
type Result struct {
	Frequencies map[rune]int
	Codes       map[rune]string
	Encoded     string
	Decoded     string

	OriginalSize     int     // symbol count * 8 bits
	CompressedSize   int     // bits in Encoded
	CompressionRatio float64 // CompressedSize / OriginalSize * 100
}

// Entry is one row of a rendered code table.
type Entry struct {
	Symbol rune
	Freq   int
	Code   string
}

// Entries returns the code table sorted by descending frequency, then by
// symbol for stable output.
func (r Result) Entries() []Entry {
	entries := r.collect()
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Freq != entries[j].Freq {
			return entries[i].Freq > entries[j].Freq
		}
		return entries[i].Symbol < entries[j].Symbol
	})
	return entries
}

// EntriesByCode returns the code table sorted by code length, then
// lexicographically by code.
func (r Result) EntriesByCode() []Entry {
	entries := r.collect()
	sort.Slice(entries, func(i, j int) bool {
		if len(entries[i].Code) != len(entries[j].Code) {
			return len(entries[i].Code) < len(entries[j].Code)
		}
		return entries[i].Code < entries[j].Code
	})
	return entries
}

func (r Result) collect() []Entry {
	entries := make([]Entry, 0, len(r.Codes))
	for sym, code := range r.Codes {
		entries = append(entries, Entry{Symbol: sym, Freq: r.Frequencies[sym], Code: code})
	}
	return entries
}
