package pkg

import (
	"strings"
)

// Encode runs the full coding pipeline on text: count frequencies, build the
// Huffman tree, derive the code table, encode the text into a '0'/'1'
// bitstring, then decode it back through the tree as a round-trip check.
// Empty input yields a zero-valued Result. Encode never fails.
func Encode(text string) Result {
	freqs, order := countFrequencies(text)
	if len(freqs) == 0 {
		return Result{
			Frequencies: map[rune]int{},
			Codes:       map[rune]string{},
		}
	}

	root := buildTree(freqs, order)
	codes := generateCodes(root)
	encoded := encodeText(text, codes)
	decoded := decodeBits(encoded, root)

	originalSize := root.weight * 8

	return Result{
		Frequencies:      freqs,
		Codes:            codes,
		Encoded:          encoded,
		Decoded:          decoded,
		OriginalSize:     originalSize,
		CompressedSize:   len(encoded),
		CompressionRatio: float64(len(encoded)) / float64(originalSize) * 100,
	}
}

// encodeText maps each symbol of text to its code, in order, and
// concatenates. Every symbol of text has an entry in codes because the table
// is derived from the same text's frequencies.
func encodeText(text string, codes map[rune]string) string {
	var b strings.Builder
	for _, r := range text {
		b.WriteString(codes[r])
	}
	return b.String()
}

// decodeBits walks the tree bit by bit: '0' descends left, '1' right; on
// reaching a leaf its symbol is emitted and the walk restarts from the root.
// An empty bitstring or nil root decodes to the empty string.
func decodeBits(bits string, root *node) string {
	if root == nil {
		return ""
	}

	var out strings.Builder
	current := root
	for i := 0; i < len(bits); i++ {
		if bits[i] == '0' {
			current = current.left
		} else {
			current = current.right
		}
		if current.leaf {
			out.WriteRune(current.symbol)
			current = root
		}
	}
	return out.String()
}
