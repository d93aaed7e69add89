package pkg

import (
	"bytes"
	"fmt"

	"github.com/icza/bitio"
)

// Bit packing for binary export of an encoded stream. The final byte is
// zero-padded on the low side, so the bit count must travel with the bytes.

// PackBits packs a '0'/'1' bitstring into bytes, most significant bit first.
func PackBits(bits string) ([]byte, error) {
	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)
	for i := 0; i < len(bits); i++ {
		switch bits[i] {
		case '0':
			if err := w.WriteBool(false); err != nil {
				return nil, err
			}
		case '1':
			if err := w.WriteBool(true); err != nil {
				return nil, err
			}
		default:
			return nil, fmt.Errorf("invalid bit character %q at offset %d", bits[i], i)
		}
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnpackBits reads n bits from data and renders them back as a '0'/'1'
// string, discarding padding bits after the n-th.
func UnpackBits(data []byte, n int) (string, error) {
	if n < 0 || n > len(data)*8 {
		return "", fmt.Errorf("bit count %d out of range for %d bytes", n, len(data))
	}
	r := bitio.NewReader(bytes.NewReader(data))
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		b, err := r.ReadBool()
		if err != nil {
			return "", err
		}
		if b {
			out[i] = '1'
		} else {
			out[i] = '0'
		}
	}
	return string(out), nil
}
