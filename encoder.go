package huffman

import (
	"bytes"
	"fmt"

	"github.com/icza/bitio"
)

// Pack encodes data with the given codes.  The code of each byte is appended
// to the payload, first bit at the most significant position of each output
// byte.  If the last byte is incomplete it is filled with zero bits, and the
// number of bits added (0..7) is returned as padding.
//
// A byte without a code in codes causes an error wrapping ErrUnknownSymbol.
//
func Pack(data []byte, codes CodeTable) (payload []byte, padding byte, err error) {
	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)

	for offset, b := range data {
		hc, found := codes.Lookup(b)
		if !found {
			return nil, 0, fmt.Errorf("%w: byte %d at offset %d", ErrUnknownSymbol, b, offset)
		}
		if err = w.WriteBits(hc.Bits, hc.Size); err != nil {
			return nil, 0, fmt.Errorf("huffman: packing byte at offset %d: %w", offset, err)
		}
	}

	skipped, err := w.Align()
	if err != nil {
		return nil, 0, fmt.Errorf("huffman: padding final byte: %w", err)
	}
	if err = w.Close(); err != nil {
		return nil, 0, fmt.Errorf("huffman: flushing payload: %w", err)
	}

	return buf.Bytes(), skipped, nil
}
