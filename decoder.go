package huffman

import (
	"bytes"
	"fmt"

	"github.com/icza/bitio"
)

// Unpack decodes a payload produced by Pack.
//
// The payload is read as a bit sequence, most significant bit of each byte
// first, and its last padding bits are discarded.  The remaining bits are
// walked through tree: 0 descends left, 1 descends right, and reaching a leaf
// emits its symbol and restarts at the root.  Exactly total symbols must be
// decoded.
//
// On failure no output is returned.  The error wraps one of
// ErrInvalidPadding, ErrTruncatedStream, ErrTrailingData or ErrInvalidCode.
//
func Unpack(payload []byte, padding byte, tree *Tree, total uint64) ([]byte, error) {
	if padding > 7 {
		return nil, fmt.Errorf("%w: %d padding bits, max 7", ErrInvalidPadding, padding)
	}
	avail := uint64(len(payload)) * 8
	if uint64(padding) > avail {
		return nil, fmt.Errorf("%w: %d padding bits, but only %d payload bits", ErrInvalidPadding, padding, avail)
	}
	nbits := avail - uint64(padding)

	root := tree.Root
	if root == nil {
		if nbits != 0 {
			return nil, fmt.Errorf("%w: %d payload bits for an empty tree", ErrTrailingData, nbits)
		}
		if total != 0 {
			return nil, fmt.Errorf("%w: expected %d symbols, tree is empty", ErrTruncatedStream, total)
		}
		return []byte{}, nil
	}

	// Every code is at least one bit long.
	out := make([]byte, 0, min(total, nbits))

	r := bitio.NewReader(bytes.NewReader(payload))
	cursor := root
	for i := uint64(0); i < nbits; i++ {
		bit, err := r.ReadBool()
		if err != nil {
			return nil, fmt.Errorf("%w: reading bit %d of %d: %v", ErrTruncatedStream, i, nbits, err)
		}

		switch n := cursor.(type) {
		case *Internal:
			if bit {
				cursor = n.Right
			} else {
				cursor = n.Left
			}
		case *Leaf:
			// only a root leaf lands here; its code is "0"
			if bit {
				return nil, fmt.Errorf("%w: bit %d", ErrInvalidCode, i)
			}
		}

		leaf, ok := cursor.(*Leaf)
		if !ok {
			continue
		}
		if leaf.Synthetic {
			return nil, fmt.Errorf("%w: bit %d ends on the synthetic leaf", ErrInvalidCode, i)
		}
		if uint64(len(out)) == total {
			return nil, fmt.Errorf("%w: symbol %d decoded after the expected %d", ErrTrailingData, total+1, total)
		}
		out = append(out, leaf.Symbol)
		cursor = root
	}

	if uint64(len(out)) < total {
		return nil, fmt.Errorf("%w: decoded %d of %d symbols", ErrTruncatedStream, len(out), total)
	}
	if cursor != root {
		return nil, fmt.Errorf("%w: payload ends inside a code after the last symbol", ErrTruncatedStream)
	}
	return out, nil
}
