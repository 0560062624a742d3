package huffman

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// CodeTable maps each Symbol of a Huffman tree to its Code.
type CodeTable struct {
	codes   [NumSymbols]Code
	present [NumSymbols]bool
	n       int
	minSize byte
	maxSize byte
}

// DeriveCodes computes the CodeTable for tree.  Each leaf's code is its path
// from the root, with 0 for a left edge and 1 for a right edge.  A leaf at
// the root is given the code "0".  Synthetic leaves get no code.
//
// The tree must be no deeper than MaxCodeSize.
//
func DeriveCodes(tree *Tree) CodeTable {
	var ct CodeTable
	tree.Walk(func(node Node, path Code) {
		leaf, ok := node.(*Leaf)
		if !ok || leaf.Synthetic {
			return
		}
		assert.Assertf(path.Size <= MaxCodeSize, "symbol %d: code length %d > MaxCodeSize %d", leaf.Symbol, path.Size, MaxCodeSize)
		if path.Size == 0 {
			path = MakeCode(1, 0)
		}
		ct.set(leaf.Symbol, path)
	})
	return ct
}

func (ct *CodeTable) set(symbol Symbol, hc Code) {
	if ct.n == 0 {
		ct.minSize = hc.Size
		ct.maxSize = hc.Size
	} else if ct.minSize > hc.Size {
		ct.minSize = hc.Size
	} else if ct.maxSize < hc.Size {
		ct.maxSize = hc.Size
	}
	ct.codes[symbol] = hc
	ct.present[symbol] = true
	ct.n++
}

// Lookup returns the Code for symbol.  The boolean is false if symbol has no
// code.
func (ct CodeTable) Lookup(symbol Symbol) (Code, bool) {
	return ct.codes[symbol], ct.present[symbol]
}

// Len returns the number of symbols with a code.
func (ct CodeTable) Len() int {
	return ct.n
}

// MinSize is the bit length of the shortest code.
func (ct CodeTable) MinSize() byte {
	return ct.minSize
}

// MaxSize is the bit length of the longest code.
func (ct CodeTable) MaxSize() byte {
	return ct.maxSize
}

// Symbols returns the symbols with a code, in ascending order.
func (ct CodeTable) Symbols() []Symbol {
	out := make([]Symbol, 0, ct.n)
	for symbol := 0; symbol < NumSymbols; symbol++ {
		if ct.present[symbol] {
			out = append(out, Symbol(symbol))
		}
	}
	return out
}

// EncodedBits returns the number of payload bits needed to encode an input
// with the given frequencies, before padding.
func (ct CodeTable) EncodedBits(t FrequencyTable) uint64 {
	var sum uint64
	for _, symbol := range t.Symbols() {
		sum += t.Count(symbol) * uint64(ct.codes[symbol].Size)
	}
	return sum
}

// Dump writes a programmer-readable debugging dump of the CodeTable to the
// given writer.
func (ct CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", ct.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", ct.maxSize)
	for _, symbol := range ct.Symbols() {
		fmt.Fprintf(&buf, "\tLookup(%d) = %s\n", symbol, ct.codes[symbol])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
