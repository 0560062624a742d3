package huffman

import (
	"bytes"
	"container/heap"
	"fmt"
	"io"
	"math"

	"github.com/chronos-tachyon/assert"
)

// Node is a node of a Huffman tree: either a *Leaf or an *Internal.
type Node interface {
	// Frequency returns the number of occurrences covered by this node.
	Frequency() uint64

	isNode()
}

// Leaf is a tree node that stands for one Symbol.
//
// A Synthetic leaf carries no symbol.  It only appears as the zero-frequency
// sibling of the sole real leaf of a single-symbol tree, and never receives
// a code.
//
type Leaf struct {
	Symbol    Symbol
	Freq      uint64
	Synthetic bool
}

// Frequency returns the number of occurrences of the leaf's symbol.
func (leaf *Leaf) Frequency() uint64 { return leaf.Freq }

func (*Leaf) isNode() {}

// Internal is a tree node with exactly two children.  Its frequency is the
// sum of its children's frequencies.
type Internal struct {
	Freq  uint64
	Left  Node
	Right Node
}

// Frequency returns the combined frequency of both subtrees.
func (n *Internal) Frequency() uint64 { return n.Freq }

func (*Internal) isNode() {}

var (
	_ Node = (*Leaf)(nil)
	_ Node = (*Internal)(nil)
)

// Tree is a Huffman tree.  The tree built from an empty FrequencyTable has a
// nil Root.
type Tree struct {
	Root Node
}

// BuildTree constructs the Huffman tree for the given table.
//
// Nodes are merged lowest frequency first.  Ties are broken by an order key:
// a leaf's key is its symbol value and an internal node's key is NumSymbols
// plus the number of internal nodes created before it.  Among equal
// frequencies, leaves therefore come before internal nodes, leaves in
// ascending symbol order, and internal nodes oldest first.  Of each merged
// pair, the node popped first becomes the left child.
//
// A table with a single entry yields a root whose left child is the real
// leaf and whose right child is a synthetic zero-frequency leaf, so the real
// symbol is coded as "0".
//
func BuildTree(t FrequencyTable) *Tree {
	symbols := t.Symbols()

	switch len(symbols) {
	case 0:
		return &Tree{}

	case 1:
		leaf := &Leaf{Symbol: symbols[0], Freq: t.Count(symbols[0])}
		return &Tree{Root: &Internal{
			Freq:  leaf.Freq,
			Left:  leaf,
			Right: &Leaf{Synthetic: true},
		}}
	}

	h := freqHeap{make([]nodeAndOrder, 0, len(symbols))}
	for _, symbol := range symbols {
		leaf := &Leaf{Symbol: symbol, Freq: t.Count(symbol)}
		h.list = append(h.list, nodeAndOrder{leaf, uint32(symbol)})
	}
	h.Init()

	nextOrder := uint32(NumSymbols)
	for h.Len() > 1 {
		a := heap.Pop(&h).(nodeAndOrder)
		b := heap.Pop(&h).(nodeAndOrder)

		// Compute freqSum using saturating addition
		freqSum := a.node.Frequency() + b.node.Frequency()
		if freqSum < a.node.Frequency() {
			freqSum = math.MaxUint64
		}

		parent := &Internal{Freq: freqSum, Left: a.node, Right: b.node}
		heap.Push(&h, nodeAndOrder{parent, nextOrder})
		nextOrder++
	}

	root := heap.Pop(&h).(nodeAndOrder)
	assert.Assertf(nextOrder == uint32(NumSymbols+len(symbols)-1), "made %d internal nodes for %d leaves", nextOrder-NumSymbols, len(symbols))
	return &Tree{Root: root.node}
}

// Walk visits every node depth-first, left subtree before right subtree,
// passing each node together with its path from the root.
func (tree *Tree) Walk(fn func(node Node, path Code)) {
	if tree.Root == nil {
		return
	}

	type stackItem struct {
		node Node
		path Code
	}

	stack := []stackItem{{node: tree.Root}}
	for len(stack) != 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		fn(top.node, top.path)

		if n, ok := top.node.(*Internal); ok {
			stack = append(stack, stackItem{n.Right, top.path.Append(1)})
			stack = append(stack, stackItem{n.Left, top.path.Append(0)})
		}
	}
}

// Leaves returns the leaves of the tree from left to right, including any
// synthetic leaf.
func (tree *Tree) Leaves() []*Leaf {
	var out []*Leaf
	tree.Walk(func(node Node, _ Code) {
		if leaf, ok := node.(*Leaf); ok {
			out = append(out, leaf)
		}
	})
	return out
}

// Depth returns the length of the longest root-to-leaf path.
func (tree *Tree) Depth() int {
	var depth int
	tree.Walk(func(_ Node, path Code) {
		if int(path.Size) > depth {
			depth = int(path.Size)
		}
	})
	return depth
}

// Dump writes a programmer-readable debugging dump of the tree to the given
// writer, one node per line, labelled with its path from the root.
func (tree *Tree) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	if tree.Root == nil {
		buf.WriteString("Tree{}\n")
		return buf.WriteTo(w)
	}
	buf.WriteString("Tree{\n")
	tree.Walk(func(node Node, path Code) {
		switch n := node.(type) {
		case *Internal:
			fmt.Fprintf(&buf, "\t%s = Internal{%d}\n", path, n.Freq)
		case *Leaf:
			if n.Synthetic {
				fmt.Fprintf(&buf, "\t%s = Leaf{synthetic, %d}\n", path, n.Freq)
			} else {
				fmt.Fprintf(&buf, "\t%s = Leaf{%d, %d}\n", path, n.Symbol, n.Freq)
			}
		}
	})
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// String returns a one-line summary of the tree.
func (tree *Tree) String() string {
	var leaves int
	for _, leaf := range tree.Leaves() {
		if !leaf.Synthetic {
			leaves++
		}
	}
	return fmt.Sprintf("(Huffman tree with %d symbols, depth %d)", leaves, tree.Depth())
}

var _ fmt.Stringer = (*Tree)(nil)

// type nodeAndOrder + type freqHeap {{{

type nodeAndOrder struct {
	node  Node
	order uint32
}

type freqHeap struct {
	list []nodeAndOrder
}

func (h *freqHeap) Init() {
	heap.Init(h)
}

func (h *freqHeap) Len() int {
	return len(h.list)
}

func (h *freqHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *freqHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	af, bf := a.node.Frequency(), b.node.Frequency()
	if af != bf {
		return af < bf
	}
	return a.order < b.order
}

func (h *freqHeap) Push(x interface{}) {
	h.list = append(h.list, x.(nodeAndOrder))
}

func (h *freqHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list[last] = nodeAndOrder{}
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*freqHeap)(nil)

// }}}
