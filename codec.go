package huffman

import (
	"bytes"
	"fmt"

	"github.com/chronos-tachyon/assert"
)

// Model holds the values built while compressing or decompressing one
// stream.  It is returned for display purposes only; the codec keeps no
// state between calls.
type Model struct {
	Table FrequencyTable
	Tree  *Tree
	Codes CodeTable
}

// NewModel builds the Huffman tree and code table for t.  It fails with
// ErrMalformedHeader if the tree would need codes longer than MaxCodeSize,
// which only a hand-crafted table can cause.
func NewModel(t FrequencyTable) (*Model, error) {
	tree := BuildTree(t)
	if depth := tree.Depth(); depth > MaxCodeSize {
		return nil, fmt.Errorf("%w: frequencies need %d-bit codes, max %d", ErrMalformedHeader, depth, MaxCodeSize)
	}
	return &Model{Table: t, Tree: tree, Codes: DeriveCodes(tree)}, nil
}

// Compress returns the compressed stream for data.
func Compress(data []byte) ([]byte, error) {
	stream, _, err := CompressModel(data)
	return stream, err
}

// CompressModel is like Compress, but also returns the Model used.
//
// The stream is laid out as the header (see FrequencyTable.MarshalBinary),
// the packed payload, and a single trailer byte holding the number of
// padding bits in the final payload byte.
//
func CompressModel(data []byte) ([]byte, *Model, error) {
	m, err := NewModel(CountFrequencies(data))
	if err != nil {
		return nil, nil, err
	}

	stream, err := m.Table.AppendBinary(nil)
	if err != nil {
		return nil, nil, err
	}

	payload, padding, err := Pack(data, m.Codes)
	assert.Assertf(err == nil, "packing with codes built from the same input: %v", err)

	stream = append(stream, payload...)
	stream = append(stream, padding)
	return stream, m, nil
}

// Decompress returns the original bytes of a stream produced by Compress.
func Decompress(stream []byte) ([]byte, error) {
	data, _, err := DecompressModel(stream)
	return data, err
}

// DecompressModel is like Decompress, but also returns the Model rebuilt
// from the stream's header.
func DecompressModel(stream []byte) ([]byte, *Model, error) {
	r := bytes.NewReader(stream)
	table, err := ReadHeader(r)
	if err != nil {
		return nil, nil, err
	}

	rest := stream[len(stream)-r.Len():]
	if len(rest) == 0 {
		return nil, nil, fmt.Errorf("%w: missing padding byte", ErrTruncatedStream)
	}
	payload, padding := rest[:len(rest)-1], rest[len(rest)-1]

	m, err := NewModel(table)
	if err != nil {
		return nil, nil, err
	}

	data, err := Unpack(payload, padding, m.Tree, table.Total())
	if err != nil {
		return nil, nil, err
	}
	return data, m, nil
}
