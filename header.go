package huffman

import (
	"bytes"
	"encoding"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// The header is the serialized FrequencyTable at the front of every
// compressed stream:
//
//     magic   "HUF"
//     version 1 byte
//     n       uvarint, number of entries, at most NumSymbols
//     n × { symbol 1 byte, count uvarint }
//
// Entries are written in strictly ascending symbol order, every count is
// non-zero, and every uvarint is minimal, so a given table has exactly one
// encoding.

var headerMagic = [3]byte{'H', 'U', 'F'}

const headerVersion = 1

// AppendBinary appends the header encoding of t to b.
func (t FrequencyTable) AppendBinary(b []byte) ([]byte, error) {
	b = append(b, headerMagic[:]...)
	b = append(b, headerVersion)
	b = binary.AppendUvarint(b, uint64(t.n))
	for symbol, count := range t.counts {
		if count == 0 {
			continue
		}
		b = append(b, byte(symbol))
		b = binary.AppendUvarint(b, count)
	}
	return b, nil
}

// MarshalBinary returns the header encoding of t.
func (t FrequencyTable) MarshalBinary() ([]byte, error) {
	return t.AppendBinary(nil)
}

// UnmarshalBinary replaces t with the table encoded in data, which must hold
// exactly one header and nothing else.
func (t *FrequencyTable) UnmarshalBinary(data []byte) error {
	r := bytes.NewReader(data)
	table, err := ReadHeader(r)
	if err != nil {
		return err
	}
	if r.Len() != 0 {
		return fmt.Errorf("%w: %d unexpected bytes after frequency table", ErrMalformedHeader, r.Len())
	}
	*t = table
	return nil
}

// ReadHeader decodes one header from r, leaving r positioned at the first
// payload byte.  Every failure wraps ErrMalformedHeader.
func ReadHeader(r io.ByteReader) (FrequencyTable, error) {
	var t FrequencyTable

	for i, expect := range headerMagic {
		actual, err := r.ReadByte()
		if err != nil {
			return t, malformed("magic", err)
		}
		if actual != expect {
			return t, fmt.Errorf("%w: bad magic byte %d: expected %#02x, got %#02x", ErrMalformedHeader, i, expect, actual)
		}
	}

	version, err := r.ReadByte()
	if err != nil {
		return t, malformed("version", err)
	}
	if version != headerVersion {
		return t, fmt.Errorf("%w: unsupported version %d", ErrMalformedHeader, version)
	}

	n, err := readUvarint(r)
	if err != nil {
		return t, malformed("entry count", err)
	}
	if n > NumSymbols {
		return t, fmt.Errorf("%w: %d entries, max %d", ErrMalformedHeader, n, NumSymbols)
	}

	var total uint64
	prev := -1
	for i := uint64(0); i < n; i++ {
		symbol, err := r.ReadByte()
		if err != nil {
			return t, malformed("symbol", err)
		}
		if int(symbol) <= prev {
			return t, fmt.Errorf("%w: entry %d: symbol %d out of order", ErrMalformedHeader, i, symbol)
		}

		count, err := readUvarint(r)
		if err != nil {
			return t, malformed("count", err)
		}
		if count == 0 {
			return t, fmt.Errorf("%w: entry %d: symbol %d has zero count", ErrMalformedHeader, i, symbol)
		}
		if total+count < total {
			return t, fmt.Errorf("%w: entry %d: total count overflows", ErrMalformedHeader, i)
		}
		total += count
		prev = int(symbol)

		t.Set(symbol, count)
	}

	return t, nil
}

// readUvarint reads one uvarint from r and rejects overlong encodings.
func readUvarint(r io.ByteReader) (uint64, error) {
	cr := &countingByteReader{r: r}
	x, err := binary.ReadUvarint(cr)
	if err != nil {
		return 0, err
	}
	var buf [binary.MaxVarintLen64]byte
	if minLen := len(binary.AppendUvarint(buf[:0], x)); cr.n != minLen {
		return 0, fmt.Errorf("overlong uvarint: %d bytes for %d, expected %d", cr.n, x, minLen)
	}
	return x, nil
}

type countingByteReader struct {
	r io.ByteReader
	n int
}

func (cr *countingByteReader) ReadByte() (byte, error) {
	b, err := cr.r.ReadByte()
	if err == nil {
		cr.n++
	}
	return b, err
}

func malformed(field string, err error) error {
	if errors.Is(err, io.EOF) {
		err = io.ErrUnexpectedEOF
	}
	return fmt.Errorf("%w: reading %s: %v", ErrMalformedHeader, field, err)
}

var (
	_ encoding.BinaryMarshaler   = FrequencyTable{}
	_ encoding.BinaryUnmarshaler = (*FrequencyTable)(nil)
)
