package huffman

import (
	"bytes"
	"errors"
	"testing"
)

func TestFrequencyTable_MarshalBinary(t *testing.T) {
	type testRow struct {
		name   string
		input  string
		expect []byte
	}

	testData := [...]testRow{
		{name: "empty", input: "", expect: []byte("HUF\x01\x00")},
		{name: "single", input: "AAA", expect: []byte("HUF\x01\x01A\x03")},
		{name: "multi", input: "aabc", expect: []byte("HUF\x01\x03a\x02b\x01c\x01")},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			table := CountFrequencies([]byte(row.input))
			actual, err := table.MarshalBinary()
			if err != nil {
				t.Fatalf("MarshalBinary failed: %v", err)
			}
			if !bytes.Equal(row.expect, actual) {
				t.Errorf("wrong output:\n\texpect: %q\n\tactual: %q", row.expect, actual)
			}

			var decoded FrequencyTable
			if err := decoded.UnmarshalBinary(actual); err != nil {
				t.Fatalf("UnmarshalBinary failed: %v", err)
			}
			if !decoded.Equal(table) {
				t.Errorf("decoded table differs: expected %v, got %v", table.Symbols(), decoded.Symbols())
			}
		})
	}
}

func TestFrequencyTable_MarshalBinary_LargeCounts(t *testing.T) {
	var table FrequencyTable
	table.Set(0, 1<<40)
	table.Set(255, 300)

	raw, err := table.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary failed: %v", err)
	}

	var decoded FrequencyTable
	if err := decoded.UnmarshalBinary(raw); err != nil {
		t.Fatalf("UnmarshalBinary failed: %v", err)
	}
	if decoded.Count(0) != 1<<40 || decoded.Count(255) != 300 || decoded.Len() != 2 {
		t.Errorf("wrong table: %d, %d, %d entries", decoded.Count(0), decoded.Count(255), decoded.Len())
	}
}

func TestReadHeader_Malformed(t *testing.T) {
	maxCount := "\xff\xff\xff\xff\xff\xff\xff\xff\xff\x01"

	testData := map[string]string{
		"empty":          "",
		"short magic":    "HU",
		"bad magic":      "HUG\x01\x00",
		"no version":     "HUF",
		"bad version":    "HUF\x02\x00",
		"no count":       "HUF\x01",
		"too many":       "HUF\x01\x81\x02",
		"missing entry":  "HUF\x01\x02a\x01",
		"missing count":  "HUF\x01\x01a",
		"cut varint":     "HUF\x01\x01a\x80",
		"zero count":     "HUF\x01\x01a\x00",
		"duplicate":      "HUF\x01\x02a\x01a\x01",
		"out of order":   "HUF\x01\x02b\x01a\x01",
		"total overflow": "HUF\x01\x02a" + maxCount + "b" + maxCount,
		"long entries":   "HUF\x01\x81\x00A\x03",
		"long count":     "HUF\x01\x01A\x83\x00",
		"long zero":      "HUF\x01\x80\x00",
	}
	for name, input := range testData {
		t.Run(name, func(t *testing.T) {
			_, err := ReadHeader(bytes.NewReader([]byte(input)))
			if !errors.Is(err, ErrMalformedHeader) {
				t.Errorf("expected ErrMalformedHeader, got %v", err)
			}
		})
	}
}

func TestFrequencyTable_UnmarshalBinary_TrailingBytes(t *testing.T) {
	var table FrequencyTable
	err := table.UnmarshalBinary([]byte("HUF\x01\x00\x00"))
	if !errors.Is(err, ErrMalformedHeader) {
		t.Errorf("expected ErrMalformedHeader, got %v", err)
	}
}

func TestDecompress_OverlongHeader(t *testing.T) {
	canonical := []byte("HUF\x01\x01A\x03\x00\x05")
	out, err := Decompress(canonical)
	if err != nil || !bytes.Equal(out, []byte("AAA")) {
		t.Fatalf("Decompress(%q) = %q, %v", canonical, out, err)
	}

	overlong := []byte("HUF\x01\x81\x00A\x83\x00\x00\x05")
	out, err = Decompress(overlong)
	if !errors.Is(err, ErrMalformedHeader) {
		t.Errorf("expected ErrMalformedHeader, got %v", err)
	}
	if out != nil {
		t.Errorf("expected no output on failure, got %q", out)
	}
}
