package huffman

// FrequencyTable maps each Symbol to the number of times it occurs.  Symbols
// that never occur have no entry.  The zero value is an empty table.
type FrequencyTable struct {
	counts [NumSymbols]uint64
	n      int
}

// CountFrequencies builds the FrequencyTable for data.
func CountFrequencies(data []byte) FrequencyTable {
	var t FrequencyTable
	for _, b := range data {
		if t.counts[b] == 0 {
			t.n++
		}
		t.counts[b]++
	}
	return t
}

// Count returns the number of occurrences of symbol, or 0 if it has no entry.
func (t FrequencyTable) Count(symbol Symbol) uint64 {
	return t.counts[symbol]
}

// Has reports whether symbol has an entry.
func (t FrequencyTable) Has(symbol Symbol) bool {
	return t.counts[symbol] != 0
}

// Set stores count as the number of occurrences of symbol.  A count of 0
// removes the entry.
func (t *FrequencyTable) Set(symbol Symbol, count uint64) {
	switch {
	case t.counts[symbol] == 0 && count != 0:
		t.n++
	case t.counts[symbol] != 0 && count == 0:
		t.n--
	}
	t.counts[symbol] = count
}

// Len returns the number of distinct symbols with an entry.
func (t FrequencyTable) Len() int {
	return t.n
}

// Total returns the sum of all counts, i.e. the length of the input the table
// was built from.
func (t FrequencyTable) Total() uint64 {
	var sum uint64
	for _, count := range t.counts {
		sum += count
	}
	return sum
}

// Symbols returns the symbols with an entry, in ascending order.
func (t FrequencyTable) Symbols() []Symbol {
	out := make([]Symbol, 0, t.n)
	for symbol, count := range t.counts {
		if count != 0 {
			out = append(out, Symbol(symbol))
		}
	}
	return out
}

// Equal reports whether both tables have the same entries with the same
// counts.
func (t FrequencyTable) Equal(other FrequencyTable) bool {
	return t.counts == other.counts
}
