package huffman

// Symbol represents one byte value of the input alphabet.
type Symbol = byte

// NumSymbols is the size of the alphabet: every possible byte value.
const NumSymbols = 256

// MaxSymbol is the maximum valid symbol.
const MaxSymbol = Symbol(NumSymbols - 1)
