// Package huffman implements a lossless byte-stream compressor based on
// Huffman codes.
//
// Compression counts how often each byte value occurs, builds a Huffman tree
// from those counts, derives one prefix code per distinct byte, and packs the
// input into a bitstream.  The compressed stream is laid out as:
//
//     [header: frequency table][payload: packed codes][trailer: padding bits]
//
// Decompression reads the frequency table back, rebuilds the identical tree,
// and walks it bit by bit.  Tree construction breaks frequency ties by a fixed
// rule (see BuildTree), so encoder and decoder always agree.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffman
