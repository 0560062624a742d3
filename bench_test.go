package huffman

import (
	"math/rand"
	"testing"

	"github.com/klauspost/compress/zstd"
)

func benchmarkInput() []byte {
	rng := rand.New(rand.NewSource(7))
	words := []string{"alpha ", "beta ", "gamma ", "delta ", "epsilon\n", "zeta, ", "eta. "}
	var out []byte
	for len(out) < 1<<20 {
		out = append(out, words[rng.Intn(len(words))]...)
	}
	return out
}

func BenchmarkCompress(b *testing.B) {
	input := benchmarkInput()
	b.SetBytes(int64(len(input)))
	b.ResetTimer()

	var size int
	for i := 0; i < b.N; i++ {
		stream, err := Compress(input)
		if err != nil {
			b.Fatal(err)
		}
		size = len(stream)
	}
	b.ReportMetric(float64(size)/float64(len(input)), "ratio")
}

func BenchmarkDecompress(b *testing.B) {
	input := benchmarkInput()
	stream, err := Compress(input)
	if err != nil {
		b.Fatal(err)
	}
	b.SetBytes(int64(len(input)))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := Decompress(stream); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkZstd gives a point of comparison for BenchmarkCompress.
func BenchmarkZstd(b *testing.B) {
	input := benchmarkInput()
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		b.Fatal(err)
	}
	defer enc.Close()

	b.SetBytes(int64(len(input)))
	b.ResetTimer()

	var size int
	for i := 0; i < b.N; i++ {
		size = len(enc.EncodeAll(input, nil))
	}
	b.ReportMetric(float64(size)/float64(len(input)), "ratio")
}
