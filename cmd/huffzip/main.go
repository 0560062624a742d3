// Command huffzip compresses and decompresses single files with Huffman
// coding, and prints the code table or tree built for a file.
//
// Usage:
//
//     huffzip [-v] compress   <src> <dst>
//     huffzip [-v] decompress <src> <dst>
//     huffzip [-z] codes <src>
//     huffzip [-z] tree  <src>
//
// With -z, codes and tree read src as a compressed stream and show the tree
// rebuilt from its header.
//
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	huffman "github.com/chronos-tachyon/huffzip"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

var errUsage = errors.New("usage")

func main() {
	log.SetFlags(0)
	log.SetPrefix("huffzip: ")
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, stdout io.Writer) int {
	fs := flag.NewFlagSet("huffzip", flag.ContinueOnError)
	verbose := fs.Bool("v", false, "log each step")
	stream := fs.Bool("z", false, "codes/tree: src is a compressed stream")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: huffzip [-v] compress|decompress <src> <dst>\n")
		fmt.Fprintf(fs.Output(), "       huffzip [-z] codes|tree <src>\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	err := dispatch(fs.Args(), stdout, *verbose, *stream)
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, errUsage):
		fs.Usage()
		return exitUsage
	default:
		log.Print(err)
		return exitError
	}
}

func dispatch(args []string, stdout io.Writer, verbose, stream bool) error {
	if len(args) == 0 {
		return errUsage
	}
	action, args := args[0], args[1:]

	switch action {
	case "compress", "decompress":
		if len(args) != 2 {
			return errUsage
		}
		return transform(action, args[0], args[1], stdout, verbose)

	case "codes", "tree":
		if len(args) != 1 {
			return errUsage
		}
		m, err := loadModel(args[0], stream)
		if err != nil {
			return err
		}
		if action == "codes" {
			_, err = m.Codes.Dump(stdout)
		} else {
			_, err = m.Tree.Dump(stdout)
		}
		return err

	default:
		return fmt.Errorf("%w: unknown action %q", errUsage, action)
	}
}

func loadModel(src string, stream bool) (*huffman.Model, error) {
	data, err := huffman.ReadFile(src)
	if err != nil {
		return nil, err
	}
	if !stream {
		return huffman.NewModel(huffman.CountFrequencies(data))
	}
	_, m, err := huffman.DecompressModel(data)
	if err != nil {
		return nil, fmt.Errorf("decompress %s: %w", src, err)
	}
	return m, nil
}

func transform(action, src, dst string, stdout io.Writer, verbose bool) error {
	in, err := huffman.ReadFile(src)
	if err != nil {
		return err
	}
	if verbose {
		log.Printf("read %d bytes from %s", len(in), src)
	}

	var out []byte
	var m *huffman.Model
	if action == "compress" {
		out, m, err = huffman.CompressModel(in)
	} else {
		out, m, err = huffman.DecompressModel(in)
	}
	if err != nil {
		return fmt.Errorf("%s %s: %w", action, src, err)
	}
	if verbose {
		log.Printf("%s: %d distinct symbols, code lengths %d..%d bits", m.Tree, m.Codes.Len(), m.Codes.MinSize(), m.Codes.MaxSize())
	}

	if err := huffman.WriteFile(dst, out); err != nil {
		return err
	}
	if verbose {
		log.Printf("wrote %d bytes to %s", len(out), dst)
	}

	fmt.Fprintf(stdout, "%s: %d -> %d bytes (%s)\n", action, len(in), len(out), ratio(len(in), len(out)))
	return nil
}

func ratio(in, out int) string {
	if in == 0 {
		return "n/a"
	}
	return fmt.Sprintf("%.1f%%", 100*float64(out)/float64(in))
}
