package huffman

import (
	"io"
	"os"
	"path/filepath"
)

// CompressFile compresses the file at src and writes the stream to dst.
// dst is replaced only if every step succeeds.
func CompressFile(src, dst string) error {
	return transformFile(src, dst, Compress)
}

// DecompressFile decompresses the stream in the file at src and writes the
// original bytes to dst.  dst is replaced only if every step succeeds.
func DecompressFile(src, dst string) error {
	return transformFile(src, dst, Decompress)
}

// ReadFile reads the whole file at path into memory.  Failures are reported
// as *IOError.
func ReadFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &IOError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, &IOError{Op: "read", Path: path, Err: err}
	}
	return data, nil
}

// WriteFile writes data to path through a temporary file in the same
// directory, which is renamed over path once it is complete.  On failure the
// temporary file is removed and path is left untouched.
func WriteFile(path string, data []byte) (err error) {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return &IOError{Op: "create", Path: path, Err: err}
	}
	tmp := f.Name()

	needClose := true
	defer func() {
		if needClose {
			_ = f.Close()
		}
		if err != nil {
			_ = os.Remove(tmp)
		}
	}()

	if err = f.Chmod(0o644); err != nil {
		return &IOError{Op: "chmod", Path: tmp, Err: err}
	}
	if _, err = f.Write(data); err != nil {
		return &IOError{Op: "write", Path: tmp, Err: err}
	}
	if err = f.Sync(); err != nil {
		return &IOError{Op: "sync", Path: tmp, Err: err}
	}
	needClose = false
	if err = f.Close(); err != nil {
		return &IOError{Op: "close", Path: tmp, Err: err}
	}
	if err = os.Rename(tmp, path); err != nil {
		return &IOError{Op: "rename", Path: path, Err: err}
	}
	return nil
}

func transformFile(src, dst string, fn func([]byte) ([]byte, error)) error {
	in, err := ReadFile(src)
	if err != nil {
		return err
	}
	out, err := fn(in)
	if err != nil {
		return err
	}
	return WriteFile(dst, out)
}
