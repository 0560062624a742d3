package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "in.txt")
	packed := filepath.Join(dir, "in.huf")
	unpacked := filepath.Join(dir, "out.txt")
	input := []byte("abracadabra, abracadabra")
	require.NoError(t, os.WriteFile(src, input, 0o644))

	var stdout bytes.Buffer
	require.Equal(t, exitOK, run([]string{"compress", src, packed}, &stdout))
	require.True(t, strings.HasPrefix(stdout.String(), "compress: 24 -> "), stdout.String())

	stdout.Reset()
	require.Equal(t, exitOK, run([]string{"-v", "decompress", packed, unpacked}, &stdout))

	out, err := os.ReadFile(unpacked)
	require.NoError(t, err)
	require.Equal(t, input, out)
}

func TestRun_Codes(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "in.txt")
	require.NoError(t, os.WriteFile(src, []byte("aabc"), 0o644))

	var stdout bytes.Buffer
	require.Equal(t, exitOK, run([]string{"codes", src}, &stdout))
	require.Contains(t, stdout.String(), "\tLookup(97) = \"0\"\n")

	stdout.Reset()
	require.Equal(t, exitOK, run([]string{"tree", src}, &stdout))
	require.Contains(t, stdout.String(), "\t\"11\" = Leaf{99, 1}\n")
}

func TestRun_CodesFromStream(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "in.txt")
	packed := filepath.Join(dir, "in.huf")
	require.NoError(t, os.WriteFile(src, []byte("aabc"), 0o644))

	var stdout bytes.Buffer
	require.Equal(t, exitOK, run([]string{"compress", src, packed}, &stdout))

	stdout.Reset()
	require.Equal(t, exitOK, run([]string{"-z", "codes", packed}, &stdout))
	require.Contains(t, stdout.String(), "\tLookup(97) = \"0\"\n")
	require.Contains(t, stdout.String(), "\tLookup(99) = \"11\"\n")

	stdout.Reset()
	require.Equal(t, exitOK, run([]string{"-z", "tree", packed}, &stdout))
	require.Contains(t, stdout.String(), "\t\"11\" = Leaf{99, 1}\n")

	stdout.Reset()
	require.Equal(t, exitError, run([]string{"-z", "tree", src}, &stdout))
	require.Empty(t, stdout.String())
}

func TestRun_Errors(t *testing.T) {
	dir := t.TempDir()
	var stdout bytes.Buffer

	require.Equal(t, exitUsage, run(nil, &stdout))
	require.Equal(t, exitUsage, run([]string{"compress", "only-one"}, &stdout))
	require.Equal(t, exitUsage, run([]string{"explode", "a", "b"}, &stdout))
	require.Equal(t, exitError, run([]string{"compress", filepath.Join(dir, "missing"), filepath.Join(dir, "out")}, &stdout))
	require.Empty(t, stdout.String())
}
