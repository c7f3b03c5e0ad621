package fileutil

import (
	"bytes"
	"fmt"
	"os"

	"github.com/zeebo/xxh3"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// WriteIfChanged replaces the content of an existing file unless it already
// holds data. It reports whether the file was written. The file mode is kept.
func WriteIfChanged(path string, data []byte) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, fmt.Errorf("failed to inspect %s: %w", path, err)
	}

	existing, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if len(existing) == len(data) && xxh3.Hash(existing) == xxh3.Hash(data) {
		return false, nil
	}

	if writeErr := os.WriteFile(path, data, info.Mode().Perm()); writeErr != nil {
		return false, fmt.Errorf("failed to write %s: %w", path, writeErr)
	}
	return true, nil
}

// SplitBOM strips a leading UTF-8 byte order mark and reports whether it was present.
func SplitBOM(data []byte) ([]byte, bool) {
	if bytes.HasPrefix(data, utf8BOM) {
		return data[len(utf8BOM):], true
	}
	return data, false
}

// JoinBOM prepends a UTF-8 byte order mark when bom is true.
func JoinBOM(data []byte, bom bool) []byte {
	if !bom {
		return data
	}
	out := make([]byte, 0, len(utf8BOM)+len(data))
	out = append(out, utf8BOM...)
	return append(out, data...)
}
