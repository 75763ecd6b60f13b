// Package zip bundles gallery images into a single downloadable archive.
package zip

import (
	"archive/zip"
	"bytes"
	"fmt"
)

type Entry struct {
	Filename string
	Data     []byte
}

// Archive writes every entry into a zip archive. Colliding filenames are
// disambiguated with a numeric suffix so no image is silently dropped.
func Archive(entries []Entry) ([]byte, error) {
	buf := &bytes.Buffer{}
	zw := zip.NewWriter(buf)
	seen := make(map[string]int, len(entries))
	for _, entry := range entries {
		name := entry.Filename
		if n := seen[name]; n > 0 {
			name = fmt.Sprintf("%d-%s", n, name)
		}
		seen[entry.Filename]++
		w, err := zw.Create(name)
		if err != nil {
			return nil, fmt.Errorf("zip: create entry %s: %w", name, err)
		}
		if _, err := w.Write(entry.Data); err != nil {
			return nil, fmt.Errorf("zip: write entry %s: %w", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("zip: close archive: %w", err)
	}
	return buf.Bytes(), nil
}
