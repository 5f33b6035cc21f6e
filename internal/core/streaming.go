package core

// streaming.go provides reader adapters for catalog files:
//
//   - the UTF-8 decoder removes a leading BOM (Windows editors add one) and
//     replaces invalid byte sequences with U+FFFD so a bad byte surfaces as a
//     validation error on its row instead of an encoding failure
//   - CountingReader tracks bytes read for load diagnostics
//
// Use WrapForReading to apply both in the correct order.

import (
	"io"

	"golang.org/x/text/encoding/unicode"
)

// NewUTF8Reader strips a UTF-8 byte order mark and sanitizes invalid UTF-8.
func NewUTF8Reader(r io.Reader) io.Reader {
	return unicode.UTF8BOM.NewDecoder().Reader(r)
}

// CountingReader wraps an io.Reader to track bytes read.
type CountingReader struct {
	reader    io.Reader
	BytesRead int64
}

// NewCountingReader creates a counting reader.
func NewCountingReader(r io.Reader) *CountingReader {
	return &CountingReader{reader: r}
}

// Read implements io.Reader.
func (r *CountingReader) Read(p []byte) (int, error) {
	n, err := r.reader.Read(p)
	r.BytesRead += int64(n)
	return n, err
}

// WrapForReading counts the raw bytes of r and decodes them as UTF-8.
// The counter sees the file as stored, before any BOM is removed.
func WrapForReading(r io.Reader) (io.Reader, *CountingReader) {
	counter := NewCountingReader(r)
	return NewUTF8Reader(counter), counter
}
