package core

import (
	"bytes"
	"io"
	"strings"
	"testing"
)

func TestWrapForReading(t *testing.T) {
	tests := []struct {
		name     string
		input    []byte
		expected string
	}{
		{
			name:     "file with BOM",
			input:    append([]byte{0xEF, 0xBB, 0xBF}, []byte("code,type")...),
			expected: "code,type",
		},
		{
			name:     "file without BOM",
			input:    []byte("code,type"),
			expected: "code,type",
		},
		{
			name:     "empty file",
			input:    []byte{},
			expected: "",
		},
		{
			name:     "only BOM",
			input:    []byte{0xEF, 0xBB, 0xBF},
			expected: "",
		},
		{
			name:     "thai labels survive",
			input:    []byte(LabelPower + "," + LabelDisguise),
			expected: LabelPower + "," + LabelDisguise,
		},
		{
			name:     "invalid byte replaced",
			input:    []byte{'h', 'e', 0x80, 'l', 'o'},
			expected: "he\uFFFDlo",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, counter := WrapForReading(bytes.NewReader(tt.input))
			result, err := io.ReadAll(r)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(result) != tt.expected {
				t.Errorf("got %q, want %q", string(result), tt.expected)
			}
			if counter.BytesRead != int64(len(tt.input)) {
				t.Errorf("BytesRead = %d, want %d", counter.BytesRead, len(tt.input))
			}
		})
	}
}

func TestCountingReader(t *testing.T) {
	r := NewCountingReader(strings.NewReader("123456"))
	buf := make([]byte, 4)
	if _, err := r.Read(buf); err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if r.BytesRead != 4 {
		t.Errorf("BytesRead = %d, want 4", r.BytesRead)
	}
}
