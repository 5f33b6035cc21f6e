package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/JonMunkholm/suitctl/internal/core"
)

// decode reads a catalog file. It returns the suits keyed by code and the
// number of raw bytes consumed.
func decode(r io.Reader, path string) (map[string]core.Suit, int64, error) {
	src, counter := core.WrapForReading(r)

	cr := csv.NewReader(src)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, counter.BytesRead, fmt.Errorf("%s: %w: empty file", path, core.ErrInvalidHeader)
	}
	if err != nil {
		return nil, counter.BytesRead, fmt.Errorf("read catalog %s: %w", path, err)
	}

	idx, err := core.ValidateHeaders(header)
	if err != nil {
		return nil, counter.BytesRead, fmt.Errorf("%s: %w", path, err)
	}

	suits := make(map[string]core.Suit)
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, counter.BytesRead, fmt.Errorf("read catalog %s: %w", path, err)
		}
		if core.IsEmptyRow(row) {
			continue
		}
		line, _ := cr.FieldPos(0)

		suit, err := core.ParseRow(row, idx)
		if err != nil {
			return nil, counter.BytesRead, &core.DataCorruptionError{Path: path, Line: line, Err: err}
		}
		if _, dup := suits[suit.Code]; dup {
			return nil, counter.BytesRead, &core.DataCorruptionError{
				Path: path,
				Line: line,
				Err:  core.ValidationError{Field: core.ColumnCode, Value: suit.Code, Message: "duplicate code"},
			}
		}
		suits[suit.Code] = suit
	}

	return suits, counter.BytesRead, nil
}

// encode writes the header line and one row per suit, in the given order.
func encode(w io.Writer, suits []core.Suit) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(core.Header()); err != nil {
		return err
	}
	for _, suit := range suits {
		if err := cw.Write(core.FormatRow(suit)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// writeFile replaces path with the encoded suits. The data goes to a
// temporary file in the same directory first, so a failed write never
// leaves a truncated catalog behind.
func writeFile(path string, suits []core.Suit) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err = encode(tmp, suits); err != nil {
		return err
	}
	if err = tmp.Chmod(0o644); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
