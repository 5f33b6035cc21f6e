package core

import (
	"errors"
	"testing"
)

func TestValidateHeaders(t *testing.T) {
	tests := []struct {
		name    string
		headers []string
		wantErr bool
		wantPos map[string]int
	}{
		{
			name:    "canonical order",
			headers: []string{"code", "type", "durability"},
			wantPos: map[string]int{"code": 0, "type": 1, "durability": 2},
		},
		{
			name:    "shuffled and cased",
			headers: []string{" Durability", "CODE", "Type "},
			wantPos: map[string]int{"code": 1, "type": 2, "durability": 0},
		},
		{
			name:    "extra column",
			headers: []string{"code", "notes", "type", "durability"},
			wantPos: map[string]int{"code": 0, "type": 2, "durability": 3},
		},
		{
			name:    "missing durability",
			headers: []string{"code", "type"},
			wantErr: true,
		},
		{
			name:    "data row instead of header",
			headers: []string{"123456", LabelPower, "50"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx, err := ValidateHeaders(tt.headers)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidHeader) {
					t.Fatalf("ValidateHeaders() error = %v, want ErrInvalidHeader", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ValidateHeaders() error = %v", err)
			}
			for col, want := range tt.wantPos {
				if idx[col] != want {
					t.Errorf("idx[%q] = %d, want %d", col, idx[col], want)
				}
			}
		})
	}
}

func TestParseRow(t *testing.T) {
	idx := HeaderIndex{"code": 0, "type": 1, "durability": 2}

	tests := []struct {
		name      string
		row       []string
		want      Suit
		wantField string
	}{
		{
			name: "valid power suit",
			row:  []string{"123456", LabelPower, "60"},
			want: Suit{Code: "123456", Category: CategoryPower, Durability: 60},
		},
		{
			name: "cells are cleaned",
			row:  []string{` ="765432"`, " " + LabelDisguise + " ", ` "47" `},
			want: Suit{Code: "765432", Category: CategoryDisguise, Durability: 47},
		},
		{name: "non-integer durability", row: []string{"123456", LabelStealth, "high"}, wantField: ColumnDurability},
		{name: "decimal durability", row: []string{"123456", LabelStealth, "50.5"}, wantField: ColumnDurability},
		{
			name: "durability above range is clamped",
			row:  []string{"123456", LabelStealth, "150"},
			want: Suit{Code: "123456", Category: CategoryStealth, Durability: MaxDurability},
		},
		{
			name: "durability below range is clamped",
			row:  []string{"123456", LabelStealth, "-1"},
			want: Suit{Code: "123456", Category: CategoryStealth, Durability: MinDurability},
		},
		{name: "leading zero code", row: []string{"012345", LabelStealth, "50"}, wantField: ColumnCode},
		{name: "unknown type", row: []string{"123456", "cape", "50"}, wantField: ColumnType},
		{name: "short row", row: []string{"123456", LabelStealth}, wantField: ColumnDurability},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRow(tt.row, idx)
			if tt.wantField != "" {
				var ve ValidationError
				if !errors.As(err, &ve) {
					t.Fatalf("ParseRow() error = %v, want ValidationError", err)
				}
				if ve.Field != tt.wantField {
					t.Errorf("Field = %q, want %q", ve.Field, tt.wantField)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseRow() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseRow() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestFormatRow(t *testing.T) {
	got := FormatRow(Suit{Code: "123456", Category: CategoryStealth, Durability: 7})
	want := []string{"123456", LabelStealth, "7"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("FormatRow()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestDataCorruptionError(t *testing.T) {
	err := error(&DataCorruptionError{
		Path: "suits.csv",
		Line: 4,
		Err:  ValidationError{Field: ColumnDurability, Value: "x", Message: "not an integer"},
	})

	if !errors.Is(err, ErrDataCorruption) {
		t.Error("errors.Is(err, ErrDataCorruption) = false")
	}
	var ve ValidationError
	if !errors.As(err, &ve) || ve.Value != "x" {
		t.Errorf("errors.As ValidationError = %+v", ve)
	}
	want := `suits.csv:4: durability: not an integer (got "x")`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestCleanCell(t *testing.T) {
	tests := map[string]string{
		"  123456  ": "123456",
		`="123456"`:  "123456",
		`"47"`:       "47",
		`'47'`:       "47",
		"":           "",
		LabelPower:   LabelPower,
	}
	for in, want := range tests {
		if got := CleanCell(in); got != want {
			t.Errorf("CleanCell(%q) = %q, want %q", in, got, want)
		}
	}
}
