package grid

import (
	"testing"
	"time"
)

func TestSerialToTime(t *testing.T) {
	tests := []struct {
		name   string
		serial float64
		want   time.Time
	}{
		{"unix epoch", 25569, time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"day after unix epoch", 25570, time.Date(1970, 1, 2, 0, 0, 0, 0, time.UTC)},
		{"modern date", 45658, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"fractional time of day", 25569.5, time.Date(1970, 1, 1, 12, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SerialToTime(tt.serial); !got.Equal(tt.want) {
				t.Errorf("SerialToTime(%v) = %v, want %v", tt.serial, got, tt.want)
			}
		})
	}
}

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		name string
		cell Cell
		want string
	}{
		{"numeric serial", Numeric(45658), "2025-01-01"},
		{"serial round-trips to same day", Numeric(25569), "1970-01-01"},
		{"text passes through unchanged", Text("20 Dec 2025 22:41:56"), "20 Dec 2025 22:41:56"},
		{"empty cell", Empty(), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeDate(tt.cell); got != tt.want {
				t.Errorf("NormalizeDate(%v) = %q, want %q", tt.cell, got, tt.want)
			}
		})
	}
}

func TestGridCellOutOfRange(t *testing.T) {
	g := Grid{
		{Text("a"), Text("b")},
		{Text("c")},
	}

	if got := g.Cell(0, 1).String(); got != "b" {
		t.Errorf("Cell(0,1) = %q, want b", got)
	}
	if !g.Cell(1, 1).IsEmpty() {
		t.Error("Cell(1,1) on ragged row should be empty")
	}
	if !g.Cell(5, 0).IsEmpty() {
		t.Error("Cell(5,0) out of range should be empty")
	}
	if !g.Cell(-1, 0).IsEmpty() {
		t.Error("Cell(-1,0) should be empty")
	}
}
