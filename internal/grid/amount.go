package grid

import (
	"strconv"
	"strings"
)

// ParseAmount converts a raw cell into a monetary amount.
//
// Empty cells and the sentinel strings "--" and "-" yield 0. Native numeric
// cells are returned unchanged. Text cells have thousands separators
// stripped and are parsed as decimals; anything unparseable yields 0 rather
// than an error, so one malformed cell never fails an import.
func ParseAmount(c Cell) float64 {
	switch c.Kind() {
	case KindEmpty:
		return 0
	case KindNumeric:
		return c.Number()
	}

	s := strings.TrimSpace(c.String())
	if s == "" || s == "--" || s == "-" {
		return 0
	}

	s = strings.ReplaceAll(s, ",", "")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
