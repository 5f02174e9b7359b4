package grid

import (
	"math"
	"time"

	"github.com/Whitekid123/finance-tracker/internal/domain"
)

// serialEpochOffset is the day count between the spreadsheet epoch
// (1899-12-30) and the Unix epoch (1970-01-01).
const serialEpochOffset = 25569

const secondsPerDay = 86400

// NormalizeDate converts a raw date cell into a display-ready date string.
//
// Numeric cells are interpreted as spreadsheet day-count serials and
// converted to YYYY-MM-DD. Text cells are assumed already human-readable and
// pass through unchanged. Empty cells yield "". No timezone correction
// beyond the fixed epoch offset is applied.
func NormalizeDate(c Cell) string {
	switch c.Kind() {
	case KindNumeric:
		return domain.FormatDate(SerialToTime(c.Number()))
	case KindText:
		return c.String()
	default:
		return ""
	}
}

// SerialToTime converts a spreadsheet day-count serial to a UTC time.
// Fractional serials carry a time-of-day component.
func SerialToTime(serial float64) time.Time {
	seconds := math.Round((serial - serialEpochOffset) * secondsPerDay)
	return time.Unix(int64(seconds), 0).UTC()
}
