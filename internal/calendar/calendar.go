// Package calendar converts YYYY-MM-DD text into integer day-indices so that
// stays can be compared and priced with plain integer arithmetic.
//
// The day-index counts days from 0000-03-01 of the proleptic Gregorian
// calendar. No calendar validation is done: 2025-12-32 yields a consistent
// number that is one past 2025-12-31.
package calendar

import (
	"errors"
	"fmt"
	"strconv"
)

// Layout is the only accepted textual date form.
const Layout = "YYYY-MM-DD"

const layoutLen = len(Layout)

var ErrMalformedDate = errors.New("malformed date")

// DaysSinceEpoch maps a civil date to its day-index.
func DaysSinceEpoch(year, month, day int) int {
	y, m := int64(year), int64(month)
	if m <= 2 {
		y--
		m += 12
	}
	days := 365*y + y/4 - y/100 + y/400 + (153*(m-3)+2)/5 + int64(day) - 1
	return int(days)
}

// ParseDate reads a YYYY-MM-DD date. Text shorter than the layout yields the
// sentinel 0 with no error; characters past the layout are ignored.
func ParseDate(text string) (int, error) {
	if len(text) < layoutLen {
		return 0, nil
	}

	y, err := component(text, "year", 0, 4)
	if err != nil {
		return 0, err
	}
	m, err := component(text, "month", 5, 7)
	if err != nil {
		return 0, err
	}
	d, err := component(text, "day", 8, 10)
	if err != nil {
		return 0, err
	}
	return DaysSinceEpoch(y, m, d), nil
}

func component(text, name string, from, to int) (int, error) {
	n, err := strconv.Atoi(text[from:to])
	if err != nil {
		return 0, fmt.Errorf("%w: %q has a non-numeric %s: %w", ErrMalformedDate, text, name, err)
	}
	return n, nil
}

// FormatDays renders a non-negative day-index back to YYYY-MM-DD.
func FormatDays(days int) string {
	z := int64(days)
	era := z / 146097
	doe := z - era*146097
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365
	y := yoe + era*400
	doy := doe - (365*yoe + yoe/4 - yoe/100)
	mp := (5*doy + 2) / 153
	d := doy - (153*mp+2)/5 + 1
	m := mp + 3
	if m > 12 {
		m -= 12
		y++
	}
	return fmt.Sprintf("%04d-%02d-%02d", y, m, d)
}

// Overlaps reports whether the half-open ranges [a1, a2) and [b1, b2) intersect.
func Overlaps(a1, a2, b1, b2 int) bool {
	return !(a2 <= b1 || b2 <= a1)
}
