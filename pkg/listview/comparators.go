package listview

import (
	"strings"
	"time"
)

// Comparator orders two records for one sortable column. Negative means a
// before b, zero equal, positive after.
type Comparator[T any] func(a, b T) int

// TextKey compares a string column case-insensitively.
func TextKey[T any](field func(T) string) Comparator[T] {
	return func(a, b T) int {
		return strings.Compare(
			strings.ToLower(field(a)),
			strings.ToLower(field(b)),
		)
	}
}

// DateKey compares a timestamp column by its date component only; two
// meetings on the same day are equal regardless of time of day.
func DateKey[T any](field func(T) time.Time) Comparator[T] {
	return func(a, b T) int {
		da := dateOnly(field(a))
		db := dateOnly(field(b))
		return da.Compare(db)
	}
}

// TimeOfDayKey compares a timestamp column by minutes since midnight,
// ignoring the date. It is the second sortable key derived from the same
// timestamp field as DateKey.
func TimeOfDayKey[T any](field func(T) time.Time) Comparator[T] {
	return func(a, b T) int {
		return minutesSinceMidnight(field(a)) - minutesSinceMidnight(field(b))
	}
}

// NumberKey compares a numeric column.
func NumberKey[T any](field func(T) float64) Comparator[T] {
	return func(a, b T) int {
		va, vb := field(a), field(b)
		switch {
		case va < vb:
			return -1
		case va > vb:
			return 1
		default:
			return 0
		}
	}
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func minutesSinceMidnight(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}
