package view

import (
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

var (
	caseCollator   = collate.New(language.Und)
	foldedCollator = collate.New(language.Und, collate.IgnoreCase)
)

// Compare returns the raw ordering of two extracted values under the given
// level, before direction is applied: -1 when a sorts first, 1 when b sorts
// first, 0 on a tie. The sort engine negates the result for descending
// levels.
func Compare(a, b *Value, level *SortLevel) int {
	// Null policy decides before any value comparison.
	if a == nil || b == nil {
		return compareNulls(a, b, level.NullHandling)
	}

	if a.Kind != b.Kind {
		return localeCompare(a.String(), b.String(), level.CaseSensitive)
	}

	switch a.Kind {
	case KindNumber:
		an, bn := a.Number, b.Number
		if level.AbsoluteValue {
			an, bn = abs(an), abs(bn)
		}
		return compareFloats(an, bn)
	case KindDate:
		if level.DateGrouping != GroupNone && level.DateGrouping != "" {
			now := time.Now()
			return compareFloats(
				dateBucket(a.Time, level.DateGrouping, now),
				dateBucket(b.Time, level.DateGrouping, now),
			)
		}
		return a.Time.Compare(b.Time)
	default:
		return compareText(a.Text, b.Text, level)
	}
}

func compareNulls(a, b *Value, nh NullHandling) int {
	if a == nil && b == nil {
		return 0
	}
	switch nh {
	case NullsIgnore:
		return 0
	case NullsFirst:
		if a == nil {
			return -1
		}
		return 1
	default: // NullsLast
		if a == nil {
			return 1
		}
		return -1
	}
}

func compareText(a, b string, level *SortLevel) int {
	if len(level.CustomOrder) > 0 {
		ai, aok := indexOf(level.CustomOrder, a)
		bi, bok := indexOf(level.CustomOrder, b)
		switch {
		case aok && bok:
			return compareInts(ai, bi)
		case aok:
			// A value present in the custom order precedes one absent from it.
			return -1
		case bok:
			return 1
		}
		// Both absent: fall through to the plain comparison.
	}
	if level.NaturalSort {
		return naturalCompare(a, b, level.CaseSensitive)
	}
	return localeCompare(a, b, level.CaseSensitive)
}

func localeCompare(a, b string, caseSensitive bool) int {
	if caseSensitive {
		return caseCollator.CompareString(a, b)
	}
	return foldedCollator.CompareString(a, b)
}

// naturalCompare orders strings treating embedded digit runs as numbers, so
// "item2" sorts before "item10".
func naturalCompare(a, b string, caseSensitive bool) int {
	if !caseSensitive {
		a, b = strings.ToLower(a), strings.ToLower(b)
	}
	for a != "" && b != "" {
		at, aDigit, aRest := nextToken(a)
		bt, bDigit, bRest := nextToken(b)
		var c int
		if aDigit && bDigit {
			c = compareDigitRuns(at, bt)
		} else {
			c = strings.Compare(at, bt)
		}
		if c != 0 {
			return c
		}
		a, b = aRest, bRest
	}
	return strings.Compare(a, b)
}

// nextToken splits off the leading run of digits or non-digits.
func nextToken(s string) (token string, digits bool, rest string) {
	digits = isDigit(s[0])
	i := 1
	for i < len(s) && isDigit(s[i]) == digits {
		i++
	}
	return s[:i], digits, s[i:]
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// compareDigitRuns compares two digit runs numerically without parsing, so
// arbitrarily long runs cannot overflow.
func compareDigitRuns(a, b string) int {
	a = strings.TrimLeft(a, "0")
	b = strings.TrimLeft(b, "0")
	if len(a) != len(b) {
		return compareInts(len(a), len(b))
	}
	return strings.Compare(a, b)
}

// dateBucket maps a date to its comparison bucket under the grouping. The
// reference time now anchors the today/this_week/this_month buckets.
func dateBucket(t time.Time, grouping DateGrouping, now time.Time) float64 {
	if t.IsZero() {
		return 0
	}
	switch grouping {
	case GroupToday:
		if !t.Before(startOfDay(now)) {
			return 1
		}
		return 0
	case GroupThisWeek:
		// Week starts on Sunday.
		weekStart := startOfDay(now).AddDate(0, 0, -int(now.Weekday()))
		if !t.Before(weekStart) {
			return 1
		}
		return 0
	case GroupThisMonth:
		monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		if !t.Before(monthStart) {
			return 1
		}
		return 0
	case GroupDayOfWeek:
		return float64(t.Weekday())
	case GroupTimeOnly:
		return float64(t.Hour()*60 + t.Minute())
	default:
		return float64(t.Unix())
	}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func indexOf(values []string, v string) (int, bool) {
	for i, s := range values {
		if s == v {
			return i, true
		}
	}
	return 0, false
}

func compareFloats(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareInts(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
