// Package normalize repairs the raw incident rows handed over by ingestion:
// it fills documented defaults, converts the inconsistent date formats of the
// upstream export into timestamps, and applies the canonical classifiers.
// Rows are never rejected; whatever cannot be normalized is defaulted and
// counted.
package normalize

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ErrUnparsable signals that no format in the chain matched.
var ErrUnparsable = errors.New("normalize: unparsable timestamp")

// layouts are tried in priority order; the first match wins. time.Parse
// rejects an out-of-range month, so an invalid month falls through to the
// next format instead of producing a wrong date.
var layouts = []string{
	"02/01/2006 15:04:05",
	"02/01/2006 15:04",
	"02/01/2006",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
	time.RFC3339,
}

// serialEpoch anchors spreadsheet serial dates. Day 1 is the epoch day
// itself, reproducing the legacy spreadsheet serialization exactly.
var serialEpoch = time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)

// Timestamp converts an arbitrary date string into a timestamp, attempting
// the fixed format chain and finally the spreadsheet serial interpretation.
func Timestamp(raw string) (time.Time, error) {
	s := strings.TrimSpace(raw)
	s = strings.ReplaceAll(s, `"`, "")
	s = strings.ReplaceAll(s, "'", "")
	if s == "" {
		return time.Time{}, ErrUnparsable
	}

	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}

	if t, ok := fromSerial(s); ok {
		return t, nil
	}
	return time.Time{}, ErrUnparsable
}

// fromSerial interprets a numeric value as days since the spreadsheet epoch,
// with the fractional part as time of day.
func fromSerial(s string) (time.Time, bool) {
	n, err := strconv.ParseFloat(s, 64)
	if err != nil || n <= 0 {
		return time.Time{}, false
	}
	days := math.Floor(n)
	frac := n - days
	t := serialEpoch.AddDate(0, 0, int(days)-1).
		Add(time.Duration(frac * 24 * float64(time.Hour)))
	return t, true
}

var numberDatePattern = regexp.MustCompile(`(\d{4})(\d{2})(\d{2})`)

// TimestampFromNumber recovers an opened date embedded in a ticket number as
// an 8-digit yyyyMMdd run. Used only as the Opened fallback when every
// format in the chain has failed.
func TimestampFromNumber(number string) (time.Time, bool) {
	match := numberDatePattern.FindString(number)
	if match == "" {
		return time.Time{}, false
	}
	t, err := time.Parse("20060102", match)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
