// Package dateutils provides the date parsing and span arithmetic used by the
// travel datasets.
package dateutils

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLogger sets a custom logger for this package
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Date format constants used throughout the application
const (
	DateLayoutEuropean = "02.01.2006"
	DateLayoutISO      = "2006-01-02"
	DateLayoutFull     = "2006-01-02 15:04:05"
	DateLayoutUS       = "01/02/2006"
)

// TransportFormats is the ordered list of layouts tried when parsing the
// transport file, whose date column has no fixed format.
var TransportFormats = []string{
	DateLayoutISO,
	DateLayoutEuropean,
	DateLayoutFull,
	"02/01/2006",
	DateLayoutUS,
	"02-01-2006",
	"2.1.2006",
	"2 January 2006",
	"02 Jan 2006",
	"Jan 2, 2006",
}

// ParseStayDate parses a check-in/check-out value using the fixed DD.MM.YYYY
// pattern of the accommodation file. On failure it returns the zero time,
// which is the missing-date marker everywhere downstream.
func ParseStayDate(dateStr string) (time.Time, error) {
	cleaned := CleanDateString(dateStr)
	if cleaned == "" {
		return time.Time{}, nil
	}

	t, err := time.Parse(DateLayoutEuropean, cleaned)
	if err != nil {
		return time.Time{}, fmt.Errorf("unable to parse stay date: %s", dateStr)
	}
	return t, nil
}

// ParseDateString attempts to parse a date string by trying each transport
// layout in order. Returns the parsed time or an error if no layout matches.
func ParseDateString(dateStr string) (time.Time, error) {
	cleaned := CleanDateString(dateStr)
	if cleaned == "" {
		return time.Time{}, nil
	}

	for _, format := range TransportFormats {
		if t, err := time.Parse(format, cleaned); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unable to parse date: %s", dateStr)
}

// CleanDateString removes unwanted characters and normalizes a date string
func CleanDateString(dateStr string) string {
	dateStr = strings.TrimSpace(dateStr)

	re := regexp.MustCompile(`\s+`)
	return re.ReplaceAllString(dateStr, " ")
}

// ToEuropean formats a time.Time as DD.MM.YYYY
func ToEuropean(date time.Time) string {
	if date.IsZero() {
		return ""
	}
	return date.Format(DateLayoutEuropean)
}

// DateRange represents a date range with start and end dates
type DateRange struct {
	Start time.Time
	End   time.Time
}

// IsZero reports whether neither bound of the range is set
func (dr DateRange) IsZero() bool {
	return dr.Start.IsZero() && dr.End.IsZero()
}

// Merge combines this date range with another, returning the overall range
func (dr DateRange) Merge(other DateRange) DateRange {
	start := dr.Start
	end := dr.End

	if dr.Start.IsZero() {
		start = other.Start
	} else if !other.Start.IsZero() && other.Start.Before(start) {
		start = other.Start
	}

	if dr.End.IsZero() {
		end = other.End
	} else if !other.End.IsZero() && other.End.After(end) {
		end = other.End
	}

	return DateRange{Start: start, End: end}
}

// Days returns the inclusive number of days spanned by the range, counting
// both the start and the end day. A range with an unset bound spans zero days.
func (dr DateRange) Days() int {
	if dr.Start.IsZero() || dr.End.IsZero() {
		return 0
	}

	start := truncateToDay(dr.Start)
	end := truncateToDay(dr.End)
	if end.Before(start) {
		log.Warnf("Date range ends before it starts: %s > %s", ToEuropean(dr.Start), ToEuropean(dr.End))
	}

	return int(end.Sub(start).Hours()/24) + 1
}

// Contains reports whether a date falls inside the range. Unset bounds are
// treated as open.
func (dr DateRange) Contains(date time.Time) bool {
	d := truncateToDay(date)
	if !dr.Start.IsZero() && d.Before(truncateToDay(dr.Start)) {
		return false
	}
	if !dr.End.IsZero() && d.After(truncateToDay(dr.End)) {
		return false
	}
	return true
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
