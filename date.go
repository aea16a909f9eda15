package calcom

import (
	"strings"
	"time"

	"github.com/oapi-codegen/runtime/types"
)

// DefaultDateFormat is the layout used for calendar dates unless the
// configuration overrides it.
const DefaultDateFormat = types.DateFormat

// Date is a calendar date without a time of day.
type Date = types.Date

// NewDate returns the Date for the given year, month and day in UTC.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// layoutReplacer maps the pattern tokens commonly found in API client
// configuration (YYYY-MM-DD, %Y-%m-%d) onto Go reference-time tokens.
var layoutReplacer = strings.NewReplacer(
	"YYYY", "2006",
	"MM", "01",
	"DD", "02",
	"%Y", "2006",
	"%m", "01",
	"%d", "02",
)

// DateLayout turns a configured date format into a Go time layout. Go layouts
// pass through unchanged; an empty format yields DefaultDateFormat.
func DateLayout(format string) string {
	if format == "" {
		return DefaultDateFormat
	}
	return layoutReplacer.Replace(format)
}

// FormatDate renders d with a date format. See DateLayout.
func FormatDate(d Date, format string) string {
	return d.Format(DateLayout(format))
}

// ParseDate parses s with a date format. See DateLayout.
func ParseDate(s, format string) (Date, error) {
	t, err := time.Parse(DateLayout(format), s)
	if err != nil {
		return Date{}, err
	}
	return Date{Time: t}, nil
}
