package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrParse marks user input that could not be understood. Commands report it
// and abort before touching the store.
var ErrParse = errors.New("model: invalid input")

const (
	// DateTimeLayout is the display and input format for all timestamps.
	DateTimeLayout = "02.01.2006 15:04"

	dateLayout = "02.01.2006"

	// defaultHour is assumed when a datetime is given without a time of day.
	defaultHour = 8
)

// ParseDateTime parses DD.MM.YYYY or DD.MM.YYYY HH:MM in the host's local
// timezone. A date without a time defaults to 08:00.
func ParseDateTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.ParseInLocation(DateTimeLayout, s, time.Local); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation(dateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: datetime %q, want DD.MM.YYYY or DD.MM.YYYY HH:MM", ErrParse, s)
	}
	return time.Date(t.Year(), t.Month(), t.Day(), defaultHour, 0, 0, 0, time.Local), nil
}

// FormatDateTime renders a timestamp in the local timezone display format.
func FormatDateTime(t time.Time) string {
	return t.Format(DateTimeLayout)
}

// ParsePeriod parses a duration given as whitespace-separated tokens, each an
// unsigned integer followed by a single unit letter: w (weeks) or d (days).
// Each unit may appear at most once and at least one token is required.
// "1w 2d" is nine days.
func ParsePeriod(s string) (time.Duration, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return 0, fmt.Errorf("%w: empty period, want tokens like \"1w 2d\"", ErrParse)
	}

	var days, weeks int64
	var haveDays, haveWeeks bool
	for _, tok := range fields {
		i := 0
		for i < len(tok) && tok[i] >= '0' && tok[i] <= '9' {
			i++
		}
		num, unit := tok[:i], tok[i:]
		if len(unit) != 1 {
			return 0, fmt.Errorf("%w: period token %q, want <number>w or <number>d", ErrParse, tok)
		}
		n, err := strconv.ParseInt(num, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: period token %q has no number", ErrParse, tok)
		}
		switch unit[0] {
		case 'w':
			if haveWeeks {
				return 0, fmt.Errorf("%w: weeks given twice in %q", ErrParse, s)
			}
			weeks, haveWeeks = n, true
		case 'd':
			if haveDays {
				return 0, fmt.Errorf("%w: days given twice in %q", ErrParse, s)
			}
			days, haveDays = n, true
		default:
			return 0, fmt.Errorf("%w: unknown unit %q in %q, want 'w' or 'd'", ErrParse, unit, tok)
		}
	}

	return time.Duration(weeks*7+days) * 24 * time.Hour, nil
}
