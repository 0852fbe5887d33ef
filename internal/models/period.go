package models

import (
	"errors"
	"time"
)

// Period selects the granularity of a financial report.
type Period string

const (
	PeriodDaily   Period = "daily"
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
)

// ErrInvalidPeriod is returned for any period other than daily, weekly or monthly.
var ErrInvalidPeriod = errors.New("period must be daily, weekly or monthly")

// ParsePeriod parses a period string. An empty string defaults to monthly.
func ParsePeriod(s string) (Period, error) {
	switch Period(s) {
	case "":
		return PeriodMonthly, nil
	case PeriodDaily, PeriodWeekly, PeriodMonthly:
		return Period(s), nil
	default:
		return "", ErrInvalidPeriod
	}
}

// Valid reports whether p is one of the supported period kinds.
func (p Period) Valid() bool {
	switch p {
	case PeriodDaily, PeriodWeekly, PeriodMonthly:
		return true
	default:
		return false
	}
}

// Contains reports whether ts falls into the same period bucket as the
// reference date. Daily compares calendar dates ignoring time of day, weekly
// compares ISO year and week number, monthly compares calendar year and month.
// Timestamps are compared as-is, without timezone normalization.
func (p Period) Contains(ts, ref time.Time) (bool, error) {
	switch p {
	case PeriodDaily:
		ty, tm, td := ts.Date()
		ry, rm, rd := ref.Date()
		return ty == ry && tm == rm && td == rd, nil
	case PeriodWeekly:
		ty, tw := ts.ISOWeek()
		ry, rw := ref.ISOWeek()
		return ty == ry && tw == rw, nil
	case PeriodMonthly:
		return ts.Year() == ref.Year() && ts.Month() == ref.Month(), nil
	default:
		return false, ErrInvalidPeriod
	}
}
