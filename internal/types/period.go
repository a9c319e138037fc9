package types

import "time"

// Period is the time window used for spending analytics.
type Period string

const (
	PeriodDay   Period = "day"
	PeriodMonth Period = "month"
)

// ParsePeriod returns the Period for a query value.
//
// Every value except "day" resolves to PeriodMonth.
func ParsePeriod(s string) Period {
	if Period(s) == PeriodDay {
		return PeriodDay
	}

	return PeriodMonth
}

// Start returns the beginning of the period containing now, in the
// location of now.
func (p Period) Start(now time.Time) time.Time {
	year, month, day := now.Date()
	if p == PeriodDay {
		return time.Date(year, month, day, 0, 0, 0, 0, now.Location())
	}

	return time.Date(year, month, 1, 0, 0, 0, 0, now.Location())
}
