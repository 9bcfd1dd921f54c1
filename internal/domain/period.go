package domain

import "time"

// PeriodPreset names a report date range.
type PeriodPreset string

const (
	PeriodCurrentWeek  PeriodPreset = "current_week"
	PeriodCurrentMonth PeriodPreset = "current_month"
	PeriodLastMonth    PeriodPreset = "last_month"
	PeriodCurrentYear  PeriodPreset = "current_year"
	PeriodCustom       PeriodPreset = "custom"
)

func (p PeriodPreset) String() string { return string(p) }

func (p PeriodPreset) IsValid() bool {
	switch p {
	case PeriodCurrentWeek, PeriodCurrentMonth, PeriodLastMonth, PeriodCurrentYear, PeriodCustom:
		return true
	}
	return false
}

// Period is a resolved, inclusive date range with its report labels.
type Period struct {
	Preset      PeriodPreset
	Start       time.Time
	End         time.Time
	Title       string
	Description string
}

// Contains reports whether t falls within [Start, End].
func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.Start) && !t.After(p.End)
}
