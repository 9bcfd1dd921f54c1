package report

import (
	"fmt"
	"time"

	"github.com/heartmarshall/expense-tracker/internal/domain"
)

const (
	dayLayout   = "02 Jan 2006"
	monthLayout = "January 2006"
	yearLayout  = "2006"
)

// ResolvePeriod turns a preset into concrete bounds. Bounds are computed in
// now's location, so callers pass now.In(loc) for the reporting timezone.
// start and end are used only by PeriodCustom, where both are required.
func ResolvePeriod(preset domain.PeriodPreset, now time.Time, start, end *time.Time) (domain.Period, error) {
	loc := now.Location()

	switch preset {
	case domain.PeriodCurrentWeek:
		// Weeks start on Monday.
		offset := (int(now.Weekday()) + 6) % 7
		from := dayStart(now.AddDate(0, 0, -offset), loc)
		to := dayEnd(from.AddDate(0, 0, 6), loc)
		return domain.Period{
			Preset:      preset,
			Start:       from,
			End:         to,
			Title:       "Weekly Expense Report",
			Description: fmt.Sprintf("For Current Week (%s - %s)", from.Format(dayLayout), to.Format(dayLayout)),
		}, nil

	case domain.PeriodCurrentMonth:
		from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
		return domain.Period{
			Preset:      preset,
			Start:       from,
			End:         monthEnd(from),
			Title:       "Monthly Expense Report",
			Description: fmt.Sprintf("For Current Month (%s)", from.Format(monthLayout)),
		}, nil

	case domain.PeriodLastMonth:
		from := time.Date(now.Year(), now.Month()-1, 1, 0, 0, 0, 0, loc)
		return domain.Period{
			Preset:      preset,
			Start:       from,
			End:         monthEnd(from),
			Title:       "Last Month's Expense Report",
			Description: fmt.Sprintf("For Last Month (%s)", from.Format(monthLayout)),
		}, nil

	case domain.PeriodCurrentYear:
		from := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, loc)
		return domain.Period{
			Preset:      preset,
			Start:       from,
			End:         time.Date(now.Year()+1, time.January, 1, 0, 0, 0, 0, loc).Add(-time.Nanosecond),
			Title:       "Yearly Expense Report",
			Description: fmt.Sprintf("For Current Year (%s)", from.Format(yearLayout)),
		}, nil

	case domain.PeriodCustom:
		return customPeriod(start, end, loc)
	}

	return domain.Period{}, domain.NewValidationError("period", fmt.Sprintf("unknown period %q", preset))
}

func customPeriod(start, end *time.Time, loc *time.Location) (domain.Period, error) {
	var errs []domain.FieldError
	if start == nil || start.IsZero() {
		errs = append(errs, domain.FieldError{Field: "start", Message: "required for a custom range"})
	}
	if end == nil || end.IsZero() {
		errs = append(errs, domain.FieldError{Field: "end", Message: "required for a custom range"})
	}
	if len(errs) > 0 {
		return domain.Period{}, domain.NewValidationErrors(errs)
	}

	// Bounds are calendar dates; their own zone is ignored.
	from := calendarDay(*start, loc)
	to := calendarDay(*end, loc).AddDate(0, 0, 1).Add(-time.Nanosecond)
	if to.Before(from) {
		return domain.Period{}, domain.NewValidationError("end", "end date must not be before start date")
	}

	return domain.Period{
		Preset:      domain.PeriodCustom,
		Start:       from,
		End:         to,
		Title:       "Custom Range Expense Report",
		Description: fmt.Sprintf("From %s to %s", from.Format(dayLayout), to.Format(dayLayout)),
	}, nil
}

func calendarDay(t time.Time, loc *time.Location) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// dayStart returns midnight of t's calendar day in loc.
func dayStart(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// dayEnd returns the last instant of t's calendar day in loc.
func dayEnd(t time.Time, loc *time.Location) time.Time {
	// AddDate handles DST correctly, Add(24h) does not
	return dayStart(t, loc).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

func monthEnd(monthStart time.Time) time.Time {
	return monthStart.AddDate(0, 1, 0).Add(-time.Nanosecond)
}
