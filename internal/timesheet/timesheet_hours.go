package timesheet

import (
	"fmt"
	"time"

	timesheeterrors "uni-payroll/internal/timesheet/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

var minutesPerHour = decimal.NewFromInt(60)

// Totals are always recomputed from the stored entries.
type Totals struct {
	Total            decimal.Decimal
	Regular          decimal.Decimal
	Overtime         decimal.Decimal
	OvertimeEligible decimal.Decimal
}

// Caps are the hour limits of the assignment a timesheet is paid against.
type Caps struct {
	WeeklyMax *decimal.Decimal
	PeriodMax *decimal.Decimal
	Hard      bool
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse(dateLayout, v)
	if err != nil {
		return time.Time{}, timesheeterrors.ErrInvalidDateFormat
	}
	return t, nil
}

func parseClock(v string) (int, error) {
	t, err := time.Parse("15:04", v)
	if err != nil {
		return 0, timesheeterrors.ErrInvalidTimeFormat
	}
	return t.Hour()*60 + t.Minute(), nil
}

// entryHours derives hours from a start/end pair. An end earlier than the
// start wraps past midnight.
func entryHours(start, end string, breakMinutes int) (decimal.Decimal, error) {
	from, err := parseClock(start)
	if err != nil {
		return decimal.Zero, err
	}
	to, err := parseClock(end)
	if err != nil {
		return decimal.Zero, err
	}
	if to < from {
		to += 24 * 60
	}
	minutes := to - from - breakMinutes
	if minutes < 0 || breakMinutes < 0 {
		return decimal.Zero, timesheeterrors.ErrNegativeHours
	}
	return decimal.NewFromInt(int64(minutes)).Div(minutesPerHour).Round(2), nil
}

func inPeriod(d, start, end time.Time) bool {
	return !d.Before(start) && !d.After(end)
}

// buildEntries turns client input into entries. Hours sent by the client are
// ignored when both start and end times are present.
func buildEntries(timesheetID uuid.UUID, start, end time.Time, reqs []TimeEntryRequest) ([]TimeEntry, error) {
	entries := make([]TimeEntry, 0, len(reqs))
	for i, r := range reqs {
		workDate, err := parseDate(r.WorkDate)
		if err != nil {
			return nil, err
		}
		if !inPeriod(workDate, start, end) {
			return nil, timesheeterrors.ErrEntryOutsidePeriod.WithDetails(map[string]any{"index": i, "work_date": r.WorkDate})
		}

		entryType := r.EntryType
		if entryType == "" {
			entryType = EntryRegular
		}

		var hours decimal.Decimal
		switch {
		case r.StartTime != nil && r.EndTime != nil:
			hours, err = entryHours(*r.StartTime, *r.EndTime, r.BreakMinutes)
			if err != nil {
				return nil, err
			}
		case r.Hours != nil:
			hours, err = decimal.NewFromString(*r.Hours)
			if err != nil {
				return nil, timesheeterrors.ErrHoursRequired
			}
			if hours.IsNegative() {
				return nil, timesheeterrors.ErrNegativeHours.WithDetails(map[string]any{"index": i})
			}
			hours = hours.Round(2)
		default:
			return nil, timesheeterrors.ErrHoursRequired.WithDetails(map[string]any{"index": i})
		}

		entries = append(entries, TimeEntry{
			ID:           uuid.New(),
			TimesheetID:  timesheetID,
			WorkDate:     workDate,
			StartTime:    r.StartTime,
			EndTime:      r.EndTime,
			BreakMinutes: r.BreakMinutes,
			Hours:        hours,
			EntryType:    entryType,
			Notes:        r.Notes,
		})
	}
	return entries, nil
}

func isoWeek(d time.Time) string {
	y, w := d.ISOWeek()
	return fmt.Sprintf("%d-W%02d", y, w)
}

// Summarize validates stored entries against the period and the caps and
// recomputes the hour totals. Holiday, sick leave and vacation hours are paid
// at the regular rate; only regular and overtime entries count as worked
// hours against the caps.
func Summarize(entries []TimeEntry, start, end time.Time, caps Caps) (Totals, error) {
	if len(entries) == 0 {
		return Totals{}, timesheeterrors.ErrNoEntries
	}

	var totals Totals
	weeks := map[string]*struct{ worked, regular decimal.Decimal }{}
	var order []string
	worked, workedRegular := decimal.Zero, decimal.Zero

	for _, e := range entries {
		if !inPeriod(e.WorkDate, start, end) {
			return Totals{}, timesheeterrors.ErrEntryOutsidePeriod.WithDetails(map[string]any{"work_date": e.WorkDate.Format(dateLayout)})
		}
		hours := e.Hours
		if e.StartTime != nil && e.EndTime != nil {
			derived, err := entryHours(*e.StartTime, *e.EndTime, e.BreakMinutes)
			if err != nil {
				return Totals{}, err
			}
			hours = derived
		}
		if hours.IsNegative() {
			return Totals{}, timesheeterrors.ErrNegativeHours
		}

		totals.Total = totals.Total.Add(hours)
		if e.EntryType == EntryOvertime {
			totals.Overtime = totals.Overtime.Add(hours)
		} else {
			totals.Regular = totals.Regular.Add(hours)
		}

		if e.EntryType != EntryRegular && e.EntryType != EntryOvertime {
			continue
		}
		key := isoWeek(e.WorkDate)
		w, ok := weeks[key]
		if !ok {
			w = &struct{ worked, regular decimal.Decimal }{}
			weeks[key] = w
			order = append(order, key)
		}
		w.worked = w.worked.Add(hours)
		worked = worked.Add(hours)
		if e.EntryType == EntryRegular {
			w.regular = w.regular.Add(hours)
			workedRegular = workedRegular.Add(hours)
		}
	}

	weeklyEligible := decimal.Zero
	if caps.WeeklyMax != nil {
		for _, key := range order {
			w := weeks[key]
			excess := w.worked.Sub(*caps.WeeklyMax)
			if !excess.IsPositive() {
				continue
			}
			if caps.Hard {
				return Totals{}, timesheeterrors.ErrHardCapExceeded.WithDetails(map[string]any{
					"week":  key,
					"hours": w.worked.String(),
					"cap":   caps.WeeklyMax.String(),
				})
			}
			weeklyEligible = weeklyEligible.Add(decimal.Min(excess, w.regular))
		}
	}

	periodEligible := decimal.Zero
	if caps.PeriodMax != nil {
		excess := worked.Sub(*caps.PeriodMax)
		if excess.IsPositive() {
			if caps.Hard {
				return Totals{}, timesheeterrors.ErrHardCapExceeded.WithDetails(map[string]any{
					"period": start.Format(dateLayout) + "/" + end.Format(dateLayout),
					"hours":  worked.String(),
					"cap":    caps.PeriodMax.String(),
				})
			}
			periodEligible = decimal.Min(excess, workedRegular)
		}
	}

	totals.OvertimeEligible = decimal.Max(weeklyEligible, periodEligible)
	return totals, nil
}
