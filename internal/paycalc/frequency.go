package paycalc

import "time"

// PeriodsPerYear returns how many pay periods of freq fit in a year.
func PeriodsPerYear(freq Frequency) (int, bool) {
	switch freq {
	case FrequencyWeekly:
		return 52, true
	case FrequencyBiweekly:
		return 26, true
	case FrequencySemiMonthly:
		return 24, true
	case FrequencyMonthly:
		return 12, true
	default:
		return 0, false
	}
}

// Occurrences counts how many times a recurring amount anchored at anchor
// falls inside window. per_period is due once for any non-empty window;
// one_time is due only in the window containing the anchor.
func Occurrences(freq Frequency, anchor time.Time, window Period) int {
	start, end := dateOf(window.Start), dateOf(window.End)
	if start.After(end) {
		return 0
	}
	anchor = dateOf(anchor)

	switch freq {
	case FrequencyPerPeriod, "":
		return 1
	case FrequencyOneTime:
		if window.Covers(anchor) {
			return 1
		}
		return 0
	case FrequencyWeekly:
		return countDayStep(anchor, start, end, 7)
	case FrequencyBiweekly:
		return countDayStep(anchor, start, end, 14)
	case FrequencySemiMonthly:
		return countMonthStep(anchor, start, end, 1) + countMonthStep(anchor.AddDate(0, 0, 15), start, end, 1)
	case FrequencyMonthly:
		return countMonthStep(anchor, start, end, 1)
	case FrequencyQuarterly:
		return countMonthStep(anchor, start, end, 3)
	case FrequencySemester:
		return countMonthStep(anchor, start, end, 6)
	case FrequencyAnnually:
		return countMonthStep(anchor, start, end, 12)
	default:
		return 0
	}
}

func countDayStep(anchor, start, end time.Time, step int) int {
	// first occurrence on or after start
	first := anchor
	if first.Before(start) {
		gap := int(start.Sub(anchor).Hours() / 24)
		k := (gap + step - 1) / step
		first = anchor.AddDate(0, 0, k*step)
	}
	if first.After(end) {
		return 0
	}
	return int(end.Sub(first).Hours()/24)/step + 1
}

func countMonthStep(anchor, start, end time.Time, months int) int {
	count := 0
	for k := 0; ; k++ {
		d := addMonthsClamped(anchor, k*months)
		if d.After(end) {
			return count
		}
		if !d.Before(start) {
			count++
		}
	}
}

// addMonthsClamped keeps the anchor day, clamped to the month's last day, so
// a Jan 31 anchor recurs on Feb 28/29 rather than spilling into March.
func addMonthsClamped(anchor time.Time, months int) time.Time {
	y, m, d := anchor.Date()
	firstOfTarget := time.Date(y, m+time.Month(months), 1, 0, 0, 0, 0, time.UTC)
	last := firstOfTarget.AddDate(0, 1, -1).Day()
	if d > last {
		d = last
	}
	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), d, 0, 0, 0, 0, time.UTC)
}
