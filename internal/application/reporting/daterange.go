package reporting

import "time"

// startOfDay returns local midnight of t's day
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// endOfDay returns 23:59:59.999 of t's day
func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999e6, t.Location())
}

// ResolveRange maps the filter's preset to a concrete [start, end] pair,
// evaluated against now's local clock. No timezone normalization happens
// here — callers supply dates already in the desired zone.
func ResolveRange(f Filters, now time.Time) DateRange {
	switch f.Preset {
	case PresetYesterday:
		y := now.AddDate(0, 0, -1)
		return DateRange{Start: startOfDay(y), End: endOfDay(y)}
	case PresetLast7:
		return DateRange{Start: startOfDay(now.AddDate(0, 0, -6)), End: endOfDay(now)}
	case PresetThisWeek:
		// Week starts on Sunday, matching the source system's calendar.
		ws := now.AddDate(0, 0, -int(now.Weekday()))
		return DateRange{Start: startOfDay(ws), End: endOfDay(now)}
	case PresetLast30:
		return DateRange{Start: startOfDay(now.AddDate(0, 0, -29)), End: endOfDay(now)}
	case PresetThisMonth:
		first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return DateRange{Start: first, End: endOfDay(now)}
	case PresetLastMonth:
		first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		prev := first.AddDate(0, -1, 0)
		return DateRange{Start: prev, End: endOfDay(first.AddDate(0, 0, -1))}
	case PresetQuarter:
		q := (int(now.Month()) - 1) / 3
		start := time.Date(now.Year(), time.Month(q*3+1), 1, 0, 0, 0, 0, now.Location())
		return DateRange{Start: start, End: now}
	case PresetYTD:
		start := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location())
		return DateRange{Start: start, End: now}
	case PresetCustom:
		if f.StartDate != nil && f.EndDate != nil {
			return DateRange{Start: startOfDay(*f.StartDate), End: endOfDay(*f.EndDate)}
		}
		// Custom without both bounds falls back to today.
		return DateRange{Start: startOfDay(now), End: endOfDay(now)}
	default: // PresetToday and anything unrecognized
		return DateRange{Start: startOfDay(now), End: endOfDay(now)}
	}
}
