package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResolveRange(t *testing.T) {
	now := time.Date(2025, 11, 15, 14, 30, 0, 0, time.UTC)

	t.Run("today", func(t *testing.T) {
		r := ResolveRange(Filters{Preset: PresetToday}, now)
		assert.Equal(t, time.Date(2025, 11, 15, 0, 0, 0, 0, time.UTC), r.Start)
		assert.Equal(t, time.Date(2025, 11, 15, 23, 59, 59, 999e6, time.UTC), r.End)
	})

	t.Run("yesterday", func(t *testing.T) {
		r := ResolveRange(Filters{Preset: PresetYesterday}, now)
		assert.Equal(t, time.Date(2025, 11, 14, 0, 0, 0, 0, time.UTC), r.Start)
		assert.Equal(t, time.Date(2025, 11, 14, 23, 59, 59, 999e6, time.UTC), r.End)
	})

	t.Run("last7 spans six days back through today", func(t *testing.T) {
		r := ResolveRange(Filters{Preset: PresetLast7}, now)
		assert.Equal(t, time.Date(2025, 11, 9, 0, 0, 0, 0, time.UTC), r.Start)
		assert.Equal(t, time.Date(2025, 11, 15, 23, 59, 59, 999e6, time.UTC), r.End)
	})

	t.Run("thisWeek starts on Sunday", func(t *testing.T) {
		// 2025-11-15 is a Saturday; the week began Sunday the 9th.
		r := ResolveRange(Filters{Preset: PresetThisWeek}, now)
		assert.Equal(t, time.Date(2025, 11, 9, 0, 0, 0, 0, time.UTC), r.Start)
		assert.Equal(t, time.Date(2025, 11, 15, 23, 59, 59, 999e6, time.UTC), r.End)
	})

	t.Run("thisWeek on a Sunday is a single day", func(t *testing.T) {
		sunday := time.Date(2025, 11, 9, 10, 0, 0, 0, time.UTC)
		r := ResolveRange(Filters{Preset: PresetThisWeek}, sunday)
		assert.Equal(t, time.Date(2025, 11, 9, 0, 0, 0, 0, time.UTC), r.Start)
	})

	t.Run("lastMonth covers the full previous calendar month", func(t *testing.T) {
		r := ResolveRange(Filters{Preset: PresetLastMonth}, now)
		assert.Equal(t, time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC), r.Start)
		assert.Equal(t, time.Date(2025, 10, 31, 23, 59, 59, 999e6, time.UTC), r.End)
	})

	t.Run("lastMonth across a year boundary", func(t *testing.T) {
		jan := time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)
		r := ResolveRange(Filters{Preset: PresetLastMonth}, jan)
		assert.Equal(t, time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC), r.Start)
		assert.Equal(t, time.Date(2025, 12, 31, 23, 59, 59, 999e6, time.UTC), r.End)
	})

	t.Run("quarter ends at now", func(t *testing.T) {
		r := ResolveRange(Filters{Preset: PresetQuarter}, now)
		assert.Equal(t, time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC), r.Start)
		assert.Equal(t, now, r.End)
	})

	t.Run("ytd ends at now", func(t *testing.T) {
		r := ResolveRange(Filters{Preset: PresetYTD}, now)
		assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), r.Start)
		assert.Equal(t, now, r.End)
	})

	t.Run("custom expands bounds to whole days", func(t *testing.T) {
		start := time.Date(2025, 6, 3, 11, 0, 0, 0, time.UTC)
		end := time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC)
		r := ResolveRange(Filters{Preset: PresetCustom, StartDate: &start, EndDate: &end}, now)
		assert.Equal(t, time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC), r.Start)
		assert.Equal(t, time.Date(2025, 6, 10, 23, 59, 59, 999e6, time.UTC), r.End)
	})

	t.Run("custom without both bounds falls back to today", func(t *testing.T) {
		start := time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC)
		r := ResolveRange(Filters{Preset: PresetCustom, StartDate: &start}, now)
		assert.Equal(t, time.Date(2025, 11, 15, 0, 0, 0, 0, time.UTC), r.Start)
		assert.Equal(t, time.Date(2025, 11, 15, 23, 59, 59, 999e6, time.UTC), r.End)
	})

	t.Run("unknown preset falls back to today", func(t *testing.T) {
		r := ResolveRange(Filters{Preset: "fortnight"}, now)
		assert.Equal(t, time.Date(2025, 11, 15, 0, 0, 0, 0, time.UTC), r.Start)
	})
}

func TestDateRangeContains(t *testing.T) {
	r := DateRange{
		Start: time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 11, 30, 23, 59, 59, 999e6, time.UTC),
	}

	assert.True(t, r.Contains(r.Start), "start boundary is inclusive")
	assert.True(t, r.Contains(r.End), "end boundary is inclusive")
	assert.False(t, r.Contains(r.Start.Add(-time.Millisecond)))
	assert.False(t, r.Contains(r.End.Add(time.Millisecond)))
}
