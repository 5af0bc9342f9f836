/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package slots

import (
	"fmt"
	"time"

	"github.com/teambition/rrule-go"
)

var rruleWeekdays = map[time.Weekday]rrule.Weekday{
	time.Monday:    rrule.MO,
	time.Tuesday:   rrule.TU,
	time.Wednesday: rrule.WE,
	time.Thursday:  rrule.TH,
	time.Friday:    rrule.FR,
	time.Saturday:  rrule.SA,
	time.Sunday:    rrule.SU,
}

// Midnight truncates t to the start of its calendar day in t's location.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DayIterator yields, in order, the midnights of the allowed weekdays among
// the span calendar days starting at first. Days are produced on demand, so a
// caller that stops early never materialises the rest of the span.
func DayIterator(first time.Time, span int, allowed []time.Weekday) (func() (time.Time, bool), error) {
	if span <= 0 || len(allowed) == 0 {
		return func() (time.Time, bool) { return time.Time{}, false }, nil
	}
	first = Midnight(first)
	loc := first.Location()

	byDay := make([]rrule.Weekday, 0, len(allowed))
	for _, d := range allowed {
		wd, ok := rruleWeekdays[d]
		if !ok {
			return nil, fmt.Errorf("unknown weekday %d", d)
		}
		byDay = append(byDay, wd)
	}

	rule, err := rrule.NewRRule(rrule.ROption{
		Freq:      rrule.DAILY,
		Dtstart:   first,
		Until:     first.AddDate(0, 0, span-1),
		Byweekday: byDay,
	})
	if err != nil {
		return nil, fmt.Errorf("build day rule: %w", err)
	}

	next := rule.Iterator()
	return func() (time.Time, bool) {
		day, ok := next()
		if !ok {
			return time.Time{}, false
		}
		return Midnight(day.In(loc)), true
	}, nil
}

// Days lists every day DayIterator would yield.
func Days(first time.Time, span int, allowed []time.Weekday) ([]time.Time, error) {
	next, err := DayIterator(first, span, allowed)
	if err != nil {
		return nil, err
	}
	var days []time.Time
	for day, ok := next(); ok; day, ok = next() {
		days = append(days, day)
	}
	return days, nil
}
