/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package slots

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// TimeOfDay is an offset from local midnight.
type TimeOfDay time.Duration

// FromHours converts fractional hours (9.5 = 9:30) to a TimeOfDay, rounded to the minute.
func FromHours(h float64) TimeOfDay {
	return TimeOfDay(time.Duration(math.Round(h*60)) * time.Minute)
}

// ParseClock parses an HH:MM string.
func ParseClock(s string) (TimeOfDay, error) {
	hh, mm, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return 0, fmt.Errorf("time must be in HH:MM format, e.g., 09:30")
	}
	hour, err := strconv.Atoi(hh)
	if err != nil {
		return 0, fmt.Errorf("time must be in HH:MM format, e.g., 09:30")
	}
	minute, err := strconv.Atoi(mm)
	if err != nil {
		return 0, fmt.Errorf("time must be in HH:MM format, e.g., 09:30")
	}
	if hour < 0 || hour > 24 || minute < 0 || minute > 59 || (hour == 24 && minute != 0) {
		return 0, fmt.Errorf("time %q is out of range", s)
	}
	return TimeOfDay(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute), nil
}

// Hours returns the offset as fractional hours.
func (t TimeOfDay) Hours() float64 { return time.Duration(t).Hours() }

// Add shifts the offset by d.
func (t TimeOfDay) Add(d time.Duration) TimeOfDay { return t + TimeOfDay(d) }

func (t TimeOfDay) split() (int, int) {
	total := int(time.Duration(t) / time.Minute)
	return total / 60, total % 60
}

// String renders H:MM, e.g. 9:00 or 16:30.
func (t TimeOfDay) String() string {
	h, m := t.split()
	return fmt.Sprintf("%d:%02d", h, m)
}

// Clock renders zero-padded HH:MM.
func (t TimeOfDay) Clock() string {
	h, m := t.split()
	return fmt.Sprintf("%02d:%02d", h, m)
}

// On anchors the offset to the calendar date of day, in day's location.
func (t TimeOfDay) On(day time.Time) time.Time {
	h, m := t.split()
	return time.Date(day.Year(), day.Month(), day.Day(), h, m, 0, 0, day.Location())
}

// Range is an avoided window within a day, [Start, End).
type Range struct {
	Start TimeOfDay
	End   TimeOfDay
}

func (r Range) String() string {
	return r.Start.String() + " – " + r.End.String()
}

// Variant selects the defaults of the console or the interactive form flavour.
type Variant string

const (
	VariantConsole Variant = "console"
	VariantForm    Variant = "form"
)

// DefaultSearchDays bounds how far past the first day the generator looks.
const DefaultSearchDays = 90

// MaxSearchDays is the largest accepted search ceiling, about ten years.
const MaxSearchDays = 3660

// maxIncrementMinutes keeps the candidate step within a single day.
const maxIncrementMinutes = 24 * 60

// Settings is the immutable input to Generate.
type Settings struct {
	SlotCount        int
	SlotDuration     time.Duration
	StartTime        TimeOfDay
	EndTime          TimeOfDay
	IncrementMinutes int
	DaysFromToday    int
	AvoidDays        []time.Weekday
	AvoidTimes       map[time.Weekday][]Range
	IncludeWeekends  bool
	MaxPerDay        int
	SearchDays       int
}

// DefaultSettings returns the stock settings for a variant.
func DefaultSettings(v Variant) Settings {
	s := Settings{
		SlotCount:        10,
		SlotDuration:     2*time.Hour + 30*time.Minute,
		StartTime:        FromHours(9),
		EndTime:          FromHours(16.5),
		IncrementMinutes: 30,
		DaysFromToday:    7,
		MaxPerDay:        1,
		SearchDays:       DefaultSearchDays,
		AvoidTimes:       map[time.Weekday][]Range{},
	}
	switch v {
	case VariantForm:
		s.IncludeWeekends = true
		s.AvoidDays = []time.Weekday{time.Saturday, time.Sunday}
	default:
		s.AvoidTimes = map[time.Weekday][]Range{
			time.Monday:  {{Start: FromHours(9), End: FromHours(10.5)}},
			time.Tuesday: {{Start: FromHours(14), End: FromHours(15.5)}},
		}
	}
	return s
}

// Clone returns a copy that shares no slices or maps with s.
func (s Settings) Clone() Settings {
	out := s
	out.AvoidDays = append([]time.Weekday(nil), s.AvoidDays...)
	out.AvoidTimes = make(map[time.Weekday][]Range, len(s.AvoidTimes))
	for day, ranges := range s.AvoidTimes {
		out.AvoidTimes[day] = append([]Range(nil), ranges...)
	}
	return out
}

const endOfDay = TimeOfDay(24 * time.Hour)

// Validate performs the basic range checks Generate relies on.
func (s Settings) Validate() error {
	switch {
	case s.StartTime < 0 || s.StartTime > endOfDay:
		return invalid("start_time", "must be between 0:00 and 24:00")
	case s.EndTime < 0 || s.EndTime > endOfDay:
		return invalid("end_time", "must be between 0:00 and 24:00")
	case s.StartTime >= s.EndTime:
		return invalid("start_time", fmt.Sprintf("%s is not before end time %s", s.StartTime, s.EndTime))
	case s.SlotDuration <= 0:
		return invalid("slot_duration", "must be positive")
	case TimeOfDay(s.SlotDuration) > s.EndTime-s.StartTime:
		return invalid("slot_duration", fmt.Sprintf("%s does not fit between %s and %s", s.SlotDuration, s.StartTime, s.EndTime))
	case s.IncrementMinutes <= 0:
		return invalid("increment_minutes", "must be positive")
	case s.IncrementMinutes > maxIncrementMinutes:
		return invalid("increment_minutes", fmt.Sprintf("must be at most %d", maxIncrementMinutes))
	case s.SlotCount < 0:
		return invalid("slot_count", "must not be negative")
	case s.MaxPerDay < 1:
		return invalid("max_per_day", "must be at least 1")
	case s.DaysFromToday < 0:
		return invalid("days_from_today", "must not be negative")
	case s.SearchDays < 1:
		return invalid("search_days", "must be at least 1")
	case s.SearchDays > MaxSearchDays:
		return invalid("search_days", fmt.Sprintf("must be at most %d", MaxSearchDays))
	}
	for _, d := range s.AvoidDays {
		if d < time.Sunday || d > time.Saturday {
			return invalid("avoid_days", fmt.Sprintf("unknown weekday %d", d))
		}
	}
	for day, ranges := range s.AvoidTimes {
		if day < time.Sunday || day > time.Saturday {
			return invalid("avoid_times", fmt.Sprintf("unknown weekday %d", day))
		}
		for _, r := range ranges {
			if r.Start < 0 || r.End > endOfDay || r.Start >= r.End {
				return invalid("avoid_times", fmt.Sprintf("%s range %s is empty or out of range", ShortName(day), r))
			}
		}
	}
	return nil
}

// AllowedWeekdays lists the weekdays, Monday first, that may carry slots.
func (s Settings) AllowedWeekdays() []time.Weekday {
	avoided := make(map[time.Weekday]bool, len(s.AvoidDays)+2)
	for _, d := range s.AvoidDays {
		avoided[d] = true
	}
	if !s.IncludeWeekends {
		avoided[time.Saturday] = true
		avoided[time.Sunday] = true
	}
	out := make([]time.Weekday, 0, 7)
	for _, d := range weekOrder {
		if !avoided[d] {
			out = append(out, d)
		}
	}
	return out
}

// ParseRange parses "09:00 – 10:30"; a plain hyphen also separates the ends.
func ParseRange(s string) (Range, error) {
	s = strings.TrimSpace(s)
	sep := "–"
	if !strings.Contains(s, sep) {
		sep = "-"
	}
	a, b, ok := strings.Cut(s, sep)
	if !ok {
		return Range{}, fmt.Errorf("range %q must look like 09:00 – 10:30", s)
	}
	start, err := ParseClock(a)
	if err != nil {
		return Range{}, err
	}
	end, err := ParseClock(b)
	if err != nil {
		return Range{}, err
	}
	if start >= end {
		return Range{}, fmt.Errorf("range %q ends before it starts", s)
	}
	return Range{Start: start, End: end}, nil
}
