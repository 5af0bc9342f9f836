/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package slots

import "time"

// Candidate is a slot-shaped interval on Day that has not been selected yet.
type Candidate struct {
	Day   time.Time
	Start TimeOfDay
	End   TimeOfDay
}

// Overlaps reports whether [aStart, aEnd) and [bStart, bEnd) intersect.
func Overlaps(aStart, aEnd, bStart, bEnd TimeOfDay) bool {
	return !(aEnd <= bStart || aStart >= bEnd)
}

func overlapsAny(start, end TimeOfDay, ranges []Range) bool {
	for _, r := range ranges {
		if Overlaps(start, end, r.Start, r.End) {
			return true
		}
	}
	return false
}

// Candidates walks the daily window in IncrementMinutes steps and keeps every
// start whose slot fits the window and misses the avoid ranges for day's weekday.
func Candidates(day time.Time, s Settings) []Candidate {
	if s.IncrementMinutes <= 0 || s.SlotDuration <= 0 {
		return nil
	}
	step := time.Duration(s.IncrementMinutes) * time.Minute
	last := s.EndTime.Add(-s.SlotDuration)
	avoid := s.AvoidTimes[day.Weekday()]

	var out []Candidate
	for start := s.StartTime; start <= last; start = start.Add(step) {
		end := start.Add(s.SlotDuration)
		if overlapsAny(start, end, avoid) {
			continue
		}
		out = append(out, Candidate{Day: day, Start: start, End: end})
	}
	return out
}
