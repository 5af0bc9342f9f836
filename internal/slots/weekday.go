/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package slots

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// weekOrder is Monday-first; index i is weekday number i in the 0=Mon convention.
var weekOrder = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
	time.Friday, time.Saturday, time.Sunday,
}

// WeekdayFromIndex maps 0=Mon ... 6=Sun to a time.Weekday.
func WeekdayFromIndex(i int) (time.Weekday, error) {
	if i < 0 || i >= len(weekOrder) {
		return 0, fmt.Errorf("weekday index %d out of range 0-6 (0=Mon)", i)
	}
	return weekOrder[i], nil
}

// WeekdayIndex is the inverse of WeekdayFromIndex.
func WeekdayIndex(d time.Weekday) int {
	return (int(d) + 6) % 7
}

// ShortName returns the three letter weekday name, e.g. Mon.
func ShortName(d time.Weekday) string {
	return d.String()[:3]
}

// ParseWeekday accepts a short or full weekday name, case-insensitively,
// or a 0=Mon index.
func ParseWeekday(s string) (time.Weekday, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty weekday")
	}
	if i, err := strconv.Atoi(s); err == nil {
		return WeekdayFromIndex(i)
	}
	lower := strings.ToLower(s)
	for _, d := range weekOrder {
		name := strings.ToLower(d.String())
		if lower == name || lower == name[:3] {
			return d, nil
		}
	}
	return 0, fmt.Errorf("unknown weekday %q", s)
}

// ParseWeekdayList parses a comma separated list such as "Sat, Sun".
func ParseWeekdayList(s string) ([]time.Weekday, error) {
	var out []time.Weekday
	for _, part := range strings.Split(s, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		d, err := ParseWeekday(part)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}
