/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

// Package render turns generated slots into console text and export formats.
package render

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/friendsincode/timeslots/internal/slots"
)

// FormatSlot renders e.g. "Monday, October 21, from 9:00 AM – 11:30 AM".
func FormatSlot(s slots.Slot) string {
	return fmt.Sprintf("%s, from %s – %s",
		s.Date.Format("Monday, January 2"),
		s.Start.Format("3:04 PM"),
		s.End.Format("3:04 PM"))
}

// Lines formats each slot on its own line.
func Lines(list []slots.Slot) []string {
	out := make([]string, 0, len(list))
	for _, s := range list {
		out = append(out, FormatSlot(s))
	}
	return out
}

// Text is the newline-joined form used for console output and clipboard copies.
func Text(list []slots.Slot) string {
	return strings.Join(Lines(list), "\n")
}

// Settings prints the settings banner that precedes the slot list.
func Settings(w io.Writer, s slots.Settings) error {
	hours := int(s.SlotDuration / time.Hour)
	minutes := int((s.SlotDuration % time.Hour) / time.Minute)

	var b strings.Builder
	b.WriteString("\nRandomly generated time slots!\n\nSettings:\n")
	fmt.Fprintf(&b, "- Time slots: %d\n", s.SlotCount)
	fmt.Fprintf(&b, "- Duration: %dh %dm\n", hours, minutes)
	fmt.Fprintf(&b, "- Generate between %s and %s\n", s.StartTime, s.EndTime)
	fmt.Fprintf(&b, "- Increment: %dm\n", s.IncrementMinutes)
	fmt.Fprintf(&b, "- Start %d days from today\n", s.DaysFromToday)
	if s.MaxPerDay > 1 {
		fmt.Fprintf(&b, "- Max slots per day: %d\n", s.MaxPerDay)
	}
	fmt.Fprintf(&b, "- Avoid entire days: %s\n", avoidDays(s))
	fmt.Fprintf(&b, "- Avoid specific times: %s\n\n", avoidTimes(s))

	_, err := io.WriteString(w, b.String())
	return err
}

func avoidDays(s slots.Settings) string {
	if len(s.AvoidDays) == 0 {
		return "none"
	}
	days := append([]time.Weekday(nil), s.AvoidDays...)
	sort.Slice(days, func(i, j int) bool {
		return slots.WeekdayIndex(days[i]) < slots.WeekdayIndex(days[j])
	})
	names := make([]string, 0, len(days))
	for _, d := range days {
		names = append(names, slots.ShortName(d))
	}
	return strings.Join(names, ", ")
}

func avoidTimes(s slots.Settings) string {
	var entries []string
	for i := 0; i < 7; i++ {
		day, _ := slots.WeekdayFromIndex(i)
		for _, r := range s.AvoidTimes[day] {
			entries = append(entries, slots.ShortName(day)+" "+r.String())
		}
	}
	if len(entries) == 0 {
		return "none"
	}
	return strings.Join(entries, ", ")
}
