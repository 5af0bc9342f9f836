/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/emersion/go-ical"
	"gopkg.in/yaml.v3"

	"github.com/friendsincode/timeslots/internal/slots"
)

func slotAt(year int, month time.Month, day, hour, minute int, d time.Duration) slots.Slot {
	date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	start := time.Date(year, month, day, hour, minute, 0, 0, time.UTC)
	return slots.Slot{Date: date, Start: start, End: start.Add(d)}
}

func TestFormatSlot(t *testing.T) {
	tests := []struct {
		name string
		slot slots.Slot
		want string
	}{
		{
			name: "morning",
			slot: slotAt(2026, time.October, 21, 9, 0, 150*time.Minute),
			want: "Wednesday, October 21, from 9:00 AM – 11:30 AM",
		},
		{
			name: "single digit day spans noon",
			slot: slotAt(2026, time.January, 5, 10, 30, 150*time.Minute),
			want: "Monday, January 5, from 10:30 AM – 1:00 PM",
		},
		{
			name: "afternoon",
			slot: slotAt(2026, time.March, 3, 14, 0, 150*time.Minute),
			want: "Tuesday, March 3, from 2:00 PM – 4:30 PM",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatSlot(tt.slot); got != tt.want {
				t.Errorf("FormatSlot() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTextJoinsLines(t *testing.T) {
	list := []slots.Slot{
		slotAt(2026, time.January, 5, 10, 30, time.Hour),
		slotAt(2026, time.January, 6, 9, 0, time.Hour),
	}
	got := Text(list)
	want := "Monday, January 5, from 10:30 AM – 11:30 AM\nTuesday, January 6, from 9:00 AM – 10:00 AM"
	if got != want {
		t.Fatalf("Text() = %q, want %q", got, want)
	}
}

func TestSettingsBanner(t *testing.T) {
	var buf bytes.Buffer
	if err := Settings(&buf, slots.DefaultSettings(slots.VariantConsole)); err != nil {
		t.Fatalf("settings: %v", err)
	}
	want := "\nRandomly generated time slots!\n\nSettings:\n" +
		"- Time slots: 10\n" +
		"- Duration: 2h 30m\n" +
		"- Generate between 9:00 and 16:30\n" +
		"- Increment: 30m\n" +
		"- Start 7 days from today\n" +
		"- Avoid entire days: none\n" +
		"- Avoid specific times: Mon 9:00 – 10:30, Tue 14:00 – 15:30\n\n"
	if buf.String() != want {
		t.Fatalf("banner mismatch:\n%q\nwant\n%q", buf.String(), want)
	}
}

func TestSettingsBannerFormVariant(t *testing.T) {
	s := slots.DefaultSettings(slots.VariantForm)
	s.MaxPerDay = 2

	var buf bytes.Buffer
	if err := Settings(&buf, s); err != nil {
		t.Fatalf("settings: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"- Avoid entire days: Sat, Sun", "- Avoid specific times: none", "- Max slots per day: 2"} {
		if !strings.Contains(out, want) {
			t.Errorf("banner missing %q:\n%s", want, out)
		}
	}
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"": FormatText, "JSON": FormatJSON, "yml": FormatYAML, "ical": FormatICS} {
		got, err := ParseFormat(in)
		if err != nil || got != want {
			t.Errorf("ParseFormat(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestWriteStructuredFormats(t *testing.T) {
	list := []slots.Slot{slotAt(2026, time.January, 5, 10, 30, 150*time.Minute)}

	var jsonBuf bytes.Buffer
	if err := Write(&jsonBuf, FormatJSON, list, ICalOptions{}); err != nil {
		t.Fatalf("write json: %v", err)
	}
	var decoded []slotRecord
	if err := json.Unmarshal(jsonBuf.Bytes(), &decoded); err != nil {
		t.Fatalf("decode json: %v", err)
	}
	if len(decoded) != 1 || decoded[0].Start != "10:30" || decoded[0].End != "13:00" || decoded[0].Weekday != "Monday" {
		t.Fatalf("unexpected json record: %+v", decoded)
	}

	var yamlBuf bytes.Buffer
	if err := Write(&yamlBuf, FormatYAML, list, ICalOptions{}); err != nil {
		t.Fatalf("write yaml: %v", err)
	}
	var fromYAML []slotRecord
	if err := yaml.Unmarshal(yamlBuf.Bytes(), &fromYAML); err != nil {
		t.Fatalf("decode yaml: %v", err)
	}
	if len(fromYAML) != 1 || fromYAML[0].Date != "2026-01-05" {
		t.Fatalf("unexpected yaml record: %+v", fromYAML)
	}

	var textBuf bytes.Buffer
	if err := Write(&textBuf, FormatText, list, ICalOptions{}); err != nil {
		t.Fatalf("write text: %v", err)
	}
	if textBuf.String() != "Monday, January 5, from 10:30 AM – 1:00 PM\n" {
		t.Fatalf("unexpected text output %q", textBuf.String())
	}
}

func TestICalExport(t *testing.T) {
	list := []slots.Slot{
		slotAt(2026, time.January, 5, 10, 30, 150*time.Minute),
		slotAt(2026, time.January, 7, 9, 0, 150*time.Minute),
	}
	data, err := ICal(list, ICalOptions{
		CalendarName: "Interview slots",
		Summary:      "Interview",
		Now:          func() time.Time { return time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC) },
	})
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	cal, err := ical.NewDecoder(bytes.NewReader(data)).Decode()
	if err != nil {
		t.Fatalf("decode exported calendar: %v", err)
	}
	if name, _ := cal.Props.Text(ical.PropName); name != "Interview slots" {
		t.Errorf("calendar name = %q", name)
	}

	events := cal.Events()
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if got := events[0].Props.Get(ical.PropDateTimeStart).Value; got != "20260105T103000" {
		t.Errorf("first DTSTART = %q", got)
	}
	if got := events[0].Props.Get(ical.PropDateTimeEnd).Value; got != "20260105T130000" {
		t.Errorf("first DTEND = %q", got)
	}
	uid0, _ := events[0].Props.Text(ical.PropUID)
	uid1, _ := events[1].Props.Text(ical.PropUID)
	if uid0 == "" || uid0 == uid1 {
		t.Errorf("expected distinct UIDs, got %q and %q", uid0, uid1)
	}
	if summary, _ := events[1].Props.Text(ical.PropSummary); summary != "Interview" {
		t.Errorf("summary = %q", summary)
	}
}
