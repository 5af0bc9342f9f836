/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

// Package form implements the interactive, field by field settings editor.
package form

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/friendsincode/timeslots/internal/render"
	"github.com/friendsincode/timeslots/internal/slots"
)

// maxAttempts bounds re-prompting for a single field.
const maxAttempts = 3

// ErrTooManyAttempts is returned when a field keeps failing to parse.
var ErrTooManyAttempts = errors.New("too many invalid answers")

// Copier places text on the system clipboard.
type Copier interface {
	WriteAll(text string) error
}

// Form prompts for settings on one stream and reads answers from another.
type Form struct {
	in  *bufio.Reader
	out io.Writer
}

// New creates a form over the given streams.
func New(in io.Reader, out io.Writer) *Form {
	return &Form{in: bufio.NewReader(in), out: out}
}

type field struct {
	label string
	def   string
	apply func(string) error
}

// Run asks for every setting, starting from defaults. An empty answer keeps
// the default shown in brackets.
func (f *Form) Run(defaults slots.Settings) (slots.Settings, error) {
	s := defaults.Clone()

	fields := []field{
		{"Number of slots", strconv.Itoa(s.SlotCount), intInto(&s.SlotCount)},
		{"Duration (hours)", strconv.FormatFloat(s.SlotDuration.Hours(), 'f', -1, 64), func(v string) error {
			hours, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return fmt.Errorf("duration must be a number of hours, e.g., 2.5")
			}
			s.SlotDuration = time.Duration(hours * float64(time.Hour)).Round(time.Second)
			return nil
		}},
		{"Start time (HH:MM)", s.StartTime.Clock(), clockInto(&s.StartTime)},
		{"End time (HH:MM)", s.EndTime.Clock(), clockInto(&s.EndTime)},
		{"Increment (minutes)", strconv.Itoa(s.IncrementMinutes), intInto(&s.IncrementMinutes)},
		{"Days from today to start", strconv.Itoa(s.DaysFromToday), intInto(&s.DaysFromToday)},
		{"Max slots per day", strconv.Itoa(s.MaxPerDay), intInto(&s.MaxPerDay)},
		{"Avoid days (e.g. Sat, Sun or none)", weekdayList(s.AvoidDays), func(v string) error {
			if strings.EqualFold(v, "none") {
				s.AvoidDays = nil
				return nil
			}
			days, err := slots.ParseWeekdayList(v)
			if err != nil {
				return err
			}
			s.AvoidDays = days
			return nil
		}},
	}

	for _, fd := range fields {
		if err := f.ask(fd); err != nil {
			return slots.Settings{}, err
		}
	}

	if err := f.askAvoidTimes(&s); err != nil {
		return slots.Settings{}, err
	}
	return s, nil
}

func (f *Form) ask(fd field) error {
	for attempt := 0; attempt < maxAttempts; attempt++ {
		fmt.Fprintf(f.out, "%s [%s]: ", fd.label, fd.def)
		answer, _ := f.readLine()
		if answer == "" {
			answer = fd.def
		}
		err := fd.apply(answer)
		if err == nil {
			return nil
		}
		fmt.Fprintf(f.out, "Error: %v\n", err)
	}
	return fmt.Errorf("%s: %w", fd.label, ErrTooManyAttempts)
}

// askAvoidTimes edits the avoid list line by line. An entry adds a range,
// -N removes listed entry N, clear empties the list, and a blank line ends.
func (f *Form) askAvoidTimes(s *slots.Settings) error {
	fmt.Fprintln(f.out, "Avoid specific times, one per line (e.g. Mon 09:00 – 10:30).")
	fmt.Fprintln(f.out, "Enter -N to remove entry N, clear to remove all, blank line to finish:")
	f.listAvoidTimes(*s)

	failures := 0
	for {
		fmt.Fprint(f.out, "> ")
		line, eof := f.readLine()
		if line == "" {
			return nil
		}

		var err error
		switch {
		case strings.EqualFold(line, "clear"):
			s.AvoidTimes = map[time.Weekday][]slots.Range{}
			fmt.Fprintln(f.out, "Removed all avoided times.")
		case strings.HasPrefix(line, "-"):
			err = removeAvoidEntry(s, strings.TrimPrefix(line, "-"))
			if err == nil {
				f.listAvoidTimes(*s)
			}
		default:
			var day time.Weekday
			var r slots.Range
			day, r, err = ParseAvoidEntry(line)
			if err == nil {
				s.AvoidTimes[day] = append(s.AvoidTimes[day], r)
			}
		}

		if err != nil {
			fmt.Fprintf(f.out, "Error: %v\n", err)
			failures++
			if failures >= maxAttempts {
				return fmt.Errorf("avoid times: %w", ErrTooManyAttempts)
			}
		}
		if eof {
			return nil
		}
	}
}

func (f *Form) listAvoidTimes(s slots.Settings) {
	for i, e := range avoidEntries(s) {
		fmt.Fprintf(f.out, "  %d. %s\n", i+1, e)
	}
}

// Confirm asks a yes/no question; anything but y or yes is no.
func (f *Form) Confirm(question string) bool {
	fmt.Fprintf(f.out, "%s [y/N]: ", question)
	answer, _ := f.readLine()
	answer = strings.ToLower(answer)
	return answer == "y" || answer == "yes"
}

// Notify prints a one line message, the console stand-in for a dialog.
func (f *Form) Notify(message string) {
	fmt.Fprintln(f.out, message)
}

// Show prints the generated slots the way the results box does.
func (f *Form) Show(list []slots.Slot) error {
	fmt.Fprintln(f.out)
	return render.Write(f.out, render.FormatText, list, render.ICalOptions{})
}

// CopyResults places the newline-joined slot lines on the clipboard.
func CopyResults(c Copier, list []slots.Slot) error {
	if err := c.WriteAll(render.Text(list)); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	return nil
}

// readLine returns the trimmed next line and whether the input is exhausted.
func (f *Form) readLine() (string, bool) {
	line, err := f.in.ReadString('\n')
	return strings.TrimSpace(line), err != nil
}

// ParseAvoidEntry parses "Mon 09:00 – 10:30".
func ParseAvoidEntry(entry string) (time.Weekday, slots.Range, error) {
	dayPart, rangePart, ok := strings.Cut(strings.TrimSpace(entry), " ")
	if !ok {
		return 0, slots.Range{}, fmt.Errorf("entry %q must look like Mon 09:00 – 10:30", entry)
	}
	day, err := slots.ParseWeekday(dayPart)
	if err != nil {
		return 0, slots.Range{}, err
	}
	r, err := slots.ParseRange(rangePart)
	if err != nil {
		return 0, slots.Range{}, err
	}
	return day, r, nil
}

type avoidEntry struct {
	day time.Weekday
	r   slots.Range
}

func (e avoidEntry) String() string {
	return fmt.Sprintf("%s %s – %s", slots.ShortName(e.day), e.r.Start.Clock(), e.r.End.Clock())
}

// avoidEntries flattens the avoid map Monday first, keeping entry order per day.
func avoidEntries(s slots.Settings) []avoidEntry {
	var out []avoidEntry
	for i := 0; i < 7; i++ {
		day, _ := slots.WeekdayFromIndex(i)
		for _, r := range s.AvoidTimes[day] {
			out = append(out, avoidEntry{day: day, r: r})
		}
	}
	return out
}

// removeAvoidEntry drops the entry numbered n in the avoidEntries listing.
func removeAvoidEntry(s *slots.Settings, n string) error {
	entries := avoidEntries(*s)
	i, err := strconv.Atoi(strings.TrimSpace(n))
	if err != nil || i < 1 || i > len(entries) {
		return fmt.Errorf("no avoided time numbered %q", n)
	}

	avoid := make(map[time.Weekday][]slots.Range, len(s.AvoidTimes))
	for j, e := range entries {
		if j == i-1 {
			continue
		}
		avoid[e.day] = append(avoid[e.day], e.r)
	}
	s.AvoidTimes = avoid
	return nil
}

func weekdayList(days []time.Weekday) string {
	if len(days) == 0 {
		return "none"
	}
	names := make([]string, 0, len(days))
	for _, d := range days {
		names = append(names, slots.ShortName(d))
	}
	return strings.Join(names, ", ")
}

func intInto(dst *int) func(string) error {
	return func(v string) error {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%q is not a whole number", v)
		}
		*dst = n
		return nil
	}
}

func clockInto(dst *slots.TimeOfDay) func(string) error {
	return func(v string) error {
		tod, err := slots.ParseClock(v)
		if err != nil {
			return err
		}
		*dst = tod
		return nil
	}
}
