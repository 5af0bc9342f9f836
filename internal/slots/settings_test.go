/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package slots

import (
	"errors"
	"testing"
	"time"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Settings)
		wantField string
	}{
		{"defaults", func(*Settings) {}, ""},
		{"start equals end", func(s *Settings) { s.EndTime = s.StartTime }, "start_time"},
		{"start after end", func(s *Settings) { s.StartTime = FromHours(17) }, "start_time"},
		{"end past midnight", func(s *Settings) { s.EndTime = FromHours(25) }, "end_time"},
		{"zero duration", func(s *Settings) { s.SlotDuration = 0 }, "slot_duration"},
		{"duration wider than window", func(s *Settings) { s.SlotDuration = 8 * time.Hour }, "slot_duration"},
		{"duration equals window", func(s *Settings) { s.SlotDuration = 7*time.Hour + 30*time.Minute }, ""},
		{"zero increment", func(s *Settings) { s.IncrementMinutes = 0 }, "increment_minutes"},
		{"whole day increment", func(s *Settings) { s.IncrementMinutes = 24 * 60 }, ""},
		{"increment longer than a day", func(s *Settings) { s.IncrementMinutes = 24*60 + 1 }, "increment_minutes"},
		{"overflowing increment", func(s *Settings) { s.IncrementMinutes = 1 << 53 }, "increment_minutes"},
		{"negative count", func(s *Settings) { s.SlotCount = -1 }, "slot_count"},
		{"zero count", func(s *Settings) { s.SlotCount = 0 }, ""},
		{"zero per day", func(s *Settings) { s.MaxPerDay = 0 }, "max_per_day"},
		{"negative offset", func(s *Settings) { s.DaysFromToday = -2 }, "days_from_today"},
		{"zero ceiling", func(s *Settings) { s.SearchDays = 0 }, "search_days"},
		{"largest ceiling", func(s *Settings) { s.SearchDays = MaxSearchDays }, ""},
		{"ceiling too far", func(s *Settings) { s.SearchDays = 100000000 }, "search_days"},
		{"bad avoid day", func(s *Settings) { s.AvoidDays = []time.Weekday{9} }, "avoid_days"},
		{"inverted avoid range", func(s *Settings) {
			s.AvoidTimes[time.Friday] = []Range{{Start: FromHours(12), End: FromHours(11)}}
		}, "avoid_times"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSettings(VariantConsole).Clone()
			tt.mutate(&s)
			err := s.Validate()
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("expected valid settings, got %v", err)
				}
				return
			}
			var invalidErr *InvalidConfigError
			if !errors.As(err, &invalidErr) {
				t.Fatalf("expected InvalidConfigError, got %v", err)
			}
			if invalidErr.Field != tt.wantField {
				t.Errorf("field = %q, want %q", invalidErr.Field, tt.wantField)
			}
			if !errors.Is(err, ErrInvalidConfig) {
				t.Error("expected error to match ErrInvalidConfig")
			}
		})
	}
}

func TestAllowedWeekdays(t *testing.T) {
	console := DefaultSettings(VariantConsole)
	if got := console.AllowedWeekdays(); len(got) != 5 || got[0] != time.Monday || got[4] != time.Friday {
		t.Fatalf("console allowed = %v, want Mon-Fri", got)
	}

	form := DefaultSettings(VariantForm)
	form.AvoidDays = []time.Weekday{time.Wednesday}
	got := form.AllowedWeekdays()
	if len(got) != 6 {
		t.Fatalf("form allowed = %v, want six days", got)
	}
	for _, d := range got {
		if d == time.Wednesday {
			t.Fatal("avoided Wednesday still allowed")
		}
	}
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		in      string
		want    TimeOfDay
		wantErr bool
	}{
		{"09:30", FromHours(9.5), false},
		{"9:05", TimeOfDay(9*time.Hour + 5*time.Minute), false},
		{"16:30", FromHours(16.5), false},
		{"24:00", FromHours(24), false},
		{"24:30", 0, true},
		{"0930", 0, true},
		{"ab:cd", 0, true},
		{"10:75", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseClock(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseClock(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseClock(%q) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestTimeOfDayFormatting(t *testing.T) {
	tod := FromHours(9.5)
	if tod.String() != "9:30" {
		t.Errorf("String() = %q", tod.String())
	}
	if tod.Clock() != "09:30" {
		t.Errorf("Clock() = %q", tod.Clock())
	}
	if FromHours(16.5).Hours() != 16.5 {
		t.Errorf("Hours() = %v", FromHours(16.5).Hours())
	}
	on := tod.On(monday)
	if on.Hour() != 9 || on.Minute() != 30 || on.Day() != monday.Day() {
		t.Errorf("On() = %s", on)
	}
}

func TestParseWeekday(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Weekday
		wantErr bool
	}{
		{"Mon", time.Monday, false},
		{"sunday", time.Sunday, false},
		{"FRI", time.Friday, false},
		{"0", time.Monday, false},
		{"6", time.Sunday, false},
		{"7", 0, true},
		{"funday", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseWeekday(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseWeekday(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseWeekday(%q) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}

	list, err := ParseWeekdayList("Sat, Sun,")
	if err != nil || len(list) != 2 || list[0] != time.Saturday || list[1] != time.Sunday {
		t.Fatalf("ParseWeekdayList = %v, %v", list, err)
	}
	if WeekdayIndex(time.Sunday) != 6 || WeekdayIndex(time.Monday) != 0 {
		t.Fatal("WeekdayIndex does not follow 0=Mon")
	}
}

func TestParseRange(t *testing.T) {
	for _, in := range []string{"09:00 – 10:30", "09:00-10:30", " 09:00 - 10:30 "} {
		r, err := ParseRange(in)
		if err != nil {
			t.Fatalf("ParseRange(%q): %v", in, err)
		}
		if r.Start != FromHours(9) || r.End != FromHours(10.5) {
			t.Errorf("ParseRange(%q) = %s", in, r)
		}
	}
	for _, bad := range []string{"09:00", "10:30 – 09:00", "9 – 10"} {
		if _, err := ParseRange(bad); err == nil {
			t.Errorf("expected error for %q", bad)
		}
	}
}

func TestCloneIsIndependent(t *testing.T) {
	s := DefaultSettings(VariantConsole)
	c := s.Clone()
	c.AvoidTimes[time.Monday][0].End = FromHours(12)
	c.AvoidDays = append(c.AvoidDays, time.Friday)

	if s.AvoidTimes[time.Monday][0].End != FromHours(10.5) {
		t.Fatal("clone shares avoid ranges with original")
	}
	if len(s.AvoidDays) != 0 {
		t.Fatal("clone shares avoid days with original")
	}
}
