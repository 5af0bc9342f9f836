/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/friendsincode/timeslots/internal/config"
	"github.com/friendsincode/timeslots/internal/form"
	"github.com/friendsincode/timeslots/internal/slots"
)

// resolveSettings layers variant defaults, the settings file, the environment
// ceiling, and finally any flags the user changed.
func resolveSettings(cmd *cobra.Command, variant slots.Variant) (slots.Settings, error) {
	s := slots.DefaultSettings(variant)

	path := flagSettings
	if path == "" && cfg != nil {
		path = cfg.SettingsPath
	}
	if path != "" {
		loaded, err := config.LoadSettings(path, s)
		if err != nil {
			return slots.Settings{}, err
		}
		s = loaded
		logger.Debug().Str("path", path).Msg("settings file applied")
	}
	if cfg != nil && cfg.SearchDays > 0 {
		s.SearchDays = cfg.SearchDays
	}

	flags := cmd.Flags()
	changed := func(name string) bool {
		fl := flags.Lookup(name)
		return fl != nil && fl.Changed
	}

	if changed("count") {
		s.SlotCount = flagCount
	}
	if changed("duration") {
		d, err := parseDurationFlag(flagDuration)
		if err != nil {
			return slots.Settings{}, err
		}
		s.SlotDuration = d
	}
	if changed("start") {
		tod, err := slots.ParseClock(flagStart)
		if err != nil {
			return slots.Settings{}, fmt.Errorf("--start: %w", err)
		}
		s.StartTime = tod
	}
	if changed("end") {
		tod, err := slots.ParseClock(flagEnd)
		if err != nil {
			return slots.Settings{}, fmt.Errorf("--end: %w", err)
		}
		s.EndTime = tod
	}
	if changed("increment") {
		s.IncrementMinutes = flagIncrement
	}
	if changed("days-ahead") {
		s.DaysFromToday = flagDaysAhead
	}
	if changed("avoid-days") {
		if strings.EqualFold(strings.TrimSpace(flagAvoidDays), "none") {
			s.AvoidDays = nil
		} else {
			days, err := slots.ParseWeekdayList(flagAvoidDays)
			if err != nil {
				return slots.Settings{}, fmt.Errorf("--avoid-days: %w", err)
			}
			s.AvoidDays = days
		}
	}
	if changed("avoid") {
		s.AvoidTimes = map[time.Weekday][]slots.Range{}
		for _, entry := range flagAvoid {
			day, r, err := form.ParseAvoidEntry(entry)
			if err != nil {
				return slots.Settings{}, fmt.Errorf("--avoid: %w", err)
			}
			s.AvoidTimes[day] = append(s.AvoidTimes[day], r)
		}
	}
	if changed("weekends") {
		s.IncludeWeekends = flagWeekends
	}
	if changed("per-day") {
		s.MaxPerDay = flagPerDay
	}
	if changed("search-days") {
		s.SearchDays = flagSearchDays
	}

	return s, nil
}

func parseDurationFlag(v string) (time.Duration, error) {
	if hours, err := strconv.ParseFloat(v, 64); err == nil {
		return time.Duration(hours * float64(time.Hour)).Round(time.Second), nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("--duration %q must be hours (2.5) or a duration (2h30m)", v)
	}
	return d, nil
}
