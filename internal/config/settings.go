/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/friendsincode/timeslots/internal/slots"
)

// fileSettings mirrors slots.Settings in a YAML friendly shape. Nil fields
// keep the base value.
type fileSettings struct {
	SlotCount        *int           `yaml:"slot_count"`
	SlotDuration     *durationValue `yaml:"slot_duration"`
	StartTime        *clockValue    `yaml:"start_time"`
	EndTime          *clockValue    `yaml:"end_time"`
	IncrementMinutes *int           `yaml:"increment_minutes"`
	DaysFromToday    *int           `yaml:"days_from_today"`
	AvoidDays        []string       `yaml:"avoid_days"`
	AvoidTimes       yaml.Node      `yaml:"avoid_times"`
	IncludeWeekends  *bool          `yaml:"include_weekends"`
	MaxPerDay        *int           `yaml:"max_per_day"`
	SearchDays       *int           `yaml:"search_days"`
}

// durationValue accepts a Go duration ("2h30m") or fractional hours (2.5).
type durationValue time.Duration

func (d *durationValue) UnmarshalYAML(node *yaml.Node) error {
	raw := strings.TrimSpace(node.Value)
	if hours, err := strconv.ParseFloat(raw, 64); err == nil {
		*d = durationValue(time.Duration(hours * float64(time.Hour)).Round(time.Second))
		return nil
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("line %d: duration %q must be hours (2.5) or a duration (2h30m)", node.Line, raw)
	}
	*d = durationValue(parsed)
	return nil
}

// clockValue accepts "HH:MM" or fractional hours (9.5).
type clockValue slots.TimeOfDay

func (c *clockValue) UnmarshalYAML(node *yaml.Node) error {
	tod, err := parseTimeOfDay(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*c = clockValue(tod)
	return nil
}

func parseTimeOfDay(raw string) (slots.TimeOfDay, error) {
	raw = strings.TrimSpace(raw)
	if strings.Contains(raw, ":") {
		return slots.ParseClock(raw)
	}
	hours, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("time %q must be HH:MM or fractional hours", raw)
	}
	return slots.FromHours(hours), nil
}

// LoadSettings overlays the YAML file at path onto base.
func LoadSettings(path string, base slots.Settings) (slots.Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return slots.Settings{}, fmt.Errorf("read settings: %w", err)
	}
	s, err := ParseSettings(data, base)
	if err != nil {
		return slots.Settings{}, fmt.Errorf("parse settings %s: %w", path, err)
	}
	return s, nil
}

// ParseSettings overlays YAML data onto base. The base value is not modified.
func ParseSettings(data []byte, base slots.Settings) (slots.Settings, error) {
	var fs fileSettings
	if err := yaml.Unmarshal(data, &fs); err != nil {
		return slots.Settings{}, err
	}

	s := base.Clone()
	if fs.SlotCount != nil {
		s.SlotCount = *fs.SlotCount
	}
	if fs.SlotDuration != nil {
		s.SlotDuration = time.Duration(*fs.SlotDuration)
	}
	if fs.StartTime != nil {
		s.StartTime = slots.TimeOfDay(*fs.StartTime)
	}
	if fs.EndTime != nil {
		s.EndTime = slots.TimeOfDay(*fs.EndTime)
	}
	if fs.IncrementMinutes != nil {
		s.IncrementMinutes = *fs.IncrementMinutes
	}
	if fs.DaysFromToday != nil {
		s.DaysFromToday = *fs.DaysFromToday
	}
	if fs.IncludeWeekends != nil {
		s.IncludeWeekends = *fs.IncludeWeekends
	}
	if fs.MaxPerDay != nil {
		s.MaxPerDay = *fs.MaxPerDay
	}
	if fs.SearchDays != nil {
		s.SearchDays = *fs.SearchDays
	}

	if fs.AvoidDays != nil {
		s.AvoidDays = make([]time.Weekday, 0, len(fs.AvoidDays))
		for _, name := range fs.AvoidDays {
			d, err := slots.ParseWeekday(name)
			if err != nil {
				return slots.Settings{}, fmt.Errorf("avoid_days: %w", err)
			}
			s.AvoidDays = append(s.AvoidDays, d)
		}
	}

	if !fs.AvoidTimes.IsZero() {
		avoid, err := decodeAvoidTimes(&fs.AvoidTimes)
		if err != nil {
			return slots.Settings{}, fmt.Errorf("avoid_times: %w", err)
		}
		s.AvoidTimes = avoid
	}

	return s, nil
}

// decodeAvoidTimes reads a mapping of weekday to ranges. Each range is either
// a two element sequence [start, end] or a string "09:00 – 10:30".
func decodeAvoidTimes(node *yaml.Node) (map[time.Weekday][]slots.Range, error) {
	out := map[time.Weekday][]slots.Range{}
	if node.Kind == yaml.ScalarNode && node.Tag == "!!null" {
		return out, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: expected a mapping of weekday to ranges", node.Line)
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		day, err := slots.ParseWeekday(key.Value)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", key.Line, err)
		}
		if value.Kind != yaml.SequenceNode {
			return nil, fmt.Errorf("line %d: ranges for %s must be a list", value.Line, key.Value)
		}
		for _, item := range value.Content {
			r, err := decodeRange(item)
			if err != nil {
				return nil, err
			}
			out[day] = append(out[day], r)
		}
	}
	return out, nil
}

func decodeRange(node *yaml.Node) (slots.Range, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		r, err := slots.ParseRange(node.Value)
		if err != nil {
			return slots.Range{}, fmt.Errorf("line %d: %w", node.Line, err)
		}
		return r, nil
	case yaml.SequenceNode:
		if len(node.Content) != 2 {
			return slots.Range{}, fmt.Errorf("line %d: range needs exactly a start and an end", node.Line)
		}
		start, err := parseTimeOfDay(node.Content[0].Value)
		if err != nil {
			return slots.Range{}, fmt.Errorf("line %d: %w", node.Line, err)
		}
		end, err := parseTimeOfDay(node.Content[1].Value)
		if err != nil {
			return slots.Range{}, fmt.Errorf("line %d: %w", node.Line, err)
		}
		return slots.Range{Start: start, End: end}, nil
	default:
		return slots.Range{}, fmt.Errorf("line %d: unsupported range value", node.Line)
	}
}
