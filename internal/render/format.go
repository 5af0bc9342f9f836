/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/friendsincode/timeslots/internal/slots"
)

// Format names an output encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatICS  Format = "ics"
)

// ParseFormat validates a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON, FormatYAML, FormatICS:
		return f, nil
	case "":
		return FormatText, nil
	case "yml":
		return FormatYAML, nil
	case "ical":
		return FormatICS, nil
	default:
		return "", fmt.Errorf("unsupported output format %q", s)
	}
}

type slotRecord struct {
	Date    string `json:"date" yaml:"date"`
	Weekday string `json:"weekday" yaml:"weekday"`
	Start   string `json:"start" yaml:"start"`
	End     string `json:"end" yaml:"end"`
	Text    string `json:"text" yaml:"text"`
}

func records(list []slots.Slot) []slotRecord {
	out := make([]slotRecord, 0, len(list))
	for _, s := range list {
		out = append(out, slotRecord{
			Date:    s.Date.Format("2006-01-02"),
			Weekday: s.Date.Weekday().String(),
			Start:   s.Start.Format("15:04"),
			End:     s.End.Format("15:04"),
			Text:    FormatSlot(s),
		})
	}
	return out
}

// Write encodes list to w in the given format.
func Write(w io.Writer, format Format, list []slots.Slot, opts ICalOptions) error {
	switch format {
	case FormatText, "":
		for _, line := range Lines(list) {
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
		return nil
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(records(list))
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(records(list)); err != nil {
			return err
		}
		return enc.Close()
	case FormatICS:
		data, err := ICal(list, opts)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}
