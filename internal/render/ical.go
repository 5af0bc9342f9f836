/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package render

import (
	"bytes"
	"fmt"
	"time"

	"github.com/emersion/go-ical"
	"github.com/google/uuid"

	"github.com/friendsincode/timeslots/internal/slots"
)

const productID = "-//Friends Incode//timeslots//EN"

// floatingLayout is an iCalendar DATE-TIME without TZID or Z suffix.
const floatingLayout = "20060102T150405"

// ICalOptions controls calendar export.
type ICalOptions struct {
	CalendarName string
	Summary      string
	Now          func() time.Time
}

// ICal exports slots as a VCALENDAR with one VEVENT per slot. Start and end
// times are written as floating local times.
func ICal(list []slots.Slot, opts ICalOptions) ([]byte, error) {
	if opts.Summary == "" {
		opts.Summary = "Available time slot"
	}
	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}
	stamp := now().UTC()

	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropProductID, productID)
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropCalendarScale, "GREGORIAN")
	cal.Props.SetText(ical.PropMethod, "PUBLISH")
	if opts.CalendarName != "" {
		cal.Props.SetText(ical.PropName, opts.CalendarName)
	}

	for _, s := range list {
		event := ical.NewEvent()
		event.Props.SetText(ical.PropUID, uuid.New().String()+"@timeslots")
		event.Props.SetDateTime(ical.PropDateTimeStamp, stamp)
		setFloating(event.Props, ical.PropDateTimeStart, s.Start)
		setFloating(event.Props, ical.PropDateTimeEnd, s.End)
		event.Props.SetText(ical.PropSummary, opts.Summary)
		event.Props.SetText(ical.PropDescription, FormatSlot(s))
		cal.Children = append(cal.Children, event.Component)
	}

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, fmt.Errorf("encode calendar: %w", err)
	}
	return buf.Bytes(), nil
}

func setFloating(props ical.Props, name string, t time.Time) {
	prop := ical.NewProp(name)
	prop.Value = t.Format(floatingLayout)
	props.Set(prop)
}
