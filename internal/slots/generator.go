/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package slots

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/rs/zerolog"
)

// Slot is a selected interval. Date is the local midnight of the slot's day.
// Start and End are wall-clock times on that day, so End-Start can differ
// from the slot duration across a DST change.
type Slot struct {
	Date  time.Time `json:"date" yaml:"date"`
	Start time.Time `json:"start" yaml:"start"`
	End   time.Time `json:"end" yaml:"end"`
}

// Source is the part of *rand.Rand the generator draws from.
type Source interface {
	Shuffle(n int, swap func(i, j int))
}

// Generator samples slots from the candidate space of a Settings value.
type Generator struct {
	src    Source
	logger zerolog.Logger

	// Now supplies "today". Defaults to time.Now.
	Now func() time.Time
}

// NewGenerator constructs a generator drawing from src.
func NewGenerator(src Source, logger zerolog.Logger) *Generator {
	return &Generator{
		src:    src,
		logger: logger.With().Str("component", "slot_generator").Logger(),
		Now:    time.Now,
	}
}

// NewSeededGenerator builds a generator over math/rand. A zero seed is
// replaced by the current time.
func NewSeededGenerator(seed int64, logger zerolog.Logger) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return NewGenerator(rand.New(rand.NewSource(seed)), logger)
}

// Generate returns slots ordered by date then start time. When the search
// ceiling is hit before SlotCount slots are found, the slots gathered so far
// are returned together with an *ExhaustedSearchError.
func (g *Generator) Generate(s Settings) ([]Slot, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if s.SlotCount == 0 {
		return []Slot{}, nil
	}

	now := time.Now
	if g.Now != nil {
		now = g.Now
	}
	first := Midnight(now()).AddDate(0, 0, s.DaysFromToday)

	nextDay, err := DayIterator(first, s.SearchDays, s.AllowedWeekdays())
	if err != nil {
		return nil, fmt.Errorf("enumerate days: %w", err)
	}

	out := make([]Slot, 0, min(s.SlotCount, 1024))
	for len(out) < s.SlotCount {
		day, ok := nextDay()
		if !ok {
			break
		}
		need := s.SlotCount - len(out)
		out = append(out, g.sampleDay(day, s, min(need, s.MaxPerDay))...)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Start.Before(out[j].Start)
	})

	if len(out) < s.SlotCount {
		g.logger.Debug().
			Int("requested", s.SlotCount).
			Int("found", len(out)).
			Int("search_days", s.SearchDays).
			Msg("search ceiling reached")
		return out, &ExhaustedSearchError{Requested: s.SlotCount, Found: len(out), Days: s.SearchDays}
	}
	return out, nil
}

// sampleDay draws up to limit mutually disjoint candidates uniformly at random.
func (g *Generator) sampleDay(day time.Time, s Settings, limit int) []Slot {
	candidates := Candidates(day, s)
	g.src.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	picked := make([]Candidate, 0, limit)
	for _, c := range candidates {
		if len(picked) == limit {
			break
		}
		clash := false
		for _, p := range picked {
			if Overlaps(c.Start, c.End, p.Start, p.End) {
				clash = true
				break
			}
		}
		if !clash {
			picked = append(picked, c)
		}
	}

	g.logger.Debug().
		Str("day", day.Format("2006-01-02")).
		Int("candidates", len(candidates)).
		Int("picked", len(picked)).
		Msg("day sampled")

	out := make([]Slot, 0, len(picked))
	for _, c := range picked {
		out = append(out, Slot{Date: day, Start: c.Start.On(day), End: c.End.On(day)})
	}
	return out
}
