/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/friendsincode/timeslots/internal/config"
	"github.com/friendsincode/timeslots/internal/logging"
	"github.com/friendsincode/timeslots/internal/render"
	"github.com/friendsincode/timeslots/internal/slots"
)

var (
	logger zerolog.Logger
	cfg    *config.Config
)

var rootCmd = &cobra.Command{
	Use:           "timeslots",
	Short:         "Generate random, non-overlapping time slots",
	Long:          "timeslots picks random, non-overlapping time slots inside a daily window over the coming weeks, skipping avoided days and time ranges.",
	RunE:          runGenerate,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Generation flags
var (
	flagCount      int
	flagDuration   string
	flagStart      string
	flagEnd        string
	flagIncrement  int
	flagDaysAhead  int
	flagAvoidDays  string
	flagAvoid      []string
	flagWeekends   bool
	flagPerDay     int
	flagSearchDays int
	flagSeed       int64
	flagFormat     string
	flagSettings   string
	flagQuiet      bool
	flagICSName    string
)

func init() {
	f := rootCmd.Flags()
	f.IntVar(&flagCount, "count", 0, "Number of slots to generate")
	f.StringVar(&flagDuration, "duration", "", "Slot length, as hours (2.5) or a duration (2h30m)")
	f.StringVar(&flagStart, "start", "", "Daily window start (HH:MM)")
	f.StringVar(&flagEnd, "end", "", "Daily window end (HH:MM)")
	f.IntVar(&flagIncrement, "increment", 0, "Start time granularity in minutes")
	f.IntVar(&flagDaysAhead, "days-ahead", 0, "Days from today before the first slot")
	f.StringVar(&flagAvoidDays, "avoid-days", "", "Comma separated weekdays to skip (e.g. Sat,Sun), or none")
	f.StringArrayVar(&flagAvoid, "avoid", nil, "Avoided range, e.g. \"Mon 09:00-10:30\" (repeatable)")
	f.BoolVar(&flagWeekends, "weekends", false, "Allow Saturday and Sunday slots")
	f.IntVar(&flagPerDay, "per-day", 0, "Maximum slots on a single day")
	f.IntVar(&flagSearchDays, "search-days", 0, "How many days to search before giving up")

	pf := rootCmd.PersistentFlags()
	pf.Int64Var(&flagSeed, "seed", 0, "Random seed (0 seeds from the clock)")
	pf.StringVar(&flagFormat, "format", "", "Output format: text, json, yaml, ics")
	pf.StringVar(&flagSettings, "settings", "", "YAML settings file")
	pf.BoolVar(&flagQuiet, "quiet", false, "Do not print the settings banner")
	pf.StringVar(&flagICSName, "ics-name", "Time slots", "Calendar name used for ics output")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig loads configuration (called by commands that need it)
func loadConfig() error {
	var err error
	cfg, err = config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger = logging.Setup(cfg.Environment, os.Stderr)
	if cfg.Development() {
		logger.Debug().Str("settings", cfg.SettingsPath).Str("format", cfg.Format).Msg("development logging enabled")
	}
	return nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	if err := loadConfig(); err != nil {
		return err
	}

	settings, err := resolveSettings(cmd, slots.VariantConsole)
	if err != nil {
		return err
	}
	format, err := outputFormat()
	if err != nil {
		return err
	}

	logger.Debug().
		Int("slot_count", settings.SlotCount).
		Str("window", settings.StartTime.String()+"-"+settings.EndTime.String()).
		Str("format", string(format)).
		Msg("generating slots")

	gen := slots.NewSeededGenerator(seed(), logger)
	return generateAndWrite(cmd.OutOrStdout(), gen, settings, format, !flagQuiet)
}

// generateAndWrite prints the banner (text output only), the slots, and
// reports exhausted searches after the partial list has been written.
func generateAndWrite(w io.Writer, gen *slots.Generator, settings slots.Settings, format render.Format, banner bool) error {
	if banner && format == render.FormatText {
		if err := render.Settings(w, settings); err != nil {
			return err
		}
	}

	list, genErr := gen.Generate(settings)
	var exhausted *slots.ExhaustedSearchError
	if genErr != nil && !errors.As(genErr, &exhausted) {
		return genErr
	}

	if err := render.Write(w, format, list, render.ICalOptions{CalendarName: flagICSName}); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	if exhausted != nil {
		logger.Warn().
			Int("requested", exhausted.Requested).
			Int("found", exhausted.Found).
			Int("search_days", exhausted.Days).
			Msg("could not place every slot")
		return genErr
	}
	return nil
}

func seed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return cfg.Seed
}

func outputFormat() (render.Format, error) {
	name := flagFormat
	if name == "" {
		name = cfg.Format
	}
	return render.ParseFormat(name)
}
