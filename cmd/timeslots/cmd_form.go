/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package main

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/friendsincode/timeslots/internal/form"
	"github.com/friendsincode/timeslots/internal/slots"
)

var formCmd = &cobra.Command{
	Use:   "form",
	Short: "Edit settings interactively and generate slots",
	Long:  "Prompt for each setting (blank keeps the default), generate slots, and optionally copy the result to the clipboard.",
	RunE:  runForm,
}

var formCopy bool

func init() {
	rootCmd.AddCommand(formCmd)
	formCmd.Flags().BoolVar(&formCopy, "copy", false, "Copy generated slots to the clipboard")
}

type systemClipboard struct{}

func (systemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

func runForm(cmd *cobra.Command, args []string) error {
	if err := loadConfig(); err != nil {
		return err
	}

	defaults, err := resolveSettings(cmd, slots.VariantForm)
	if err != nil {
		return err
	}

	f := form.New(cmd.InOrStdin(), cmd.OutOrStdout())
	gen := slots.NewSeededGenerator(seed(), logger)
	return formLoop(f, gen, defaults, formCopy, systemClipboard{})
}

// formLoop runs edit, generate, show until the user declines another round.
// Generation problems are shown in the form rather than ending the session.
func formLoop(f *form.Form, gen *slots.Generator, defaults slots.Settings, copyResults bool, clip form.Copier) error {
	for {
		settings, err := f.Run(defaults)
		if err != nil {
			return err
		}
		defaults = settings

		list, genErr := gen.Generate(settings)
		var exhausted *slots.ExhaustedSearchError
		switch {
		case genErr == nil:
		case errors.As(genErr, &exhausted):
			f.Notify(fmt.Sprintf("Warning: %v", genErr))
		default:
			f.Notify(fmt.Sprintf("Error: %v", genErr))
		}

		if len(list) > 0 {
			if err := f.Show(list); err != nil {
				return err
			}
			if copyResults {
				if err := form.CopyResults(clip, list); err != nil {
					logger.Warn().Err(err).Msg("clipboard copy failed")
					f.Notify(fmt.Sprintf("Error: %v", err))
				} else {
					f.Notify("Copied to clipboard.")
				}
			}
		}

		if !f.Confirm("Generate again?") {
			return nil
		}
	}
}
