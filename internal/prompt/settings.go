package prompt

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// Settings are the values the CLI asks for when they were not given as flags.
type Settings struct {
	TableID string
	// SortIndex is the initial sort column; -1 leaves the table unsorted.
	SortIndex int
	Title     string
	Sanitize  bool
}

// Columns lists header labels offered when choosing the sort column.
type Columns []string

// Ask walks the user through the settings, using defaults as the initial
// answers. When columns is non-empty the sort column is chosen from a list.
func Ask(ctx context.Context, driver Driver, defaults Settings, columns Columns) (Settings, error) {
	if driver == nil {
		return defaults, fmt.Errorf("prompt: driver is required")
	}
	out := defaults

	id, err := driver.Input(ctx, InputConfig{
		Message:   "Table id",
		Default:   defaults.TableID,
		Help:      "id attribute of the table; the widget binds to it",
		Validator: validateIdentifier,
	})
	if err != nil {
		return defaults, err
	}
	out.TableID = strings.TrimSpace(id)

	if out.SortIndex, err = askSortIndex(ctx, driver, defaults.SortIndex, columns); err != nil {
		return defaults, err
	}

	title, err := driver.Input(ctx, InputConfig{Message: "Page title", Default: defaults.Title})
	if err != nil {
		return defaults, err
	}
	out.Title = strings.TrimSpace(title)

	if out.Sanitize, err = driver.Confirm(ctx, ConfirmConfig{
		Message: "Sanitize cell markup?",
		Default: defaults.Sanitize,
	}); err != nil {
		return defaults, err
	}
	return out, nil
}

const unsortedLabel = "(no initial sort)"

func askSortIndex(ctx context.Context, driver Driver, current int, columns Columns) (int, error) {
	if len(columns) > 0 {
		options := append([]string{unsortedLabel}, columns...)
		def := current + 1
		if def < 0 || def >= len(options) {
			def = 0
		}
		idx, err := driver.Select(ctx, SelectConfig{
			Message:      "Initial sort column",
			Options:      options,
			DefaultIndex: def,
		})
		if err != nil {
			return current, err
		}
		return idx - 1, nil
	}

	raw, err := driver.Input(ctx, InputConfig{
		Message:   "Initial sort column (blank for none)",
		Default:   formatIndex(current),
		Validator: validateIndex,
	})
	if err != nil {
		return current, err
	}
	return parseIndex(raw), nil
}

func formatIndex(idx int) string {
	if idx < 0 {
		return ""
	}
	return strconv.Itoa(idx)
}

func parseIndex(raw string) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return -1
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return -1
	}
	return n
}

func validateIndex(raw string) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	if n, err := strconv.Atoi(raw); err != nil || n < 0 {
		return fmt.Errorf("enter a column number or leave blank")
	}
	return nil
}

func validateIdentifier(raw string) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fmt.Errorf("table id is required")
	}
	if strings.ContainsAny(raw, " \t\"'<>") {
		return fmt.Errorf("table id cannot contain spaces, quotes or angle brackets")
	}
	return nil
}
