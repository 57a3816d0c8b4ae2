package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pterm/pterm"
)

const (
	dateLayout = "02.01.2006"
	timeLayout = "15:04"
)

// promptInt64 keeps asking until the operator enters a number the check
// accepts. Malformed input is rejected in place, never propagated.
func promptInt64(message, defaultValue string, check func(int64) error) (int64, error) {
	for {
		raw, err := pterm.DefaultInteractiveTextInput.
			WithDefaultValue(defaultValue).
			Show(message)
		if err != nil {
			return 0, fmt.Errorf("read %q input: %w", message, err)
		}

		value, parseErr := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		if parseErr != nil {
			pterm.Error.Println("Invalid number!")
			continue
		}
		if check != nil {
			if checkErr := check(value); checkErr != nil {
				pterm.Error.Println(checkErr.Error())
				continue
			}
		}

		return value, nil
	}
}

// promptDate keeps asking until a DD.MM.YYYY date parses.
func promptDate(message string) (time.Time, error) {
	for {
		raw, err := pterm.DefaultInteractiveTextInput.Show(message)
		if err != nil {
			return time.Time{}, fmt.Errorf("read %q input: %w", message, err)
		}

		date, parseErr := time.ParseInLocation(dateLayout, strings.TrimSpace(raw), time.Local)
		if parseErr != nil {
			pterm.Error.Printfln("Invalid date, expected %s!", dateLayout)
			continue
		}

		return date, nil
	}
}

// promptOptionalTime accepts an HH:mm time of day or an empty answer.
func promptOptionalTime(message string) (hour, minute int, ok bool, err error) {
	for {
		raw, inputErr := pterm.DefaultInteractiveTextInput.Show(message)
		if inputErr != nil {
			return 0, 0, false, fmt.Errorf("read %q input: %w", message, inputErr)
		}

		raw = strings.TrimSpace(raw)
		if raw == "" {
			return 0, 0, false, nil
		}

		parsed, parseErr := time.Parse(timeLayout, raw)
		if parseErr != nil {
			pterm.Error.Printfln("Invalid time, expected %s or empty!", timeLayout)
			continue
		}

		return parsed.Hour(), parsed.Minute(), true, nil
	}
}

func promptText(message string) (string, error) {
	value, err := pterm.DefaultInteractiveTextInput.Show(message)
	if err != nil {
		return "", fmt.Errorf("read %q input: %w", message, err)
	}

	return strings.TrimSpace(value), nil
}

func promptConfirm(message string, defaultValue bool) (bool, error) {
	ok, err := pterm.DefaultInteractiveConfirm.
		WithDefaultValue(defaultValue).
		Show(message)
	if err != nil {
		return false, fmt.Errorf("read %q confirmation: %w", message, err)
	}

	return ok, nil
}

// selectOption shows a picker over labels and returns the chosen index.
// Labels must be unique; callers suffix ids to guarantee that.
func selectOption(message string, labels []string, defaultIndex int) (int, error) {
	picker := pterm.DefaultInteractiveSelect.WithOptions(labels)
	if defaultIndex >= 0 && defaultIndex < len(labels) {
		picker = picker.WithDefaultOption(labels[defaultIndex])
	}

	chosen, err := picker.Show(message)
	if err != nil {
		return 0, fmt.Errorf("read %q selection: %w", message, err)
	}

	for i, label := range labels {
		if label == chosen {
			return i, nil
		}
	}

	return 0, fmt.Errorf("selection %q is not among the options", chosen)
}
