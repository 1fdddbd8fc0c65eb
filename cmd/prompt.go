package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
)

var errNoTerminal = errors.New("no terminal to prompt on")

func isInteractive() bool {
	info, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}

// promptMissing asks for every field whose value is still empty, in one form.
func promptMissing(fields ...promptField) error {
	var (
		inputs  []huh.Field
		missing string
	)
	for _, f := range fields {
		if *f.value != "" {
			continue
		}
		if missing == "" {
			missing = "--" + f.flag
		}
		input := huh.NewInput().Title(f.title).Value(f.value)
		if f.secret {
			input = input.EchoMode(huh.EchoModePassword)
		}
		inputs = append(inputs, input)
	}
	if len(inputs) == 0 {
		return nil
	}
	if !isInteractive() {
		return fmt.Errorf("missing %s: %w", missing, errNoTerminal)
	}

	if err := huh.NewForm(huh.NewGroup(inputs...)).Run(); err != nil {
		return fmt.Errorf("prompt failed: %w", err)
	}
	return nil
}

type promptField struct {
	title  string
	flag   string
	value  *string
	secret bool
}

func confirm(message string) (bool, error) {
	if !isInteractive() {
		return false, fmt.Errorf("confirm %q: %w (pass --yes)", message, errNoTerminal)
	}

	var confirmed bool
	form := huh.NewForm(huh.NewGroup(huh.NewConfirm().Title(message).Value(&confirmed)))
	if err := form.Run(); err != nil {
		return false, fmt.Errorf("prompt failed: %w", err)
	}
	return confirmed, nil
}
