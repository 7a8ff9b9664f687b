package utils

import (
	"path/filepath"
	"slices"
	"strings"

	"github.com/frenchnum/frenchnum/internal/namer/cli/render"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

const backNavigation = "back"

// ValidateFileFormat returns a validator accepting only paths with one of formats
// as extension. Extensions are compared case-insensitively.
func ValidateFileFormat(formats ...string) func(string) error {
	return func(filePath string) error {
		if len(formats) == 0 {
			return nil
		}

		if !slices.Contains(formats, strings.ToLower(filepath.Ext(filePath))) {
			return errors.Errorf("invalid file extension, supported: %v", formats)
		}

		return nil
	}
}

// ValidateEmptyString returns an error if the string is empty.
func ValidateEmptyString() func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return errors.New("string should not be empty")
		}

		return nil
	}
}

// GetPercentage calculates what percentage 'currentValue' is of 'total'.
func GetPercentage(total, currentValue uint64) uint64 {
	if total == 0 {
		return 0
	}

	return currentValue * 100 / total
}

// Map maps slice of elements with type T to slice with type V using function fn.
func Map[T, V any](ts []T, fn func(T) V) []V {
	result := make([]V, len(ts))
	for i, t := range ts {
		result[i] = fn(t)
	}

	return result
}

// commandItem is the menu label of a command: its name followed by the short description.
func commandItem(c *cobra.Command) string {
	if c.Short == "" {
		return c.Name()
	}

	return c.Name() + " - " + c.Short
}

// ChooseCommand walks the command tree through selection menus and executes the chosen leaf
// with args.
func ChooseCommand(cmd *cobra.Command, args []string, renderer render.Renderer) error {
	command := cmd

	for command.HasAvailableSubCommands() {
		available := slices.DeleteFunc(slices.Clone(command.Commands()), func(c *cobra.Command) bool {
			return !c.IsAvailableCommand()
		})

		items := Map(available, commandItem)
		if command.HasParent() {
			items = append(items, backNavigation)
		}

		selected, err := renderer.SelectionMenu(cmd.Context(), "Select a command", items)
		if err != nil {
			return err
		}

		if selected == backNavigation {
			command = command.Parent()

			continue
		}

		idx := slices.Index(items, selected)
		if idx < 0 || idx >= len(available) {
			return errors.Errorf("command %q not found", selected)
		}

		command = available[idx]
	}

	commandPath := strings.Split(command.CommandPath(), " ")

	command.Root().SetArgs(append(commandPath[1:], args...))

	return command.Root().ExecuteContext(cmd.Context()) //nolint:wrapcheck
}
