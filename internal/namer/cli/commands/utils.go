package commands

import (
	"strconv"

	clierrors "github.com/frenchnum/frenchnum/internal/namer/cli/errors"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// NoArgs validates args and returns an error if there are any args.
func NoArgs(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return nil
	}

	_ = cmd.Help()

	if cmd.HasSubCommands() {
		return clierrors.NewUsageError(errors.Errorf("unknown command: %q for %q", args[0], cmd.Name()))
	}

	return clierrors.NewUsageError(errors.Errorf("%q accepts no arguments", cmd.Name()))
}

// RequiresMaxArgs returns an error if there is not at most max args.
func RequiresMaxArgs(maxArgs int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) <= maxArgs {
			return nil
		}

		_ = cmd.Help()

		return clierrors.NewUsageError(errors.Errorf(
			"%q requires at most %d %s, received %d",
			cmd.Name(),
			maxArgs,
			pluralize("argument", maxArgs),
			len(args),
		))
	}
}

// IntegerArgs returns an error if any arg is not a base 10 integer.
func IntegerArgs(cmd *cobra.Command, args []string) error {
	for i, arg := range args {
		if _, err := strconv.ParseInt(arg, 10, 64); err != nil {
			_ = cmd.Help()

			return clierrors.NewUsageError(errors.Errorf(
				"%q accepts only integers, argument %d is %q", cmd.Name(), i+1, arg,
			))
		}
	}

	return nil
}

// FlagErrorFunc processes errors of CLI flags.
func FlagErrorFunc(cmd *cobra.Command, err error) error {
	if err == nil {
		return nil
	}

	_ = cmd.Help()

	return clierrors.NewUsageError(err)
}

// pluralize returns a plural word.
func pluralize(word string, number int) string {
	if number == 1 {
		return word
	}

	return word + "s"
}
