package name

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/frenchnum/frenchnum/internal/namer/cli/commands"
	"github.com/frenchnum/frenchnum/internal/namer/cli/options"
	"github.com/frenchnum/frenchnum/internal/namer/cli/render"
	"github.com/frenchnum/frenchnum/internal/namer/cli/utils"
	"github.com/frenchnum/frenchnum/internal/namer/common"
	"github.com/frenchnum/frenchnum/internal/namer/models"
	"github.com/frenchnum/frenchnum/internal/namer/usecase"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// nameOptions type is used to describe 'name' command options.
type nameOptions struct {
	useCase  usecase.UseCase
	renderer render.Renderer
	useTTY   bool
	dialect  string
	ascii    bool
}

// NewNameCommand creates 'name' command for CLI.
func NewNameCommand(cliOpts *options.CliOptions) *cobra.Command {
	opts := &nameOptions{}

	cmd := &cobra.Command{
		Use:                   "name [FLAGS] [NUMBER...]",
		Short:                 "Spell out numbers in words",
		Args:                  commands.IntegerArgs,
		DisableFlagsInUseLine: true,
		PreRun: func(_ *cobra.Command, _ []string) {
			opts.useCase = cliOpts.UseCase()
			opts.renderer = cliOpts.Renderer()
			opts.useTTY = cliOpts.UseTTY()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			numbers, err := getNumbers(cmd.Context(), opts, args)
			if err != nil {
				return errors.WithMessage(err, "failed to get numbers")
			}

			return runName(cmd.OutOrStdout(), opts, numbers)
		},
	}

	cmd.SetOut(cliOpts.Out())

	setupFlags(cmd.Flags(), opts)

	return cmd
}

func setupFlags(flags *pflag.FlagSet, opts *nameOptions) {
	flags.StringVarP(
		&opts.dialect,
		commands.DialectFlag,
		commands.DialectShortFlag,
		commands.DialectDefaultValue,
		commands.DialectUsage,
	)

	flags.BoolVarP(
		&opts.ascii,
		commands.ASCIIFlag,
		commands.ASCIIShortFlag,
		commands.ASCIIDefaultValue,
		commands.ASCIIUsage,
	)
}

// getNumbers gets numbers from arguments, an interactive prompt or input stream lines.
func getNumbers(ctx context.Context, opts *nameOptions, args []string) ([]int64, error) {
	if len(args) > 0 {
		return parseNumbers(args)
	}

	if opts.useTTY {
		input, err := opts.renderer.InputMenu(ctx, "Enter a number", validateNumber)
		if err != nil {
			return nil, err
		}

		return parseNumbers([]string{input})
	}

	var lines []string

	for {
		line, err := opts.renderer.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}

			return nil, err
		}

		lines = append(lines, line)
	}

	lines = common.Filter(lines, func(line string) bool { return line != "" })

	if len(lines) == 0 {
		return nil, errors.New("no numbers given")
	}

	return parseNumbers(lines)
}

// validateNumber returns an error if the string is not an integer in the supported range.
func validateNumber(s string) error {
	if err := utils.ValidateEmptyString()(s); err != nil {
		return err
	}

	number, err := parseNumber(s)
	if err != nil {
		return err
	}

	if number > models.MaxNumber || number < -models.MaxNumber {
		return errors.Errorf("number should be in [%d, %d]", -models.MaxNumber, models.MaxNumber)
	}

	return nil
}

func parseNumber(s string) (int64, error) {
	number, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, errors.Errorf("%q is not an integer", s)
	}

	return number, nil
}

func parseNumbers(values []string) ([]int64, error) {
	numbers := make([]int64, len(values))

	for i, value := range values {
		number, err := parseNumber(value)
		if err != nil {
			return nil, err
		}

		numbers[i] = number
	}

	return numbers, nil
}

// runName executes a 'name' command.
func runName(out io.Writer, opts *nameOptions, numbers []int64) error {
	rows, err := opts.useCase.Name(opts.dialect, numbers, opts.ascii)
	if err != nil {
		return err
	}

	for _, row := range rows {
		_, _ = fmt.Fprintf(out, "%d: %s\n", row.Number, row.Words)
	}

	return nil
}
