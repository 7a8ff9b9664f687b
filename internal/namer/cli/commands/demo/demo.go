package demo

import (
	"fmt"
	"io"

	"github.com/frenchnum/frenchnum/internal/namer/cli/commands"
	"github.com/frenchnum/frenchnum/internal/namer/cli/options"
	"github.com/frenchnum/frenchnum/internal/namer/locale/fr"
	"github.com/frenchnum/frenchnum/internal/namer/usecase"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// Numbers is the fixed demonstration list printed for both dialects.
var Numbers = []int64{
	0, 1, 5, 10, 11, 15, 20, 21, 30, 35, 50, 51, 68, 70, 75, 99, 100, 101, 105,
	111, 123, 168, 171, 175, 199, 200, 201, 555, 999, 1000, 1001, 1111, 1199,
	1234, 1999, 2000, 2001, 2020, 2021, 2345, 9999, 10000, 11111, 12345, 123456,
	654321, 999999,
}

var sections = []struct {
	title   string
	dialect fr.Dialect
}{
	{title: "Standard French (France):", dialect: fr.StandardDialect},
	{title: "Belgium French:", dialect: fr.BelgianDialect},
}

// NewDemoCommand creates 'demo' command for CLI.
func NewDemoCommand(cliOpts *options.CliOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:                   "demo",
		Short:                 "Print the demonstration list in both dialects",
		Args:                  commands.NoArgs,
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDemo(cmd.OutOrStdout(), cliOpts.UseCase())
		},
	}

	cmd.SetOut(cliOpts.Out())

	return cmd
}

// runDemo executes a 'demo' command.
func runDemo(out io.Writer, useCase usecase.UseCase) error {
	for i, section := range sections {
		rows, err := useCase.Name(section.dialect.String(), Numbers, false)
		if err != nil {
			return errors.WithMessagef(err, "failed to name numbers in dialect %q", section.dialect)
		}

		if i > 0 {
			_, _ = fmt.Fprintln(out)
		}

		_, _ = fmt.Fprintln(out, section.title)

		for _, row := range rows {
			_, _ = fmt.Fprintf(out, "%d: %s\n", row.Number, row.Words)
		}
	}

	return nil
}
