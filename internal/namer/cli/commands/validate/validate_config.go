package validate

import (
	"context"
	"fmt"
	"io"

	"github.com/frenchnum/frenchnum/internal/namer/cli/commands"
	"github.com/frenchnum/frenchnum/internal/namer/cli/options"
	"github.com/frenchnum/frenchnum/internal/namer/cli/render"
	"github.com/frenchnum/frenchnum/internal/namer/cli/utils"
	"github.com/frenchnum/frenchnum/internal/namer/models"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// validateOptions type is used to describe 'validate-config' command options.
type validateOptions struct {
	renderer             render.Renderer
	conversionConfigPath string
}

// NewValidateConfigCommand creates 'validate-config' command for CLI.
func NewValidateConfigCommand(cliOpts *options.CliOptions) *cobra.Command {
	opts := &validateOptions{}

	cmd := &cobra.Command{
		Use:                   "validate-config [PATH]",
		Short:                 "Validate conversion config",
		Args:                  commands.RequiresMaxArgs(1),
		DisableFlagsInUseLine: true,
		PreRun: func(_ *cobra.Command, _ []string) {
			opts.renderer = cliOpts.Renderer()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			err := getConversionConfigFilePath(cmd.Context(), opts, args)
			if err != nil {
				return errors.WithMessage(err, "failed to get conversion config file path")
			}

			return runValidate(cmd.OutOrStdout(), opts)
		},
	}

	cmd.SetOut(cliOpts.Out())

	return cmd
}

// getConversionConfigFilePath gets conversion config file path from arguments or user input.
func getConversionConfigFilePath(ctx context.Context, opts *validateOptions, args []string) error {
	if len(args) > 0 {
		opts.conversionConfigPath = args[0]

		return nil
	}

	filePath, err := opts.renderer.InputMenu(
		ctx,
		"Enter path to conversion config file",
		utils.ValidateFileFormat(models.ConfigExtensions...),
	)
	if err != nil {
		return err
	}

	opts.conversionConfigPath = filePath

	return nil
}

// runValidate executes a 'validate-config' command.
func runValidate(out io.Writer, opts *validateOptions) error {
	var conversionCfg models.ConversionConfig

	err := conversionCfg.ParseFromFile(opts.conversionConfigPath)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintln(out, "Conversion config is valid")

	return nil
}
