package convert

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/frenchnum/frenchnum/internal/namer/cli/commands"
	"github.com/frenchnum/frenchnum/internal/namer/cli/options"
	"github.com/frenchnum/frenchnum/internal/namer/cli/progress"
	"github.com/frenchnum/frenchnum/internal/namer/cli/progress/bar"
	"github.com/frenchnum/frenchnum/internal/namer/cli/progress/log"
	"github.com/frenchnum/frenchnum/internal/namer/cli/render"
	"github.com/frenchnum/frenchnum/internal/namer/cli/utils"
	"github.com/frenchnum/frenchnum/internal/namer/models"
	"github.com/frenchnum/frenchnum/internal/namer/output/general"
	"github.com/frenchnum/frenchnum/internal/namer/usecase"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const progressDelay = 500 * time.Millisecond

// convertOptions type is used to describe 'convert' command options.
type convertOptions struct {
	useCase              usecase.UseCase
	renderer             render.Renderer
	fs                   afero.Fs
	conversionConfigPath string
	useTTY               bool
	forceConversion      bool
}

// NewConvertCommand creates 'convert' command for CLI.
func NewConvertCommand(cliOpts *options.CliOptions) *cobra.Command {
	opts := &convertOptions{}

	cmd := &cobra.Command{
		Use:                   "convert [FLAGS] [PATH]",
		Short:                 "Names numbers based on provided conversion config",
		Args:                  commands.RequiresMaxArgs(1),
		DisableFlagsInUseLine: true,
		PreRun: func(_ *cobra.Command, _ []string) {
			opts.useCase = cliOpts.UseCase()
			opts.renderer = cliOpts.Renderer()
			opts.useTTY = cliOpts.UseTTY()

			if opts.fs == nil {
				opts.fs = afero.NewOsFs()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			err := getConversionConfigFilePath(ctx, opts, args)
			if err != nil {
				return errors.WithMessage(err, "failed to get conversion config file path")
			}

			slog.Info("conversion started", slog.String("version", cliOpts.Version()))

			err = runConvert(ctx, opts)
			if err != nil {
				return errors.WithMessage(err, "failed to convert")
			}

			slog.Info("conversion finished")

			return nil
		},
	}

	cmd.SetOut(cliOpts.Out())

	setupFlags(cmd.Flags(), opts)

	return cmd
}

func setupFlags(flags *pflag.FlagSet, opts *convertOptions) {
	flags.BoolVarP(
		&opts.forceConversion,
		commands.ForceConversionFlag,
		commands.ForceConversionShortFlag,
		commands.ForceConversionFlagDefaultValue,
		commands.ForceConversionUsage,
	)
}

// getConversionConfigFilePath gets conversion config file path from arguments or user input.
func getConversionConfigFilePath(ctx context.Context, opts *convertOptions, args []string) error {
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

// runConvert executes a 'convert' command.
func runConvert(ctx context.Context, opts *convertOptions) error {
	conversionCfg := &models.ConversionConfig{}

	err := conversionCfg.ParseFromFile(opts.conversionConfigPath)
	if err != nil {
		return err
	}

	out := general.NewOutput(conversionCfg, opts.fs, opts.forceConversion)

	taskID, err := opts.useCase.CreateTask(ctx, usecase.TaskConfig{
		ConversionConfig: conversionCfg,
		Output:           out,
	})
	if err != nil {
		return err
	}

	if conversionCfg.OutputConfig.Type == "http" && opts.useTTY {
		opts.renderer.WithSpinner("Sending named numbers...", func() {
			err = opts.useCase.WaitResult(taskID)
		})
	} else {
		err = waitWithProgress(ctx, opts, taskID)
	}

	savedRowsCountByDialect := out.GetSavedRowsCountByDialect()
	for dialect, count := range savedRowsCountByDialect {
		slog.Info("saved rows", slog.String("dialect", dialect), slog.Uint64("count", count))
	}

	return err
}

// waitWithProgress waits for the task while its progress is displayed.
func waitWithProgress(ctx context.Context, opts *convertOptions, taskID string) error {
	trackerCtx, cancelTracker := context.WithCancel(ctx)
	defer cancelTracker()

	var (
		finished atomic.Bool
		wg       sync.WaitGroup
	)

	var tracker progress.Tracker

	if opts.useTTY {
		tracker = bar.NewProgressBarManager(trackerCtx)
	} else {
		tracker = log.NewProgressLogManager(trackerCtx)
	}

	startProgressTracking(opts.useCase, taskID, tracker, &finished, &wg)

	err := opts.useCase.WaitResult(taskID)

	finished.Store(true)

	if err != nil {
		// unfinished bars never complete, release them
		cancelTracker()
	}

	wg.Wait()

	return err
}

// startProgressTracking runs function to track progress of task
// by getting progress from usecase object and displaying it.
func startProgressTracking(
	uc usecase.UseCase,
	taskID string,
	tracker progress.Tracker,
	finished *atomic.Bool,
	wg *sync.WaitGroup,
) {
	wg.Add(1)

	go func() {
		defer wg.Done()

		lastUpdate := false

		for {
			progresses, err := uc.GetProgress(taskID)
			if err != nil {
				slog.Error("error getting progress", slog.String("taskID", taskID))
			}

			for dialect, p := range progresses {
				tracker.AddTask(dialect, fmt.Sprintf("naming numbers in dialect %q", dialect), p.Total)
				tracker.UpdateProgress(dialect, p)
			}

			if lastUpdate {
				break
			}

			if finished.Load() {
				lastUpdate = true
			} else {
				time.Sleep(progressDelay)
			}
		}

		tracker.Wait()
	}()
}
