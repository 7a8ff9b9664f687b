package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/frenchnum/frenchnum/internal/namer/cli/commands"
	"github.com/frenchnum/frenchnum/internal/namer/cli/commands/frenchnum"
	clierrors "github.com/frenchnum/frenchnum/internal/namer/cli/errors"
	"github.com/frenchnum/frenchnum/internal/namer/cli/options"
	"github.com/frenchnum/frenchnum/internal/namer/cli/render/prompt"
	"github.com/frenchnum/frenchnum/internal/namer/logger/handlers"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Cli type is used to describe frenchnum CLI.
type Cli struct {
	opts *options.CliOptions
	cmd  *cobra.Command
}

func NewCli(opts *options.CliOptions) *Cli {
	return &Cli{
		opts: opts,
		cmd:  frenchnum.NewFrenchnumCommand(opts),
	}
}

func (cli *Cli) MustSetup() {
	err := cli.handleAppFlags(os.Args[1:])
	if err != nil {
		_, _ = fmt.Fprintln(cli.cmd.OutOrStdout(), err.Error())

		os.Exit(1)
	}

	err = cli.initialize()
	if err != nil {
		_, _ = fmt.Fprintln(cli.cmd.OutOrStdout(), err.Error())

		os.Exit(1)
	}
}

func (cli *Cli) Run(ctx context.Context) error {
	var usageErr *clierrors.UsageError

	err := cli.cmd.ExecuteContext(ctx)
	if err != nil && errors.As(err, &usageErr) {
		_, _ = fmt.Fprintln(cli.cmd.OutOrStdout(), err.Error())

		os.Exit(1)
	}

	return err //nolint:wrapcheck
}

func (cli *Cli) Options() *options.CliOptions {
	return cli.opts
}

// handleAppFlags parses flags of root command before executing it.
func (cli *Cli) handleAppFlags(args []string) error {
	cmd := cli.cmd

	flags := pflag.NewFlagSet(cmd.Name(), pflag.ContinueOnError)
	flags.SetInterspersed(false)

	flags.AddFlagSet(cmd.Flags())
	flags.AddFlagSet(cmd.PersistentFlags())

	if err := flags.Parse(args); err != nil {
		return commands.FlagErrorFunc(cmd, err)
	}

	return nil
}

// initialize configures the CLI using config file, environment and flags.
func (cli *Cli) initialize() error {
	cliOpts := cli.opts

	appConfig := cliOpts.AppConfig()
	frenchnumOpts := cliOpts.FrenchnumOpts()

	// set tty mode
	switch {
	case *frenchnumOpts.NoTTY.Changed:
		cliOpts.SetUseTTY(false)
	case *frenchnumOpts.TTY.Changed:
		cliOpts.SetUseTTY(frenchnumOpts.TTY.Value)
	default:
		cliOpts.SetUseTTY(frenchnumOpts.TTY.Value && cliOpts.Out().IsTerminal())
	}

	err := appConfig.ParseFromFile(frenchnumOpts.ConfigPath)
	if err != nil {
		return errors.WithMessage(err, "error during initializing cli")
	}

	// setup logger
	logLevel := slog.LevelInfo
	if frenchnumOpts.DebugMode {
		logLevel = slog.LevelDebug
	}

	handlerOpts := &slog.HandlerOptions{
		Level: logLevel,
	}

	var logHandler slog.Handler

	if appConfig.LogFormat == "json" {
		logHandler = slog.NewJSONHandler(cliOpts.Out(), handlerOpts)
	} else {
		logHandler = handlers.NewTextHandler(cliOpts.Out(), handlerOpts)
	}

	slog.SetDefault(slog.New(logHandler))

	// setup renderer
	renderer := prompt.NewRenderer(cliOpts.In(), cliOpts.Out(), cliOpts.UseTTY())
	cliOpts.SetRenderer(renderer)

	return nil
}
