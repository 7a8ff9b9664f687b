package app

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"runtime/pprof"
	"syscall"

	"github.com/frenchnum/frenchnum/internal/namer/cli"
	"github.com/frenchnum/frenchnum/internal/namer/cli/options"
	"github.com/frenchnum/frenchnum/internal/namer/usecase"
	"github.com/frenchnum/frenchnum/internal/namer/usecase/general"
	"github.com/pkg/errors"
)

type App struct {
	cliOpts       *options.CliOptions
	cli           *cli.Cli
	useCase       usecase.UseCase
	cpuProfile    *os.File
	memoryProfile *os.File
}

// NewApp parses flags and config first, since the default dialect of the use case comes from them.
func NewApp(version string) *App {
	cliOpts := options.NewCliOptions(nil, version)
	frenchnumCli := cli.NewCli(cliOpts)
	frenchnumCli.MustSetup()

	useCase := general.NewUseCase(general.UseCaseConfig{
		DefaultDialect: cliOpts.AppConfig().DefaultDialect,
	})
	cliOpts.SetUseCase(useCase)

	return &App{
		useCase: useCase,
		cliOpts: cliOpts,
		cli:     frenchnumCli,
	}
}

func (a *App) Run() {
	ctx, cancelCtx := a.notifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	a.run(ctx, cancelCtx)

	err := context.Cause(ctx)

	var signalErr *SignalError

	switch {
	case err == nil:
	case errors.As(err, &signalErr):
		slog.Warn("frenchnum finished due to event", slog.String("event", signalErr.Error()))
	default:
		slog.Error("frenchnum finished due error", slog.String("error", err.Error()))

		if a.cliOpts.DebugMode() {
			logStackTrace(err)
		}

		os.Exit(1)
	}
}

func (a *App) notifyContext(ctx context.Context, signals ...os.Signal) (context.Context, context.CancelCauseFunc) {
	osSignalChannel := make(chan os.Signal, 1)
	signal.Notify(osSignalChannel, signals...)

	ctxCause, cancelCtx := context.WithCancelCause(ctx)

	go func() {
		osSignal := <-osSignalChannel
		slog.Info("got os signal, canceling", slog.String("signal", osSignal.String()))
		cancelCtx(NewSignalError(osSignal))

		osSignal = <-osSignalChannel
		slog.Error("got os signal, force exit", slog.String("signal", osSignal.String()))
		os.Exit(1)
	}()

	return ctxCause, cancelCtx
}

func (a *App) run(ctx context.Context, cancelCtx context.CancelCauseFunc) {
	a.startProfiling()
	defer a.stopProfiling()

	if err := a.useCase.Setup(); err != nil {
		cancelCtx(err)

		return
	}

	if err := a.cli.Run(ctx); err != nil {
		cancelCtx(err)

		return
	}

	// running conversions are awaited even when the command itself has returned
	if err := a.useCase.Teardown(); err != nil {
		cancelCtx(err)

		return
	}
}

func (a *App) startProfiling() {
	var err error

	if a.cliOpts.CPUProfile() == "" {
		return
	}

	if a.cpuProfile, err = os.Create(a.cliOpts.CPUProfile()); err != nil {
		slog.Error("failed to create CPU profile file", slog.String("error", err.Error()))

		return
	}

	if err = pprof.StartCPUProfile(a.cpuProfile); err != nil {
		slog.Error("failed to start CPU profiling", slog.String("error", err.Error()))
	}
}

func (a *App) stopProfiling() {
	var err error

	if a.cliOpts.CPUProfile() != "" {
		pprof.StopCPUProfile()
	}

	if a.cliOpts.MemoryProfile() != "" {
		if a.memoryProfile, err = os.Create(a.cliOpts.MemoryProfile()); err != nil {
			slog.Error("failed to create memory profile file", slog.String("error", err.Error()))
		} else if err = pprof.WriteHeapProfile(a.memoryProfile); err != nil {
			slog.Error("failed to write memory profiling results", slog.String("error", err.Error()))
		}
	}

	for _, f := range []*os.File{a.cpuProfile, a.memoryProfile} {
		if f == nil {
			continue
		}

		if err = f.Close(); err != nil {
			slog.Error("failed to close profile file", slog.String("file", f.Name()), slog.String("error", err.Error()))
		}
	}
}

func logStackTrace(err error) {
	for _, line := range stackFrames(err) {
		slog.Error(line)
	}
}
