package options

import (
	"os"

	"github.com/frenchnum/frenchnum/internal/namer/cli/render"
	"github.com/frenchnum/frenchnum/internal/namer/cli/streams"
	"github.com/frenchnum/frenchnum/internal/namer/models"
	"github.com/frenchnum/frenchnum/internal/namer/usecase"
)

// Option type is a value wrapper with a flag indicating whether its value has been modified.
type Option[T any] struct {
	Value   T
	Changed *bool
}

// FrenchnumOptions type is used to describe root command options.
type FrenchnumOptions struct {
	TTY           Option[bool]
	NoTTY         Option[bool]
	ConfigPath    string
	DebugMode     bool
	CPUProfile    string
	MemoryProfile string
}

type CliOptions struct {
	useCase          usecase.UseCase
	renderer         render.Renderer
	in               *streams.In
	out              *streams.Out
	appConfig        *models.AppConfig
	frenchnumOptions *FrenchnumOptions
	version          string
	useTTY           bool
}

func NewCliOptions(useCase usecase.UseCase, version string) *CliOptions {
	return &CliOptions{
		useCase:          useCase,
		version:          version,
		in:               streams.NewIn(os.Stdin),
		out:              streams.NewOut(os.Stdout),
		appConfig:        &models.AppConfig{},
		frenchnumOptions: &FrenchnumOptions{},
	}
}

func (opts *CliOptions) UseCase() usecase.UseCase {
	return opts.useCase
}

func (opts *CliOptions) SetUseCase(useCase usecase.UseCase) {
	opts.useCase = useCase
}

func (opts *CliOptions) Renderer() render.Renderer {
	return opts.renderer
}

func (opts *CliOptions) SetRenderer(renderer render.Renderer) {
	opts.renderer = renderer
}

func (opts *CliOptions) In() *streams.In {
	return opts.in
}

func (opts *CliOptions) SetIn(in *streams.In) {
	opts.in = in
}

func (opts *CliOptions) Out() *streams.Out {
	return opts.out
}

func (opts *CliOptions) SetOut(out *streams.Out) {
	opts.out = out
}

func (opts *CliOptions) AppConfig() *models.AppConfig {
	return opts.appConfig
}

func (opts *CliOptions) SetAppConfig(appConfig *models.AppConfig) {
	opts.appConfig = appConfig
}

func (opts *CliOptions) FrenchnumOpts() *FrenchnumOptions {
	return opts.frenchnumOptions
}

func (opts *CliOptions) SetFrenchnumOpts(frenchnumOpts *FrenchnumOptions) {
	opts.frenchnumOptions = frenchnumOpts
}

func (opts *CliOptions) UseTTY() bool {
	return opts.useTTY
}

func (opts *CliOptions) SetUseTTY(useTTY bool) {
	opts.useTTY = useTTY
}

func (opts *CliOptions) Version() string {
	return opts.version
}

func (opts *CliOptions) DebugMode() bool {
	return opts.FrenchnumOpts().DebugMode
}

func (opts *CliOptions) CPUProfile() string {
	return opts.FrenchnumOpts().CPUProfile
}

func (opts *CliOptions) MemoryProfile() string {
	return opts.FrenchnumOpts().MemoryProfile
}

func (opts *CliOptions) SetVersion(version string) {
	opts.version = version
}
