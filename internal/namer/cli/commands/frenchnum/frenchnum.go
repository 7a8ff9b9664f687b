package frenchnum

import (
	"github.com/frenchnum/frenchnum/internal/namer/cli/commands"
	"github.com/frenchnum/frenchnum/internal/namer/cli/commands/convert"
	"github.com/frenchnum/frenchnum/internal/namer/cli/commands/demo"
	"github.com/frenchnum/frenchnum/internal/namer/cli/commands/name"
	"github.com/frenchnum/frenchnum/internal/namer/cli/commands/serve"
	"github.com/frenchnum/frenchnum/internal/namer/cli/commands/validate"
	"github.com/frenchnum/frenchnum/internal/namer/cli/commands/version"
	"github.com/frenchnum/frenchnum/internal/namer/cli/options"
	"github.com/frenchnum/frenchnum/internal/namer/cli/streams"
	"github.com/frenchnum/frenchnum/internal/namer/cli/utils"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// NewFrenchnumCommand creates root 'frenchnum' command for CLI.
func NewFrenchnumCommand(cliOpts *options.CliOptions) *cobra.Command {
	cobra.EnableCommandSorting = false

	opts := cliOpts.FrenchnumOpts()

	cmd := &cobra.Command{
		Use:                   "frenchnum [FLAGS] [COMMAND]",
		Short:                 "CLI for spelling out integers in French and Belgian French",
		Args:                  commands.NoArgs,
		SilenceUsage:          true,
		SilenceErrors:         true,
		TraverseChildren:      true,
		DisableFlagsInUseLine: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
			HiddenDefaultCmd:  true,
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			renderer := cliOpts.Renderer()
			renderer.Logo()

			return utils.ChooseCommand(cmd, args, renderer)
		},
	}

	cmd.SetOut(cliOpts.Out())

	cmd.SetFlagErrorFunc(commands.FlagErrorFunc)

	setupFlags(cmd.Flags(), opts, cliOpts.In())

	cmd.PersistentFlags().BoolP("help", "h", false, "Print usage")

	cmd.PersistentFlags().Lookup("help").Hidden = true

	cmd.MarkFlagsMutuallyExclusive(commands.TTYFlag, commands.NoTTYFlag)
	cmd.SetUsageTemplate(usageTemplate)

	cmd.AddCommand(
		name.NewNameCommand(cliOpts),
		demo.NewDemoCommand(cliOpts),
		convert.NewConvertCommand(cliOpts),
		validate.NewValidateConfigCommand(cliOpts),
		serve.NewServeCommand(cliOpts),
		version.NewVersionCommand(cliOpts),
	)

	return cmd
}

// setupFlags sets flags for 'frenchnum' command and binds them to root options fields.
func setupFlags(flags *pflag.FlagSet, opts *options.FrenchnumOptions, in *streams.In) {
	flags.StringVarP(
		&opts.ConfigPath,
		commands.ConfigPathFlag,
		commands.ConfigPathShortFlag,
		commands.ConfigPathDefaultValue,
		commands.ConfigPathUsage,
	)

	flags.BoolVarP(
		&opts.TTY.Value,
		commands.TTYFlag,
		commands.TTYShortFlag,
		in.IsTerminal(),
		commands.TTYUsage,
	)

	opts.TTY.Changed = &flags.Lookup(commands.TTYFlag).Changed

	flags.BoolVarP(
		&opts.NoTTY.Value,
		commands.NoTTYFlag,
		commands.NoTTYShortFlag,
		commands.NoTTYDefaultValue,
		commands.NoTTYUsage,
	)

	opts.NoTTY.Changed = &flags.Lookup(commands.NoTTYFlag).Changed

	flags.BoolVarP(
		&opts.DebugMode,
		commands.DebugModeFlag,
		commands.DebugModeShortFlag,
		commands.DebugModeDefaultValue,
		commands.DebugModeUsage,
	)

	flags.StringVarP(
		&opts.CPUProfile,
		commands.CPUProfileFlag,
		commands.CPUProfileShortFlag,
		commands.CPUProfileDefaultValue,
		commands.CPUProfileUsage,
	)

	flags.StringVarP(
		&opts.MemoryProfile,
		commands.MemoryProfileFlag,
		commands.MemoryProfileShortFlag,
		commands.MemoryProfileDefaultValue,
		commands.MemoryProfileUsage,
	)
}

const usageTemplate = `Usage:{{if .Runnable}}
  {{.UseLine}}{{end}}{{if gt (len .Aliases) 0}}

Aliases:
  {{.NameAndAliases}}{{end}}{{if .HasExample}}

Examples:
{{.Example}}{{end}}{{if .HasAvailableSubCommands}}{{$cmds := .Commands}}{{if eq (len .Groups) 0}}

Available Commands:{{range $cmds}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{else}}{{range $group := .Groups}}

{{.Title}}{{range $cmds}}{{if (and (eq .GroupID $group.ID) (or .IsAvailableCommand (eq .Name "help")))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{end}}{{if not .AllChildCommandsHaveGroup}}

Additional Commands:{{range $cmds}}{{if (and (eq .GroupID "") (or .IsAvailableCommand (eq .Name "help")))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{end}}{{end}}{{end}}{{if .HasAvailableLocalFlags}}

Flags:
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableInheritedFlags}}

Global Flags:
{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasHelpSubCommands}}

Additional help topics:{{range .Commands}}{{if .IsAdditionalHelpTopicCommand}}
  {{rpad .CommandPath .CommandPathPadding}} {{.Short}}{{end}}{{end}}{{end}}{{if .HasAvailableSubCommands}}

Use "{{.CommandPath}} [command] --help" for more information about a command.{{end}}
`
