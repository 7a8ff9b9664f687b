package commands

const (
	ConfigPathFlag         = "config"
	ConfigPathShortFlag    = "c"
	ConfigPathDefaultValue = ""
	ConfigPathUsage        = "Location of config file"

	ForceConversionFlag             = "force"
	ForceConversionShortFlag        = "f"
	ForceConversionFlagDefaultValue = false
	ForceConversionUsage            = "Force conversion even if output file conflicts found"

	DialectFlag         = "dialect"
	DialectShortFlag    = "l"
	DialectDefaultValue = ""
	DialectUsage        = "Dialect name or language tag (standard, belgian, fr-FR, fr-BE), default from app config"

	ASCIIFlag         = "ascii"
	ASCIIShortFlag    = "a"
	ASCIIDefaultValue = false
	ASCIIUsage        = "Print words without diacritics"

	TTYFlag      = "tty"
	TTYShortFlag = "t"
	TTYUsage     = "Activate TTY mode"

	NoTTYFlag         = "no-tty"
	NoTTYShortFlag    = "T"
	NoTTYDefaultValue = false
	NoTTYUsage        = "Deactivate TTY mode"

	DebugModeFlag         = "debug"
	DebugModeShortFlag    = "d"
	DebugModeDefaultValue = false
	DebugModeUsage        = "Enable debug mode"

	CPUProfileFlag         = "cpu-profile"
	CPUProfileShortFlag    = ""
	CPUProfileDefaultValue = ""
	CPUProfileUsage        = "Path to GoLang CPU profile file"

	MemoryProfileFlag         = "memory-profile"
	MemoryProfileShortFlag    = ""
	MemoryProfileDefaultValue = ""
	MemoryProfileUsage        = "Path to GoLang memory profile file"

	HTTPListenAddressFlag         = "listen-address"
	HTTPListenAddressShortFlag    = "a"
	HTTPListenAddressDefaultValue = ""
	HTTPListenAddressUsage        = "HTTP listen address"

	HTTPReadTimeoutFlag         = "read-timeout"
	HTTPReadTimeoutShortFlag    = "r"
	HTTPReadTimeoutDefaultValue = 0
	HTTPReadTimeoutUsage        = "HTTP read timeout"

	HTTPWriteTimeoutFlag         = "write-timeout"
	HTTPWriteTimeoutShortFlag    = "w"
	HTTPWriteTimeoutDefaultValue = 0
	HTTPWriteTimeoutUsage        = "HTTP write timeout"

	HTTPIdleTimeoutFlag         = "idle-timeout"
	HTTPIdleTimeoutShortFlag    = "i"
	HTTPIdleTimeoutDefaultValue = 0
	HTTPIdleTimeoutUsage        = "HTTP idle timeout"
)
