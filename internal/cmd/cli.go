package cmd

// LogConfig holds diagnostic logging flags shared by every command.
type LogConfig struct {
	Level     string `help:"Log level: trace, debug, info, warn, error" default:"info" enum:"trace,debug,info,warn,error" env:"KEYGLYPH_LOG_LEVEL"`
	File      string `help:"Also write diagnostics to this file" env:"KEYGLYPH_LOG_FILE"`
	TraceFile string `help:"Write one line per raw event to this file" env:"KEYGLYPH_TRACE_FILE"`
}

// CLI is the root kong command tree.
type CLI struct {
	ConfigFile string    `name:"config" help:"Path to a JSON, YAML or TOML config file" env:"KEYGLYPH_CONFIG"`
	Log        LogConfig `embed:"" prefix:"log."`

	Replay    Replay        `cmd:"" help:"Translate a recorded event stream into the keystroke log"`
	Translate Translate     `cmd:"" help:"Print the token for one or more keycodes"`
	Layouts   Layouts       `cmd:"" help:"Print the glyph tables of both layouts"`
	Config    ConfigCommand `cmd:"" help:"Configuration helpers"`
	Version   Version       `cmd:"" help:"Print version information"`
}
