package cmd

// CLI is the root kong command tree.
type CLI struct {
	ConfigFile string    `name:"config" help:"Path to a JSON, YAML or TOML config file" type:"path" env:"ACCESSORGEN_CONFIG"`
	Log        LogConfig `embed:"" prefix:"log."`

	Generate Generate      `cmd:"" default:"withargs" help:"Generate C++ accessors from a profile descriptor"`
	Config   ConfigCommand `cmd:"" help:"Configuration helpers"`
	Version  Version       `cmd:"" help:"Print the generator version"`
}

// LogConfig controls the process logger.
type LogConfig struct {
	Level   string `help:"Log level" default:"info" enum:"trace,debug,info,warn,error" env:"ACCESSORGEN_LOG_LEVEL"`
	File    string `help:"Write logs to this file instead of stdout/stderr" env:"ACCESSORGEN_LOG_FILE"`
	Format  string `help:"Log format: auto, text or json" default:"auto" enum:"auto,text,json" env:"ACCESSORGEN_LOG_FORMAT"`
	RawFile string `help:"Dump raw descriptor bytes to this file" env:"ACCESSORGEN_LOG_RAW_FILE"`
}
