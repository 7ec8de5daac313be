package cli

import (
	"flag"
	"io"
	"task-tracker/internal/config"
)

// GlobalOptions are the flags accepted before the command word. Empty values
// leave the configured setting alone.
type GlobalOptions struct {
	StorePath  string
	ConfigPath string
	LogLevel   string
	LogFormat  string
}

// ParseGlobalFlags consumes leading flags and returns the remaining command
// words untouched. flag.ErrHelp is returned for -h/-help.
func ParseGlobalFlags(args []string) (GlobalOptions, []string, error) {
	var opts GlobalOptions

	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&opts.StorePath, "file", "", "Task store file (default tasks.json)")
	fs.StringVar(&opts.ConfigPath, "config", "", "YAML config file")
	fs.StringVar(&opts.LogLevel, "log-level", "", "Diagnostics level: debug|info|warn|error")
	fs.StringVar(&opts.LogFormat, "log-format", "", "Diagnostics format: text|json")

	if err := fs.Parse(args); err != nil {
		return GlobalOptions{}, nil, err
	}
	return opts, fs.Args(), nil
}

// Apply overrides cfg with every flag that was set.
func (o GlobalOptions) Apply(cfg *config.Config) {
	if o.StorePath != "" {
		cfg.Store.Path = o.StorePath
	}
	if o.LogLevel != "" {
		cfg.Log.Level = o.LogLevel
	}
	if o.LogFormat != "" {
		cfg.Log.Format = o.LogFormat
	}
}
