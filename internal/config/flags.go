package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// flagKeys maps every accepted flag name to its viper key. The underscore
// spellings and single-letter aliases match the long-standing CLI.
var flagKeys = map[string]string{
	"d":                   "db-path",
	"db_path":             "db-path",
	"e":                   "export-path",
	"export_path":         "export-path",
	"a":                   "all",
	"all":                 "all",
	"date_in_name":        "date-in-name",
	"date_in_name_format": "date-in-name-format",
	"no_finder":           "no-finder",
	"v":                   "verbose",
	"verbose":             "verbose",
}

// Load parses args (without the program name) and merges them over the
// config file, environment, and defaults. It returns flag.ErrHelp when -h was
// requested.
func Load(args []string, stderr io.Writer) (Config, error) {
	def := DefaultConfig()

	fs := flag.NewFlagSet("memoexport", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "Export Voice Memos with error logging.")
		fmt.Fprintln(fs.Output())
		fmt.Fprintln(fs.Output(), "Usage: memoexport [flags]")
		fs.PrintDefaults()
	}

	var configPath string
	fs.StringVar(&configPath, "config", "", "config file (default is $HOME/.config/memoexport/config.yml)")

	// Values are read back through viper; the pointers only feed flag.Visit.
	fs.String("d", def.DBPath, "path to database (shorthand)")
	fs.String("db_path", def.DBPath, "path to database")
	fs.String("e", def.ExportPath, "path for exportation (shorthand)")
	fs.String("export_path", def.ExportPath, "path for exportation")
	fs.Bool("a", false, "export all at once (shorthand)")
	fs.Bool("all", false, "export all at once")
	fs.Bool("date_in_name", false, "include date in file name")
	fs.String("date_in_name_format", def.DateFormat, "date format (strftime)")
	fs.Bool("no_finder", false, "don't open the export folder when done")
	fs.Bool("v", false, "verbose diagnostics (shorthand)")
	fs.Bool("verbose", false, "verbose diagnostics")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if fs.NArg() > 0 {
		return Config{}, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	v := newViper(def)
	if err := readConfigFile(v, configPath); err != nil {
		return Config{}, err
	}

	// Only explicitly set flags override file and environment values.
	fs.Visit(func(f *flag.Flag) {
		if key, ok := flagKeys[f.Name]; ok {
			v.Set(key, f.Value.String())
		}
	})

	return unmarshal(v)
}

// LoadEnv builds a Config from defaults, the config file, and environment
// only. Used by the MCP server, which takes no flags.
func LoadEnv(configPath string) (Config, error) {
	v := newViper(DefaultConfig())
	if err := readConfigFile(v, configPath); err != nil {
		return Config{}, err
	}
	return unmarshal(v)
}

func newViper(def Config) *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("MEMOEXPORT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	v.SetDefault("db-path", def.DBPath)
	v.SetDefault("export-path", def.ExportPath)
	v.SetDefault("all", false)
	v.SetDefault("date-in-name", false)
	v.SetDefault("date-in-name-format", def.DateFormat)
	v.SetDefault("no-finder", false)
	v.SetDefault("verbose", false)
	return v
}

func readConfigFile(v *viper.Viper, configPath string) error {
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigFile(DefaultConfigPath())
	}

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFound) && !os.IsNotExist(err) {
			return fmt.Errorf("read config %s: %w", v.ConfigFileUsed(), err)
		}
	}
	return nil
}

func unmarshal(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if _, err := os.Stat(v.ConfigFileUsed()); err == nil {
		cfg.ConfigPath = v.ConfigFileUsed()
	}

	cfg.DBPath = expandHome(cfg.DBPath)
	cfg.ExportPath = expandHome(cfg.ExportPath)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
