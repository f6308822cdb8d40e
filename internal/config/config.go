// Package config loads command line settings from flags, environment, .env files
// and an optional config file.
package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/Kiuston/analisis-tecnico-picking-bcmy/pkg/boxrecon"
	"github.com/Kiuston/analisis-tecnico-picking-bcmy/pkg/boxrecon/output"
)

// EnvPrefix prefixes every environment variable, e.g. BOXRECON_SHEET.
const EnvPrefix = "BOXRECON"

// Keys understood in config files and environment.
const (
	KeyConfig        = "config"
	KeySheet         = "sheet"
	KeyHeaderRow     = "header-row"
	KeyReference     = "reference"
	KeyReferenceMode = "reference-mode"
	KeyCodeHeader    = "code-header"
	KeyUnitsHeader   = "units-header"
	KeyFormat        = "format"
	KeyPretty        = "pretty"
	KeyOutput        = "output"
	KeyXLSX          = "xlsx"
	KeyLogLevel      = "log-level"
	KeyLogFormat     = "log-format"
	KeyLogOutput     = "log-output"
)

// Config is the resolved configuration of one run.
type Config struct {
	ConfigFile string

	SheetName     string
	HeaderRow     int
	ReferencePath string
	ReferenceMode boxrecon.ReferenceMode
	CodeHeader    string
	UnitsHeader   string

	Format     output.Format
	Pretty     bool
	OutputPath string
	XLSXPath   string

	LogLevel  string
	LogFormat string
	LogOutput string
}

// Options converts the configuration into reconciliation options.
func (c *Config) Options() boxrecon.Options {
	opts := boxrecon.DefaultOptions()
	opts.SheetName = c.SheetName
	opts.HeaderRow = c.HeaderRow
	opts.ReferencePath = c.ReferencePath
	opts.ReferenceMode = c.ReferenceMode
	opts.CodeHeader = c.CodeHeader
	opts.UnitsHeader = c.UnitsHeader
	return opts
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeySheet, boxrecon.DefaultSheetName)
	v.SetDefault(KeyHeaderRow, boxrecon.DefaultHeaderRow)
	v.SetDefault(KeyReferenceMode, string(boxrecon.ReferenceSeparate))
	v.SetDefault(KeyCodeHeader, boxrecon.DefaultCodeHeader)
	v.SetDefault(KeyUnitsHeader, boxrecon.DefaultUnitsHeader)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "auto")
	v.SetDefault(KeyLogOutput, "stderr")
}

// Load resolves configuration in order of precedence:
// 1. Command-line flags
// 2. Environment variables (BOXRECON_*)
// 3. .env and .env.local files
// 4. Config file (--config, or .boxrecon.yaml in the working or home directory)
// 5. Defaults
func Load(v *viper.Viper, flags *pflag.FlagSet) (*Config, error) {
	loadEnvFiles()

	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, err
		}
	}

	if file := v.GetString(KeyConfig); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	} else {
		v.SetConfigName(".boxrecon")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, err
			}
		}
	}

	mode, err := boxrecon.ParseReferenceMode(v.GetString(KeyReferenceMode))
	if err != nil {
		return nil, err
	}
	format, err := output.ParseFormat(v.GetString(KeyFormat))
	if err != nil {
		return nil, err
	}

	return &Config{
		ConfigFile:    v.ConfigFileUsed(),
		SheetName:     v.GetString(KeySheet),
		HeaderRow:     v.GetInt(KeyHeaderRow),
		ReferencePath: v.GetString(KeyReference),
		ReferenceMode: mode,
		CodeHeader:    v.GetString(KeyCodeHeader),
		UnitsHeader:   v.GetString(KeyUnitsHeader),
		Format:        format,
		Pretty:        v.GetBool(KeyPretty),
		OutputPath:    v.GetString(KeyOutput),
		XLSXPath:      v.GetString(KeyXLSX),
		LogLevel:      v.GetString(KeyLogLevel),
		LogFormat:     v.GetString(KeyLogFormat),
		LogOutput:     v.GetString(KeyLogOutput),
	}, nil
}

// loadEnvFiles loads .env then .env.local; variables already set win.
func loadEnvFiles() {
	for _, envFile := range []string{".env", ".env.local"} {
		_ = godotenv.Load(envFile)
	}
}
