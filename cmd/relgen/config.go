package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/syssam/relgen/compiler/gen"
)

// Configuration keys, shared by relgen.yaml, RELGEN_* variables and flags.
const (
	keyNonCreatable = "non_creatable"
	keyTarget       = "target"
	keyPackage      = "package"
	keyFormat       = "format"
	keyLogLevel     = "log_level"
	keyWorkers      = "workers"
	keyHeader       = "header"
)

// settings is the resolved CLI configuration.
type settings struct {
	NonCreatable []string
	Target       string
	Package      string
	Format       string
	LogLevel     string
	Workers      int
	Header       string
}

// loadSettings reads the configuration with viper. Flags take precedence
// over RELGEN_* variables, which take precedence over the config file. An
// explicit configFile must exist; relgen.yaml in the working directory is
// optional.
func loadSettings(v *viper.Viper, flags *pflag.FlagSet, configFile string) (*settings, error) {
	v.SetDefault(keyNonCreatable, gen.DefaultNonCreatable)
	v.SetDefault(keyFormat, string(gen.FormatJSON))
	v.SetDefault(keyLogLevel, "info")
	v.SetDefault(keyHeader, gen.DefaultHeader)

	v.SetEnvPrefix("RELGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("relgen")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}
	if flags != nil {
		for _, key := range []string{keyNonCreatable, keyTarget, keyPackage, keyFormat, keyLogLevel, keyWorkers} {
			if f := flags.Lookup(strings.ReplaceAll(key, "_", "-")); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", f.Name, err)
				}
			}
		}
	}
	return &settings{
		NonCreatable: splitList(v.GetStringSlice(keyNonCreatable)),
		Target:       v.GetString(keyTarget),
		Package:      v.GetString(keyPackage),
		Format:       v.GetString(keyFormat),
		LogLevel:     v.GetString(keyLogLevel),
		Workers:      v.GetInt(keyWorkers),
		Header:       v.GetString(keyHeader),
	}, nil
}

// splitList accepts both YAML lists and comma separated values coming
// from the environment.
func splitList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		for _, p := range strings.Split(s, ",") {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}

// logger returns a text logger writing to w at the configured level.
func (s *settings) logger(w io.Writer) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s.LogLevel)); err != nil {
		return nil, gen.NewConfigError("LogLevel", s.LogLevel, "unknown log level")
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})), nil
}

// config builds the generator config. Every invalid setting is reported.
func (s *settings) config(logger *slog.Logger) (*gen.Config, error) {
	opts := []gen.Option{
		gen.WithNonCreatable(s.NonCreatable...),
		gen.WithFormat(s.Format),
		gen.WithWorkers(s.Workers),
		gen.WithHeader(s.Header),
		gen.WithLogger(logger),
	}
	if s.Target != "" {
		opts = append(opts, gen.WithTarget(s.Target))
	}
	if s.Package != "" {
		opts = append(opts, gen.WithPackage(s.Package))
	}
	cfg, err := gen.NewConfig()
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyAll(opts...); err != nil {
		return nil, err
	}
	return cfg, nil
}
