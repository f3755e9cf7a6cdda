package gen

import (
	"errors"
	"log/slog"
	"slices"
)

// Option configures resolution and generation.
type Option func(*Config) error

// WithNonCreatable replaces the list of models that cannot be created
// transitively from a relation.
func WithNonCreatable(models ...string) Option {
	return func(c *Config) error {
		if slices.Contains(models, "") {
			return NewConfigError("NonCreatable", models, "model name cannot be empty")
		}
		c.NonCreatable = slices.Clone(models)
		return nil
	}
}

// WithExtraNonCreatable extends the list of models that cannot be
// created transitively from a relation.
func WithExtraNonCreatable(models ...string) Option {
	return func(c *Config) error {
		for _, m := range models {
			if m == "" {
				return NewConfigError("NonCreatable", models, "model name cannot be empty")
			}
			if !slices.Contains(c.NonCreatable, m) {
				c.NonCreatable = append(c.NonCreatable, m)
			}
		}
		return nil
	}
}

// WithLogger sets the logger used for resolution and generation events.
func WithLogger(l *slog.Logger) Option {
	return func(c *Config) error {
		c.Logger = l
		return nil
	}
}

// WithHeader sets the file header comment.
// The header is added at the top of each generated Go file.
func WithHeader(header string) Option {
	return func(c *Config) error {
		c.Header = header
		return nil
	}
}

// WithPackage sets the import path of the generated Go package.
// For example: "github.com/org/project/relations".
func WithPackage(pkg string) Option {
	return func(c *Config) error {
		if pkg == "" {
			return NewConfigError("Package", nil, "package cannot be empty")
		}
		c.Package = pkg
		return nil
	}
}

// WithTarget sets the output directory.
// The directory where generated artifacts will be written.
func WithTarget(dir string) Option {
	return func(c *Config) error {
		if dir == "" {
			return NewConfigError("Target", nil, "target directory cannot be empty")
		}
		c.Target = dir
		return nil
	}
}

// WithFormat sets the encoding of the resolution report.
// Supported formats: "json", "yaml", "msgpack".
func WithFormat(format string) Option {
	return func(c *Config) error {
		f := Format(format)
		if !f.Valid() {
			return NewConfigError("Format", format, "unsupported format; use json, yaml, or msgpack")
		}
		c.Format = f
		return nil
	}
}

// WithWorkers sets the number of files written concurrently.
func WithWorkers(n int) Option {
	return func(c *Config) error {
		if n < 0 {
			return NewConfigError("Workers", n, "workers cannot be negative")
		}
		c.Workers = n
		return nil
	}
}

// Apply applies options to the config.
// It returns the first error encountered.
func (c *Config) Apply(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return err
		}
	}
	return nil
}

// ApplyAll applies options and collects all errors.
// Returns a joined error if any options failed.
func (c *Config) ApplyAll(opts ...Option) error {
	var errs []error
	for _, opt := range opts {
		if err := opt(c); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// NewConfig creates a new Config with the default denylist and the
// given options.
func NewConfig(opts ...Option) (*Config, error) {
	c := &Config{
		NonCreatable: slices.Clone(DefaultNonCreatable),
		Format:       FormatJSON,
	}
	if err := c.Apply(opts...); err != nil {
		return nil, err
	}
	return c, nil
}

// MustNewConfig creates a new Config with the given options.
// It panics if any option fails.
func MustNewConfig(opts ...Option) *Config {
	c, err := NewConfig(opts...)
	if err != nil {
		panic(err)
	}
	return c
}
