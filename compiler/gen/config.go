package gen

import (
	"log/slog"
	"path"
	"path/filepath"
	"runtime"
	"slices"
)

// DefaultNonCreatable lists the models that may never be created through a
// relation from another model: identity and binary-blob models.
var DefaultNonCreatable = []string{"User", "File"}

// DefaultHeader is the header comment of generated Go files.
const DefaultHeader = "Code generated by relgen. DO NOT EDIT."

// Format is the encoding of the resolution report.
type Format string

// Report formats.
const (
	FormatJSON    Format = "json"
	FormatYAML    Format = "yaml"
	FormatMsgpack Format = "msgpack"
)

// Ext returns the file extension used for the format.
func (f Format) Ext() string {
	switch f {
	case FormatYAML:
		return ".yaml"
	case FormatMsgpack:
		return ".msgpack"
	}
	return ".json"
}

// Valid reports whether f is a known format.
func (f Format) Valid() bool {
	return f == FormatJSON || f == FormatYAML || f == FormatMsgpack
}

// Config holds the configuration of the resolver and the artifact writer.
type Config struct {
	// NonCreatable lists the models that cannot be created
	// transitively from a relation of another model.
	NonCreatable []string
	// Logger receives resolution and generation events.
	// A nil logger discards them.
	Logger *slog.Logger
	// Target is the directory generated artifacts are written to.
	Target string
	// Package is the import path of the generated Go package.
	// Defaults to the base of Target.
	Package string
	// Header is the header comment of generated Go files.
	Header string
	// Format is the encoding of the resolution report.
	Format Format
	// Workers bounds the number of files written concurrently.
	Workers int
}

// IsCreatable reports whether the named model may be created
// transitively from a relation.
func (c *Config) IsCreatable(model string) bool {
	return !slices.Contains(c.NonCreatable, model)
}

func (c *Config) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return c.Logger
}

// PackageName returns the name of the generated Go package.
func (c *Config) PackageName() string {
	switch {
	case c.Package != "":
		return pkgName(path.Base(c.Package))
	case c.Target != "":
		return pkgName(filepath.Base(c.Target))
	}
	return "relations"
}

func (c *Config) header() string {
	if c.Header == "" {
		return DefaultHeader
	}
	return c.Header
}

func (c *Config) workers() int {
	if c.Workers > 0 {
		return c.Workers
	}
	return runtime.GOMAXPROCS(0)
}
