package load

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"github.com/vektah/gqlparser/v2/ast"
	"golang.org/x/sync/errgroup"
)

// Extensions lists the file extensions recognized as schema files
// when a directory is loaded.
var Extensions = []string{".graphql", ".graphqls", ".gql"}

// LoadFiles reads the schema files (or directories of schema files) at
// the given paths and parses them into models.
func LoadFiles(ctx context.Context, paths ...string) ([]*Model, error) {
	sources, err := ReadSources(ctx, paths...)
	if err != nil {
		return nil, err
	}
	return ParseSchema(sources...)
}

// ReadSources reads the schema files at the given paths concurrently.
// Directories are expanded (non-recursively) to the schema files they
// contain. The returned sources are ordered by path.
func ReadSources(ctx context.Context, paths ...string) ([]*ast.Source, error) {
	files, err := expand(paths)
	if err != nil {
		return nil, err
	}
	sources := make([]*ast.Source, len(files))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for i, name := range files {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			buf, err := os.ReadFile(name)
			if err != nil {
				return fmt.Errorf("load: read schema: %w", err)
			}
			sources[i] = &ast.Source{Name: name, Input: string(buf)}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return sources, nil
}

// expand resolves directories to the schema files they hold and returns
// a sorted list without duplicates.
func expand(paths []string) ([]string, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("load: no schema paths given")
	}
	var files []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("load: %w", err)
		}
		if !info.IsDir() {
			files = append(files, filepath.Clean(p))
			continue
		}
		entries, err := os.ReadDir(p)
		if err != nil {
			return nil, fmt.Errorf("load: read dir: %w", err)
		}
		var found bool
		for _, e := range entries {
			if !e.IsDir() && IsSchemaFile(e.Name()) {
				files = append(files, filepath.Join(p, e.Name()))
				found = true
			}
		}
		if !found {
			return nil, fmt.Errorf("load: no schema files found in %s", p)
		}
	}
	slices.Sort(files)
	return slices.Compact(files), nil
}

// IsSchemaFile reports whether the file name has a schema file extension.
func IsSchemaFile(name string) bool {
	return slices.Contains(Extensions, strings.ToLower(filepath.Ext(name)))
}
