package gen

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/imports"
)

// Artifact file names, relative to the target directory.
const (
	ReportFile    = "relations"
	ConstantsFile = "relations.go"
)

// Writer writes the artifacts of a resolved graph to its target directory.
type Writer struct {
	graph   *Graph
	outDir  string
	workers int

	// Metrics for performance monitoring
	mu      sync.Mutex
	metrics *WriterMetrics
}

// WriterMetrics tracks generation results.
type WriterMetrics struct {
	FilesGenerated int
	TotalBytes     int64
}

// NewWriter creates a new writer for the graph.
func NewWriter(g *Graph) *Writer {
	return &Writer{
		graph:   g,
		outDir:  g.Target,
		workers: g.workers(),
		metrics: &WriterMetrics{},
	}
}

// WithWorkers sets the number of parallel workers.
func (w *Writer) WithWorkers(n int) *Writer {
	if n > 0 {
		w.workers = n
	}
	return w
}

// Metrics returns the generation metrics.
func (w *Writer) Metrics() *WriterMetrics {
	return w.metrics
}

// fileTask represents a single file generation task.
type fileTask struct {
	name   string // output file path (relative to outDir)
	phase  string
	render func() ([]byte, error)
}

// Write validates the graph and writes the report and the Go constants
// file in parallel. Nothing is written if the graph has unresolved relations.
func (w *Writer) Write(ctx context.Context) error {
	if w.outDir == "" {
		return NewConfigError("Target", nil, "missing target directory in config")
	}
	if err := w.graph.Validate(); err != nil {
		return NewGenerationError("validate", "", "schema has unresolved relations", err)
	}
	if err := os.MkdirAll(w.outDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	format := w.graph.Format
	if format == "" {
		format = FormatJSON
	}
	files := []fileTask{
		{
			name:  ReportFile + format.Ext(),
			phase: "report",
			render: func() ([]byte, error) {
				var buf bytes.Buffer
				err := WriteReport(&buf, w.graph, format)
				return buf.Bytes(), err
			},
		},
		{
			name:   ConstantsFile,
			phase:  "constants",
			render: w.constants,
		},
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(w.workers)
	for _, f := range files {
		eg.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
				return w.generateFile(f)
			}
		})
	}
	return eg.Wait()
}

func (w *Writer) constants() ([]byte, error) {
	f, err := GenerateConstants(w.graph)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// generateFile renders and writes a single file.
func (w *Writer) generateFile(f fileTask) error {
	buf, err := f.render()
	if err != nil {
		if IsGenerationError(err) {
			return err
		}
		return NewGenerationError(f.phase, f.name, "render", err)
	}
	fullPath := filepath.Join(w.outDir, f.name)
	if filepath.Ext(f.name) == ".go" {
		formatted, err := imports.Process(fullPath, buf, nil)
		if err != nil {
			return NewGenerationError(f.phase, f.name, "format", err)
		}
		buf = formatted
	}
	if err := os.WriteFile(fullPath, buf, 0o644); err != nil {
		return NewGenerationError(f.phase, f.name, "write", err)
	}

	w.mu.Lock()
	w.metrics.FilesGenerated++
	w.metrics.TotalBytes += int64(len(buf))
	w.mu.Unlock()

	w.graph.logger().Info("file generated", "file", fullPath, "bytes", len(buf))
	return nil
}

// Generate is the convenience function to write all artifacts of g.
func Generate(ctx context.Context, g *Graph) error {
	return NewWriter(g).Write(ctx)
}
