package gen

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"github.com/syssam/relgen/compiler/load"
)

// Report is the serializable outcome of a resolution pass.
type Report struct {
	Models      []*load.Model `json:"models" yaml:"models"`
	Diagnostics []Diagnostic  `json:"diagnostics,omitempty" yaml:"diagnostics,omitempty"`
	Stats       Stats         `json:"stats" yaml:"stats"`
}

// Diagnostic is a relation error in report form.
type Diagnostic struct {
	Model    string `json:"model" yaml:"model"`
	Member   string `json:"member" yaml:"member"`
	Relation string `json:"relation" yaml:"relation"`
	Message  string `json:"message" yaml:"message"`
}

// Stats summarizes the relations of a graph.
type Stats struct {
	Models    int            `json:"models" yaml:"models"`
	Relations int            `json:"relations" yaml:"relations"`
	Resolved  int            `json:"resolved" yaml:"resolved"`
	Errors    int            `json:"errors" yaml:"errors"`
	ByType    map[string]int `json:"byType,omitempty" yaml:"byType,omitempty"`
}

// NewReport builds the report of a resolved graph.
func NewReport(g *Graph) *Report {
	r := &Report{Models: g.Models, Stats: Stats{Models: len(g.Models)}}
	for _, err := range g.Errors() {
		r.Diagnostics = append(r.Diagnostics, Diagnostic{
			Model:    err.Model,
			Member:   err.Member,
			Relation: err.Relation,
			Message:  err.Message,
		})
	}
	for _, m := range g.Models {
		r.Stats.Relations += len(m.Relations())
	}
	for _, e := range g.Edges() {
		if r.Stats.ByType == nil {
			r.Stats.ByType = make(map[string]int)
		}
		r.Stats.Resolved++
		r.Stats.ByType[e.Rel().String()]++
	}
	r.Stats.Errors = len(r.Diagnostics)
	return r
}

// Valid reports whether the report carries no diagnostics.
func (r *Report) Valid() bool { return len(r.Diagnostics) == 0 }

// Encode writes the report to w in the given format.
func (r *Report) Encode(w io.Writer, f Format) error {
	switch f {
	case FormatJSON, "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	case FormatMsgpack:
		enc := msgpack.NewEncoder(w)
		enc.SetCustomStructTag("json")
		enc.SetSortMapKeys(true)
		return enc.Encode(r)
	}
	return NewConfigError("Format", string(f), "unsupported format; use json, yaml, or msgpack")
}

// DecodeReport reads a report encoded in the given format.
func DecodeReport(rd io.Reader, f Format) (*Report, error) {
	var (
		r   Report
		err error
	)
	switch f {
	case FormatJSON, "":
		err = json.NewDecoder(rd).Decode(&r)
	case FormatYAML:
		err = yaml.NewDecoder(rd).Decode(&r)
	case FormatMsgpack:
		dec := msgpack.NewDecoder(rd)
		dec.SetCustomStructTag("json")
		err = dec.Decode(&r)
	default:
		return nil, NewConfigError("Format", string(f), "unsupported format; use json, yaml, or msgpack")
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s report: %w", f, err)
	}
	return &r, nil
}

// WriteReport writes the report of g to w in the given format.
func WriteReport(w io.Writer, g *Graph, f Format) error {
	return NewReport(g).Encode(w, f)
}
