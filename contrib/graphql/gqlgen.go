package graphql

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/syssam/relgen/compiler/gen"
	"github.com/syssam/relgen/compiler/load"
)

// GQLGenConfig edits a gqlgen.yml in place. The file is kept as a YAML
// document, so keys relgen does not know about, comments and key order
// survive a Save. The exported fields are a read-only view of the keys
// relgen touches, kept in sync with every edit.
type GQLGenConfig struct {
	// SchemaFilename is the path(s) to the GraphQL schema file(s).
	SchemaFilename StringList

	// Directives configures per-directive code generation.
	Directives map[string]DirectiveConfig

	doc yaml.Node
}

// DirectiveConfig mirrors gqlgen's directives entry.
type DirectiveConfig struct {
	// SkipRuntime keeps gqlgen from generating a resolver hook for the directive.
	SkipRuntime bool `yaml:"skip_runtime,omitempty"`
}

// StringList is a YAML type that can be either a string or a list of strings.
type StringList []string

// UnmarshalYAML implements yaml.Unmarshaler for StringList.
func (s *StringList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*s = []string{node.Value}
		return nil
	case yaml.SequenceNode:
		var list []string
		if err := node.Decode(&list); err != nil {
			return err
		}
		*s = list
		return nil
	default:
		return fmt.Errorf("expected string or list, got %v", node.Kind)
	}
}

// LoadGQLGenConfig reads a gqlgen.yml. A missing or empty file yields an
// empty config.
func LoadGQLGenConfig(path string) (*GQLGenConfig, error) {
	cfg := &GQLGenConfig{}
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("graphql: read gqlgen config: %w", err)
	default:
		if err := yaml.Unmarshal(data, &cfg.doc); err != nil {
			return nil, fmt.Errorf("graphql: parse gqlgen config %s: %w", path, err)
		}
	}
	if cfg.doc.Kind == 0 || len(cfg.doc.Content) == 0 {
		cfg.doc = yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{mapping()}}
	}
	if root := cfg.doc.Content[0]; root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("graphql: parse gqlgen config %s: top level must be a mapping", path)
	}
	if err := cfg.refresh(); err != nil {
		return nil, fmt.Errorf("graphql: parse gqlgen config %s: %w", path, err)
	}
	return cfg, nil
}

// refresh decodes the read-only view from the document.
func (c *GQLGenConfig) refresh() error {
	var view struct {
		SchemaFilename StringList                 `yaml:"schema"`
		Directives     map[string]DirectiveConfig `yaml:"directives"`
	}
	if err := c.doc.Decode(&view); err != nil {
		return err
	}
	c.SchemaFilename = view.SchemaFilename
	c.Directives = view.Directives
	if c.Directives == nil {
		c.Directives = make(map[string]DirectiveConfig)
	}
	return nil
}

// Save writes the config to path, creating parent directories.
func (c *GQLGenConfig) Save(path string) error {
	var b bytes.Buffer
	enc := yaml.NewEncoder(&b)
	enc.SetIndent(2)
	if err := enc.Encode(&c.doc); err != nil {
		return fmt.Errorf("graphql: marshal gqlgen config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("graphql: marshal gqlgen config: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("graphql: create directory: %w", err)
		}
	}
	return os.WriteFile(path, b.Bytes(), 0o644)
}

// AddSchemaPath adds a schema path if not already present. A single
// scalar schema entry is turned into a list.
func (c *GQLGenConfig) AddSchemaPath(path string) {
	if slices.Contains(c.SchemaFilename, path) {
		return
	}
	root := c.doc.Content[0]
	v := lookup(root, "schema")
	switch {
	case v == nil:
		root.Content = append(root.Content, scalar("schema"), &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"})
		v = root.Content[len(root.Content)-1]
	case v.Kind == yaml.ScalarNode && v.Tag != "!!null":
		first := *v
		*v = yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq", Content: []*yaml.Node{&first}}
	case v.Kind != yaml.SequenceNode:
		*v = yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	}
	v.Content = append(v.Content, scalar(path))
	c.SchemaFilename = append(c.SchemaFilename, path)
}

// SetDirective sets the gqlgen options of the named directive, keeping
// any other option already present for it.
func (c *GQLGenConfig) SetDirective(name string, d DirectiveConfig) {
	entry := child(child(c.doc.Content[0], "directives"), name)
	set(entry, "skip_runtime", &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: fmt.Sprint(d.SkipRuntime)})
	c.Directives[name] = d
}

// InjectRelationDirective writes the @relation declaration to path and
// registers it as a schema file. The directive is marked skip_runtime since
// relations are resolved at generation time only.
//
// A project that declares the directive this way must not let the gqlgen
// Plugin declare it again, see Plugin.SkipDirective.
func (c *GQLGenConfig) InjectRelationDirective(path string) error {
	if path == "" {
		return gen.NewConfigError("directive", path, "path cannot be empty")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("graphql: create directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(load.RelationDirective+"\n"), 0o644); err != nil {
		return fmt.Errorf("graphql: write directive: %w", err)
	}
	c.AddSchemaPath(filepath.ToSlash(path))
	c.SetDirective(load.DirectiveName, DirectiveConfig{SkipRuntime: true})
	return nil
}

func mapping() *yaml.Node { return &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"} }

func scalar(v string) *yaml.Node { return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v} }

// lookup returns the value of key in the mapping m, or nil.
func lookup(m *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			return m.Content[i+1]
		}
	}
	return nil
}

// set replaces or appends key in the mapping m.
func set(m *yaml.Node, key string, v *yaml.Node) {
	if old := lookup(m, key); old != nil {
		*old = *v
		return
	}
	m.Content = append(m.Content, scalar(key), v)
}

// child returns the mapping stored under key, creating it when it is
// missing or not a mapping.
func child(m *yaml.Node, key string) *yaml.Node {
	v := lookup(m, key)
	if v == nil || v.Kind != yaml.MappingNode {
		v = mapping()
		set(m, key, v)
		return lookup(m, key)
	}
	return v
}
