package graphql

import (
	"path/filepath"
	"testing"

	"github.com/99designs/gqlgen/codegen/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vektah/gqlparser/v2/ast"

	"github.com/syssam/relgen/compiler/gen"
	"github.com/syssam/relgen/compiler/load"
	"github.com/syssam/relgen/schema/edge"
)

const blogSDL = `
type User {
  name: String!
  posts: [Post!]! @relation(name: "authorOf")
}

type Post {
  title: String!
  author: User! @relation(name: "authorOf")
}
`

func gqlgenConfig(p *Plugin, sdl string) *config.Config {
	cfg := &config.Config{}
	if s := p.InjectSourceEarly(); s != nil {
		cfg.Sources = append(cfg.Sources, s)
	}
	cfg.Sources = append(cfg.Sources, &ast.Source{Name: "schema.graphql", Input: sdl})
	return cfg
}

func TestPlugin(t *testing.T) {
	t.Run("name", func(t *testing.T) {
		p, err := NewPlugin()
		require.NoError(t, err)
		assert.Equal(t, "relgen", p.Name())
	})

	t.Run("directive", func(t *testing.T) {
		p, err := NewPlugin()
		require.NoError(t, err)
		s := p.InjectSourceEarly()
		require.NotNil(t, s)
		assert.True(t, s.BuiltIn)
		assert.Equal(t, DirectiveSource, s.Name)
		assert.Contains(t, s.Input, "directive @relation")
		assert.Nil(t, p.SkipDirective().InjectSourceEarly())
	})

	t.Run("resolves", func(t *testing.T) {
		p, err := NewPlugin()
		require.NoError(t, err)
		require.NoError(t, p.MutateConfig(gqlgenConfig(p, blogSDL)))

		g := p.Graph()
		require.NotNil(t, g)
		require.Len(t, g.Models, 2)
		user, ok := g.Model("User")
		require.True(t, ok)
		posts, ok := user.Member("posts")
		require.True(t, ok)
		assert.Equal(t, edge.O2M, posts.Relation.Type)
		assert.Equal(t, "Post", posts.Relation.RelatedModel)
		assert.Len(t, g.Edges(), 2)
	})

	t.Run("unresolved", func(t *testing.T) {
		p, err := NewPlugin()
		require.NoError(t, err)
		err = p.MutateConfig(gqlgenConfig(p, `
type User {
  posts: [Post!]! @relation(name: "authorOf")
}

type Post {
  title: String!
}
`))
		require.Error(t, err)
		assert.True(t, gen.IsValidationError(err))
		require.NotNil(t, p.Graph())
		assert.Len(t, p.Graph().Errors(), 1)
	})

	t.Run("missing model", func(t *testing.T) {
		p, err := NewPlugin()
		require.NoError(t, err)
		err = p.MutateConfig(gqlgenConfig(p, `
type User {
  avatar: File @relation(name: "userAvatar")
  other: File @relation(name: "userAvatar")
}
`))
		require.Error(t, err)
		assert.True(t, gen.IsSchemaError(err))
	})

	t.Run("bad directive", func(t *testing.T) {
		p, err := NewPlugin()
		require.NoError(t, err)
		err = p.MutateConfig(gqlgenConfig(p, `type User { posts: [Post] @relation(name: "") }`))
		require.Error(t, err)
		assert.True(t, gen.IsGenerationError(err))
		assert.Contains(t, err.Error(), "cannot be empty")
	})

	t.Run("writes target", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "relations")
		p, err := NewPlugin(gen.WithTarget(dir))
		require.NoError(t, err)
		require.NoError(t, p.MutateConfig(gqlgenConfig(p, blogSDL)))
		assert.FileExists(t, filepath.Join(dir, gen.ConstantsFile))
		assert.FileExists(t, filepath.Join(dir, gen.ReportFile+".json"))
	})

	t.Run("invalid option", func(t *testing.T) {
		_, err := NewPlugin(gen.WithFormat("xml"))
		require.Error(t, err)
		assert.True(t, gen.IsConfigError(err))
	})
}

func TestPluginLoadSchema(t *testing.T) {
	const sdl = `
type Query {
  users: [User!]!
}
` + blogSDL

	loadSchema := func(p *Plugin, extra ...*ast.Source) (*config.Config, error) {
		cfg := config.DefaultConfig()
		if s := p.InjectSourceEarly(); s != nil {
			cfg.Sources = append(cfg.Sources, s)
		}
		cfg.Sources = append(cfg.Sources, extra...)
		cfg.Sources = append(cfg.Sources, &ast.Source{Name: "schema.graphqls", Input: sdl})
		return cfg, cfg.LoadSchema()
	}
	declared := &ast.Source{Name: "graph/relation.graphqls", Input: load.RelationDirective}

	t.Run("injected directive validates", func(t *testing.T) {
		p, err := NewPlugin()
		require.NoError(t, err)
		cfg, err := loadSchema(p)
		require.NoError(t, err)
		require.NotNil(t, cfg.Schema.Directives["relation"])
		require.NoError(t, p.MutateConfig(cfg))
		assert.Len(t, p.Graph().Edges(), 2)
	})

	t.Run("undeclared directive", func(t *testing.T) {
		p, err := NewPlugin()
		require.NoError(t, err)
		_, err = loadSchema(p.SkipDirective())
		require.Error(t, err)
	})

	t.Run("declared by the project", func(t *testing.T) {
		p, err := NewPlugin()
		require.NoError(t, err)
		cfg, err := loadSchema(p.SkipDirective(), declared)
		require.NoError(t, err)
		require.NoError(t, p.MutateConfig(cfg))
		assert.Len(t, p.Graph().Edges(), 2)
	})

	t.Run("declared twice", func(t *testing.T) {
		p, err := NewPlugin()
		require.NoError(t, err)
		_, err = loadSchema(p, declared)
		require.Error(t, err)
	})
}
