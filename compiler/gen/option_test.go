package gen

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigDefaults(t *testing.T) {
	c, err := NewConfig()
	require.NoError(t, err)
	assert.Equal(t, []string{"User", "File"}, c.NonCreatable)
	assert.Equal(t, FormatJSON, c.Format)
	assert.False(t, c.IsCreatable("User"))
	assert.False(t, c.IsCreatable("File"))
	assert.True(t, c.IsCreatable("Post"))
	assert.NotNil(t, c.logger())
	assert.Positive(t, c.workers())
	assert.Equal(t, DefaultHeader, c.header())

	// The default list is copied, not shared.
	c.NonCreatable[0] = "Changed"
	assert.Equal(t, "User", DefaultNonCreatable[0])
}

func TestWithNonCreatable(t *testing.T) {
	t.Run("replaces defaults", func(t *testing.T) {
		c := MustNewConfig(WithNonCreatable("Secret"))
		assert.Equal(t, []string{"Secret"}, c.NonCreatable)
		assert.True(t, c.IsCreatable("User"))
	})

	t.Run("empty list allows all", func(t *testing.T) {
		c := MustNewConfig(WithNonCreatable())
		assert.Empty(t, c.NonCreatable)
		assert.True(t, c.IsCreatable("User"))
	})

	t.Run("empty name", func(t *testing.T) {
		_, err := NewConfig(WithNonCreatable("A", ""))
		require.Error(t, err)
		assert.True(t, IsConfigError(err))
	})
}

func TestWithExtraNonCreatable(t *testing.T) {
	c := MustNewConfig(WithExtraNonCreatable("Credential", "User"))
	assert.Equal(t, []string{"User", "File", "Credential"}, c.NonCreatable)

	_, err := NewConfig(WithExtraNonCreatable(""))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingConfig)
}

func TestWithLogger(t *testing.T) {
	l := slog.Default()
	c := MustNewConfig(WithLogger(l))
	assert.Same(t, l, c.logger())
}

func TestWithHeader(t *testing.T) {
	t.Run("sets header", func(t *testing.T) {
		c := &Config{}
		err := WithHeader("// Custom header")(c)

		require.NoError(t, err)
		assert.Equal(t, "// Custom header", c.Header)
		assert.Equal(t, "// Custom header", c.header())
	})

	t.Run("empty header falls back to default", func(t *testing.T) {
		c := &Config{Header: "existing"}
		err := WithHeader("")(c)

		require.NoError(t, err)
		assert.Equal(t, DefaultHeader, c.header())
	})
}

func TestWithTargetAndPackage(t *testing.T) {
	c := &Config{}
	require.NoError(t, WithTarget("./out")(c))
	require.NoError(t, WithPackage("example.com/app/out")(c))
	assert.Equal(t, "./out", c.Target)
	assert.Equal(t, "example.com/app/out", c.Package)

	assert.True(t, IsConfigError(WithTarget("")(c)))
	assert.True(t, IsConfigError(WithPackage("")(c)))
}

func TestWithFormat(t *testing.T) {
	tests := []struct {
		format  string
		want    Format
		ext     string
		wantErr bool
	}{
		{"json", FormatJSON, ".json", false},
		{"yaml", FormatYAML, ".yaml", false},
		{"msgpack", FormatMsgpack, ".msgpack", false},
		{"xml", "", "", true},
		{"", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			c := &Config{}
			err := WithFormat(tt.format)(c)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, IsConfigError(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.Format)
			assert.Equal(t, tt.ext, c.Format.Ext())
		})
	}
}

func TestWithWorkers(t *testing.T) {
	c := MustNewConfig(WithWorkers(3))
	assert.Equal(t, 3, c.workers())
	_, err := NewConfig(WithWorkers(-1))
	require.Error(t, err)
}

func TestApplyAll(t *testing.T) {
	c := &Config{}
	err := c.ApplyAll(WithTarget(""), WithPackage(""), WithHeader("h"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Target")
	assert.Contains(t, err.Error(), "Package")
	assert.Equal(t, "h", c.Header, "valid options are still applied")
}

func TestMustNewConfigPanics(t *testing.T) {
	assert.Panics(t, func() { MustNewConfig(WithFormat("nope")) })
}
