package edge

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRelString(t *testing.T) {
	tests := []struct {
		rel   Rel
		name  string
		short string
	}{
		{Unk, "UNKNOWN", "Unknown"},
		{O2O, "ONE_TO_ONE", "O2O"},
		{O2M, "ONE_TO_MANY", "O2M"},
		{M2O, "MANY_TO_ONE", "M2O"},
		{M2M, "MANY_TO_MANY", "M2M"},
		{Rel(42), "UNKNOWN", "Unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, tt.rel.String())
			assert.Equal(t, tt.short, tt.rel.Short())
		})
	}
}

func TestRelInverse(t *testing.T) {
	assert.Equal(t, M2O, O2M.Inverse())
	assert.Equal(t, O2M, M2O.Inverse())
	assert.Equal(t, O2O, O2O.Inverse())
	assert.Equal(t, M2M, M2M.Inverse())
	assert.Equal(t, Unk, Unk.Inverse())
}

func TestRelResolved(t *testing.T) {
	assert.False(t, Unk.Resolved())
	assert.False(t, Rel(-1).Resolved())
	assert.False(t, Rel(5).Resolved())
	for _, r := range []Rel{O2O, O2M, M2O, M2M} {
		assert.True(t, r.Resolved(), r.String())
	}
}

func TestBetween(t *testing.T) {
	tests := []struct {
		name           string
		current, other bool
		want, wantPeer Rel
	}{
		{"both lists", true, true, M2M, M2M},
		{"no lists", false, false, O2O, O2O},
		{"current list", true, false, O2M, M2O},
		{"partner list", false, true, M2O, O2M},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, peer := Between(tt.current, tt.other)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantPeer, peer)
			assert.Equal(t, got.Inverse(), peer, "sides must be complementary")
		})
	}
}

func TestRelText(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		buf, err := json.Marshal(struct{ T Rel }{O2M})
		require.NoError(t, err)
		assert.JSONEq(t, `{"T":"ONE_TO_MANY"}`, string(buf))

		var v struct{ T Rel }
		require.NoError(t, json.Unmarshal([]byte(`{"T":"MANY_TO_MANY"}`), &v))
		assert.Equal(t, M2M, v.T)
	})

	t.Run("short names", func(t *testing.T) {
		var r Rel
		require.NoError(t, r.UnmarshalText([]byte("M2O")))
		assert.Equal(t, M2O, r)
		require.NoError(t, r.UnmarshalText(nil))
		assert.Equal(t, Unk, r)
	})

	t.Run("invalid", func(t *testing.T) {
		var r Rel
		err := r.UnmarshalText([]byte("SOME_TO_SOME"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "SOME_TO_SOME")
	})
}
