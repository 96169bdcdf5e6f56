package brand

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pashen/inventory-console/internal/localstate"
)

func TestResolve_DefaultBrand(t *testing.T) {
	t.Setenv("VERSION", "")

	b := Resolve(nil)
	assert.False(t, b.IsLaiShen())
	assert.Equal(t, "帕神库存管理", b.Name())
}

func TestResolve_EnvFlagIsCaseInsensitive(t *testing.T) {
	t.Setenv("VERSION", "LS")

	b := Resolve(nil)
	assert.True(t, b.IsLaiShen())
	assert.Equal(t, "来甚库存管理", b.Name())
}

func TestResolve_StorageWinsOverEnv(t *testing.T) {
	t.Setenv("VERSION", "ls")

	state, err := localstate.New(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, state.Set("version", "retail"))

	b := Resolve(state)
	assert.False(t, b.IsLaiShen())
	assert.Equal(t, "帕神库存管理", b.Name())
}

func TestResolve_UnrecognizedFlagFallsBack(t *testing.T) {
	t.Setenv("VERSION", "whatever")

	b := Resolve(nil)
	assert.Equal(t, "帕神库存管理", b.Name())
}
