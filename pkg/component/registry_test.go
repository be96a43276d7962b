package component_test

import (
	"testing"

	"github.com/openhwif/hwif-go/pkg/component"
	"github.com/openhwif/hwif-go/pkg/component/mocks"
	"github.com/openhwif/hwif-go/pkg/hardware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	reg := component.NewRegistry()

	created := 0
	factory := func() component.Component {
		created++
		return mocks.NewMockComponent(t)
	}
	require.NoError(t, reg.Register("zeta", factory))
	require.NoError(t, reg.Register("alpha", factory))

	err := reg.Register("alpha", factory)
	assert.ErrorIs(t, err, component.ErrDuplicatePlugin)

	assert.Equal(t, []string{"alpha", "zeta"}, reg.Names())

	a, err := reg.New("alpha")
	require.NoError(t, err)
	b, err := reg.New("alpha")
	require.NoError(t, err)
	assert.NotSame(t, a, b, "each call creates a fresh instance")
	assert.Equal(t, 2, created)

	_, err = reg.New("missing")
	assert.ErrorIs(t, err, component.ErrUnknownPlugin)
}

type baseOnly struct {
	component.Base
}

func TestBaseConfigureDefault(t *testing.T) {
	t.Run("nil description", func(t *testing.T) {
		var b baseOnly
		err := b.ConfigureDefault(nil)
		assert.ErrorIs(t, err, hardware.ErrInvalidDescription)
		assert.Equal(t, component.StatusFailed, b.Status())
	})

	t.Run("invalid description", func(t *testing.T) {
		var b baseOnly
		err := b.ConfigureDefault(&hardware.Info{Name: "rig"})
		assert.ErrorIs(t, err, hardware.ErrInvalidDescription)
		assert.Equal(t, component.StatusFailed, b.Status())
	})

	t.Run("valid description", func(t *testing.T) {
		var b baseOnly
		info := &hardware.Info{
			Name:       "rig",
			Components: []hardware.ComponentInfo{{Name: "joint1"}},
		}
		require.NoError(t, b.ConfigureDefault(info))
		assert.Equal(t, component.StatusConfigured, b.Status())
		assert.Equal(t, "rig", b.Name())
		assert.Same(t, info, b.Info())
	})
}
