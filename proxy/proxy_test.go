package proxy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WithPrecedent/camina/proxy"
)

func TestProxyAccessors(t *testing.T) {
	t.Parallel()

	p := proxy.New[int]()
	assert.True(t, p.IsZero())
	assert.Zero(t, p.Inner())

	p.SetInner(3)
	assert.False(t, p.IsZero())
	assert.Equal(t, 3, p.Inner())

	old := p.Swap(5)
	assert.Equal(t, 3, old)
	assert.Equal(t, 5, p.Inner())

	p.Clear()
	assert.True(t, p.IsZero())
}

func TestProxyWrapZeroValue(t *testing.T) {
	t.Parallel()

	// a wrapped zero value is not the same as an empty proxy
	p := proxy.Wrap(0)
	assert.False(t, p.IsZero())
	assert.True(t, proxy.Contains(p, 0))
}

func TestProxyContains(t *testing.T) {
	t.Parallel()

	p := proxy.Wrap("item")
	assert.True(t, proxy.Contains(p, "item"))
	assert.False(t, proxy.Contains(p, "other"))
	assert.False(t, proxy.Contains(proxy.New[string](), ""))
}

func TestProxyClone(t *testing.T) {
	t.Parallel()

	inner := map[string]int{"x": 1}
	p := proxy.Wrap(inner)

	clone, err := p.Clone()
	require.NoError(t, err)

	inner["x"] = 99
	assert.Equal(t, 1, clone.Inner()["x"], "clone shares no state with the original")

	empty, err := proxy.New[string]().Clone()
	require.NoError(t, err)
	assert.True(t, empty.IsZero())
}
