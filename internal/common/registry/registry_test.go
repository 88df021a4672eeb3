package registry

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "event-dispatch/internal/common/errors"
)

type entry struct {
	name  string
	value int
}

func (e entry) Name() string { return e.name }

func TestRegistry_RegisterAndGet(t *testing.T) {
	registry := New[entry]()
	registry.Register(entry{name: "alpha", value: 1})

	got, err := registry.Get("alpha")
	require.NoError(t, err)
	assert.Equal(t, 1, got.value)
}

func TestRegistry_GetUnknown(t *testing.T) {
	registry := New[entry]()

	_, err := registry.Get("missing")
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeNotFound))
}

func TestRegistry_RegisterReplaces(t *testing.T) {
	registry := New[entry]()
	registry.Register(entry{name: "alpha", value: 1})
	registry.Register(entry{name: "alpha", value: 2})

	got, err := registry.Get("alpha")
	require.NoError(t, err)
	assert.Equal(t, 2, got.value)
	assert.Equal(t, 1, registry.Count())
}

func TestRegistry_ListAndNames(t *testing.T) {
	registry := New[entry]()
	registry.Register(entry{name: "alpha"})
	registry.Register(entry{name: "beta"})

	assert.Len(t, registry.List(), 2)
	assert.ElementsMatch(t, []string{"alpha", "beta"}, registry.Names())
	assert.True(t, registry.IsRegistered("alpha"))
	assert.False(t, registry.IsRegistered("gamma"))
}

func TestRegistry_Clear(t *testing.T) {
	registry := New[entry]()
	registry.Register(entry{name: "alpha"})

	registry.Clear()
	assert.Equal(t, 0, registry.Count())
	assert.False(t, registry.IsRegistered("alpha"))
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	registry := New[entry]()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			registry.Register(entry{name: "alpha", value: n})
			_, _ = registry.Get("alpha")
			_ = registry.Names()
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, registry.Count())
}
