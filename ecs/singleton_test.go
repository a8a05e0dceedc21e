package ecs_test

import (
	"testing"

	"github.com/plus3/blockfall/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSingleton(t *testing.T) {
	t.Run("creates from initializer", func(t *testing.T) {
		storage := ecs.NewStorage()
		s := ecs.NewSingleton[Settings](storage, Settings{Name: "slow", Speed: 0.5})

		require.True(t, s.Exists())
		assert.Equal(t, "slow", s.Get().Name)
	})

	t.Run("creates zero value without initializer", func(t *testing.T) {
		storage := ecs.NewStorage()
		s := ecs.NewSingleton[Counter](storage)

		require.NotNil(t, s.Get())
		assert.Equal(t, 0, s.Get().Value)
	})

	t.Run("existing value wins over initializer", func(t *testing.T) {
		storage := ecs.NewStorage()
		storage.AddSingleton(Counter{Value: 5})

		s := ecs.NewSingleton[Counter](storage, Counter{Value: 99})
		assert.Equal(t, 5, s.Get().Value)
	})

	t.Run("references share data", func(t *testing.T) {
		storage := ecs.NewStorage()
		a := ecs.NewSingleton[Counter](storage)
		b := ecs.NewSingleton[Counter](storage)

		a.Get().Value = 42
		assert.Equal(t, 42, b.Get().Value)
		assert.Same(t, a.Get(), b.Get())
	})
}

func TestSingletonInit(t *testing.T) {
	storage := ecs.NewStorage()

	var s ecs.Singleton[Counter]
	assert.Nil(t, s.Get(), "unbound singleton")

	s.Init(storage)
	assert.False(t, s.Exists())
	assert.Nil(t, s.Get())

	storage.AddSingleton(Counter{Value: 3})
	assert.True(t, s.Exists(), "picks up singletons added after Init")
	assert.Equal(t, 3, s.Get().Value)
}
