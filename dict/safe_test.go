package dict_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/turboMaCk/any-dict/dict"
	"github.com/turboMaCk/any-dict/optional"
	"github.com/turboMaCk/any-dict/sortable"
)

func TestSafe_BasicOperations(t *testing.T) {
	t.Parallel()

	s := dict.NewSafe(dict.New[string, sortable.String, int](caseless))

	s.Add("Frank", 1)

	v, ok := s.Get("frank")
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	k, ok := s.GetKey("FRANK")
	assert.True(t, ok)
	assert.Equal(t, "Frank", k)

	assert.True(t, s.Contains("frank"))
	assert.Equal(t, 1, s.Size())
	assert.False(t, s.IsEmpty())

	s.Remove("frank")
	assert.True(t, s.IsEmpty())
}

func TestSafe_Generation(t *testing.T) {
	t.Parallel()

	s := dict.NewSafe(dict.New[string, sortable.String, int](caseless))

	before := s.Generation()
	s.Add("a", 1)
	s.Update("a", func(v optional.Value[int]) optional.Value[int] {
		return optional.Some(v.GetOrElse(0) + 1)
	})
	s.Remove("a")
	s.Clear()

	assert.GreaterOrEqual(t, s.Generation()-before, int64(4))
}

func TestSafe_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	s := dict.NewSafe(dict.New[int, sortable.Int, int](intIdentity))

	var wg sync.WaitGroup

	for w := range 8 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for i := range 100 {
				key := w*100 + i
				s.Add(key, key)
				_, _ = s.Get(key)
				_ = s.Contains(key)
				_ = s.Size()
			}
		}()
	}

	wg.Wait()

	assert.Equal(t, 800, s.Size())
}

func TestSafe_Snapshot(t *testing.T) {
	t.Parallel()

	s := dict.NewSafe(dict.New[int, sortable.Int, int](intIdentity))
	s.Add(1, 10)

	snap := s.Snapshot()
	s.Add(2, 20)

	assert.Equal(t, 1, snap.Size())
	assert.Equal(t, 2, s.Size())

	// The snapshot still projects with the original function.
	snap.Add(3, 30)
	assert.True(t, snap.Contains(3))
}

func TestSafe_Pairs(t *testing.T) {
	t.Parallel()

	s := dict.NewSafe(dict.New[int, sortable.Int, string](intIdentity))
	s.Add(2, "b")
	s.Add(1, "a")

	assert.Equal(t, []dict.Pair[int, string]{
		{Key: 1, Value: "a"},
		{Key: 2, Value: "b"},
	}, s.Pairs())
}
