package dict

import (
	"github.com/alitto/pond/v2"
	"github.com/turboMaCk/any-dict/sortable"
)

// ParallelFromPairs builds a dictionary from an association list, computing
// the projections on a worker pool before applying the inserts sequentially
// in input order. The result is identical to FromPairs (last write wins on
// sort-key collisions); only the projection work is parallelized, which pays
// off for expensive projections such as collation or normalization over large
// inputs. The projection must be pure.
//
// workers caps the pool concurrency; values below two fall back to the
// sequential FromPairs.
func ParallelFromPairs[K any, C sortable.Sortable[C], V any](
	project func(K) C,
	pairs []Pair[K, V],
	workers int,
) *Dict[K, C, V] {
	if workers < 2 || len(pairs) < 2 {
		return FromPairs(project, pairs)
	}

	pool := pond.NewResultPool[C](workers)
	defer pool.StopAndWait()

	group := pool.NewGroup()

	for _, p := range pairs {
		key := p.Key
		group.Submit(func() C {
			return project(key)
		})
	}

	// Tasks cannot fail; Wait only propagates panics from the projection.
	sortKeys, err := group.Wait()
	if err != nil {
		panic(err)
	}

	out := New[K, C, V](project)
	for i, p := range pairs {
		out.storage.Add(sortKeys[i], entry[K, V]{key: p.Key, value: p.Value})
	}

	return out
}
