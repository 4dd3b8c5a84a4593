package calculator

import (
	"golang.org/x/sync/errgroup"
)

// forEachGroup runs fn once per group index with at most `workers`
// goroutines in flight. fn must only write to state owned by its group
func forEachGroup(numGroups, workers int, fn func(i int) error) error {
	var g errgroup.Group
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i := 0; i < numGroups; i++ {
		g.Go(func() error {
			return fn(i)
		})
	}
	return g.Wait()
}
