package gen

import (
	"golang.org/x/sync/errgroup"
)

// RenderEach calls fn for 0..n-1 with at most workers in flight and returns
// the files in index order, independent of completion order.
func RenderEach(n, workers int, fn func(i int) (File, error)) ([]File, error) {
	files := make([]File, n)

	var g errgroup.Group
	if workers > 0 {
		g.SetLimit(workers)
	}

	for i := range n {
		g.Go(func() error {
			f, err := fn(i)
			if err != nil {
				return err
			}

			files[i] = f

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return files, nil
}
