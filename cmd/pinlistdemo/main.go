// Command pinlistdemo builds a DoublyList and sums its elements with a
// parallel arbitrary-order traversal: one goroutine per arena chunk,
// joined with errgroup.Group.Wait (spec.md §5's optional
// parallel-iteration collaborator).
package main

import (
	"context"
	"os"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/skipor/pinlist"
	"github.com/skipor/pinlist/log"
)

func main() {
	l := log.NewDefaultLogger(os.Stdout)

	list := pinlist.NewDoubly(pinlist.WithLinearGrowth[int](8))
	for i := 0; i < 1<<16; i++ {
		list.PushBack(i)
	}
	l.Infof("built list: len=%d utilization=%.2f", list.Len(), list.NodeUtilization().Ratio())

	sum, err := parallelSum(context.Background(), list)
	if err != nil {
		l.Fatalf("parallel sum failed: %v", err)
	}
	l.Infof("parallel arbitrary-order sum: %d", sum)
}

// parallelSum fans the arena's chunks out over a worker pool, one
// goroutine per chunk. This is safe by construction: the arena is
// pinned and each chunk is read-only and disjoint from the others for
// the duration of the traversal, so no coordination beyond the final
// atomic add is needed.
func parallelSum(ctx context.Context, list *pinlist.DoublyList[int]) (int64, error) {
	var total int64
	g, _ := errgroup.WithContext(ctx)
	for _, chunk := range list.Chunks() {
		chunk := chunk
		g.Go(func() error {
			var partial int64
			for i := range chunk {
				if chunk[i].Active() {
					partial += int64(chunk[i].Elem())
				}
			}
			atomic.AddInt64(&total, partial)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}
	return total, nil
}
