package dijkstra

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/mindelay/core"
)

// Reconstruct rebuilds the path from source to dest out of the predecessor
// labels left on g by the last run. Each hop's weight is the difference of the
// endpoint distances. When source == dest the path has no hops.
//
// Errors: ErrInvalidSource, ErrInvalidDest, ErrNoPath (dest carries no finite
// distance) or ErrBrokenChain.
//
// Complexity: O(path length).
func Reconstruct(g *core.Graph, source, dest core.NodeID) (*Path, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	di, ok := g.Index(dest)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDest, dest)
	}
	si, ok := g.Index(source)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSource, source)
	}
	if !g.At(di).Reached() {
		return nil, fmt.Errorf("%w: %d -> %d", ErrNoPath, source, dest)
	}

	return reconstruct(g, si, di)
}

// reconstruct walks previous links from di back to si.
func reconstruct(g *core.Graph, si, di int) (*Path, error) {
	src, dst := g.At(si), g.At(di)
	path := &Path{
		Source:   src.ID(),
		Dest:     dst.ID(),
		Distance: dst.Distance() - src.Distance(),
	}

	// A simple path visits every node at most once.
	limit := g.Len()
	for cur := di; cur != si; {
		prev := g.At(cur).Previous()
		if prev == core.NoNode || len(path.Hops) >= limit {
			return nil, fmt.Errorf("%w: stopped at %d", ErrBrokenChain, g.At(cur).ID())
		}

		from, to := g.At(prev), g.At(cur)
		path.Hops = append(path.Hops, Hop{
			From:   from.ID(),
			To:     to.ID(),
			Weight: to.Distance() - from.Distance(),
		})
		cur = prev
	}
	slices.Reverse(path.Hops)

	return path, nil
}
