package gridgraph

import (
	"container/list"
)

// MinOpenings finds a route from the top row to the bottom row that crosses
// the fewest closed sites. Opening those sites makes the mask percolate.
// Returns the route as site indices (row-major, top to bottom) and the number
// of closed sites on it; cost 0 means the mask already percolates.
// A non-empty grid always has such a route, so the search cannot fail.
//
// Behavior:
//  1. Multi-source 0-1 BFS from every top-row site; a closed source starts at cost 1.
//  2. Moving into an open site costs 0, into a closed site costs 1.
//  3. Stop when the first bottom-row site is popped.
//  4. Reconstruct the route via predecessor links.
//
// Complexity: O(W·H) time, O(W·H) memory for distance and prev pointers.
func (gg *GridGraph) MinOpenings() (path []int, cost int) {
	total := gg.Width * gg.Height
	const inf = int(^uint(0) >> 1)
	dist := make([]int, total)
	prev := make([]int, total)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	// 0-1 BFS: cost-0 moves at the front, cost-1 moves at the back
	dq := list.New()
	for x := 0; x < gg.Width; x++ {
		i := gg.index(x, 0)
		if gg.Sites[0][x] {
			dist[i] = 0
			dq.PushFront(i)
		} else {
			dist[i] = 1
			dq.PushBack(i)
		}
	}

	target := 0
	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(int)
		ux, uy := gg.Coordinate(u)
		if uy == gg.Height-1 {
			target = u
			break
		}
		for _, d := range gg.offsets {
			vx, vy := ux+d[0], uy+d[1]
			if !gg.InBounds(vx, vy) {
				continue
			}
			v := gg.index(vx, vy)
			step := 0
			if !gg.Sites[vy][vx] {
				step = 1
			}
			nd := dist[u] + step
			if nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	for at := target; at >= 0; at = prev[at] {
		path = append(path, at)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, dist[target]
}
