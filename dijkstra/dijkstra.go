// Package dijkstra implements Dijkstra's shortest-path algorithm on weighted graphs.
//
// Dijkstra computes the minimum-cost path from a single source vertex to all
// other reachable vertices in a graph with non-negative edge weights.
// It processes vertices in order of increasing distance using a min-heap priority queue,
// relaxing edges and updating distances accordingly.
//
// Notes on implementation choices:
//
//   - Graphs are implicit, so negative weights are detected when relaxed, not by a pre-scan.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
package dijkstra

import (
	"container/heap"
	"fmt"
)

// Dijkstra computes shortest distances from source to every vertex reachable
// in g.
//
// Returns:
//
//   - dist: map from vertex to minimum distance. Unreachable vertices are absent.
//   - prev: predecessor map; prev[v] == u means the shortest path to v goes
//     through u. Pass it to Path to rebuild a route.
//   - err:  ErrNilGraph or ErrNegativeWeight.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra[V comparable](g WeightedGraph[V], source V) (map[V]int64, map[V]V, error) {
	// 1) Validate graph is non-nil
	if g == nil {
		return nil, nil, ErrNilGraph
	}

	// 2) Prepare data structures for the algorithm.
	r := &runner[V]{
		g:       g,
		dist:    make(map[V]int64),
		prev:    make(map[V]V),
		visited: make(map[V]bool),
	}

	// 3) Initialize algorithm state and run main loop.
	r.init(source)
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	return r.dist, r.prev, nil
}

// Path rebuilds source → dest from a predecessor map. ok is false when dest
// has no recorded route back to source.
func Path[V comparable](prev map[V]V, source, dest V) (path []V, ok bool) {
	for cur := dest; ; {
		path = append(path, cur)
		if cur == source {
			break
		}
		p, found := prev[cur]
		if !found {
			return nil, false
		}
		cur = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, true
}

// runner holds the mutable state for a single Dijkstra execution.
type runner[V comparable] struct {
	g       WeightedGraph[V] // The input graph; read-only within Dijkstra.
	dist    map[V]int64      // Maps vertex → current best distance from source.
	prev    map[V]V          // Maps vertex → predecessor on the shortest path.
	visited map[V]bool       // Tracks if a vertex's distance is finalized.
	pq      nodePQ[V]        // Min-heap of *nodeItem for lazy priority queue.
}

// init sets the source distance to zero and pushes it into the heap.
func (r *runner[V]) init(source V) {
	r.dist[source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem[V]{id: source, dist: 0})
}

// process is the core loop of Dijkstra's algorithm. It repeatedly extracts the vertex
// with the minimum distance from the source and relaxes its outgoing edges.
//
// The loop ends when the heap is empty and every reachable vertex is final.
func (r *runner[V]) process() error {
	for r.pq.Len() > 0 {
		// 1) Pop the smallest-distance item from the heap.
		item := heap.Pop(&r.pq).(*nodeItem[V])
		u := item.id

		// 2) Skip stale heap entries.
		if r.visited[u] {
			continue
		}

		// 3) Mark u as visited. Its shortest distance is now final.
		r.visited[u] = true

		// 4) Relax all outgoing edges from u.
		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax examines each edge outgoing from vertex u and attempts to improve distances to its neighbors.
//
// Assumes r.dist[u] is finalized before calling relax(u).
func (r *runner[V]) relax(u V) error {
	for _, e := range r.g.Edges(u) {
		if e.Weight < 0 {
			return fmt.Errorf("%w: edge %v→%v weight=%d", ErrNegativeWeight, u, e.To, e.Weight)
		}

		newDist := r.dist[u] + e.Weight
		// strictly better only, so equal distances keep the first predecessor
		if cur, ok := r.dist[e.To]; ok && newDist >= cur {
			continue
		}

		r.dist[e.To] = newDist
		r.prev[e.To] = u
		heap.Push(&r.pq, &nodeItem[V]{id: e.To, dist: newDist})
	}

	return nil
}

// nodeItem represents a vertex and its current distance from the source.
type nodeItem[V comparable] struct {
	id   V     // vertex
	dist int64 // distance from source
}

// nodePQ is a min-heap (priority queue) of *nodeItem, ordered by nodeItem.dist ascending.
// When we find a shorter distance to an existing vertex v, we push a new *nodeItem onto
// the heap. The outdated entry remains but is ignored when popped (checked via visited[v]).
type nodePQ[V comparable] []*nodeItem[V]

// Len returns the number of items in the heap.
func (pq nodePQ[V]) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq nodePQ[V]) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap swaps two elements in the heap.
func (pq nodePQ[V]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ[V]) Push(x any) { *pq = append(*pq, x.(*nodeItem[V])) }

// Pop removes and returns the smallest element from the heap.
func (pq *nodePQ[V]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
