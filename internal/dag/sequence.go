package dag

import (
	"container/heap"
	"fmt"
	"strings"

	"github.com/vk/deploygo/internal/model"
)

// CyclicDependencyError reports a dependency cycle. Package is one
// participating package (a built one whenever the cycle contains any) and
// Members lists the full cycle in dependency order.
type CyclicDependencyError struct {
	Package model.Package
	Members []model.Package
}

func (e *CyclicDependencyError) Error() string {
	names := make([]string, 0, len(e.Members)+1)
	for _, m := range e.Members {
		names = append(names, m.String())
	}
	if len(e.Members) > 0 {
		names = append(names, e.Members[0].String())
	}
	return fmt.Sprintf("cyclic dependency involving %s (cycle: %s)", e.Package, strings.Join(names, " -> "))
}

// Sequence returns every node in dependency-first order: for each edge the
// source precedes the target, so declared dependencies and inducted
// providers always come before their dependants. Ties are broken by node
// id, which is first-encounter order, making the sequence identical across
// runs for the same document.
func (g *Graph) Sequence() ([]*Node, error) {
	indegree := make([]int, len(g.nodes))
	for id := range g.nodes {
		indegree[id] = len(g.ins[id])
	}

	ready := &idHeap{}
	for id := range g.nodes {
		if indegree[id] == 0 {
			heap.Push(ready, id)
		}
	}

	order := make([]*Node, 0, len(g.nodes))
	for ready.Len() > 0 {
		id := heap.Pop(ready).(int)
		order = append(order, g.nodes[id])
		for _, e := range g.outs[id] {
			indegree[e.To]--
			if indegree[e.To] == 0 {
				heap.Push(ready, e.To)
			}
		}
	}

	if len(order) < len(g.nodes) {
		return nil, g.cycleError(indegree)
	}
	return order, nil
}

// SequenceBuilt returns the built nodes of Sequence, in the same order.
func (g *Graph) SequenceBuilt() ([]*Node, error) {
	order, err := g.Sequence()
	if err != nil {
		return nil, err
	}
	built := order[:0:0]
	for _, n := range order {
		if n.kind == KindBuilt {
			built = append(built, n)
		}
	}
	return built, nil
}

// cycleError recovers an actual cycle from the nodes Kahn's algorithm could
// not sequence. Every such node still has an unsequenced predecessor, so
// walking predecessors must eventually revisit a node and close the cycle.
func (g *Graph) cycleError(indegree []int) *CyclicDependencyError {
	remaining := make(map[int]bool)
	start := -1
	for id := range g.nodes {
		if indegree[id] > 0 {
			remaining[id] = true
			if start == -1 {
				start = id
			}
		}
	}

	seenAt := make(map[int]int)
	var path []int
	current := start
	for {
		if pos, ok := seenAt[current]; ok {
			cycle := path[pos:]
			// The predecessor walk runs against the edges; reverse it so
			// members read in dependency order.
			members := make([]model.Package, 0, len(cycle))
			for i := len(cycle) - 1; i >= 0; i-- {
				members = append(members, g.nodes[cycle[i]].pkg)
			}
			culprit := members[0]
			for i := len(cycle) - 1; i >= 0; i-- {
				if g.nodes[cycle[i]].kind == KindBuilt {
					culprit = g.nodes[cycle[i]].pkg
					break
				}
			}
			return &CyclicDependencyError{Package: culprit, Members: members}
		}
		seenAt[current] = len(path)
		path = append(path, current)
		for _, e := range g.ins[current] {
			if remaining[e.From] {
				current = e.From
				break
			}
		}
	}
}

// idHeap is a min-heap of node ids, used to drain the ready set of Kahn's
// algorithm in insertion order.
type idHeap []int

func (h idHeap) Len() int           { return len(h) }
func (h idHeap) Less(i, j int) bool { return h[i] < h[j] }
func (h idHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *idHeap) Push(x any)        { *h = append(*h, x.(int)) }
func (h *idHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}
