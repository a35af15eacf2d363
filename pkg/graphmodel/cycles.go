package graphmodel

// ContainsLoop reports whether the directed connection graph has a cycle.
//
// It runs a three-colour depth-first search over output connections with
// an explicit stack: a connection reaching a node that is still in
// progress is a back edge, and a back edge means a cycle. O(N+E).
func ContainsLoop(g *Graph) bool {
	const (
		white = iota // unvisited
		gray         // on the current DFS path
		black        // fully explored
	)

	succ := g.successors()
	color := make(map[NodeID]int, len(g.order))

	type frame struct {
		id   NodeID
		next int // index of the next successor to visit
	}

	for _, root := range g.order {
		if color[root] != white {
			continue
		}
		stack := []frame{{id: root}}
		color[root] = gray
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			children := succ[top.id]
			if top.next == len(children) {
				color[top.id] = black
				stack = stack[:len(stack)-1]
				continue
			}
			child := children[top.next]
			top.next++
			switch color[child] {
			case gray:
				return true
			case white:
				color[child] = gray
				stack = append(stack, frame{id: child})
			}
		}
	}
	return false
}

// Reaches reports whether a directed path of connections leads from one
// node to another. A node reaches itself.
func Reaches(g *Graph, from, to NodeID) bool {
	if from == to {
		return true
	}
	succ := g.successors()
	seen := map[NodeID]bool{from: true}
	stack := []NodeID{from}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, next := range succ[id] {
			if next == to {
				return true
			}
			if !seen[next] {
				seen[next] = true
				stack = append(stack, next)
			}
		}
	}
	return false
}

func (g *Graph) successors() map[NodeID][]NodeID {
	succ := make(map[NodeID][]NodeID, len(g.order))
	for _, c := range g.conns {
		succ[c.From] = append(succ[c.From], c.To)
	}
	return succ
}
