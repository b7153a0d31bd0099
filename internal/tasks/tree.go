package tasks

// Node is a task with its ordered subtasks.
type Node struct {
	Record   Record
	Children []*Node
}

type frame struct {
	node *Node
	idx  int
}

// BuildForest rebuilds the task hierarchy of one list.
//
// Roots are records without a parent, with a parent id that matches no record
// (orphans) or with themselves as parent; they keep their input order.
// Records only reachable through a parent cycle are appended afterwards: the
// first unvisited member becomes a root and the edge back to it is dropped.
// If an id occurs twice, the first record owns the children.
func BuildForest(records []Record) []*Node {
	forest, _ := BuildForestWithCycles(records)
	return forest
}

// BuildForestWithCycles is BuildForest that also reports the ids of the
// records that were promoted to roots to break a parent cycle.
func BuildForestWithCycles(records []Record) (forest []*Node, cycleRoots []string) {
	firstIdx := make(map[string]int, len(records))
	for i, r := range records {
		if _, seen := firstIdx[r.ID]; !seen {
			firstIdx[r.ID] = i
		}
	}

	children := make(map[int][]int)
	roots := make([]int, 0, len(records))
	for i, r := range records {
		if r.Parent != "" && r.Parent != r.ID {
			if p, ok := firstIdx[r.Parent]; ok && p != i {
				children[p] = append(children[p], i)
				continue
			}
		}
		roots = append(roots, i)
	}

	visited := make([]bool, len(records))
	forest = make([]*Node, 0, len(roots))

	grow := func(root int) *Node {
		top := &Node{Record: records[root]}
		visited[root] = true
		stack := []frame{{top, root}}
		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, c := range children[cur.idx] {
				if visited[c] {
					continue
				}
				visited[c] = true
				child := &Node{Record: records[c]}
				cur.node.Children = append(cur.node.Children, child)
				stack = append(stack, frame{child, c})
			}
		}
		return top
	}

	for _, i := range roots {
		forest = append(forest, grow(i))
	}
	// Zyklen: alles, was bisher nicht erreicht wurde
	for i := range records {
		if !visited[i] {
			cycleRoots = append(cycleRoots, records[i].ID)
			forest = append(forest, grow(i))
		}
	}
	return forest, cycleRoots
}

// Walk visits the forest in pre-order. depth is 0 for roots.
func Walk(forest []*Node, fn func(n *Node, depth int)) {
	type item struct {
		node  *Node
		depth int
	}
	stack := make([]item, 0, len(forest))
	for i := len(forest) - 1; i >= 0; i-- {
		stack = append(stack, item{forest[i], 0})
	}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		fn(cur.node, cur.depth)
		for i := len(cur.node.Children) - 1; i >= 0; i-- {
			stack = append(stack, item{cur.node.Children[i], cur.depth + 1})
		}
	}
}

// Prune returns a new forest without the records rejected by keep. The kept
// descendants of a removed node take its place under its parent, in order, so
// no subtask is lost. The input forest is left untouched.
func Prune(forest []*Node, keep func(Record) bool) []*Node {
	var order []*Node
	Walk(forest, func(n *Node, _ int) { order = append(order, n) })

	// Rückwärts: Kinder sind immer vor ihren Eltern fertig.
	replaced := make(map[*Node][]*Node, len(order))
	for i := len(order) - 1; i >= 0; i-- {
		n := order[i]
		var kids []*Node
		for _, c := range n.Children {
			kids = append(kids, replaced[c]...)
		}
		if keep(n.Record) {
			replaced[n] = []*Node{{Record: n.Record, Children: kids}}
		} else {
			replaced[n] = kids
		}
	}

	out := make([]*Node, 0, len(forest))
	for _, n := range forest {
		out = append(out, replaced[n]...)
	}
	return out
}

// Count returns the number of nodes in the forest.
func Count(forest []*Node) int {
	n := 0
	Walk(forest, func(*Node, int) { n++ })
	return n
}
