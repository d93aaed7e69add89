package pkg

import (
	"container/heap"
)

// Huffman coding over runes using frequency-based tree construction

type node struct {
	symbol rune
	weight int
	left   *node
	right  *node
	leaf   bool
	index  int // for heap
}

type nodeHeap []*node

func (h nodeHeap) Len() int           { return len(h) }
func (h nodeHeap) Less(i, j int) bool { return h[i].weight < h[j].weight }
func (h nodeHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}
func (h *nodeHeap) Push(x interface{}) {
	n := len(*h)
	nd := x.(*node)
	nd.index = n
	*h = append(*h, nd)
}
func (h *nodeHeap) Pop() interface{} {
	old := *h
	n := len(old)
	nd := old[n-1]
	*h = old[0 : n-1]
	return nd
}

// countFrequencies counts each rune in text. The returned order slice holds
// the distinct symbols in first-appearance order; inserting leaves in that
// order makes the generated code table a deterministic function of the text,
// since map iteration order varies between runs.
func countFrequencies(text string) (map[rune]int, []rune) {
	freqs := make(map[rune]int)
	var order []rune
	for _, r := range text {
		if _, seen := freqs[r]; !seen {
			order = append(order, r)
		}
		freqs[r]++
	}
	return freqs, order
}

// buildTree builds a Huffman tree from the frequency table, inserting leaves
// in the given symbol order. Returns nil for an empty table.
//
// A single distinct symbol gets wrapped in an internal node with only a left
// child, so its root-to-leaf path has length 1 and its code is never empty.
// This is the only tree shape with a one-child internal node.
func buildTree(freqs map[rune]int, order []rune) *node {
	if len(freqs) == 0 {
		return nil
	}

	h := &nodeHeap{}
	heap.Init(h)
	for _, r := range order {
		heap.Push(h, &node{symbol: r, weight: freqs[r], leaf: true})
	}

	if h.Len() == 1 {
		leaf := heap.Pop(h).(*node)
		return &node{weight: leaf.weight, left: leaf}
	}

	for h.Len() > 1 {
		left := heap.Pop(h).(*node)
		right := heap.Pop(h).(*node)
		parent := &node{
			weight: left.weight + right.weight,
			left:   left,
			right:  right,
		}
		heap.Push(h, parent)
	}

	return heap.Pop(h).(*node)
}

type walkFrame struct {
	n    *node
	path string
}

// generateCodes walks the tree with an explicit stack ("0" per left descent,
// "1" per right) and records each leaf's path. Tree depth is linear in the
// alphabet size for skewed frequency distributions, so no recursion.
func generateCodes(root *node) map[rune]string {
	codes := make(map[rune]string)
	if root == nil {
		return codes
	}

	stack := []walkFrame{{n: root, path: ""}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.n.leaf {
			if f.path == "" {
				// Single unique symbol case
				codes[f.n.symbol] = "0"
			} else {
				codes[f.n.symbol] = f.path
			}
			continue
		}
		if f.n.right != nil {
			stack = append(stack, walkFrame{n: f.n.right, path: f.path + "1"})
		}
		if f.n.left != nil {
			stack = append(stack, walkFrame{n: f.n.left, path: f.path + "0"})
		}
	}

	return codes
}
