package word2vec

import "container/heap"

/*
HierarchicalSoftmax approximates the softmax by arranging the vocabulary as
the leaves of a binary Huffman tree, reducing the per-pair cost from the
vocabulary size to the tree depth.

The tree is built once by repeatedly merging the two lowest-count nodes until
a single root remains. Every leaf records the branch bits (Code) and the
internal-node indices (Points) on its root-to-leaf path.
*/
type HierarchicalSoftmax struct {
	nodes []treeNode
	root  int
}

/*
treeNode is one node of the Huffman tree arena.

Children are arena indices rather than embedded copies. Leaves carry the
vocabulary index they represent and have no children; internal nodes carry an
output-layer row index.
*/
type treeNode struct {
	count int
	left  int
	right int
	// vocabulary index for leaves, -1 for internal nodes
	vocabIndex int
	// output-layer row index for internal nodes, -1 for leaves
	outputIndex int
}

/*
NewHierarchicalSoftmax creates an unstructured hierarchical softmax
approximator
*/
func NewHierarchicalSoftmax() *HierarchicalSoftmax {
	return &HierarchicalSoftmax{root: -1}
}

// mergeHeap is a min-heap over arena indices keyed on node count
type mergeHeap struct {
	arena *[]treeNode
	items []int
}

func (h mergeHeap) Len() int { return len(h.items) }
func (h mergeHeap) Less(i, j int) bool {
	a, b := (*h.arena)[h.items[i]], (*h.arena)[h.items[j]]
	if a.count != b.count {
		return a.count < b.count
	}
	return h.items[i] < h.items[j]
}
func (h mergeHeap) Swap(i, j int)       { h.items[i], h.items[j] = h.items[j], h.items[i] }
func (h *mergeHeap) Push(x interface{}) { h.items = append(h.items, x.(int)) }
func (h *mergeHeap) Pop() interface{} {
	old := h.items
	n := len(old)
	item := old[n-1]
	h.items = old[0 : n-1]
	return item
}

/*
StructureSampling builds the Huffman tree from the vocabulary counts and
assigns every leaf its code and points path
*/
func (hs *HierarchicalSoftmax) StructureSampling(vocab *Vocabulary) {
	vocabCount := vocab.Count()
	hs.root = -1
	if vocabCount == 0 {
		hs.nodes = nil
		return
	}
	hs.nodes = make([]treeNode, 0, 2*vocabCount-1)

	merge := &mergeHeap{arena: &hs.nodes}
	heap.Init(merge)

	for i, word := range vocab.Words {
		hs.nodes = append(hs.nodes, treeNode{
			count:       vocab.Entries[word].Count,
			left:        -1,
			right:       -1,
			vocabIndex:  i,
			outputIndex: -1,
		})
		heap.Push(merge, i)
	}

	// Merge the two lowest-count nodes until one root remains. Internal
	// nodes receive output indices in creation order, 0..vocabCount-2.
	for merge.Len() > 1 {
		left := heap.Pop(merge).(int)
		right := heap.Pop(merge).(int)

		node := treeNode{
			count:       hs.nodes[left].count + hs.nodes[right].count,
			left:        left,
			right:       right,
			vocabIndex:  -1,
			outputIndex: len(hs.nodes) - vocabCount,
		}
		hs.nodes = append(hs.nodes, node)
		heap.Push(merge, len(hs.nodes)-1)
	}

	if merge.Len() == 1 {
		hs.root = heap.Pop(merge).(int)
	}

	hs.assignPaths(vocab)
}

// assignPaths walks the tree from the root, appending bit 0 and the internal
// node's index for every left branch and bit 1 for every right branch, and
// records the accumulated path on each leaf's vocabulary entry.
func (hs *HierarchicalSoftmax) assignPaths(vocab *Vocabulary) {
	if hs.root < 0 {
		return
	}

	type frame struct {
		node   int
		code   []byte
		points []int
	}

	stack := []frame{{node: hs.root}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		node := hs.nodes[f.node]
		if node.vocabIndex >= 0 {
			entry := vocab.Entries[vocab.Words[node.vocabIndex]]
			entry.Code = f.code
			entry.Points = f.points
			continue
		}

		points := make([]int, len(f.points)+1)
		copy(points, f.points)
		points[len(f.points)] = node.outputIndex

		leftCode := make([]byte, len(f.code)+1)
		copy(leftCode, f.code)
		leftCode[len(f.code)] = 0

		rightCode := make([]byte, len(f.code)+1)
		copy(rightCode, f.code)
		rightCode[len(f.code)] = 1

		stack = append(stack,
			frame{node: node.left, code: leftCode, points: points},
			frame{node: node.right, code: rightCode, points: points},
		)
	}
}

/*
OutputUnits returns one output row per internal tree node
*/
func (hs *HierarchicalSoftmax) OutputUnits(vocabCount int) int {
	if vocabCount < 2 {
		return 0
	}
	return vocabCount - 1
}

/*
OutputIndices returns the internal-node path for the target word
*/
func (hs *HierarchicalSoftmax) OutputIndices(target *VocabEntry) []int {
	return target.Points
}

/*
Gradient returns (1 - activation - code) * alpha per path position
*/
func (hs *HierarchicalSoftmax) Gradient(activations []float64, target *VocabEntry, alpha float64) []float64 {
	gradient := make([]float64, len(activations))
	for u, activation := range activations {
		gradient[u] = (1 - activation - float64(target.Code[u])) * alpha
	}
	return gradient
}
