package datastructure

import (
	"errors"
	"fmt"

	"github.com/lintang-b-s/wirenet/pkg"
)

var (
	ErrHeapEmpty          = errors.New("heap is empty")
	ErrInvalidDecreaseKey = errors.New("invalid index or new value")
)

// IndexedMinHeap d-ary min-heap priorityqueue over vertex indices in [0, capacity). Each vertex is present at most
// once and its rank can be lowered in place with DecreaseKey.
type IndexedMinHeap struct {
	heap []Index   // heap position -> vertex
	pos  []int     // vertex -> heap position, -1 if not in the heap
	rank []float64 // vertex -> current rank
	d    int
}

func NewIndexedBinaryHeap(capacity int) *IndexedMinHeap {
	return NewIndexedDAryHeap(capacity, 2)
}

func NewIndexedFourAryHeap(capacity int) *IndexedMinHeap {
	return NewIndexedDAryHeap(capacity, 4)
}

func NewIndexedDAryHeap(capacity, d int) *IndexedMinHeap {
	if d < 2 {
		panic(fmt.Sprintf("heap arity must be at least 2, got %d", d))
	}
	pos := make([]int, capacity)
	for i := range pos {
		pos[i] = -1
	}
	return &IndexedMinHeap{
		heap: make([]Index, 0, capacity),
		pos:  pos,
		rank: make([]float64, capacity),
		d:    d,
	}
}

// parent index of the parent of index
func (h *IndexedMinHeap) parent(index int) int {
	return (index - 1) / h.d
}

func (h *IndexedMinHeap) less(i, j int) bool {
	return h.rank[h.heap[i]] < h.rank[h.heap[j]]
}

// heapifyUp swaps index with its parent while the parent ranks higher. O(log N).
func (h *IndexedMinHeap) heapifyUp(index int) {
	for index != 0 && h.less(index, h.parent(index)) {
		h.Swap(index, h.parent(index))
		index = h.parent(index)
	}
}

// heapifyDown swaps index with its smallest child while that child ranks lower. O(d log N).
func (h *IndexedMinHeap) heapifyDown(index int) {
	for {
		leftMostChild := index*h.d + 1
		if leftMostChild >= len(h.heap) {
			return
		}

		sentinel := leftMostChild + h.d
		if sentinel > len(h.heap) {
			sentinel = len(h.heap)
		}

		smallest := leftMostChild
		for i := leftMostChild + 1; i < sentinel; i++ {
			if h.less(i, smallest) {
				smallest = i
			}
		}

		if !h.less(smallest, index) {
			return
		}
		h.Swap(index, smallest)
		index = smallest
	}
}

func (h *IndexedMinHeap) Swap(i, j int) {
	h.heap[i], h.heap[j] = h.heap[j], h.heap[i]

	h.pos[h.heap[i]] = i
	h.pos[h.heap[j]] = j
}

func (h *IndexedMinHeap) assertVertex(v Index) {
	if int(v) >= len(h.pos) {
		panic(fmt.Sprintf("vertex %d out of heap range [0, %d)", v, len(h.pos)))
	}
}

func (h *IndexedMinHeap) IsEmpty() bool {
	return len(h.heap) == 0
}

func (h *IndexedMinHeap) Size() int {
	return len(h.heap)
}

func (h *IndexedMinHeap) Contains(v Index) bool {
	h.assertVertex(v)
	return h.pos[v] >= 0
}

// GetRank returns the rank of v, v must be in the heap.
func (h *IndexedMinHeap) GetRank(v Index) float64 {
	if !h.Contains(v) {
		panic(fmt.Sprintf("vertex %d is not in the heap", v))
	}
	return h.rank[v]
}

func (h *IndexedMinHeap) Clear() {
	for _, v := range h.heap {
		h.pos[v] = -1
	}
	h.heap = h.heap[:0]
}

// GetMin returns the vertex with minimum rank (heap index 0) without removing it.
func (h *IndexedMinHeap) GetMin() (Index, error) {
	if h.IsEmpty() {
		return 0, ErrHeapEmpty
	}
	return h.heap[0], nil
}

func (h *IndexedMinHeap) GetMinRank() float64 {
	if h.IsEmpty() {
		return pkg.INF_WEIGHT
	}
	return h.rank[h.heap[0]]
}

// Insert adds v with the given rank. v must not already be in the heap. O(log N).
func (h *IndexedMinHeap) Insert(v Index, rank float64) {
	if h.Contains(v) {
		panic(fmt.Sprintf("vertex %d is already in the heap", v))
	}
	h.heap = append(h.heap, v)
	index := len(h.heap) - 1
	h.pos[v] = index
	h.rank[v] = rank
	h.heapifyUp(index)
}

// ExtractMin removes and returns the vertex with minimum rank. O(d log N).
func (h *IndexedMinHeap) ExtractMin() (Index, error) {
	if h.IsEmpty() {
		return 0, ErrHeapEmpty
	}
	root := h.heap[0]

	last := len(h.heap) - 1
	h.Swap(0, last)
	h.heap = h.heap[:last]
	h.pos[root] = -1
	if len(h.heap) > 0 {
		h.heapifyDown(0)
	}

	return root, nil
}

// DecreaseKey lowers the rank of v, which must be in the heap. A rank greater than the current one is rejected.
// O(log N).
func (h *IndexedMinHeap) DecreaseKey(v Index, rank float64) error {
	h.assertVertex(v)
	itemPos := h.pos[v]
	if itemPos < 0 || itemPos >= h.Size() || h.rank[v] < rank {
		return fmt.Errorf("%w: vertex %d rank %v", ErrInvalidDecreaseKey, v, rank)
	}

	h.rank[v] = rank
	h.heapifyUp(itemPos)
	return nil
}

// isHeap reports whether every vertex ranks no higher than its children and pos mirrors heap.
func (h *IndexedMinHeap) isHeap() bool {
	for i, v := range h.heap {
		if h.pos[v] != i {
			return false
		}
		if i > 0 && h.less(i, h.parent(i)) {
			return false
		}
	}
	return true
}
