package datastructure

import (
	"errors"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestIndexedMinHeapExtractOrder(t *testing.T) {
	testCases := []struct {
		name  string
		arity int
		ranks []float64
	}{
		{
			name:  "binary heap",
			arity: 2,
			ranks: []float64{5, 3, 8, 1, 9, 2, 7},
		},
		{
			name:  "four-ary heap",
			arity: 4,
			ranks: []float64{5, 3, 8, 1, 9, 2, 7},
		},
		{
			name:  "single element",
			arity: 4,
			ranks: []float64{42},
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			h := NewIndexedDAryHeap(len(tt.ranks), tt.arity)
			for v, r := range tt.ranks {
				h.Insert(Index(v), r)
				require.True(t, h.isHeap())
			}

			want := append([]float64(nil), tt.ranks...)
			sort.Float64s(want)

			got := make([]float64, 0, len(tt.ranks))
			for !h.IsEmpty() {
				v, err := h.ExtractMin()
				require.NoError(t, err)
				assert.False(t, h.Contains(v))
				got = append(got, tt.ranks[v])
				require.True(t, h.isHeap())
			}
			assert.Equal(t, want, got)
		})
	}
}

func TestIndexedMinHeapDecreaseKey(t *testing.T) {
	h := NewIndexedBinaryHeap(4)
	h.Insert(0, 10)
	h.Insert(1, 20)
	h.Insert(2, 30)

	require.NoError(t, h.DecreaseKey(2, 5))
	assert.True(t, h.isHeap())
	assert.Equal(t, 5.0, h.GetRank(2))
	assert.Equal(t, 5.0, h.GetMinRank())

	minV, err := h.GetMin()
	require.NoError(t, err)
	assert.Equal(t, Index(2), minV)

	// equal rank is allowed
	require.NoError(t, h.DecreaseKey(1, 20))

	err = h.DecreaseKey(0, 11)
	assert.True(t, errors.Is(err, ErrInvalidDecreaseKey))
	assert.Equal(t, 10.0, h.GetRank(0))

	err = h.DecreaseKey(3, 1)
	assert.True(t, errors.Is(err, ErrInvalidDecreaseKey), "vertex not in heap")
}

func TestIndexedMinHeapEmpty(t *testing.T) {
	h := NewIndexedFourAryHeap(2)
	assert.True(t, h.IsEmpty())
	assert.Equal(t, 0, h.Size())

	_, err := h.ExtractMin()
	assert.ErrorIs(t, err, ErrHeapEmpty)
	_, err = h.GetMin()
	assert.ErrorIs(t, err, ErrHeapEmpty)

	h.Insert(1, 3)
	h.Clear()
	assert.True(t, h.IsEmpty())
	assert.False(t, h.Contains(1))
}

func TestIndexedMinHeapPreconditions(t *testing.T) {
	h := NewIndexedBinaryHeap(2)
	h.Insert(0, 1)

	assert.Panics(t, func() { h.Insert(0, 2) }, "duplicate insert")
	assert.Panics(t, func() { h.Contains(2) }, "out of range")
	assert.Panics(t, func() { h.GetRank(1) }, "absent vertex")
	assert.Panics(t, func() { NewIndexedDAryHeap(2, 1) }, "arity")
}

func TestIndexedMinHeapTieBreakIsDeterministic(t *testing.T) {
	run := func() []Index {
		h := NewIndexedFourAryHeap(8)
		for v := 0; v < 8; v++ {
			h.Insert(Index(v), float64(v%2))
		}
		order := make([]Index, 0, 8)
		for !h.IsEmpty() {
			v, _ := h.ExtractMin()
			order = append(order, v)
		}
		return order
	}

	first := run()
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, run())
	}
}

func TestIndexedMinHeapRandomized(t *testing.T) {
	rd := rand.New(rand.NewSource(7))
	n := 200
	h := NewIndexedDAryHeap(n, 3)
	ranks := make([]float64, n)

	for v := 0; v < n; v++ {
		ranks[v] = rd.Float64() * 1000
		h.Insert(Index(v), ranks[v])
	}
	for i := 0; i < 300; i++ {
		v := Index(rd.Intn(n))
		newRank := ranks[v] * rd.Float64()
		require.NoError(t, h.DecreaseKey(v, newRank))
		ranks[v] = newRank
	}
	require.True(t, h.isHeap())

	prev := -1.0
	for !h.IsEmpty() {
		v, err := h.ExtractMin()
		require.NoError(t, err)
		assert.GreaterOrEqual(t, ranks[v], prev)
		prev = ranks[v]
	}
}
