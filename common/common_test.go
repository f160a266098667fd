package common

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/only4sim/binius/field/tower"
)

func TestLog2(t *testing.T) {
	assert.Equal(t, 0, Log2(1))
	assert.Equal(t, 1, Log2(2))
	assert.Equal(t, 1, Log2(3))
	assert.Equal(t, 5, Log2(32))
	assert.Equal(t, 5, Log2(63))
}

func TestLog2Ceil(t *testing.T) {
	assert.Equal(t, 0, Log2Ceil(1))
	assert.Equal(t, 1, Log2Ceil(2))
	assert.Equal(t, 2, Log2Ceil(3))
	assert.Equal(t, 5, Log2Ceil(32))
	assert.Equal(t, 6, Log2Ceil(33))
}

func TestIntoChunkRanges(t *testing.T) {
	for _, n := range []int{1, 100, MinChunkSize, MinChunkSize + 1, 10 * MinChunkSize} {
		ranges := IntoChunkRanges(4, n)

		// the ranges tile [0, n) without gaps or overlaps
		next := 0
		for _, r := range ranges {
			assert.Equal(t, next, r.Begin)
			assert.Greater(t, r.End, r.Begin)
			next = r.End
		}
		assert.Equal(t, n, next)
	}
}

func TestSliceToChunkedSlice(t *testing.T) {
	slice := RandomArray[tower.B32](64)
	chunks := SliceToChunkedSlice(slice, 16)

	assert.Len(t, chunks, 4)
	assert.Equal(t, slice[16:32], chunks[1])

	assert.Panics(t, func() { SliceToChunkedSlice(slice, 7) })
}

func TestParallelize(t *testing.T) {
	var total int64
	Parallelize(1000, func(start, stop int) {
		for i := start; i < stop; i++ {
			atomic.AddInt64(&total, int64(i))
		}
	})

	assert.Equal(t, int64(999*1000/2), total)
}

func TestTryDispatch(t *testing.T) {
	// below the minimum task size nothing is dispatched
	nbTasks := TryDispatch(10, 100, func(int, int) {
		t.Fatal("dispatched a task below the minimum size")
	})
	assert.Equal(t, 0, nbTasks)

	// dispatched ranges tile [0, n) without gaps or overlaps
	n := 100000
	var ranges []ChunkRange
	nbTasks = TryDispatch(n, 100, func(start, stop int) {
		ranges = append(ranges, ChunkRange{Begin: start, End: stop})
	})

	assert.Greater(t, nbTasks, 1)
	assert.Len(t, ranges, nbTasks)

	next := 0
	for _, r := range ranges {
		assert.Equal(t, next, r.Begin)
		assert.Greater(t, r.End, r.Begin)
		next = r.End
	}
	assert.Equal(t, n, next)
}

func TestDerivePointsIsDeterministic(t *testing.T) {
	a := DerivePoints[tower.B128]("tag", 8)
	b := DerivePoints[tower.B128]("tag", 8)
	assert.Equal(t, a, b)

	c := DerivePoints[tower.B128]("other-tag", 8)
	assert.NotEqual(t, a, c)
}
