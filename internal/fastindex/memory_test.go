package fastindex

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryIndex_FIFOOrder(t *testing.T) {
	ctx := context.Background()
	idx := NewMemoryIndex()

	require.NoError(t, idx.Push(ctx, 1, 10, 11, 12))

	for _, want := range []int{10, 11, 12} {
		queueID, dataID, ok, err := idx.PopFirstNonEmpty(ctx, []int{1})
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, 1, queueID)
		assert.Equal(t, want, dataID)
	}

	_, _, ok, err := idx.PopFirstNonEmpty(ctx, []int{1})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryIndex_PopFirstNonEmptySkipsEmptyQueues(t *testing.T) {
	ctx := context.Background()
	idx := NewMemoryIndex()

	require.NoError(t, idx.Push(ctx, 3, 30))

	queueID, dataID, ok, err := idx.PopFirstNonEmpty(ctx, []int{1, 2, 3})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 3, queueID)
	assert.Equal(t, 30, dataID)
}

func TestMemoryIndex_PushFrontServedNext(t *testing.T) {
	ctx := context.Background()
	idx := NewMemoryIndex()

	require.NoError(t, idx.Push(ctx, 1, 10, 11))
	require.NoError(t, idx.PushFront(ctx, 1, 99))

	_, dataID, ok, err := idx.PopFirstNonEmpty(ctx, []int{1})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 99, dataID)
}

func TestMemoryIndex_PopQueueTakesTail(t *testing.T) {
	ctx := context.Background()
	idx := NewMemoryIndex()

	require.NoError(t, idx.Push(ctx, 1, 10, 11, 12))

	dataID, ok, err := idx.PopQueue(ctx, 1)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 12, dataID)

	members, err := idx.Members(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{10, 11}, members)
}

func TestMemoryIndex_Clear(t *testing.T) {
	ctx := context.Background()
	idx := NewMemoryIndex()

	require.NoError(t, idx.Push(ctx, 1, 10))
	require.NoError(t, idx.Push(ctx, 2, 20))
	require.NoError(t, idx.Clear(ctx))

	for _, queueID := range []int{1, 2} {
		members, err := idx.Members(ctx, queueID)
		require.NoError(t, err)
		assert.Empty(t, members)
	}
}

func TestMemoryIndex_ConcurrentPopsNeverDuplicate(t *testing.T) {
	ctx := context.Background()
	idx := NewMemoryIndex()

	const items = 200
	ids := make([]int, items)
	for i := range ids {
		ids[i] = i + 1
	}
	require.NoError(t, idx.Push(ctx, 1, ids...))

	var mu sync.Mutex
	seen := make(map[int]int)

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				_, dataID, ok, err := idx.PopFirstNonEmpty(ctx, []int{1})
				assert.NoError(t, err)
				if !ok {
					return
				}
				mu.Lock()
				seen[dataID]++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Len(t, seen, items)
	for dataID, count := range seen {
		assert.Equal(t, 1, count, "data %d popped %d times", dataID, count)
	}
}
