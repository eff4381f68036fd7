package fastindex

import (
	"context"
	"sync"
)

// MemoryIndex is an in-process Index used by tests and single-node setups.
// A single mutex serializes every operation, which gives PopFirstNonEmpty
// the same indivisibility the Redis script provides.
type MemoryIndex struct {
	mu    sync.Mutex
	lists map[int][]int
}

func NewMemoryIndex() *MemoryIndex {
	return &MemoryIndex{lists: make(map[int][]int)}
}

func (x *MemoryIndex) Push(_ context.Context, queueID int, dataIDs ...int) error {
	if len(dataIDs) == 0 {
		return nil
	}
	x.mu.Lock()
	defer x.mu.Unlock()
	x.lists[queueID] = append(x.lists[queueID], dataIDs...)
	return nil
}

func (x *MemoryIndex) PushFront(_ context.Context, queueID int, dataID int) error {
	x.mu.Lock()
	defer x.mu.Unlock()
	x.lists[queueID] = append([]int{dataID}, x.lists[queueID]...)
	return nil
}

func (x *MemoryIndex) PopQueue(_ context.Context, queueID int) (int, bool, error) {
	x.mu.Lock()
	defer x.mu.Unlock()
	list := x.lists[queueID]
	if len(list) == 0 {
		return 0, false, nil
	}
	// tail pop, mirroring the Redis RPOP used for single-queue pops
	dataID := list[len(list)-1]
	x.lists[queueID] = list[:len(list)-1]
	return dataID, true, nil
}

func (x *MemoryIndex) PopFirstNonEmpty(_ context.Context, queueIDs []int) (int, int, bool, error) {
	x.mu.Lock()
	defer x.mu.Unlock()
	for _, queueID := range queueIDs {
		list := x.lists[queueID]
		if len(list) == 0 {
			continue
		}
		dataID := list[0]
		x.lists[queueID] = list[1:]
		return queueID, dataID, true, nil
	}
	return 0, 0, false, nil
}

func (x *MemoryIndex) Members(_ context.Context, queueID int) ([]int, error) {
	x.mu.Lock()
	defer x.mu.Unlock()
	list := x.lists[queueID]
	out := make([]int, len(list))
	copy(out, list)
	return out, nil
}

func (x *MemoryIndex) Clear(_ context.Context) error {
	x.mu.Lock()
	defer x.mu.Unlock()
	x.lists = make(map[int][]int)
	return nil
}

func (x *MemoryIndex) Close() error { return nil }
