// Package fastindex is the low-latency mirror of unassigned queue
// membership. It is never the source of truth: the durable store is, and
// queue.Reconciler can rebuild the index from it at any time.
package fastindex

import "context"

// Index is one ranked list per queue with atomic pops. Implementations must
// make PopFirstNonEmpty indivisible with respect to other callers; that
// single-operation guarantee is what prevents two dispatchers from racing a
// nearly-empty queue.
type Index interface {
	// Push appends items to the back of a queue's list, in order.
	Push(ctx context.Context, queueID int, dataIDs ...int) error

	// PushFront puts an item at the head so it is served next. Used when a
	// labeler releases an assignment.
	PushFront(ctx context.Context, queueID int, dataID int) error

	// PopQueue removes and returns one item from a single queue. Callers
	// wanting first-nonempty-of-many semantics must use PopFirstNonEmpty
	// instead of probing queues one by one.
	PopQueue(ctx context.Context, queueID int) (dataID int, ok bool, err error)

	// PopFirstNonEmpty atomically pops the head of the first nonempty queue
	// in the given order. ok is false when every queue is empty.
	PopFirstNonEmpty(ctx context.Context, queueIDs []int) (queueID, dataID int, ok bool, err error)

	// Members returns a queue's current contents, head first.
	Members(ctx context.Context, queueID int) ([]int, error)

	// Clear removes every queue list. Only the reconciler calls this, with
	// dispatch traffic paused.
	Clear(ctx context.Context) error

	Close() error
}
