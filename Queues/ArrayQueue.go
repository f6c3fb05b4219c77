package Queues

// circArrQ is a ring buffer. Items live in content[head], content[head+1], ...
// wrapping around, sz of them; tail is the slot the next Push writes.
type circArrQ[T any] struct {
	sz, head, tail uint
	content        []T
}

// MakeArrayQueue returns an empty ArrayQueue with room for initCap items
// before its first growth.
func MakeArrayQueue[T any](initCap uint) ArrayQueue[T] {
	return &circArrQ[T]{content: make([]T, initCap)}
}

func (q *circArrQ[T]) Empty() bool {
	return q.sz == 0
}

// resize moves the items to a new buffer of newLen>=sz slots starting at index 0.
func (q *circArrQ[T]) resize(newLen uint) {
	nc := make([]T, newLen)
	if end := q.head + q.sz; end <= uint(len(q.content)) {
		copy(nc, q.content[q.head:end])
	} else {
		n := uint(copy(nc, q.content[q.head:]))
		copy(nc[n:], q.content[:q.sz-n])
	}
	q.content, q.head, q.tail = nc, 0, q.sz%newLen
}

// Shrink the buffer to fit the current items.
func (q *circArrQ[T]) Shrink() {
	q.resize(q.sz | 1)
}

// Clear the queue, the buffer is kept.
func (q *circArrQ[T]) Clear() {
	clear(q.content)
	q.tail, q.head, q.sz = 0, 0, 0
}

func (q *circArrQ[T]) Size() uint {
	return q.sz
}

func (q *circArrQ[T]) Push(item T) {
	if q.sz == uint(len(q.content)) {
		q.resize(q.sz*3/2 + 1)
	}
	q.content[q.tail] = item
	q.tail = (q.tail + 1) % uint(len(q.content))
	q.sz++
}

func (q *circArrQ[T]) Pop() (T, error) {
	if q.Empty() {
		return *new(T), &EmptyQueueError{}
	}
	t := q.content[q.head]
	q.content[q.head] = *new(T)
	q.head = (q.head + 1) % uint(len(q.content))
	q.sz--
	return t, nil
}

func (q *circArrQ[T]) Peek() T {
	if q.Empty() {
		return *new(T)
	}
	return q.content[q.head]
}
