package Queues

// Queue is a FIFO queue. It isn't safe for concurrent use.
type Queue[T any] interface {
	Push(item T)
	//Pop the oldest item. Returns *EmptyQueueError when there is none.
	Pop() (T, error)
	//Peek at the oldest item, the zero value of T when empty.
	Peek() T
	Empty() bool
}

// ArrayQueue is a Queue backed by a growable ring buffer.
type ArrayQueue[T any] interface {
	Queue[T]
	Shrink()
	Clear()
	Size() uint
}

type EmptyQueueError struct {
}

func (e *EmptyQueueError) Error() string {
	return "queue is empty: cannot pop"
}
