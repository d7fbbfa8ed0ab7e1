package queue

import "iter"

//go:generate go tool mockgen -destination=../../mocks/mock_$GOPACKAGE.go -package=mocks github.com/queuekit/queuekit/collection/$GOPACKAGE IQueue,IObservableQueue

// IQueue specifies the behaviour of a first-in, first-out (FIFO) collection.
// It is inspired by the work of https://github.com/hayageek/threadsafe/ and
// https://github.com/golang-collections/collections.
type IQueue[T any] interface {
	// Enqueue adds elements to the back of the queue.
	Enqueue(value ...T)
	// EnqueueSequence adds a sequence of elements to the back of the queue.
	EnqueueSequence(seq iter.Seq[T])
	// Dequeue removes and returns the element at the front of the queue. It returns ok true if the queue is not empty.
	Dequeue() (element T, ok bool)
	// Peek returns the element at the front of the queue without removing it. It returns ok true if the queue is not empty.
	Peek() (element T, ok bool)
	// IsEmpty states whether the queue is empty.
	IsEmpty() bool
	// Clear removes all elements from the queue.
	Clear()
	// Items returns a snapshot of all elements in FIFO order without modifying the queue.
	Items() []T
	// Values returns all the elements in the queue. The queue will be empty as a result.
	Values() iter.Seq[T]
	// Len returns the number of elements in the queue.
	Len() int
}

// IObservableQueue specifies the behaviour of a FIFO collection which notifies
// subscribers about every structural change it undergoes. Mutations fail with
// errors from the commonerrors package rather than being silently tolerated:
// dequeuing an empty queue returns commonerrors.ErrEmpty.
//
// Notification delivery is synchronous and happens on the mutating goroutine,
// in subscriber registration order: for every mutation, subscribers receive
// PropertyCount, then PropertyItems, then the structural Change describing the
// mutation. Implementations are not safe for concurrent use unless stated
// otherwise.
type IObservableQueue[T any] interface {
	// Enqueue appends elements at the back of the queue, evicting from the
	// front first when the queue is of fixed size and full.
	Enqueue(items ...T)
	// EnqueueSequence appends a sequence of elements at the back of the queue.
	EnqueueSequence(seq iter.Seq[T])
	// Dequeue removes and returns the element at the front of the queue.
	// It returns commonerrors.ErrEmpty when the queue holds no elements.
	Dequeue() (T, error)
	// Peek returns the element at the front of the queue without removing it.
	// It returns commonerrors.ErrEmpty when the queue holds no elements.
	Peek() (T, error)
	// IsEmpty states whether the queue is empty.
	IsEmpty() bool
	// Clear removes all elements from the queue. Clearing an empty queue is a
	// complete no-op and emits no notification.
	Clear()
	// Items returns a snapshot of all elements in FIFO order without modifying the queue.
	Items() []T
	// Len returns the number of elements in the queue.
	Len() int
	// Cap returns the configured capacity. Zero means the queue is unbounded.
	Cap() int
	// IsFixedSize states whether the capacity is enforced by eviction.
	IsFixedSize() bool
	// OnChange registers a handler called after every structural change.
	// The returned function removes the registration.
	OnChange(handler ChangeHandler[T]) (remove func())
	// OnPropertyChange registers a handler called whenever an observable
	// property (PropertyCount, PropertyItems) changes.
	// The returned function removes the registration.
	OnPropertyChange(handler PropertyHandler) (remove func())
}
