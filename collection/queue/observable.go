package queue

import (
	"iter"

	"github.com/queuekit/queuekit/commonerrors"
)

// NewObservableQueue returns an unbounded observable queue which never evicts.
// It is not thread safe; see NewThreadSafeObservableQueue otherwise.
func NewObservableQueue[T any]() *ObservableQueue[T] {
	return &ObservableQueue[T]{items: NewQueue[T]()}
}

// NewBoundedQueue returns an observable queue with the given capacity.
// A zero capacity means the queue is unbounded; a negative capacity is
// rejected with commonerrors.ErrInvalid. When fixedSize is true and the
// capacity is positive, the capacity becomes a hard ceiling: enqueuing beyond
// it silently evicts the oldest elements first.
func NewBoundedQueue[T any](capacity int, fixedSize bool) (*ObservableQueue[T], error) {
	if capacity < 0 {
		return nil, commonerrors.Newf(commonerrors.ErrInvalid, "invalid capacity value [%d]", capacity)
	}
	return &ObservableQueue[T]{
		items:     NewQueue[T](),
		capacity:  capacity,
		fixedSize: fixedSize,
	}, nil
}

// ObservableQueue is a FIFO collection which notifies registered subscribers
// after every mutation. It owns a plain Queue rather than extending one so
// that no path can mutate the elements without the matching notifications.
type ObservableQueue[T any] struct {
	items      IQueue[T]
	capacity   int
	fixedSize  bool
	changes    registry[ChangeHandler[T]]
	properties registry[PropertyHandler]
}

func (q *ObservableQueue[T]) Enqueue(items ...T) {
	for i := range items {
		q.enqueue(items[i])
	}
}

func (q *ObservableQueue[T]) EnqueueSequence(seq iter.Seq[T]) {
	for v := range seq {
		q.enqueue(v)
	}
}

// enqueue makes room first when the queue is of fixed size: each evicted
// element goes through the full dequeue path on its own, so subscribers see
// one Remove notification set per evicted element before the Add one.
func (q *ObservableQueue[T]) enqueue(item T) {
	if q.fixedSize && q.capacity > 0 {
		for q.items.Len() >= q.capacity {
			_, _ = q.dequeue()
		}
	}
	q.items.Enqueue(item)
	q.notify(Change[T]{Action: ChangeActionAdd, Item: item, Index: q.items.Len() - 1})
}

// Dequeue removes and returns the oldest element.
// It returns commonerrors.ErrEmpty when the queue holds no elements, in which
// case the queue is left untouched and nothing is notified.
func (q *ObservableQueue[T]) Dequeue() (element T, err error) {
	element, ok := q.dequeue()
	if !ok {
		err = commonerrors.New(commonerrors.ErrEmpty, "cannot dequeue")
	}
	return
}

func (q *ObservableQueue[T]) dequeue() (element T, ok bool) {
	element, ok = q.items.Dequeue()
	if !ok {
		return
	}
	q.notify(Change[T]{Action: ChangeActionRemove, Item: element, Index: 0})
	return
}

// Peek returns the oldest element without removing it.
// It returns commonerrors.ErrEmpty when the queue holds no elements.
func (q *ObservableQueue[T]) Peek() (element T, err error) {
	element, ok := q.items.Peek()
	if !ok {
		err = commonerrors.New(commonerrors.ErrEmpty, "cannot peek")
	}
	return
}

// Clear removes all elements and notifies a single Reset.
// Clearing an already empty queue is a complete no-op.
func (q *ObservableQueue[T]) Clear() {
	if q.items.IsEmpty() {
		return
	}
	q.items.Clear()
	q.notify(Change[T]{Action: ChangeActionReset, Index: ResetIndex})
}

func (q *ObservableQueue[T]) IsEmpty() bool {
	return q.items.IsEmpty()
}

func (q *ObservableQueue[T]) Items() []T {
	return q.items.Items()
}

func (q *ObservableQueue[T]) Len() int {
	return q.items.Len()
}

func (q *ObservableQueue[T]) Cap() int {
	return q.capacity
}

func (q *ObservableQueue[T]) IsFixedSize() bool {
	return q.fixedSize
}

func (q *ObservableQueue[T]) OnChange(handler ChangeHandler[T]) (remove func()) {
	return q.changes.add(handler)
}

func (q *ObservableQueue[T]) OnPropertyChange(handler PropertyHandler) (remove func()) {
	return q.properties.add(handler)
}

// notify fans one mutation out to subscribers: property notifications first
// (PropertyCount then PropertyItems) so that observers recomputing derived
// state from the count do so before reacting to the structural change.
func (q *ObservableQueue[T]) notify(change Change[T]) {
	q.properties.each(func(handler PropertyHandler) { handler(PropertyCount) })
	q.properties.each(func(handler PropertyHandler) { handler(PropertyItems) })
	q.changes.each(func(handler ChangeHandler[T]) { handler(change) })
}
