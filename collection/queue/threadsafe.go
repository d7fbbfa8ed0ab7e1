package queue

import (
	"iter"
	"sync"
)

// NewThreadSafeObservableQueue returns an unbounded observable queue guarded
// by a mutex. This is inspired from https://github.com/hayageek/threadsafe.
func NewThreadSafeObservableQueue[T any]() IObservableQueue[T] {
	return &SafeObservableQueue[T]{q: NewObservableQueue[T]()}
}

// NewThreadSafeBoundedQueue returns a bounded observable queue guarded by a
// mutex. See NewBoundedQueue for the capacity semantics.
func NewThreadSafeBoundedQueue[T any](capacity int, fixedSize bool) (IObservableQueue[T], error) {
	q, err := NewBoundedQueue[T](capacity, fixedSize)
	if err != nil {
		return nil, err
	}
	return &SafeObservableQueue[T]{q: q}, nil
}

// SafeObservableQueue wraps an observable queue with a mutex. Subscriber
// handlers run while the lock is held and therefore must not call back into
// the queue.
type SafeObservableQueue[T any] struct {
	q  IObservableQueue[T]
	mu sync.Mutex
}

func (q *SafeObservableQueue[T]) Enqueue(items ...T) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.q.Enqueue(items...)
}

func (q *SafeObservableQueue[T]) EnqueueSequence(seq iter.Seq[T]) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.q.EnqueueSequence(seq)
}

func (q *SafeObservableQueue[T]) Dequeue() (T, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.q.Dequeue()
}

func (q *SafeObservableQueue[T]) Peek() (T, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.q.Peek()
}

func (q *SafeObservableQueue[T]) IsEmpty() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.q.IsEmpty()
}

func (q *SafeObservableQueue[T]) Clear() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.q.Clear()
}

func (q *SafeObservableQueue[T]) Items() []T {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.q.Items()
}

func (q *SafeObservableQueue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.q.Len()
}

func (q *SafeObservableQueue[T]) Cap() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.q.Cap()
}

func (q *SafeObservableQueue[T]) IsFixedSize() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.q.IsFixedSize()
}

func (q *SafeObservableQueue[T]) OnChange(handler ChangeHandler[T]) (remove func()) {
	q.mu.Lock()
	defer q.mu.Unlock()
	removeLocked := q.q.OnChange(handler)
	return func() {
		q.mu.Lock()
		defer q.mu.Unlock()
		removeLocked()
	}
}

func (q *SafeObservableQueue[T]) OnPropertyChange(handler PropertyHandler) (remove func()) {
	q.mu.Lock()
	defer q.mu.Unlock()
	removeLocked := q.q.OnPropertyChange(handler)
	return func() {
		q.mu.Lock()
		defer q.mu.Unlock()
		removeLocked()
	}
}
