package queue

import (
	"iter"
	"slices"
)

// NewQueue returns a plain Queue which is not thread safe and does not notify.
func NewQueue[T any]() IQueue[T] {
	return &Queue[T]{}
}

type Queue[T any] struct {
	start, end *node[T]
	length     int
}

type node[T any] struct {
	value T
	next  *node[T]
}

func (s *Queue[T]) IsEmpty() bool {
	return s.length == 0
}

func (s *Queue[T]) Clear() {
	s.start = nil
	s.end = nil
	s.length = 0
}

func (s *Queue[T]) Len() int {
	return s.length
}

func (s *Queue[T]) Peek() (element T, ok bool) {
	if s.length == 0 {
		return
	}
	element = s.start.value
	ok = true
	return
}

func (s *Queue[T]) Dequeue() (element T, ok bool) {
	if s.length == 0 {
		return
	}
	n := s.start
	if s.length == 1 {
		s.start = nil
		s.end = nil
	} else {
		s.start = s.start.next
	}
	s.length--
	element = n.value
	ok = true
	return
}

func (s *Queue[T]) Enqueue(value ...T) {
	s.EnqueueSequence(slices.Values(value))
}

func (s *Queue[T]) EnqueueSequence(seq iter.Seq[T]) {
	for v := range seq {
		s.enqueue(v)
	}
}

func (s *Queue[T]) enqueue(value T) {
	n := &node[T]{value, nil}
	if s.length == 0 {
		s.start = n
		s.end = n
	} else {
		s.end.next = n
		s.end = n
	}
	s.length++
}

// Items walks the queue from front to back without consuming it.
func (s *Queue[T]) Items() []T {
	if s.length == 0 {
		return nil
	}
	items := make([]T, 0, s.length)
	for n := s.start; n != nil; n = n.next {
		items = append(items, n.value)
	}
	return items
}

func (s *Queue[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		length := s.Len()
		for i := 0; i < length; i++ {
			v, ok := s.Dequeue()
			if !ok || !yield(v) {
				return
			}
		}
	}
}
