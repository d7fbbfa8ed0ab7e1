package queue

import (
	"fmt"
	"slices"
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/queuekit/queuekit/commonerrors"
	"github.com/queuekit/queuekit/commonerrors/errortest"
)

// recorder subscribes to both notification channels of a queue and keeps a
// flattened log so the relative ordering across channels can be asserted.
type recorder[T any] struct {
	log        []string
	changes    []Change[T]
	properties []Property
}

func record[T any](q IObservableQueue[T]) *recorder[T] {
	r := &recorder[T]{}
	q.OnPropertyChange(func(p Property) {
		r.properties = append(r.properties, p)
		r.log = append(r.log, fmt.Sprintf("property[%v]", p))
	})
	q.OnChange(func(c Change[T]) {
		r.changes = append(r.changes, c)
		r.log = append(r.log, fmt.Sprintf("%v[%v@%v]", c.Action, c.Item, c.Index))
	})
	return r
}

func (r *recorder[T]) reset() {
	r.log = nil
	r.changes = nil
	r.properties = nil
}

func TestObservableQueue(t *testing.T) {
	tests := []struct {
		details     string
		constructor func() IObservableQueue[string]
	}{
		{
			details:     "unbounded queue",
			constructor: func() IObservableQueue[string] { return NewObservableQueue[string]() },
		},
		{
			details: "bounded queue with spare capacity",
			constructor: func() IObservableQueue[string] {
				q, err := NewBoundedQueue[string](100, true)
				require.NoError(t, err)
				return q
			},
		},
		{
			details:     "thread safe queue",
			constructor: NewThreadSafeObservableQueue[string],
		},
	}

	for i := range tests {
		test := tests[i]
		t.Run(test.details, func(t *testing.T) {
			t.Run("new queue is empty", func(t *testing.T) {
				q := test.constructor()
				assert.Zero(t, q.Len())
				assert.True(t, q.IsEmpty())
				assert.Empty(t, q.Items())
			})

			t.Run("FIFO order is preserved", func(t *testing.T) {
				q := test.constructor()
				items := make([]string, 10)
				for i := range items {
					items[i] = fmt.Sprintf("%v-%v", i, faker.Word())
				}
				q.Enqueue(items...)
				require.Equal(t, len(items), q.Len())
				for i := range items {
					v, err := q.Dequeue()
					require.NoError(t, err)
					assert.Equal(t, items[i], v)
				}
				assert.True(t, q.IsEmpty())
			})

			t.Run("peek does not remove", func(t *testing.T) {
				q := test.constructor()
				q.Enqueue("front", "back")
				v, err := q.Peek()
				require.NoError(t, err)
				assert.Equal(t, "front", v)
				assert.Equal(t, 2, q.Len())
			})

			t.Run("peek on empty queue fails", func(t *testing.T) {
				q := test.constructor()
				_, err := q.Peek()
				errortest.AssertError(t, err, commonerrors.ErrEmpty)
			})

			t.Run("enqueue sequence", func(t *testing.T) {
				q := test.constructor()
				q.EnqueueSequence(slices.Values([]string{"a", "b", "c"}))
				assert.Equal(t, []string{"a", "b", "c"}, q.Items())
			})

			t.Run("clear then reuse", func(t *testing.T) {
				q := test.constructor()
				q.Enqueue("a", "b")
				q.Clear()
				assert.True(t, q.IsEmpty())
				q.Enqueue("c")
				assert.Equal(t, []string{"c"}, q.Items())
			})
		})
	}
}

func TestObservableQueueCapacityValidation(t *testing.T) {
	_, err := NewBoundedQueue[int](-1, true)
	errortest.AssertError(t, err, commonerrors.ErrInvalid)

	_, err = NewThreadSafeBoundedQueue[int](-50, false)
	errortest.AssertError(t, err, commonerrors.ErrInvalid)

	// A zero capacity means unbounded, whatever the fixed size flag says.
	q, err := NewBoundedQueue[int](0, true)
	require.NoError(t, err)
	for i := 0; i < 50; i++ {
		q.Enqueue(i)
	}
	assert.Equal(t, 50, q.Len())
	assert.Zero(t, q.Cap())
	assert.True(t, q.IsFixedSize())
}

func TestObservableQueueAccessors(t *testing.T) {
	q, err := NewBoundedQueue[int](8, true)
	require.NoError(t, err)
	assert.Equal(t, 8, q.Cap())
	assert.True(t, q.IsFixedSize())

	unbounded := NewObservableQueue[int]()
	assert.Zero(t, unbounded.Cap())
	assert.False(t, unbounded.IsFixedSize())
}

func TestObservableQueueEmptyDequeue(t *testing.T) {
	q := NewObservableQueue[int]()
	r := record[int](q)

	_, err := q.Dequeue()
	errortest.AssertError(t, err, commonerrors.ErrEmpty)
	assert.Zero(t, q.Len())
	assert.Empty(t, r.log, "a failed dequeue must not notify")
}

func TestObservableQueueClearIdempotence(t *testing.T) {
	q := NewObservableQueue[string]()
	r := record[string](q)

	q.Clear()
	assert.Empty(t, r.log, "clearing an empty queue must be a complete no-op")

	q.Enqueue(faker.Word(), faker.Word())
	r.reset()
	q.Clear()
	assert.Equal(t, []Property{PropertyCount, PropertyItems}, r.properties)
	require.Len(t, r.changes, 1)
	assert.Equal(t, ChangeActionReset, r.changes[0].Action)
	assert.Equal(t, ResetIndex, r.changes[0].Index)
	assert.Empty(t, r.changes[0].Item)

	// Second clear is a no-op again.
	r.reset()
	q.Clear()
	assert.Empty(t, r.log)
}

func TestObservableQueueNotificationPairing(t *testing.T) {
	q := NewObservableQueue[int]()
	r := record[int](q)

	q.Enqueue(42)
	assert.Equal(t, []string{"property[Count]", "property[Items]", "add[42@0]"}, r.log)

	r.reset()
	q.Enqueue(43)
	assert.Equal(t, []string{"property[Count]", "property[Items]", "add[43@1]"}, r.log)

	r.reset()
	v, err := q.Dequeue()
	require.NoError(t, err)
	assert.Equal(t, 42, v)
	assert.Equal(t, []string{"property[Count]", "property[Items]", "remove[42@0]"}, r.log)
}

func TestObservableQueueBoundedEviction(t *testing.T) {
	const capacity = 3
	q, err := NewBoundedQueue[int](capacity, true)
	require.NoError(t, err)
	r := record[int](q)

	for i := 1; i <= 10; i++ {
		q.Enqueue(i)
		assert.LessOrEqual(t, q.Len(), capacity)
	}

	// The survivors are exactly the last `capacity` elements enqueued.
	assert.Equal(t, []int{8, 9, 10}, q.Items())

	var evicted []int
	for i := range r.changes {
		if r.changes[i].Action == ChangeActionRemove {
			assert.Zero(t, r.changes[i].Index, "evictions remove from the front")
			evicted = append(evicted, r.changes[i].Item)
		}
	}
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, evicted, "oldest elements are evicted first, one notification each")
}

func TestObservableQueueEvictionScenario(t *testing.T) {
	q, err := NewBoundedQueue[int](2, true)
	require.NoError(t, err)
	r := record[int](q)

	q.Enqueue(1)
	assert.Equal(t, 1, q.Len())
	assert.Equal(t, []string{"property[Count]", "property[Items]", "add[1@0]"}, r.log)

	r.reset()
	q.Enqueue(2)
	assert.Equal(t, 2, q.Len())
	assert.Equal(t, []string{"property[Count]", "property[Items]", "add[2@1]"}, r.log)

	// The third enqueue evicts the oldest element with its own full
	// notification set before the insertion notifies.
	r.reset()
	q.Enqueue(3)
	assert.Equal(t, []string{
		"property[Count]", "property[Items]", "remove[1@0]",
		"property[Count]", "property[Items]", "add[3@1]",
	}, r.log)
	assert.Equal(t, 2, q.Len())
	assert.Equal(t, []int{2, 3}, q.Items())
}

func TestObservableQueueUnbounded(t *testing.T) {
	q := NewObservableQueue[int]()
	r := record[int](q)

	for i := 0; i < 1000; i++ {
		q.Enqueue(i)
	}
	assert.Equal(t, 1000, q.Len())
	for i := range r.changes {
		assert.Equal(t, ChangeActionAdd, r.changes[i].Action, "an unbounded queue never evicts")
	}
	assert.Len(t, r.changes, 1000)
}

func TestObservableQueueSubscriberOrder(t *testing.T) {
	q := NewObservableQueue[int]()
	var order []string
	q.OnChange(func(Change[int]) { order = append(order, "first") })
	q.OnChange(func(Change[int]) { order = append(order, "second") })
	q.OnChange(func(Change[int]) { order = append(order, "third") })

	q.Enqueue(1)
	assert.Equal(t, []string{"first", "second", "third"}, order)
}

func TestObservableQueueUnsubscribe(t *testing.T) {
	q := NewObservableQueue[int]()
	var calls []string
	removeFirst := q.OnChange(func(Change[int]) { calls = append(calls, "first") })
	q.OnChange(func(Change[int]) { calls = append(calls, "second") })
	removeProperty := q.OnPropertyChange(func(Property) { calls = append(calls, "property") })

	q.Enqueue(1)
	assert.Equal(t, []string{"property", "property", "first", "second"}, calls)

	calls = nil
	removeFirst()
	removeProperty()
	q.Enqueue(2)
	assert.Equal(t, []string{"second"}, calls)

	// Removing twice is harmless.
	removeFirst()
	calls = nil
	q.Enqueue(3)
	assert.Equal(t, []string{"second"}, calls)
}

func TestObservableQueueNoSubscribers(t *testing.T) {
	// Mutating with zero subscribers is a no-op delivery, never an error.
	q := NewObservableQueue[string]()
	q.Enqueue(faker.Word())
	_, err := q.Dequeue()
	require.NoError(t, err)
	q.Clear()
}

func TestChangeActionString(t *testing.T) {
	assert.Equal(t, "add", ChangeActionAdd.String())
	assert.Equal(t, "remove", ChangeActionRemove.String())
	assert.Equal(t, "reset", ChangeActionReset.String())
	assert.Equal(t, "unknown", ChangeAction(17).String())
}
