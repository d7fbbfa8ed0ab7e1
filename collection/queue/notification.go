package queue

// ChangeAction describes the kind of structural change a queue underwent.
type ChangeAction int

const (
	// ChangeActionAdd corresponds to an element being appended at the back of the queue.
	ChangeActionAdd ChangeAction = iota
	// ChangeActionRemove corresponds to an element being removed from the front of the queue.
	ChangeActionRemove
	// ChangeActionReset corresponds to the queue being emptied in one go.
	ChangeActionReset
)

func (a ChangeAction) String() string {
	switch a {
	case ChangeActionAdd:
		return "add"
	case ChangeActionRemove:
		return "remove"
	case ChangeActionReset:
		return "reset"
	}
	return "unknown"
}

// Change is the payload describing one structural mutation.
// Item and Index only carry meaning for ChangeActionAdd and ChangeActionRemove:
// removals always happen at the front (Index 0) and additions at the back
// (Index Len-1 after insertion). For ChangeActionReset, Item is the zero value
// and Index is ResetIndex.
type Change[T any] struct {
	Action ChangeAction
	Item   T
	Index  int
}

// ResetIndex is the index reported by ChangeActionReset notifications, which
// affect no element in particular.
const ResetIndex = -1

// Property is the name of an observable queue property.
type Property string

const (
	// PropertyCount changes whenever the number of elements changes.
	PropertyCount Property = "Count"
	// PropertyItems changes whenever the element snapshot changes.
	PropertyItems Property = "Items"
)

// ChangeHandler receives structural change notifications.
type ChangeHandler[T any] func(change Change[T])

// PropertyHandler receives property change notifications.
type PropertyHandler func(property Property)

// registry holds subscriber callbacks and preserves registration order.
// Removal leaves a nil slot so the order of the remaining handlers is untouched.
// The subscribe/cancel function pairing follows the scheme used by event hubs
// where registration hands back its own deregistration.
type registry[H any] struct {
	entries []*H
}

func (r *registry[H]) add(handler H) (remove func()) {
	entry := &handler
	r.entries = append(r.entries, entry)
	return func() {
		for i := range r.entries {
			if r.entries[i] == entry {
				r.entries[i] = nil
				return
			}
		}
	}
}

func (r *registry[H]) each(call func(H)) {
	for i := range r.entries {
		if r.entries[i] != nil {
			call(*r.entries[i])
		}
	}
}
