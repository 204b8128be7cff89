package event

// GameEvent pairs a type with its payload.
type GameEvent struct {
	Type    EventType
	Payload any
}

// Queue is a tick-local FIFO of game events. The simulation is advanced by
// a single goroutine, so the queue carries no locks. Systems push as they
// run and later-priority systems take the types they consume; whatever is
// left after the tick is drained by the frontend for cues.
type Queue struct {
	items []GameEvent
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{items: make([]GameEvent, 0, 64)}
}

// Push appends an event.
func (q *Queue) Push(t EventType, payload any) {
	q.items = append(q.items, GameEvent{Type: t, Payload: payload})
}

// Take removes and returns all queued events of the given type,
// preserving the order of everything else.
func (q *Queue) Take(t EventType) []GameEvent {
	var taken []GameEvent
	kept := q.items[:0]
	for _, ev := range q.items {
		if ev.Type == t {
			taken = append(taken, ev)
		} else {
			kept = append(kept, ev)
		}
	}
	q.items = kept
	return taken
}

// Peek returns the queued events of the given type without removing
// them, for consumers that observe but do not own the type.
func (q *Queue) Peek(t EventType) []GameEvent {
	var found []GameEvent
	for _, ev := range q.items {
		if ev.Type == t {
			found = append(found, ev)
		}
	}
	return found
}

// Drain removes and returns every queued event.
func (q *Queue) Drain() []GameEvent {
	if len(q.items) == 0 {
		return nil
	}
	out := make([]GameEvent, len(q.items))
	copy(out, q.items)
	q.items = q.items[:0]
	return out
}

// Len returns the queued event count.
func (q *Queue) Len() int {
	return len(q.items)
}
