package cache

// Phase is the lifecycle stage of a read or mutation.
type Phase int

const (
	PhasePending Phase = iota
	PhaseFulfilled
	PhaseRejected
)

func (p Phase) String() string {
	switch p {
	case PhasePending:
		return "pending"
	case PhaseFulfilled:
		return "fulfilled"
	case PhaseRejected:
		return "rejected"
	}
	return "unknown"
}

// Op distinguishes reads from mutations in the event stream.
type Op int

const (
	OpRead Op = iota
	OpMutation
)

// Event is a cache lifecycle notification. Domain slices subscribe to these
// to project loading flags, lists and errors; they never call back into the
// cache.
type Event struct {
	Op       Op
	Phase    Phase
	Resource string // resource type the payload belongs to
	Key      Key    // set for reads, zero for mutations
	Payload  any    // set on PhaseFulfilled
	Err      error  // set on PhaseRejected
}

// Listener receives cache events. Listeners are invoked synchronously in
// subscription order and must not block.
type Listener func(Event)
