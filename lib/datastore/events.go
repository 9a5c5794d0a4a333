package datastore

// Event tags a module change notification delivered by the datastore
// subscription mechanism.
type Event uint8

const (
	// EventVerify is delivered before a transaction commits. The engine
	// performs no custom validation and accepts unconditionally.
	EventVerify Event = iota
	// EventApply is delivered after a transaction commits and triggers the
	// pull/merge/push cycle.
	EventApply
	// EventAbort is delivered when a transaction is rolled back.
	EventAbort
)

func (e Event) String() string {
	switch e {
	case EventVerify:
		return "verify"
	case EventApply:
		return "apply"
	default:
		return "abort"
	}
}
