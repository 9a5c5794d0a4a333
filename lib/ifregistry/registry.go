package ifregistry

// Address is a single IPv4 address with its prefix length. Only one address
// per interface is modeled.
type Address struct {
	IP           string
	PrefixLength uint8
}

// IPv4Config holds the configurable and observed IPv4 attributes of one
// interface. MTU is meaningful only while Enabled is true.
type IPv4Config struct {
	Enabled    bool
	Forwarding bool
	Origin     Origin
	MTU        uint16
	Address    Address
}

// Interface is one network interface record. Name is the unique key and is
// immutable once the record is created. KindLabel is the UCI section this
// interface maps to; it stays empty until resolved by name matching.
type Interface struct {
	Name      string
	KindLabel string
	IPv4      *IPv4Config
}

// Registry is an ordered collection of interface records, keyed by name.
// It is populated once at startup from kernel state and owned by the
// reconciliation engine for the process lifetime; records are never removed.
type Registry struct {
	order  []string
	byName map[string]*Interface
}

func NewRegistry() *Registry {
	return &Registry{
		byName: make(map[string]*Interface),
	}
}

// Ensure returns the record for name, creating it on first sight with IPv4
// enabled. Repeated calls for the same name return the existing record and
// do not disturb insertion order.
func (r *Registry) Ensure(name string) *Interface {
	if iface, ok := r.byName[name]; ok {
		return iface
	}

	iface := &Interface{
		Name: name,
		IPv4: &IPv4Config{Enabled: true},
	}
	r.byName[name] = iface
	r.order = append(r.order, name)
	return iface
}

func (r *Registry) Get(name string) (*Interface, bool) {
	iface, ok := r.byName[name]
	return iface, ok
}

// All returns the records in first-seen order.
func (r *Registry) All() []*Interface {
	ifaces := make([]*Interface, 0, len(r.order))
	for _, name := range r.order {
		ifaces = append(ifaces, r.byName[name])
	}
	return ifaces
}

func (r *Registry) Len() int {
	return len(r.order)
}
