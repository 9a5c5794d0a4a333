package opdata

import (
	"github.com/maksimkurb/keen-netconf/lib/datastore"
	"github.com/maksimkurb/keen-netconf/lib/ifregistry"
	"github.com/maksimkurb/keen-netconf/lib/log"
)

// NodeKind is the closed set of operational-data containers this provider
// answers for.
type NodeKind uint8

const (
	NodeInterface NodeKind = iota
	NodeStatistics
	NodeIPv4
	NodeUnknown
)

// KindOfPath classifies a query by the trailing node of its xpath.
func KindOfPath(xpath string) NodeKind {
	switch datastore.NodeName(xpath) {
	case "interface":
		return NodeInterface
	case "statistics":
		return NodeStatistics
	case "ipv4", "ietf-ip:ipv4":
		return NodeIPv4
	default:
		return NodeUnknown
	}
}

// LiveSource answers the per-attribute live queries behind operational
// data. Every method is best-effort: a failing query degrades its field to
// the zero value instead of failing the response.
type LiveSource interface {
	OperStatus(ifname string) (string, error)
	PhysAddress(ifname string) (string, error)
	Speed(ifname string) (uint64, error)
	OutOctets(ifname string) (uint64, error)
	OutErrors(ifname string) (uint64, error)
	InOctets(ifname string) (uint64, error)
	InErrors(ifname string) (uint64, error)
	MTU(ifname string) (uint16, error)
}

// Provider builds operational-data responses for interfaces-state queries.
// It reads the registry and live system state only; configuration never
// flows through here.
type Provider struct {
	reg *ifregistry.Registry
	src LiveSource
}

func NewProvider(reg *ifregistry.Registry, src LiveSource) *Provider {
	return &Provider{reg: reg, src: src}
}

// Get answers one operational-data request. The response is scoped to the
// interface named in the query path; a path without a name key answers for
// every registered interface. Unknown nodes yield an empty result set
// (nested containers beyond ipv4 are not implemented).
func (p *Provider) Get(xpath string) []datastore.StateValue {
	kind := KindOfPath(xpath)
	if kind == NodeUnknown {
		log.Debugf("No operational data for node %q", datastore.NodeName(xpath))
		return nil
	}

	var names []string
	if name := datastore.NameKey(xpath); name != "" {
		names = []string{name}
	} else {
		for _, iface := range p.reg.All() {
			names = append(names, iface.Name)
		}
	}

	var values []datastore.StateValue
	for _, name := range names {
		switch kind {
		case NodeInterface:
			values = append(values, p.interfaceValues(name)...)
		case NodeStatistics:
			values = append(values, p.statisticsValues(name)...)
		case NodeIPv4:
			values = append(values, p.ipv4Values(name)...)
		}
	}
	return values
}

// interfaceValues returns the 4 identity leaves: type, oper-status,
// phys-address and speed.
func (p *Provider) interfaceValues(ifname string) []datastore.StateValue {
	status, err := p.src.OperStatus(ifname)
	if err != nil {
		log.Warnf("Failed to query oper-status of %s: %v", ifname, err)
		status = ""
	}
	physAddress, err := p.src.PhysAddress(ifname)
	if err != nil {
		log.Warnf("Failed to query phys-address of %s: %v", ifname, err)
		physAddress = ""
	}
	speed, err := p.src.Speed(ifname)
	if err != nil {
		log.Warnf("Failed to query speed of %s: %v", ifname, err)
		speed = 0
	}

	return []datastore.StateValue{
		{XPath: datastore.StatePath(ifname, "type"), Value: datastore.IdentityrefVal("ethernetCsmacd")},
		{XPath: datastore.StatePath(ifname, "oper-status"), Value: datastore.EnumVal(status)},
		{XPath: datastore.StatePath(ifname, "phys-address"), Value: datastore.StringVal(physAddress)},
		{XPath: datastore.StatePath(ifname, "speed"), Value: datastore.Uint64Val(speed)},
	}
}

// statisticsValues returns the 4 counters in fixed order: out-octets,
// out-errors, in-octets, in-errors.
func (p *Provider) statisticsValues(ifname string) []datastore.StateValue {
	counter := func(node string, query func(string) (uint64, error)) datastore.StateValue {
		value, err := query(ifname)
		if err != nil {
			log.Warnf("Failed to query %s of %s: %v", node, ifname, err)
			value = 0
		}
		return datastore.StateValue{
			XPath: datastore.StatePath(ifname, "statistics/"+node),
			Value: datastore.Uint64Val(value),
		}
	}

	return []datastore.StateValue{
		counter("out-octets", p.src.OutOctets),
		counter("out-errors", p.src.OutErrors),
		counter("in-octets", p.src.InOctets),
		counter("in-errors", p.src.InErrors),
	}
}

// ipv4Values returns the single ipv4 leaf: the current MTU.
func (p *Provider) ipv4Values(ifname string) []datastore.StateValue {
	mtu, err := p.src.MTU(ifname)
	if err != nil {
		log.Warnf("Failed to query MTU of %s: %v", ifname, err)
		mtu = 0
	}

	return []datastore.StateValue{
		{XPath: datastore.StatePath(ifname, "ietf-ip:ipv4/mtu"), Value: datastore.Uint16Val(mtu)},
	}
}
