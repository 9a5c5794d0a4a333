package networking

import (
	"fmt"

	"github.com/maksimkurb/keen-netconf/lib/ifregistry"
	"github.com/maksimkurb/keen-netconf/lib/log"
	"github.com/vishvananda/netlink"
	"golang.org/x/sys/unix"
)

// netlink entry points, replaceable in tests.
var (
	linkList   = netlink.LinkList
	linkByName = netlink.LinkByName
	addrList   = netlink.AddrList
	neighList  = func() ([]netlink.Neigh, error) {
		return netlink.NeighList(0, unix.AF_INET)
	}
)

// Neighbor is one (link-layer address, IP address) pair from the kernel
// neighbor table. The snapshot is rebuilt in full on every query.
type Neighbor struct {
	LinkLayerAddress string `json:"link_layer_address"`
	IP               string `json:"ip"`
}

// DiscoverInterfaces enumerates kernel network interfaces and inserts a
// record for every name not yet present in the registry, in kernel dump
// order. An empty dump yields an empty registry and is not an error.
func DiscoverInterfaces(reg *ifregistry.Registry) error {
	links, err := linkList()
	if err != nil {
		return fmt.Errorf("failed to enumerate network interfaces: %v", err)
	}

	for _, link := range links {
		attrs := link.Attrs()
		if attrs == nil || attrs.Name == "" {
			continue
		}
		reg.Ensure(attrs.Name)
		log.Debugf("Found network interface %d: %s", attrs.Index, attrs.Name)
	}

	return nil
}

// DiscoverNeighbors returns a snapshot of the IPv4 neighbor cache. Entries
// missing either address are skipped, partial records are not reported.
func DiscoverNeighbors() ([]Neighbor, error) {
	entries, err := neighList()
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate neighbors: %v", err)
	}

	var neighbors []Neighbor
	for _, entry := range entries {
		if len(entry.HardwareAddr) == 0 || entry.IP == nil {
			continue
		}
		neighbors = append(neighbors, Neighbor{
			LinkLayerAddress: entry.HardwareAddr.String(),
			IP:               entry.IP.String(),
		})
	}

	return neighbors, nil
}
