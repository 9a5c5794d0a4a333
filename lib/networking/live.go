package networking

import (
	"fmt"
	"net"

	"github.com/maksimkurb/keen-netconf/lib/ifregistry"
	"github.com/vishvananda/netlink"
)

// LiveAddress returns the first IPv4 address currently assigned to the
// interface. An interface without addresses yields a zero Address, not an
// error.
func LiveAddress(ifname string) (ifregistry.Address, error) {
	link, err := linkByName(ifname)
	if err != nil {
		return ifregistry.Address{}, fmt.Errorf("failed to get link %s: %v", ifname, err)
	}

	addrs, err := addrList(link, netlink.FAMILY_V4)
	if err != nil {
		return ifregistry.Address{}, fmt.Errorf("failed to list addresses for %s: %v", ifname, err)
	}
	if len(addrs) == 0 {
		return ifregistry.Address{}, nil
	}

	ones, _ := addrs[0].Mask.Size()
	return ifregistry.Address{
		IP:           addrs[0].IP.String(),
		PrefixLength: uint8(ones),
	}, nil
}

// LiveMTU returns the interface's current MTU.
func LiveMTU(ifname string) (uint16, error) {
	link, err := linkByName(ifname)
	if err != nil {
		return 0, fmt.Errorf("failed to get link %s: %v", ifname, err)
	}
	return uint16(link.Attrs().MTU), nil
}

// IsUp reports whether the interface currently has the UP flag.
func IsUp(ifname string) (bool, error) {
	link, err := linkByName(ifname)
	if err != nil {
		return false, fmt.Errorf("failed to get link %s: %v", ifname, err)
	}
	return link.Attrs().Flags&net.FlagUp != 0, nil
}
