package networking

import (
	"fmt"

	"github.com/maksimkurb/keen-netconf/lib/ifregistry"
)

const colorCyan = "\033[0;36m"
const colorGreen = "\033[0;32m"
const colorRed = "\033[0;31m"
const colorReset = "\033[0m"

// PrintInterfaces dumps the registry to stdout with live kernel state, one
// interface per line. Kernel query failures degrade to "?" fields.
func PrintInterfaces(reg *ifregistry.Registry) {
	for i, iface := range reg.All() {
		upStr := "?"
		upColor := colorRed
		if up, err := IsUp(iface.Name); err == nil {
			upStr = fmt.Sprintf("%v", up)
			if up {
				upColor = colorGreen
			}
		}

		mtuStr := "?"
		if mtu, err := LiveMTU(iface.Name); err == nil {
			mtuStr = fmt.Sprintf("%d", mtu)
		}

		addrStr := "no address"
		if addr, err := LiveAddress(iface.Name); err == nil && addr.IP != "" {
			addrStr = fmt.Sprintf("%s/%d", addr.IP, addr.PrefixLength)
		}

		fmt.Printf("%d. %s%s%s (%sup%s=%s%s%s mtu=%s) %s\n",
			i+1,
			colorCyan, iface.Name, colorReset,
			colorCyan, colorReset, upColor, upStr, colorReset,
			mtuStr,
			addrStr)
	}
}

// PrintNeighbors dumps a neighbor snapshot to stdout, one entry per line.
func PrintNeighbors(neighbors []Neighbor) {
	if len(neighbors) == 0 {
		fmt.Println("No neighbors found")
		return
	}
	for i, n := range neighbors {
		fmt.Printf("%d. %s%s%s -> %s\n",
			i+1,
			colorCyan, n.IP, colorReset,
			n.LinkLayerAddress)
	}
}
