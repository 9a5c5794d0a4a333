package uci

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/maksimkurb/keen-netconf/lib/ifregistry"
	"github.com/maksimkurb/keen-netconf/lib/log"
)

// ErrNotFound reports that no section of the network package declares the
// given interface. Callers treat this as "interface is not UCI-managed",
// not as a failure.
var ErrNotFound = errors.New("uci: no section for interface")

// Option names written into an interface section.
const (
	optIfname  = "ifname"
	optEnabled = "enabled"
	optProto   = "proto"
	optMTU     = "mtu"
	optIPAddr  = "ipaddr"
)

// ResolveKindLabel scans the network package for the section whose ifname
// option equals the interface name and returns that section's identifier.
// Sections are scanned in the backend's natural order and the first match
// wins. The config is released on every exit path.
func ResolveKindLabel(tree Tree, pkg, ifname string) (string, error) {
	if err := tree.LoadConfig(pkg); err != nil {
		return "", fmt.Errorf("failed to load package %q: %v", pkg, err)
	}
	defer tree.Unload(pkg)

	for _, section := range tree.Sections(pkg) {
		if value, ok := tree.Get(pkg, section, optIfname); ok && value == ifname {
			log.Debugf("Interface %s resolved to section %s.%s", ifname, pkg, section)
			return section, nil
		}
	}

	return "", ErrNotFound
}

// Apply writes the interface's IPv4 attributes into the section identified
// by kindLabel. Each option write is independent: a failed write is logged
// and the remaining writes are still attempted. Forwarding and
// prefix-length are intentionally not written back.
func Apply(tree Tree, pkg, kindLabel string, cfg *ifregistry.IPv4Config) error {
	if err := tree.LoadConfig(pkg); err != nil {
		return fmt.Errorf("failed to load package %q: %v", pkg, err)
	}
	defer tree.Unload(pkg)

	enabled := "0"
	if cfg.Enabled {
		enabled = "1"
	}
	setOption(tree, pkg, kindLabel, optEnabled, enabled)
	setOption(tree, pkg, kindLabel, optProto, cfg.Origin.String())
	setOption(tree, pkg, kindLabel, optMTU, strconv.FormatUint(uint64(cfg.MTU), 10))
	setOption(tree, pkg, kindLabel, optIPAddr, cfg.Address.IP)

	if err := tree.Commit(); err != nil {
		return fmt.Errorf("failed to commit package %q: %v", pkg, err)
	}
	return nil
}

func setOption(tree Tree, pkg, section, option, value string) {
	if err := tree.Set(pkg, section, option, value); err != nil {
		log.Warnf("Failed to set %s.%s.%s=%s: %v", pkg, section, option, value, err)
	}
}
