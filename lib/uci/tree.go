package uci

import (
	"fmt"

	duci "github.com/digineo/go-uci"
)

// Tree is the configuration-store boundary: a named package of sections,
// each section holding string-valued options. Load/Unload bracket every
// scan or write cycle; Commit persists pending changes. Sections lists
// only the sections of the interface type; other section types (routes,
// switch ports) are never scanned.
type Tree interface {
	LoadConfig(name string) error
	Unload(name string)
	Sections(config string) []string
	Get(config, section, option string) (string, bool)
	Set(config, section, option, value string) error
	Commit() error
}

// interfaceSectionType is the UCI section type holding network interface
// declarations in the network package.
const interfaceSectionType = "interface"

// DiskTree is the on-disk backend over a UCI config directory
// (/etc/config on OpenWrt-family systems).
type DiskTree struct {
	tree duci.Tree
}

func NewDiskTree(root string) *DiskTree {
	return &DiskTree{tree: duci.NewTree(root)}
}

func (t *DiskTree) LoadConfig(name string) error {
	if err := t.tree.LoadConfig(name, true); err != nil {
		return fmt.Errorf("failed to load UCI config %q: %v", name, err)
	}
	return nil
}

// Unload drops uncommitted changes for the config. Committed changes are
// already on disk at this point.
func (t *DiskTree) Unload(name string) {
	t.tree.Revert(name)
}

func (t *DiskTree) Sections(config string) []string {
	sections, ok := t.tree.GetSections(config, interfaceSectionType)
	if !ok {
		return nil
	}
	return sections
}

func (t *DiskTree) Get(config, section, option string) (string, bool) {
	values, ok := t.tree.Get(config, section, option)
	if !ok || len(values) == 0 {
		return "", false
	}
	return values[0], true
}

func (t *DiskTree) Set(config, section, option, value string) error {
	if !t.tree.Set(config, section, option, value) {
		return fmt.Errorf("failed to set %s.%s.%s", config, section, option)
	}
	return nil
}

func (t *DiskTree) Commit() error {
	return t.tree.Commit()
}
