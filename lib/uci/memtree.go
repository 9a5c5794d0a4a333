package uci

import (
	"fmt"
)

type memSection struct {
	name    string
	secType string
	options map[string]string
}

// MemTree is an in-memory Tree with deterministic section order. It backs
// the package tests and the one-shot dry-run mode.
type MemTree struct {
	configs map[string][]*memSection
	commits int
}

func NewMemTree() *MemTree {
	return &MemTree{configs: make(map[string][]*memSection)}
}

// Seed declares an interface section with its options, appended in call
// order.
func (t *MemTree) Seed(config, section string, options map[string]string) {
	t.SeedTyped(config, interfaceSectionType, section, options)
}

// SeedTyped declares a section of an arbitrary type. Sections of types
// other than interface are readable and writable but never scanned.
func (t *MemTree) SeedTyped(config, secType, section string, options map[string]string) {
	opts := make(map[string]string, len(options))
	for name, value := range options {
		opts[name] = value
	}
	t.configs[config] = append(t.configs[config], &memSection{name: section, secType: secType, options: opts})
}

func (t *MemTree) LoadConfig(name string) error {
	if _, ok := t.configs[name]; !ok {
		return fmt.Errorf("config %q does not exist", name)
	}
	return nil
}

func (t *MemTree) Unload(name string) {}

func (t *MemTree) Sections(config string) []string {
	var names []string
	for _, section := range t.configs[config] {
		if section.secType != interfaceSectionType {
			continue
		}
		names = append(names, section.name)
	}
	return names
}

func (t *MemTree) section(config, name string) *memSection {
	for _, section := range t.configs[config] {
		if section.name == name {
			return section
		}
	}
	return nil
}

func (t *MemTree) Get(config, section, option string) (string, bool) {
	sec := t.section(config, section)
	if sec == nil {
		return "", false
	}
	value, ok := sec.options[option]
	return value, ok
}

func (t *MemTree) Set(config, section, option, value string) error {
	sec := t.section(config, section)
	if sec == nil {
		return fmt.Errorf("section %s.%s does not exist", config, section)
	}
	sec.options[option] = value
	return nil
}

func (t *MemTree) Commit() error {
	t.commits++
	return nil
}

// Commits returns how many times Commit was called.
func (t *MemTree) Commits() int {
	return t.commits
}
