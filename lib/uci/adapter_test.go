package uci

import (
	"errors"
	"testing"

	"github.com/maksimkurb/keen-netconf/lib/ifregistry"
)

// failingTree wraps a Tree and fails Set for one option name.
type failingTree struct {
	Tree
	failOption string
	attempts   []string
}

func (t *failingTree) Set(config, section, option, value string) error {
	t.attempts = append(t.attempts, option)
	if option == t.failOption {
		return errors.New("simulated backend error")
	}
	return t.Tree.Set(config, section, option, value)
}

func networkTree() *MemTree {
	tree := NewMemTree()
	tree.Seed("network", "loopback", map[string]string{"ifname": "lo"})
	tree.Seed("network", "lan", map[string]string{"ifname": "br-lan"})
	tree.Seed("network", "wan", map[string]string{"ifname": "eth0"})
	return tree
}

func TestResolveKindLabel(t *testing.T) {
	tests := []struct {
		name      string
		ifname    string
		want      string
		wantError error
	}{
		{name: "matches wan section", ifname: "eth0", want: "wan"},
		{name: "matches lan section", ifname: "br-lan", want: "lan"},
		{name: "no matching section", ifname: "wlan0", wantError: ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveKindLabel(networkTree(), "network", tt.ifname)

			if tt.wantError != nil {
				if !errors.Is(err, tt.wantError) {
					t.Fatalf("ResolveKindLabel() error = %v, want %v", err, tt.wantError)
				}
				return
			}

			if err != nil {
				t.Fatalf("ResolveKindLabel() failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("ResolveKindLabel() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolveKindLabelFirstMatchWins(t *testing.T) {
	tree := NewMemTree()
	tree.Seed("network", "wan", map[string]string{"ifname": "eth0"})
	tree.Seed("network", "wan_backup", map[string]string{"ifname": "eth0"})

	got, err := ResolveKindLabel(tree, "network", "eth0")
	if err != nil {
		t.Fatalf("ResolveKindLabel() failed: %v", err)
	}
	if got != "wan" {
		t.Errorf("ResolveKindLabel() = %q, want first declared section %q", got, "wan")
	}
}

func TestResolveKindLabelSkipsNonInterfaceSections(t *testing.T) {
	tree := NewMemTree()
	tree.SeedTyped("network", "route", "default", map[string]string{"ifname": "eth0"})
	tree.Seed("network", "wan", map[string]string{"ifname": "eth0"})

	got, err := ResolveKindLabel(tree, "network", "eth0")
	if err != nil {
		t.Fatalf("ResolveKindLabel() failed: %v", err)
	}
	if got != "wan" {
		t.Errorf("ResolveKindLabel() = %q, want interface section %q", got, "wan")
	}
}

func TestResolveKindLabelMissingPackage(t *testing.T) {
	if _, err := ResolveKindLabel(NewMemTree(), "network", "eth0"); err == nil {
		t.Error("expected error for missing package")
	}
}

func TestApplyWritesOptions(t *testing.T) {
	tree := networkTree()
	cfg := &ifregistry.IPv4Config{
		Enabled: true,
		Origin:  ifregistry.OriginStatic,
		MTU:     1500,
		Address: ifregistry.Address{IP: "192.168.1.1", PrefixLength: 24},
	}

	if err := Apply(tree, "network", "wan", cfg); err != nil {
		t.Fatalf("Apply() failed: %v", err)
	}

	want := map[string]string{
		"enabled": "1",
		"proto":   "static",
		"mtu":     "1500",
		"ipaddr":  "192.168.1.1",
	}
	for option, wantValue := range want {
		if got, ok := tree.Get("network", "wan", option); !ok || got != wantValue {
			t.Errorf("option %s = %q (ok=%v), want %q", option, got, ok, wantValue)
		}
	}

	if tree.Commits() != 1 {
		t.Errorf("Commits() = %d, want 1", tree.Commits())
	}
}

func TestApplyDoesNotWriteForwardingOrPrefix(t *testing.T) {
	tree := networkTree()
	cfg := &ifregistry.IPv4Config{
		Enabled:    true,
		Forwarding: true,
		Address:    ifregistry.Address{IP: "192.168.1.1", PrefixLength: 24},
	}

	if err := Apply(tree, "network", "wan", cfg); err != nil {
		t.Fatalf("Apply() failed: %v", err)
	}

	// Forwarding and prefix-length are pulled from the datastore but never
	// pushed to UCI. Keep it that way until the schema work is finished.
	for _, option := range []string{"forwarding", "netmask", "prefix_length"} {
		if _, ok := tree.Get("network", "wan", option); ok {
			t.Errorf("option %s was written, want it absent", option)
		}
	}
}

func TestApplyBestEffortOnWriteFailure(t *testing.T) {
	tree := &failingTree{Tree: networkTree(), failOption: "mtu"}
	cfg := &ifregistry.IPv4Config{
		Enabled: false,
		Origin:  ifregistry.OriginDHCP,
		MTU:     9000,
		Address: ifregistry.Address{IP: "10.0.0.2"},
	}

	if err := Apply(tree, "network", "wan", cfg); err != nil {
		t.Fatalf("Apply() failed: %v", err)
	}

	// The ipaddr write must still be attempted after the mtu failure.
	if got, ok := tree.Get("network", "wan", "ipaddr"); !ok || got != "10.0.0.2" {
		t.Errorf("ipaddr = %q (ok=%v), want %q", got, ok, "10.0.0.2")
	}
	if got, ok := tree.Get("network", "wan", "enabled"); !ok || got != "0" {
		t.Errorf("enabled = %q (ok=%v), want %q", got, ok, "0")
	}

	wantAttempts := []string{"enabled", "proto", "mtu", "ipaddr"}
	if len(tree.attempts) != len(wantAttempts) {
		t.Fatalf("attempted writes = %v, want %v", tree.attempts, wantAttempts)
	}
	for i, option := range wantAttempts {
		if tree.attempts[i] != option {
			t.Errorf("attempt[%d] = %q, want %q", i, tree.attempts[i], option)
		}
	}
}
