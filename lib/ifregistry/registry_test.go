package ifregistry

import (
	"testing"
)

func TestEnsureKeepsFirstSeenOrder(t *testing.T) {
	reg := NewRegistry()

	for _, name := range []string{"wan", "lan0", "br-lan", "lan0", "wan"} {
		reg.Ensure(name)
	}

	if reg.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", reg.Len())
	}

	want := []string{"wan", "lan0", "br-lan"}
	for i, iface := range reg.All() {
		if iface.Name != want[i] {
			t.Errorf("All()[%d].Name = %q, want %q", i, iface.Name, want[i])
		}
	}
}

func TestEnsureIsIdempotent(t *testing.T) {
	reg := NewRegistry()

	first := reg.Ensure("eth0")
	first.IPv4.MTU = 1500
	first.KindLabel = "lan"

	second := reg.Ensure("eth0")
	if second != first {
		t.Fatal("Ensure() created a second record for the same name")
	}
	if second.IPv4.MTU != 1500 || second.KindLabel != "lan" {
		t.Errorf("re-discovery reset record state: mtu=%d kind=%q", second.IPv4.MTU, second.KindLabel)
	}
}

func TestEnsureCreatesEnabledIPv4(t *testing.T) {
	reg := NewRegistry()
	iface := reg.Ensure("eth0")

	if iface.IPv4 == nil {
		t.Fatal("new record has no IPv4 config")
	}
	if !iface.IPv4.Enabled {
		t.Error("new record should be created with IPv4 enabled")
	}
}

func TestGetMissing(t *testing.T) {
	reg := NewRegistry()
	if _, ok := reg.Get("nonexistent"); ok {
		t.Error("Get() returned ok for a name that was never ensured")
	}
}

func TestOriginRoundTrip(t *testing.T) {
	origins := []Origin{
		OriginStatic,
		OriginDHCP,
		OriginLinkLayer,
		OriginRandom,
		OriginOther,
		OriginUnknown,
	}

	for _, origin := range origins {
		if got := ParseOrigin(origin.String()); got != origin {
			t.Errorf("ParseOrigin(%q) = %v, want %v", origin.String(), got, origin)
		}
	}
}

func TestParseOriginUnrecognized(t *testing.T) {
	for _, s := range []string{"", "bogus", "DHCP"} {
		if got := ParseOrigin(s); got != OriginUnknown {
			t.Errorf("ParseOrigin(%q) = %v, want OriginUnknown", s, got)
		}
	}
}
