package ifregistry

// Origin is the provenance of an interface address. It is exchanged as an
// enum value at the datastore boundary and as a plain string at the UCI
// boundary, so the mapping has to survive a round trip in both directions.
type Origin uint8

const (
	OriginStatic Origin = iota
	OriginDHCP
	OriginLinkLayer
	OriginRandom
	OriginOther
	OriginUnknown
)

var originNames = map[Origin]string{
	OriginStatic:    "static",
	OriginDHCP:      "dhcp",
	OriginLinkLayer: "link-layer",
	OriginRandom:    "random",
	OriginOther:     "other",
	OriginUnknown:   "unknown",
}

func (o Origin) String() string {
	if name, ok := originNames[o]; ok {
		return name
	}
	return "unknown"
}

// ParseOrigin maps a textual origin back to its enum value. Unrecognized
// strings map to OriginUnknown.
func ParseOrigin(s string) Origin {
	for origin, name := range originNames {
		if name == s {
			return origin
		}
	}
	return OriginUnknown
}
