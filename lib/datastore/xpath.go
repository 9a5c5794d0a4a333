package datastore

import (
	"strings"

	"github.com/valyala/fasttemplate"
)

// xpath templates for the ietf-interfaces / ietf-ip schema. All datastore
// addressing in this daemon goes through these four shapes.
var (
	interfaceTmpl = fasttemplate.New(
		"/ietf-interfaces:interfaces/interface[name='{{name}}']/{{node}}", "{{", "}}")
	ipv4Tmpl = fasttemplate.New(
		"/ietf-interfaces:interfaces/interface[name='{{name}}']/ietf-ip:ipv4/{{node}}", "{{", "}}")
	ipv4AddressTmpl = fasttemplate.New(
		"/ietf-interfaces:interfaces/interface[name='{{name}}']/ietf-ip:ipv4/address[ip='{{ip}}']/{{node}}", "{{", "}}")
	stateTmpl = fasttemplate.New(
		"/ietf-interfaces:interfaces-state/interface[name='{{name}}']/{{node}}", "{{", "}}")
)

// InterfacePath addresses a node directly under an interface entry.
func InterfacePath(ifname, node string) string {
	return interfaceTmpl.ExecuteString(map[string]interface{}{
		"name": ifname,
		"node": node,
	})
}

// IPv4Path addresses a node under an interface's ipv4 container.
func IPv4Path(ifname, node string) string {
	return ipv4Tmpl.ExecuteString(map[string]interface{}{
		"name": ifname,
		"node": node,
	})
}

// IPv4AddressPath addresses a node of one address entry in the ipv4
// address list.
func IPv4AddressPath(ifname, ip, node string) string {
	return ipv4AddressTmpl.ExecuteString(map[string]interface{}{
		"name": ifname,
		"ip":   ip,
		"node": node,
	})
}

// StatePath addresses a node under the interfaces-state tree.
func StatePath(ifname, node string) string {
	return stateTmpl.ExecuteString(map[string]interface{}{
		"name": ifname,
		"node": node,
	})
}

// NodeName returns the trailing node name of an xpath with any key
// predicate stripped, e.g. ".../interface[name='eth0']" yields "interface".
func NodeName(xpath string) string {
	node := xpath
	if idx := strings.LastIndex(node, "/"); idx >= 0 {
		node = node[idx+1:]
	}
	if idx := strings.Index(node, "["); idx >= 0 {
		node = node[:idx]
	}
	return node
}

// NameKey extracts the value of the last [name='...'] predicate in an
// xpath, or an empty string when the path carries no name key.
func NameKey(xpath string) string {
	const marker = "[name='"
	idx := strings.LastIndex(xpath, marker)
	if idx < 0 {
		return ""
	}
	rest := xpath[idx+len(marker):]
	end := strings.Index(rest, "'")
	if end < 0 {
		return ""
	}
	return rest[:end]
}
