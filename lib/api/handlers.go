package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/maksimkurb/keen-netconf/lib/datastore"
	"github.com/maksimkurb/keen-netconf/lib/ifregistry"
	"github.com/maksimkurb/keen-netconf/lib/networking"
	"github.com/maksimkurb/keen-netconf/lib/opdata"
)

// neighbor discovery, replaceable in tests.
var discoverNeighbors = networking.DiscoverNeighbors

// Reconciler is the slice of the engine the API needs: read access to the
// registry and the ability to trigger an apply cycle.
type Reconciler interface {
	HandleModuleChange(event datastore.Event) error
	Registry() *ifregistry.Registry
}

type interfaceJSON struct {
	Name      string    `json:"name"`
	KindLabel string    `json:"kind_label,omitempty"`
	IPv4      *ipv4JSON `json:"ipv4,omitempty"`
}

type ipv4JSON struct {
	Enabled      bool   `json:"enabled"`
	Forwarding   bool   `json:"forwarding"`
	Origin       string `json:"origin"`
	MTU          uint16 `json:"mtu"`
	IP           string `json:"ip,omitempty"`
	PrefixLength uint8  `json:"prefix_length,omitempty"`
}

type stateValueJSON struct {
	XPath string `json:"xpath"`
	Value string `json:"value"`
}

func toInterfaceJSON(iface *ifregistry.Interface) interfaceJSON {
	out := interfaceJSON{
		Name:      iface.Name,
		KindLabel: iface.KindLabel,
	}
	if iface.IPv4 != nil {
		out.IPv4 = &ipv4JSON{
			Enabled:      iface.IPv4.Enabled,
			Forwarding:   iface.IPv4.Forwarding,
			Origin:       iface.IPv4.Origin.String(),
			MTU:          iface.IPv4.MTU,
			IP:           iface.IPv4.Address.IP,
			PrefixLength: iface.IPv4.Address.PrefixLength,
		}
	}
	return out
}

// HandleInterfacesList returns every registered interface record
func HandleInterfacesList(rec Reconciler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ifaces := rec.Registry().All()
		out := make([]interfaceJSON, 0, len(ifaces))
		for _, iface := range ifaces {
			out = append(out, toInterfaceJSON(iface))
		}
		RespondOK(w, out)
	}
}

// HandleInterfacesGet returns a single interface record by name
func HandleInterfacesGet(rec Reconciler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "name")
		iface, ok := rec.Registry().Get(name)
		if !ok {
			RespondNotFound(w, "no such interface: "+name)
			return
		}
		RespondOK(w, toInterfaceJSON(iface))
	}
}

// HandleInterfaceState returns live operational data for one interface node
func HandleInterfaceState(provider *opdata.Provider, node string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "name")
		values := provider.Get(datastore.StatePath(name, node))

		out := make([]stateValueJSON, 0, len(values))
		for _, value := range values {
			out = append(out, stateValueJSON{XPath: value.XPath, Value: value.Value.String()})
		}
		RespondOK(w, out)
	}
}

// HandleNeighborsList returns the current neighbor table snapshot
func HandleNeighborsList() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		neighbors, err := discoverNeighbors()
		if err != nil {
			RespondInternalError(w, err.Error())
			return
		}
		if neighbors == nil {
			neighbors = []networking.Neighbor{}
		}
		RespondOK(w, neighbors)
	}
}

// HandleApply triggers one reconciliation cycle as if an apply event had
// been delivered by the datastore
func HandleApply(rec Reconciler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := rec.HandleModuleChange(datastore.EventApply); err != nil {
			RespondInternalError(w, err.Error())
			return
		}
		RespondOK(w, map[string]string{"status": "applied"})
	}
}
