package reconciler

import (
	"errors"
	"fmt"

	"github.com/maksimkurb/keen-netconf/lib/datastore"
	"github.com/maksimkurb/keen-netconf/lib/ifregistry"
	"github.com/maksimkurb/keen-netconf/lib/log"
	"github.com/maksimkurb/keen-netconf/lib/networking"
	"github.com/maksimkurb/keen-netconf/lib/uci"
)

// ifTypeEthernet is the fixed identity published for every interface.
const ifTypeEthernet = "iana-if-type:ethernetCsmacd"

// live kernel queries, replaceable in tests.
var (
	liveAddress = networking.LiveAddress
	liveMTU     = networking.LiveMTU
)

// Restarter schedules a network-stack restart without blocking the caller.
type Restarter interface {
	Schedule()
}

// Engine synchronizes the interface registry between the datastore and the
// UCI configuration store. All methods run on the caller's goroutine; the
// subscription mechanism delivers at most one change event at a time, so
// the registry needs no locking.
type Engine struct {
	reg       *ifregistry.Registry
	sess      datastore.Session
	tree      uci.Tree
	pkg       string
	restarter Restarter
}

func New(reg *ifregistry.Registry, sess datastore.Session, tree uci.Tree, pkg string, restarter Restarter) *Engine {
	return &Engine{
		reg:       reg,
		sess:      sess,
		tree:      tree,
		pkg:       pkg,
		restarter: restarter,
	}
}

// InitConfig seeds every record with its live kernel address and MTU and
// resolves its UCI section. Runs once at startup, after discovery. A record
// with no matching UCI section keeps an empty KindLabel and is skipped by
// the push path later.
func (e *Engine) InitConfig() {
	for _, iface := range e.reg.All() {
		if addr, err := liveAddress(iface.Name); err != nil {
			log.Warnf("Failed to read address of %s: %v", iface.Name, err)
		} else if addr.IP != "" {
			iface.IPv4.Address = addr
		}

		if mtu, err := liveMTU(iface.Name); err != nil {
			log.Warnf("Failed to read MTU of %s: %v", iface.Name, err)
		} else {
			iface.IPv4.MTU = mtu
		}

		if label, err := uci.ResolveKindLabel(e.tree, e.pkg, iface.Name); err != nil {
			if !errors.Is(err, uci.ErrNotFound) {
				log.Warnf("Failed to resolve section for %s: %v", iface.Name, err)
			}
		} else {
			iface.KindLabel = label
		}
	}
}

// HandleModuleChange is the change-notification entry point. Verify events
// are accepted unconditionally. Apply events run the pull/merge/push cycle
// and schedule exactly one network restart on success; on failure partial
// mutations stay applied, there is no compensating rollback.
func (e *Engine) HandleModuleChange(event datastore.Event) error {
	switch event {
	case datastore.EventVerify:
		log.Infof("Verifying event, accepting.")
		return nil
	case datastore.EventAbort:
		log.Infof("Abort event, nothing to roll back.")
		return nil
	}

	log.Infof("Applying changes.")

	if err := e.PullFromDatastore(); err != nil {
		log.Errorf("Changes not applied: %v", err)
		return err
	}
	if err := e.PushToConfigStore(); err != nil {
		log.Errorf("Changes not applied: %v", err)
		return err
	}

	e.restarter.Schedule()
	return nil
}

// PullFromDatastore merges declared configuration onto the in-memory
// records. The datastore is authoritative only for attributes it actually
// holds: a "not found" answer keeps the current in-memory value, so
// interfaces with no datastore entry at all pass through untouched.
func (e *Engine) PullFromDatastore() error {
	for _, iface := range e.reg.All() {
		cfg := iface.IPv4
		log.Debugf("Updating model for interface %s", iface.Name)

		e.pull(datastore.IPv4Path(iface.Name, "enabled"), func(v datastore.Value) {
			cfg.Enabled = v.Bool
		})
		e.pull(datastore.IPv4Path(iface.Name, "forwarding"), func(v datastore.Value) {
			cfg.Forwarding = v.Bool
		})
		e.pull(datastore.IPv4Path(iface.Name, "origin"), func(v datastore.Value) {
			cfg.Origin = ifregistry.ParseOrigin(v.Str)
		})
		e.pull(datastore.IPv4Path(iface.Name, "mtu"), func(v datastore.Value) {
			cfg.MTU = uint16(v.Uint)
		})
		// Both address leaves live under the same list key. The key is the
		// address held before this pull, so snapshot it: the ip pull may
		// change cfg.Address.IP and the prefix-length leaf would become
		// unreachable.
		ip := cfg.Address.IP
		e.pull(datastore.IPv4AddressPath(iface.Name, ip, "ip"), func(v datastore.Value) {
			cfg.Address.IP = v.Str
		})
		e.pull(datastore.IPv4AddressPath(iface.Name, ip, "prefix-length"), func(v datastore.Value) {
			cfg.Address.PrefixLength = uint8(v.Uint)
		})
	}
	return nil
}

// pull queries one attribute and applies it on success. Absence keeps the
// current value; any other query failure is logged and treated the same.
func (e *Engine) pull(xpath string, apply func(datastore.Value)) {
	value, err := e.sess.Get(xpath)
	if err == nil {
		apply(value)
		return
	}
	if errors.Is(err, datastore.ErrNotFound) {
		log.Debugf("No value at %s, keeping current", xpath)
	} else {
		log.Warnf("Datastore query %s failed: %v", xpath, err)
	}
}

// PushToConfigStore writes every resolved record's attributes to its UCI
// section. Records without a resolved section are skipped, not an error.
func (e *Engine) PushToConfigStore() error {
	for _, iface := range e.reg.All() {
		if iface.KindLabel == "" {
			continue
		}
		if err := uci.Apply(e.tree, e.pkg, iface.KindLabel, iface.IPv4); err != nil {
			return fmt.Errorf("failed to push %s to section %s: %v", iface.Name, iface.KindLabel, err)
		}
	}
	return nil
}

// PublishToDatastore writes the operational snapshot of every record into
// the datastore, best-effort per field, committing per interface. Runs once
// at startup, not on change events.
func (e *Engine) PublishToDatastore() {
	for _, iface := range e.reg.All() {
		cfg := iface.IPv4

		e.set(datastore.InterfacePath(iface.Name, "type"), datastore.IdentityrefVal(ifTypeEthernet))
		e.set(datastore.IPv4Path(iface.Name, "forwarding"), datastore.BoolVal(cfg.Forwarding))
		e.set(datastore.IPv4Path(iface.Name, "mtu"), datastore.Uint16Val(cfg.MTU))
		e.set(datastore.IPv4Path(iface.Name, "enabled"), datastore.BoolVal(cfg.Enabled))

		if err := e.sess.Commit(); err != nil {
			log.Warnf("Failed to commit datastore changes for %s: %v", iface.Name, err)
		}
	}
}

func (e *Engine) set(xpath string, value datastore.Value) {
	if err := e.sess.Set(xpath, value); err != nil {
		log.Warnf("Failed to set %s: %v", xpath, err)
	}
}

// Registry exposes the engine-owned interface registry to read-only
// consumers (status API, operational data provider).
func (e *Engine) Registry() *ifregistry.Registry {
	return e.reg
}
