package commands

import (
	"fmt"
	"time"

	"github.com/maksimkurb/keen-netconf/lib/config"
	"github.com/maksimkurb/keen-netconf/lib/datastore"
	"github.com/maksimkurb/keen-netconf/lib/ifregistry"
	"github.com/maksimkurb/keen-netconf/lib/networking"
	"github.com/maksimkurb/keen-netconf/lib/reconciler"
	"github.com/maksimkurb/keen-netconf/lib/restart"
	"github.com/maksimkurb/keen-netconf/lib/uci"
)

type Runner interface {
	Init(args []string, globalArgs *AppContext) error
	Run() error
	Name() string
}

type AppContext struct {
	ConfigPath string
	Verbose    bool
}

func loadAndValidateConfigOrFail(configPath string) (*config.Config, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %v", err)
	}

	if err = cfg.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("configuration validation is failed: %v", err)
	}
	return cfg, nil
}

// buildEngine discovers kernel interfaces and wires the reconciliation
// engine against the configured UCI tree and the given datastore session.
func buildEngine(cfg *config.Config, sess datastore.Session) (*reconciler.Engine, error) {
	reg := ifregistry.NewRegistry()
	if err := networking.DiscoverInterfaces(reg); err != nil {
		return nil, fmt.Errorf("interface discovery failed: %v", err)
	}

	tree := uci.NewDiskTree(cfg.General.UCIRoot)
	orchestrator := restart.New(cfg.Restart.Command, time.Duration(cfg.Restart.DelaySeconds)*time.Second)

	return reconciler.New(reg, sess, tree, cfg.General.NetworkPackage, orchestrator), nil
}
