package commands

import (
	"flag"
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

func CreateApplyCommand() *ApplyCommand {
	gc := &ApplyCommand{
		fs: flag.NewFlagSet("apply", flag.ExitOnError),
	}

	gc.fs.BoolVar(&gc.SkipRestart, "skip-restart", false, "Push configuration but do not restart the network stack")

	return gc
}

// ApplyCommand is the one-shot mode: discover interfaces, seed live state,
// push every resolved record to the configuration store and restart the
// network stack, then exit.
type ApplyCommand struct {
	fs  *flag.FlagSet
	cfg *config.Config

	SkipRestart bool
}

func (g *ApplyCommand) Name() string {
	return g.fs.Name()
}

func (g *ApplyCommand) Init(args []string, ctx *AppContext) error {
	if err := g.fs.Parse(args); err != nil {
		return err
	}

	if cfg, err := loadAndValidateConfigOrFail(ctx.ConfigPath); err != nil {
		return err
	} else {
		g.cfg = cfg
	}

	return nil
}

func (g *ApplyCommand) Run() error {
	reg := ifregistry.NewRegistry()
	if err := networking.DiscoverInterfaces(reg); err != nil {
		return fmt.Errorf("interface discovery failed: %v", err)
	}

	tree := uci.NewDiskTree(g.cfg.General.UCIRoot)
	orchestrator := restart.New(g.cfg.Restart.Command, time.Duration(g.cfg.Restart.DelaySeconds)*time.Second)

	engine := reconciler.New(reg, datastore.NewMemSession(), tree, g.cfg.General.NetworkPackage, orchestrator)
	engine.InitConfig()

	if err := engine.PushToConfigStore(); err != nil {
		return fmt.Errorf("failed to push configuration: %v", err)
	}

	if g.SkipRestart {
		return nil
	}

	if err := orchestrator.RestartNow(); err != nil {
		return fmt.Errorf("failed to restart network: %v", err)
	}

	return nil
}
