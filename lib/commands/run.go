package commands

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/maksimkurb/keen-netconf/lib/api"
	"github.com/maksimkurb/keen-netconf/lib/config"
	"github.com/maksimkurb/keen-netconf/lib/datastore"
	"github.com/maksimkurb/keen-netconf/lib/log"
	"github.com/maksimkurb/keen-netconf/lib/opdata"
	"github.com/maksimkurb/keen-netconf/lib/sysinfo"
)

func CreateRunCommand() *RunCommand {
	return &RunCommand{
		fs: flag.NewFlagSet("run", flag.ExitOnError),
	}
}

// RunCommand is the daemon mode: discover, load initial config, publish
// the operational snapshot and idle until interrupted, serving the status
// API and reconciling on demand.
type RunCommand struct {
	fs  *flag.FlagSet
	ctx *AppContext
	cfg *config.Config
}

func (c *RunCommand) Name() string {
	return c.fs.Name()
}

func (c *RunCommand) Init(args []string, ctx *AppContext) error {
	c.ctx = ctx

	if err := c.fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadAndValidateConfigOrFail(ctx.ConfigPath)
	if err != nil {
		return err
	}
	c.cfg = cfg

	return nil
}

func (c *RunCommand) Run() error {
	// Standalone mode runs against the bundled in-memory datastore; a
	// production deployment swaps in a real datastore client here.
	sess := datastore.NewMemSession()

	engine, err := buildEngine(c.cfg, sess)
	if err != nil {
		return err
	}

	log.Infof("Discovered %d network interfaces", engine.Registry().Len())

	engine.InitConfig()
	engine.PublishToDatastore()
	log.Infof("Published operational snapshot to the datastore")

	provider := opdata.NewProvider(engine.Registry(), sysinfo.NewCommandSource())

	var server *api.Server
	if *c.cfg.API.Enabled {
		server = api.NewServer(c.cfg.API.BindAddress, engine, provider)
		go func() {
			if err := server.Start(); err != nil {
				log.Errorf("Status API failed: %v", err)
			}
		}()
	}

	// Idle until SIGINT/SIGTERM; change events arrive through the API in
	// standalone mode.
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
	<-signals

	log.Infof("Shutting down...")
	if server != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Stop(ctx); err != nil {
			log.Warnf("Failed to stop status API: %v", err)
		}
	}

	return nil
}
