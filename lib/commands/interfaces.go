package commands

import (
	"flag"
	"fmt"

	"github.com/maksimkurb/keen-netconf/lib/ifregistry"
	"github.com/maksimkurb/keen-netconf/lib/networking"
)

func CreateInterfacesCommand() *InterfacesCommand {
	gc := &InterfacesCommand{
		fs: flag.NewFlagSet("interfaces", flag.ExitOnError),
	}
	return gc
}

type InterfacesCommand struct {
	fs  *flag.FlagSet
	ctx *AppContext
}

func (g *InterfacesCommand) Name() string {
	return g.fs.Name()
}

func (g *InterfacesCommand) Init(args []string, ctx *AppContext) error {
	g.ctx = ctx
	return g.fs.Parse(args)
}

func (g *InterfacesCommand) Run() error {
	reg := ifregistry.NewRegistry()
	if err := networking.DiscoverInterfaces(reg); err != nil {
		return fmt.Errorf("interface discovery failed: %v", err)
	}

	networking.PrintInterfaces(reg)
	return nil
}
