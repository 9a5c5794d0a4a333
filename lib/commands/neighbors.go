package commands

import (
	"flag"
	"fmt"

	"github.com/maksimkurb/keen-netconf/lib/networking"
)

func CreateNeighborsCommand() *NeighborsCommand {
	gc := &NeighborsCommand{
		fs: flag.NewFlagSet("neighbors", flag.ExitOnError),
	}
	return gc
}

type NeighborsCommand struct {
	fs  *flag.FlagSet
	ctx *AppContext
}

func (g *NeighborsCommand) Name() string {
	return g.fs.Name()
}

func (g *NeighborsCommand) Init(args []string, ctx *AppContext) error {
	g.ctx = ctx
	return g.fs.Parse(args)
}

func (g *NeighborsCommand) Run() error {
	neighbors, err := networking.DiscoverNeighbors()
	if err != nil {
		return fmt.Errorf("neighbor discovery failed: %v", err)
	}

	networking.PrintNeighbors(neighbors)
	return nil
}
