package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/maksimkurb/keen-netconf/lib/commands"
	"github.com/maksimkurb/keen-netconf/lib/log"
)

func main() {
	ctx := &commands.AppContext{}

	// Define flags
	flag.StringVar(&ctx.ConfigPath, "config", "/opt/etc/keen-netconf/keen-netconf.conf", "Path to configuration file")
	flag.BoolVar(&ctx.Verbose, "verbose", false, "Enable verbose logging")

	// Custom usage message
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Keenetic Network Configuration Reconciler\n\n")
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <command>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Commands:\n")
		fmt.Fprintf(os.Stderr, "  run                     Run the reconciliation daemon with the status API\n")
		fmt.Fprintf(os.Stderr, "  apply                   Push current interface state to the config store and restart the network\n")
		fmt.Fprintf(os.Stderr, "  interfaces              Get available interfaces list\n")
		fmt.Fprintf(os.Stderr, "  neighbors               Dump the IPv4 neighbor table\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	log.SetVerbose(ctx.Verbose)

	cmds := []commands.Runner{
		commands.CreateRunCommand(),
		commands.CreateApplyCommand(),
		commands.CreateInterfacesCommand(),
		commands.CreateNeighborsCommand(),
	}

	args := flag.Args()

	if len(args) < 1 {
		flag.Usage()
		os.Exit(1)
	}

	subcommand := args[0]
	for _, cmd := range cmds {
		if cmd.Name() == subcommand {
			if err := cmd.Init(args[1:], ctx); err != nil {
				log.Fatalf("Failed to initialize command: %v", err)
			}

			if err := cmd.Run(); err != nil {
				log.Fatalf("Failed to run command: %v", err)
			}

			os.Exit(0)
		}
	}

	log.Fatalf("Unknown subcommand: %s", subcommand)
}
