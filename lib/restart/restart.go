package restart

import (
	"os/exec"
	"time"

	"github.com/maksimkurb/keen-netconf/lib/log"
)

// Orchestrator restarts the network stack out of line from the
// reconciliation path. The delay gives the configuration store time to
// settle before the init script re-reads it.
type Orchestrator struct {
	command string
	delay   time.Duration

	// run is replaceable in tests.
	run func(command string) error
}

func New(command string, delay time.Duration) *Orchestrator {
	return &Orchestrator{
		command: command,
		delay:   delay,
		run: func(command string) error {
			return exec.Command(command, "restart").Run()
		},
	}
}

// RestartNow runs the restart command immediately and waits for it. Used
// by one-shot invocations that exit right after pushing configuration.
func (o *Orchestrator) RestartNow() error {
	log.Infof("Restarting network (%s restart)", o.command)
	return o.run(o.command)
}

// Schedule queues one network restart after the configured delay and
// returns immediately. A failing or slow restart command never blocks the
// caller; launch failures are logged and dropped.
func (o *Orchestrator) Schedule() {
	log.Infof("Restarting network in %v after module change", o.delay)

	go func() {
		time.Sleep(o.delay)
		if err := o.run(o.command); err != nil {
			log.Warnf("Could not execute network restart (%s restart): %v, do it manually?", o.command, err)
		}
	}()
}
