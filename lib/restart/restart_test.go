package restart

import (
	"errors"
	"testing"
	"time"
)

func TestScheduleRunsCommandAfterDelay(t *testing.T) {
	ran := make(chan string, 1)

	o := New("/etc/init.d/network", time.Millisecond)
	o.run = func(command string) error {
		ran <- command
		return nil
	}

	start := time.Now()
	o.Schedule()

	select {
	case command := <-ran:
		if command != "/etc/init.d/network" {
			t.Errorf("ran command %q, want /etc/init.d/network", command)
		}
		if elapsed := time.Since(start); elapsed < time.Millisecond {
			t.Errorf("command ran after %v, want at least the configured delay", elapsed)
		}
	case <-time.After(time.Second):
		t.Fatal("restart command was not invoked")
	}
}

func TestScheduleDoesNotBlockCaller(t *testing.T) {
	release := make(chan struct{})

	o := New("/etc/init.d/network", 0)
	o.run = func(string) error {
		<-release
		return nil
	}

	done := make(chan struct{})
	go func() {
		o.Schedule()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Schedule() blocked on a slow restart command")
	}
	close(release)
}

func TestRestartNowReturnsCommandError(t *testing.T) {
	o := New("/etc/init.d/network", time.Second)
	o.run = func(command string) error {
		if command != "/etc/init.d/network" {
			t.Errorf("ran command %q, want /etc/init.d/network", command)
		}
		return errors.New("launch failed")
	}

	if err := o.RestartNow(); err == nil {
		t.Error("RestartNow() = nil, want command error")
	}
}

func TestScheduleSwallowsCommandFailure(t *testing.T) {
	ran := make(chan struct{}, 1)

	o := New("/etc/init.d/network", 0)
	o.run = func(string) error {
		ran <- struct{}{}
		return errors.New("launch failed")
	}

	o.Schedule() // must not panic or propagate

	select {
	case <-ran:
	case <-time.After(time.Second):
		t.Fatal("restart command was not invoked")
	}
}
