// Copyright © 2025 The Gotheme Project.

package switcher

import (
	"errors"
	"time"

	"github.com/zosmac/gocore"
)

var (
	// flags defines the command line flags.
	flags = struct {
		interval
		once   bool
		dryRun bool
	}{
		interval: interval(5 * time.Second),
	}
)

// init initializes the command line flags.
func init() {
	gocore.Flags.Var(
		&flags.interval,
		"interval",
		"[-interval <duration>]",
		"Reconcile the desktop appearance every `duration`, specified in Go time.Duration string format (minimum 1s)",
	)
	gocore.Flags.Var(
		&flags.once,
		"once",
		"[-once]",
		"Reconcile the desktop appearance once and exit",
	)
	gocore.Flags.Var(
		&flags.dryRun,
		"dry-run",
		"[-dry-run]",
		"Keep the desktop appearance in memory rather than in the operating system settings",
	)
}

// interval is a command line flag type.
type interval time.Duration

// Set is a flag.Value interface method to enable interval as a command line flag.
func (i *interval) Set(s string) error {
	d, err := time.ParseDuration(s)
	if err != nil {
		return gocore.Error("ParseDuration", err)
	}
	if d <= 0 {
		return errors.New("invalid interval")
	}
	if d < time.Second {
		d = time.Second
	}
	*i = interval(d)
	return nil
}

// String is a flag.Value interface method to enable interval as a command line flag.
func (i *interval) String() string {
	return time.Duration(*i).String()
}

// alignment returns the time from t to the next multiple of the interval.
func (i interval) alignment(t time.Time) time.Duration {
	d := time.Duration(i)
	return d - t.Sub(t.Truncate(d))
}

// Interval returns the reconcile interval set on the command line.
func Interval() time.Duration {
	return time.Duration(flags.interval)
}

// Once reports whether to reconcile once and exit.
func Once() bool {
	return flags.once
}

// DryRun reports whether to keep the desktop appearance in memory.
func DryRun() bool {
	return flags.dryRun
}
