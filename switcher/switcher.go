// Copyright © 2025 The Gotheme Project.

package switcher

import (
	"context"
	"errors"
	"os"
	"sync/atomic"
	"time"

	"github.com/zosmac/gocore"
	"github.com/zosmac/gotheme/config"
	"github.com/zosmac/gotheme/desktop"
	"github.com/zosmac/gotheme/schedule"
	"github.com/zosmac/gotheme/theme"
)

type (
	// Options tune a Driver. Zero values select the defaults.
	Options struct {
		AppID      string           // autostart registration name, default "gotheme"
		Executable string           // command registered for autostart, default os.Executable
		Interval   time.Duration    // time between steps, default the -interval flag
		Now        func() time.Time // clock, default time.Now
	}

	// Driver owns the scheduler and applies its decisions to the desktop.
	// Other than Current, its methods must be called from a single goroutine.
	Driver struct {
		store       *config.Store
		provider    desktop.Provider
		autostarter desktop.Autostarter
		opts        Options

		scheduler theme.Scheduler
		autostart bool

		ticks       uint64
		saveErrors  uint64
		transitions map[theme.Surface]uint64
		writeErrors map[theme.Surface]uint64
		warned      map[theme.Surface]schedule.Window

		status atomic.Pointer[Status]
	}
)

// New loads the configuration from store, falling back to the defaults, and
// returns a driver for the desktop. If autostart is configured the
// registration is renewed.
func New(store *config.Store, provider desktop.Provider, autostarter desktop.Autostarter, opts Options) *Driver {
	if opts.AppID == "" {
		opts.AppID = "gotheme"
	}
	if opts.Executable == "" {
		opts.Executable = Executable()
	}
	if opts.Interval <= 0 {
		opts.Interval = Interval()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	c := store.LoadOrDefault()
	d := &Driver{
		store:       store,
		provider:    provider,
		autostarter: autostarter,
		opts:        opts,
		scheduler:   c.Scheduler(),
		autostart:   c.IsAutostart,
		transitions: map[theme.Surface]uint64{},
		writeErrors: map[theme.Surface]uint64{},
		warned:      map[theme.Surface]schedule.Window{},
	}
	if d.autostart {
		d.register()
	}
	d.checkWindows()
	d.publish(opts.Now())
	return d
}

// Run steps at each interval until ctx is cancelled, and applies the
// configuration whenever reload receives. Steps are aligned to multiples of
// the interval.
func (d *Driver) Run(ctx context.Context, reload <-chan struct{}) error {
	d.Step(d.opts.Now())

	align := time.NewTimer(interval(d.opts.Interval).alignment(time.Now()))
	defer align.Stop()
	var ticker *time.Ticker
	defer func() {
		if ticker != nil {
			ticker.Stop()
		}
	}()

	var tick <-chan time.Time // nil until aligned
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case <-align.C:
			ticker = time.NewTicker(d.opts.Interval)
			tick = ticker.C
			d.Step(d.opts.Now())

		case <-tick:
			d.Step(d.opts.Now())

		case <-reload:
			d.reload()
		}
	}
}

// Step persists the configuration, then reconciles the scheduler with the
// desktop at now and writes the surfaces whose appearance changes.
func (d *Driver) Step(now time.Time) {
	d.persist()

	observedApp := d.provider.Get(theme.Apps)
	observedSystem := d.provider.Get(theme.System)
	app, system := d.scheduler.Tick(schedule.Of(now), observedApp, observedSystem)
	d.apply(theme.Apps, observedApp, app)
	d.apply(theme.System, observedSystem, system)

	d.ticks++
	d.publish(now)
}

// Reload replaces the scheduler with an edited configuration. Hand-set
// appearances that changed are written at once, as the next step would
// otherwise adopt the desktop's state in their place.
func (d *Driver) Reload(c config.Config) {
	prev := d.scheduler
	next := c.Scheduler()
	if next == prev && c.IsAutostart == d.autostart {
		return
	}

	gocore.Error("reload", nil, map[string]string{
		"path": d.store.Path(),
	}).Info()

	d.scheduler = next
	for _, s := range next.Manual(prev) {
		d.apply(s, d.provider.Get(s), d.scheduler.Target(s).Current)
	}
	if c.IsAutostart != d.autostart {
		d.autostart = c.IsAutostart
		d.register()
	}
	d.checkWindows()
	d.publish(d.opts.Now())
}

// Current returns the most recently published status. It is safe to call
// from any goroutine.
func (d *Driver) Current() Status {
	return *d.status.Load()
}

// persist saves the configuration. If the record was edited since it was
// last read or written, the edit is loaded instead.
func (d *Driver) persist() {
	err := d.store.Save(config.New(d.scheduler, d.autostart))
	if errors.Is(err, config.ErrModified) {
		d.reload()
		return
	}
	if err != nil {
		d.saveErrors++
		gocore.Error("save config", err, map[string]string{
			"path": d.store.Path(),
		}).Warn()
	}
}

// reload loads the record and applies it, unless it is as the driver last
// read or saved it. A record that cannot be loaded leaves the current state
// in place, to be written over by the next save.
func (d *Driver) reload() {
	if !d.store.Changed() {
		return
	}
	c, err := d.store.Load()
	if err != nil {
		gocore.Error("reload config", err, map[string]string{
			"path": d.store.Path(),
		}).Warn()
		return
	}
	d.Reload(c)
}

// apply writes the appearance of a surface if it differs from what was
// observed. A failed write is counted and left for the next step to retry.
func (d *Driver) apply(s theme.Surface, observed, want theme.Appearance) {
	if want == observed {
		return
	}
	if err := d.provider.Set(s, want); err != nil {
		d.writeErrors[s]++
		gocore.Error("apply", err, map[string]string{
			"surface":    string(s),
			"appearance": want.String(),
		}).Warn()
		return
	}
	d.transitions[s]++
	gocore.Error("apply", nil, map[string]string{
		"surface": string(s),
		"from":    observed.String(),
		"to":      want.String(),
	}).Info()
}

// register brings the autostart registration in line with the configuration.
func (d *Driver) register() {
	var err error
	if d.autostart {
		err = d.autostarter.EnableAutostart(d.opts.AppID, d.opts.Executable)
	} else {
		err = d.autostarter.DisableAutostart(d.opts.AppID)
	}
	if err != nil {
		gocore.Error("autostart", err).Warn()
	}
}

// Executable returns the absolute path of the running command, or its name
// as invoked if the path cannot be determined.
func Executable() string {
	exe, err := os.Executable()
	if err != nil {
		gocore.Error("Executable", err).Warn()
		return os.Args[0]
	}
	return exe
}

// checkWindows warns once per window of an automatic target that does not
// wrap past midnight, as every time of day falls inside such a window.
func (d *Driver) checkWindows() {
	for _, name := range theme.Surfaces.ValidValues() {
		s := theme.Surface(name)
		t := d.scheduler.Target(s)
		if !t.Auto || t.Window.Overnight() {
			continue
		}
		if w, ok := d.warned[s]; ok && w == t.Window {
			continue
		}
		d.warned[s] = t.Window
		gocore.Error("window", errors.New("start is not after end, surface stays dark"), map[string]string{
			"surface": string(s),
			"window":  t.Window.String(),
		}).Warn()
	}
}
