// Copyright © 2025 The Gotheme Project.

package main

import (
	"context"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/zosmac/gocore"
	"github.com/zosmac/gotheme/config"
	"github.com/zosmac/gotheme/desktop"
	"github.com/zosmac/gotheme/serve"
	"github.com/zosmac/gotheme/switcher"
	"github.com/zosmac/gotheme/theme"
)

// main
func main() {
	gocore.Main(Main)
}

// Main called from gocore.Main.
func Main(ctx context.Context) error {
	d, err := open()
	if err != nil {
		return err
	}

	executable := switcher.Executable()
	store := config.NewStore(config.Path())
	driver := switcher.New(store, d, d, switcher.Options{
		AppID:      appID,
		Executable: executable,
	})

	if switcher.Once() {
		driver.Step(time.Now())
		return nil
	}

	reload, err := config.Watch(ctx, store.Path())
	if err != nil {
		gocore.Error("config Watch", err).Warn()
	}

	// fire up the http server
	serve.Serve(ctx, driver)

	gocore.Error("start", nil, map[string]string{
		"pid":        strconv.Itoa(os.Getpid()),
		"command":    strings.Join(os.Args, " "),
		"executable": executable,
		"version":    gocore.Version,
		"user":       gocore.Username(os.Getuid()),
		"config":     store.Path(),
		"interval":   switcher.Interval().String(),
	}).Info()

	return gocore.Error("stop", driver.Run(ctx, reload), map[string]string{
		"command": os.Args[0],
	})
}

// open returns the desktop to drive, held in memory for a dry run.
func open() (desktop.Desktop, error) {
	if switcher.DryRun() {
		return desktop.NewMemory(), nil
	}

	if info, err := desktop.Probe(); err != nil {
		gocore.Error("desktop Probe", err).Warn()
	} else {
		for _, name := range theme.Surfaces.ValidValues() {
			if s := theme.Surface(name); !info.Supported[s] {
				gocore.Error("desktop Probe", nil, map[string]string{
					"surface": string(s),
					"os":      info.Caption,
					"build":   strconv.Itoa(info.Build),
					"support": "none",
				}).Warn()
			}
		}
	}

	d, err := desktop.New()
	if err != nil {
		return nil, gocore.Error("desktop", err)
	}
	return d, nil
}
