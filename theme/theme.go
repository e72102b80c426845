// Copyright © 2025 The Gotheme Project.

/*
Package theme decides the light/dark appearance of the desktop surfaces.

A Target binds the appearance of one surface to a daily schedule.Window. A
Scheduler holds the application and system targets and reconciles both with
the appearance observed on the desktop, once per tick.
*/
package theme

import (
	"github.com/zosmac/gocore"
	"github.com/zosmac/gotheme/schedule"
)

type (
	// Surface names an independently themed part of the desktop.
	Surface string

	// Appearance is the light/dark state of a surface.
	Appearance struct {
		Dark bool `json:"dark"`
	}

	// Target schedules the appearance of one surface.
	Target struct {
		Current Appearance      `json:"current"`
		Window  schedule.Window `json:"-"`
		Auto    bool            `json:"auto"`
	}
)

const (
	// Apps is the default appearance of regular applications.
	Apps Surface = "apps"
	// System is the appearance of the taskbar and shell.
	System Surface = "system"
)

var (
	// Surfaces lists the valid surfaces in reconciliation order.
	Surfaces = gocore.ValidValue[Surface]{}.Define(Apps, System)

	// Light and Dark appearances.
	Light = Appearance{}
	Dark  = Appearance{Dark: true}
)

// String reports "dark" or "light".
func (a Appearance) String() string {
	if a.Dark {
		return "dark"
	}
	return "light"
}

// Reconcile computes the appearance of the target at now. With automatic
// switching off the observed desktop state is taken as is, so changes made
// outside this program are adopted.
func (t *Target) Reconcile(now schedule.TimeOfDay, observed Appearance) Appearance {
	if t.Auto {
		t.Current = Appearance{Dark: t.Window.Contains(now)}
	} else {
		t.Current = observed
	}
	return t.Current
}
