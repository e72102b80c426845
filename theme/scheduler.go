// Copyright © 2025 The Gotheme Project.

package theme

import (
	"github.com/zosmac/gotheme/schedule"
)

type (
	// Scheduler reconciles the application and system targets.
	Scheduler struct {
		App    Target `json:"app"`
		System Target `json:"system"`
		// Link has the system surface follow the application surface.
		Link bool `json:"link"`
	}
)

// Target returns the target for a surface, nil if the surface is not valid.
func (s *Scheduler) Target(surface Surface) *Target {
	if !Surfaces.IsValid(surface) {
		return nil
	}
	return [...]*Target{&s.App, &s.System}[Surfaces.Index(surface)]
}

// Tick reconciles both targets against the observed desktop and returns
// the appearance to apply to each surface. The result depends only on the
// scheduler's fields and the arguments, so repeating a tick with the same
// inputs repeats its outputs.
func (s *Scheduler) Tick(now schedule.TimeOfDay, observedApp, observedSystem Appearance) (app, system Appearance) {
	app = s.App.Reconcile(now, observedApp)
	system = s.System.Reconcile(now, observedSystem)
	if s.Link {
		system = app
		s.System.Current = app
	}
	return app, system
}

// Toggle sets the appearance of a surface by hand. The value holds only
// while automatic switching is off for the surface.
func (s *Scheduler) Toggle(surface Surface, a Appearance) {
	if t := s.Target(surface); t != nil {
		t.Current = a
	}
}

// Manual returns the surfaces whose hand-set appearance differs from prev.
// A surface under automatic switching, or a linked system surface, is
// never reported.
func (s *Scheduler) Manual(prev Scheduler) []Surface {
	var ss []Surface
	if !s.App.Auto && s.App.Current != prev.App.Current {
		ss = append(ss, Apps)
	}
	if !s.Link && !s.System.Auto && s.System.Current != prev.System.Current {
		ss = append(ss, System)
	}
	return ss
}
