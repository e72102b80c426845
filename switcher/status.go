// Copyright © 2025 The Gotheme Project.

package switcher

import (
	"time"

	"github.com/zosmac/gotheme/theme"
)

type (
	// Surface reports the state of one surface.
	Surface struct {
		Appearance  theme.Appearance `json:"appearance"`
		Auto        bool             `json:"auto"`
		Window      string           `json:"window"`
		Transitions uint64           `json:"transitions"`
		WriteErrors uint64           `json:"write_errors"`
	}

	// Status is a snapshot of the driver, published after each step or reload.
	Status struct {
		Time       time.Time                 `json:"time"`
		Config     string                    `json:"config"`
		Link       bool                      `json:"link"`
		Autostart  bool                      `json:"autostart"`
		Ticks      uint64                    `json:"ticks"`
		SaveErrors uint64                    `json:"save_errors"`
		Surfaces   map[theme.Surface]Surface `json:"surfaces"`
	}
)

// publish replaces the status snapshot.
func (d *Driver) publish(now time.Time) {
	s := &Status{
		Time:       now,
		Config:     d.store.Path(),
		Link:       d.scheduler.Link,
		Autostart:  d.autostart,
		Ticks:      d.ticks,
		SaveErrors: d.saveErrors,
		Surfaces:   map[theme.Surface]Surface{},
	}
	for _, name := range theme.Surfaces.ValidValues() {
		surface := theme.Surface(name)
		t := d.scheduler.Target(surface)
		s.Surfaces[surface] = Surface{
			Appearance:  t.Current,
			Auto:        t.Auto,
			Window:      t.Window.String(),
			Transitions: d.transitions[surface],
			WriteErrors: d.writeErrors[surface],
		}
	}
	d.status.Store(s)
}
