// Copyright © 2025 The Gotheme Project.

package config

import (
	"github.com/zosmac/gotheme/schedule"
	"github.com/zosmac/gotheme/theme"
)

type (
	// Config is the persisted record. Field order and names are those of
	// the record on disk. The *HH/*MM fields mirror the HH:MM:SS times for
	// readers of older records and are rewritten from them on every save.
	Config struct {
		IsDarkMode               bool               `toml:"is_dark_mode" yaml:"is_dark_mode" json:"is_dark_mode"`
		IsSystemDarkMode         bool               `toml:"is_system_dark_mode" yaml:"is_system_dark_mode" json:"is_system_dark_mode"`
		IsSystemBothDarkMode     bool               `toml:"is_system_both_dark_mode" yaml:"is_system_both_dark_mode" json:"is_system_both_dark_mode"`
		AutoModeChange           bool               `toml:"auto_mode_change" yaml:"auto_mode_change" json:"auto_mode_change"`
		AutoSystemModeChange     bool               `toml:"auto_system_mode_change" yaml:"auto_system_mode_change" json:"auto_system_mode_change"`
		CustomNightStart         schedule.TimeOfDay `toml:"custom_night_start" yaml:"custom_night_start" json:"custom_night_start"`
		CustomNightEnd           schedule.TimeOfDay `toml:"custom_night_end" yaml:"custom_night_end" json:"custom_night_end"`
		CustomNightStartHH       uint32             `toml:"custom_night_start_hh" yaml:"custom_night_start_hh" json:"custom_night_start_hh"`
		CustomNightStartMM       uint32             `toml:"custom_night_start_mm" yaml:"custom_night_start_mm" json:"custom_night_start_mm"`
		CustomNightEndHH         uint32             `toml:"custom_night_end_hh" yaml:"custom_night_end_hh" json:"custom_night_end_hh"`
		CustomNightEndMM         uint32             `toml:"custom_night_end_mm" yaml:"custom_night_end_mm" json:"custom_night_end_mm"`
		CustomSystemNightStart   schedule.TimeOfDay `toml:"custom_system_night_start" yaml:"custom_system_night_start" json:"custom_system_night_start"`
		CustomSystemNightEnd     schedule.TimeOfDay `toml:"custom_system_night_end" yaml:"custom_system_night_end" json:"custom_system_night_end"`
		CustomSystemNightStartHH uint32             `toml:"custom_system_night_start_hh" yaml:"custom_system_night_start_hh" json:"custom_system_night_start_hh"`
		CustomSystemNightStartMM uint32             `toml:"custom_system_night_start_mm" yaml:"custom_system_night_start_mm" json:"custom_system_night_start_mm"`
		CustomSystemNightEndHH   uint32             `toml:"custom_system_night_end_hh" yaml:"custom_system_night_end_hh" json:"custom_system_night_end_hh"`
		CustomSystemNightEndMM   uint32             `toml:"custom_system_night_end_mm" yaml:"custom_system_night_end_mm" json:"custom_system_night_end_mm"`
		IsAutostart              bool               `toml:"is_autostart" yaml:"is_autostart" json:"is_autostart"`
	}
)

var (
	// night is the window used until one is configured.
	night = schedule.Window{
		Start: schedule.MustAt(18, 0),
		End:   schedule.MustAt(6, 0),
	}
)

// Default returns the configuration used when none can be loaded: both
// surfaces switched by hand, windows 18:00 to 06:00, no autostart.
func Default() Config {
	return New(theme.Scheduler{
		App:    theme.Target{Window: night},
		System: theme.Target{Window: night},
	}, false)
}

// New captures the state of a scheduler as a record.
func New(s theme.Scheduler, autostart bool) Config {
	return Config{
		IsDarkMode:             s.App.Current.Dark,
		IsSystemDarkMode:       s.System.Current.Dark,
		IsSystemBothDarkMode:   s.Link,
		AutoModeChange:         s.App.Auto,
		AutoSystemModeChange:   s.System.Auto,
		CustomNightStart:       s.App.Window.Start,
		CustomNightEnd:         s.App.Window.End,
		CustomSystemNightStart: s.System.Window.Start,
		CustomSystemNightEnd:   s.System.Window.End,
		IsAutostart:            autostart,
	}.Mirror()
}

// Scheduler restores the scheduler state held in the record.
func (c Config) Scheduler() theme.Scheduler {
	return theme.Scheduler{
		App: theme.Target{
			Current: theme.Appearance{Dark: c.IsDarkMode},
			Window:  schedule.Window{Start: c.CustomNightStart, End: c.CustomNightEnd},
			Auto:    c.AutoModeChange,
		},
		System: theme.Target{
			Current: theme.Appearance{Dark: c.IsSystemDarkMode},
			Window:  schedule.Window{Start: c.CustomSystemNightStart, End: c.CustomSystemNightEnd},
			Auto:    c.AutoSystemModeChange,
		},
		Link: c.IsSystemBothDarkMode,
	}
}

// Mirror rewrites the hour and minute fields from the HH:MM:SS times.
func (c Config) Mirror() Config {
	c.CustomNightStartHH, c.CustomNightStartMM = hhmm(c.CustomNightStart)
	c.CustomNightEndHH, c.CustomNightEndMM = hhmm(c.CustomNightEnd)
	c.CustomSystemNightStartHH, c.CustomSystemNightStartMM = hhmm(c.CustomSystemNightStart)
	c.CustomSystemNightEndHH, c.CustomSystemNightEndMM = hhmm(c.CustomSystemNightEnd)
	return c
}

func hhmm(t schedule.TimeOfDay) (uint32, uint32) {
	return uint32(t.Hour()), uint32(t.Minute())
}
