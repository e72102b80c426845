// Copyright © 2025 The Gotheme Project.

package config

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/zosmac/gotheme/schedule"
	"github.com/zosmac/gotheme/theme"
)

var cmpOpts = cmp.AllowUnexported(schedule.TimeOfDay{})

func sample() Config {
	return New(theme.Scheduler{
		App: theme.Target{
			Current: theme.Dark,
			Window:  schedule.Window{Start: schedule.MustAt(22, 0), End: schedule.MustAt(7, 0)},
			Auto:    true,
		},
		System: theme.Target{
			Window: schedule.Window{Start: schedule.MustAt(19, 30), End: schedule.MustAt(6, 45)},
		},
		Link: true,
	}, true)
}

func TestDefault(t *testing.T) {
	c := Default()
	if c.AutoModeChange || c.AutoSystemModeChange || c.IsSystemBothDarkMode || c.IsAutostart {
		t.Errorf("default has switching enabled: %+v", c)
	}
	if c.CustomNightStart.String() != "18:00:00" || c.CustomNightEnd.String() != "06:00:00" {
		t.Errorf("default app window %s - %s", c.CustomNightStart, c.CustomNightEnd)
	}
	if c.CustomSystemNightStartHH != 18 || c.CustomSystemNightEndHH != 6 ||
		c.CustomSystemNightStartMM != 0 || c.CustomSystemNightEndMM != 0 {
		t.Errorf("default system mirrors %+v", c)
	}
}

func TestSchedulerRoundTrip(t *testing.T) {
	c := sample()
	if diff := cmp.Diff(c, New(c.Scheduler(), c.IsAutostart), cmpOpts); diff != "" {
		t.Errorf("record -> scheduler -> record (-want +got):\n%s", diff)
	}
	s := c.Scheduler()
	if !s.Link || !s.App.Auto || s.System.Auto || !s.App.Current.Dark {
		t.Errorf("scheduler from record: %+v", s)
	}
}

func TestMirror(t *testing.T) {
	c := sample()
	c.CustomNightStartHH, c.CustomNightStartMM = 1, 2
	c.CustomSystemNightEndMM = 59
	c = c.Mirror()
	if c.CustomNightStartHH != 22 || c.CustomNightStartMM != 0 {
		t.Errorf("app start mirrors %d:%d", c.CustomNightStartHH, c.CustomNightStartMM)
	}
	if c.CustomSystemNightEndHH != 6 || c.CustomSystemNightEndMM != 45 {
		t.Errorf("system end mirrors %d:%d", c.CustomSystemNightEndHH, c.CustomSystemNightEndMM)
	}
}

func TestStoreRoundTrip(t *testing.T) {
	for _, name := range []string{"config.toml", "config.yaml", "config.yml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "nested", name)
			s := NewStore(path)
			want := sample()
			if err := s.Save(want); err != nil {
				t.Fatalf("Save: %v", err)
			}
			first, err := os.ReadFile(path)
			if err != nil {
				t.Fatal(err)
			}

			got, err := NewStore(path).Load()
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if diff := cmp.Diff(want, got, cmpOpts); diff != "" {
				t.Errorf("load(save(c)) (-want +got):\n%s", diff)
			}

			if err := s.Save(got); err != nil {
				t.Fatalf("second Save: %v", err)
			}
			second, err := os.ReadFile(path)
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(first, second) {
				t.Errorf("save(load(x)) not byte stable:\n%s\n---\n%s", first, second)
			}
		})
	}
}

func TestTOMLRecord(t *testing.T) {
	data, err := NewStore("config.toml").Encode(sample())
	if err != nil {
		t.Fatal(err)
	}
	for _, line := range []string{
		`is_dark_mode = true`,
		`is_system_both_dark_mode = true`,
		`auto_mode_change = true`,
		`custom_night_start = "22:00:00"`,
		`custom_night_end = "07:00:00"`,
		`custom_night_start_hh = 22`,
		`custom_system_night_start_mm = 30`,
		`custom_system_night_end = "06:45:00"`,
		`is_autostart = true`,
	} {
		if !strings.Contains(string(data), line+"\n") {
			t.Errorf("record lacks %q:\n%s", line, data)
		}
	}
	if strings.Index(string(data), "is_dark_mode") > strings.Index(string(data), "is_autostart") {
		t.Errorf("record fields out of order:\n%s", data)
	}
}

func TestLoadCanonicalTimes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	record := `is_dark_mode = false
auto_mode_change = true
custom_night_start = "21:15:00"
custom_night_end = "05:00:00"
custom_night_start_hh = 3
custom_night_start_mm = 3
`
	if err := os.WriteFile(path, []byte(record), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := NewStore(path).Load()
	if err != nil {
		t.Fatal(err)
	}
	if c.CustomNightStartHH != 21 || c.CustomNightStartMM != 15 {
		t.Errorf("mirrors not derived from canonical time: %d:%d", c.CustomNightStartHH, c.CustomNightStartMM)
	}
	if !c.AutoModeChange {
		t.Error("auto_mode_change not loaded")
	}
	// keys absent from the record keep their defaults
	if c.CustomSystemNightStart.String() != "18:00:00" || c.CustomSystemNightEnd.String() != "06:00:00" {
		t.Errorf("system window %s - %s, want defaults", c.CustomSystemNightStart, c.CustomSystemNightEnd)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	missing := NewStore(filepath.Join(dir, "missing.toml"))
	if _, err := missing.Load(); !errors.Is(err, ErrNotFound) {
		t.Errorf("Load of missing record error = %v, want ErrNotFound", err)
	}
	if diff := cmp.Diff(Default(), missing.LoadOrDefault(), cmpOpts); diff != "" {
		t.Errorf("LoadOrDefault of missing record (-want +got):\n%s", diff)
	}

	for name, record := range map[string]string{
		"garbage.toml": "this is = = not toml [",
		"badtime.toml": `custom_night_start = "25:99:00"`,
		"badtype.toml": `auto_mode_change = "yes"`,
		"garbage.yaml": "auto_mode_change: [unterminated",
		"badtime.yaml": "custom_night_end: noon\n",
	} {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(record), 0o644); err != nil {
			t.Fatal(err)
		}
		s := NewStore(path)
		var perr *ParseError
		if _, err := s.Load(); !errors.As(err, &perr) {
			t.Errorf("%s: Load error = %v, want *ParseError", name, err)
		}
		c := s.LoadOrDefault()
		if c.AutoModeChange {
			t.Errorf("%s: corrupt record gave auto_mode_change = true", name)
		}
		if diff := cmp.Diff(Default(), c, cmpOpts); diff != "" {
			t.Errorf("%s: LoadOrDefault (-want +got):\n%s", name, diff)
		}
	}
}

func TestSaveDetectsModification(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	s := NewStore(path)
	if err := s.Save(Default()); err != nil {
		t.Fatal(err)
	}

	edited := sample()
	data, err := s.Encode(edited)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	if err := s.Save(Default()); !errors.Is(err, ErrModified) {
		t.Fatalf("Save over external edit error = %v, want ErrModified", err)
	}
	got, err := s.Load()
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(edited, got, cmpOpts); diff != "" {
		t.Errorf("external edit lost (-want +got):\n%s", diff)
	}
	if err := s.Save(Default()); err != nil {
		t.Errorf("Save after reload: %v", err)
	}
}

func TestChanged(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	s := NewStore(path)
	if s.Changed() {
		t.Error("Changed before any record exists")
	}

	if err := s.Save(sample()); err != nil {
		t.Fatal(err)
	}
	if s.Changed() {
		t.Error("Changed after the store's own Save")
	}
	if err := s.Save(Default()); err != nil {
		t.Fatal(err)
	}
	if s.Changed() {
		t.Error("Changed after the store's own rewrite")
	}

	data, err := s.Encode(sample())
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	if !s.Changed() {
		t.Error("not Changed after an external edit")
	}
	if _, err := s.Load(); err != nil {
		t.Fatal(err)
	}
	if s.Changed() {
		t.Error("Changed after loading the edit")
	}

	if err := os.Remove(path); err != nil {
		t.Fatal(err)
	}
	if !s.Changed() {
		t.Error("not Changed after the record was removed")
	}
}

func TestSaveRecreatesRemovedRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	s := NewStore(path)
	if err := s.Save(sample()); err != nil {
		t.Fatal(err)
	}
	if err := os.Remove(path); err != nil {
		t.Fatal(err)
	}
	if err := s.Save(sample()); err != nil {
		t.Fatalf("Save after remove: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("record not recreated: %v", err)
	}
}

func TestWatch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := Watch(ctx, path)
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}

	// unrelated files in the directory are ignored
	if err := os.WriteFile(filepath.Join(dir, "other.toml"), []byte("x = 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	select {
	case <-ch:
		t.Fatal("notified for an unrelated file")
	case <-time.After(200 * time.Millisecond):
	}

	if err := os.WriteFile(path, []byte("is_dark_mode = true\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	select {
	case <-ch:
	case <-time.After(5 * time.Second):
		t.Fatal("no notification for a write to the record")
	}
}
