// Copyright © 2025 The Gotheme Project.

package desktop

import (
	"errors"
	"testing"

	"github.com/zosmac/gotheme/theme"
)

var _ Desktop = (*Memory)(nil)

func TestMemoryGetSet(t *testing.T) {
	m := NewMemory()
	for _, s := range []theme.Surface{theme.Apps, theme.System} {
		if got := m.Get(s); got != theme.Light {
			t.Errorf("Get(%s) = %s, want light", s, got)
		}
	}
	if err := m.Set(theme.System, theme.Dark); err != nil {
		t.Fatalf("Set(system, dark) error %v", err)
	}
	if got := m.Get(theme.System); got != theme.Dark {
		t.Errorf("Get(system) = %s, want dark", got)
	}
	if got := m.Get(theme.Apps); got != theme.Light {
		t.Errorf("Get(apps) = %s after setting system, want light", got)
	}
	if m.Writes(theme.System) != 1 || m.Writes(theme.Apps) != 0 {
		t.Errorf("writes apps %d system %d, want 0 1", m.Writes(theme.Apps), m.Writes(theme.System))
	}
}

func TestMemorySetFailure(t *testing.T) {
	m := NewMemory()
	denied := errors.New("access denied")
	m.Failing(string(theme.Apps), denied)

	err := m.Set(theme.Apps, theme.Dark)
	var werr *WriteError
	if !errors.As(err, &werr) {
		t.Fatalf("Set error %v, want *WriteError", err)
	}
	if werr.Surface != theme.Apps || !errors.Is(err, denied) {
		t.Errorf("WriteError %+v", werr)
	}
	if got := m.Get(theme.Apps); got != theme.Light {
		t.Errorf("failed Set changed appearance to %s", got)
	}
	if err := m.Set(theme.System, theme.Dark); err != nil {
		t.Errorf("Set(system) error %v with only apps failing", err)
	}

	m.Failing(string(theme.Apps), nil)
	if err := m.Set(theme.Apps, theme.Dark); err != nil {
		t.Errorf("Set(apps) error %v after clearing failure", err)
	}
}

func TestMemoryUnknownSurface(t *testing.T) {
	m := NewMemory()
	var werr *WriteError
	if err := m.Set(theme.Surface("dock"), theme.Dark); !errors.As(err, &werr) {
		t.Errorf("Set(dock) error %v, want *WriteError", err)
	}
}

func TestMemoryAutostart(t *testing.T) {
	m := NewMemory()
	if err := m.DisableAutostart("gotheme"); err != nil {
		t.Errorf("DisableAutostart of unregistered id error %v", err)
	}
	for range 2 {
		if err := m.EnableAutostart("gotheme", `C:\Program Files\gotheme.exe`); err != nil {
			t.Fatalf("EnableAutostart error %v", err)
		}
	}
	if path, ok := m.Autostart("gotheme"); !ok || path != `C:\Program Files\gotheme.exe` {
		t.Errorf("Autostart = %q, %t", path, ok)
	}
	if err := m.DisableAutostart("gotheme"); err != nil {
		t.Errorf("DisableAutostart error %v", err)
	}
	if _, ok := m.Autostart("gotheme"); ok {
		t.Error("still registered after DisableAutostart")
	}

	m.Failing("autostart", errors.New("access denied"))
	err := m.EnableAutostart("gotheme", "gotheme.exe")
	var aerr *AutostartError
	if !errors.As(err, &aerr) || !aerr.Enable || aerr.AppID != "gotheme" {
		t.Errorf("EnableAutostart error %v, want enable *AutostartError", err)
	}
}

func TestErrorMessages(t *testing.T) {
	err := &WriteError{Surface: theme.System, Err: errors.New("denied")}
	if got := err.Error(); got != "set system appearance: denied" {
		t.Errorf("WriteError = %q", got)
	}
	aerr := &AutostartError{AppID: "gotheme", Err: errors.New("denied")}
	if got := aerr.Error(); got != "disable autostart gotheme: denied" {
		t.Errorf("AutostartError = %q", got)
	}
}
