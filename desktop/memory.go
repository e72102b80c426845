// Copyright © 2025 The Gotheme Project.

package desktop

import (
	"errors"
	"sync"

	"github.com/zosmac/gotheme/theme"
)

type (
	// Memory is a desktop held in memory.
	Memory struct {
		mu         sync.Mutex
		appearance map[theme.Surface]theme.Appearance
		autostart  map[string]string
		writes     map[theme.Surface]int
		fail       map[string]error
	}
)

// NewMemory returns a light desktop with nothing registered for autostart.
func NewMemory() *Memory {
	return &Memory{
		appearance: map[theme.Surface]theme.Appearance{},
		autostart:  map[string]string{},
		writes:     map[theme.Surface]int{},
		fail:       map[string]error{},
	}
}

// Get returns the appearance of a surface.
func (m *Memory) Get(s theme.Surface) theme.Appearance {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.appearance[s]
}

// Set changes the appearance of a surface.
func (m *Memory) Set(s theme.Surface, a theme.Appearance) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !theme.Surfaces.IsValid(s) {
		return &WriteError{Surface: s, Err: errors.New("unknown surface")}
	}
	if err := m.fail[string(s)]; err != nil {
		return &WriteError{Surface: s, Err: err}
	}
	m.appearance[s] = a
	m.writes[s]++
	return nil
}

// Failing has Set for a surface, or the autostart methods for the key
// "autostart", return err. A nil err clears the failure.
func (m *Memory) Failing(key string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err == nil {
		delete(m.fail, key)
		return
	}
	m.fail[key] = err
}

// Writes counts the successful Set calls for a surface.
func (m *Memory) Writes(s theme.Surface) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes[s]
}

// EnableAutostart registers execPath under appID.
func (m *Memory) EnableAutostart(appID, execPath string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fail["autostart"]; err != nil {
		return &AutostartError{AppID: appID, Enable: true, Err: err}
	}
	m.autostart[appID] = execPath
	return nil
}

// DisableAutostart removes the registration of appID.
func (m *Memory) DisableAutostart(appID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fail["autostart"]; err != nil {
		return &AutostartError{AppID: appID, Err: err}
	}
	delete(m.autostart, appID)
	return nil
}

// Autostart returns the path registered under appID.
func (m *Memory) Autostart(appID string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	path, ok := m.autostart[appID]
	return path, ok
}
