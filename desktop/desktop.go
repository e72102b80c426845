// Copyright © 2025 The Gotheme Project.

package desktop

import (
	"fmt"

	"github.com/zosmac/gotheme/theme"
)

type (
	// Provider gets and sets the appearance of the desktop surfaces.
	// Get never fails: a surface whose appearance cannot be read is light.
	Provider interface {
		Get(theme.Surface) theme.Appearance
		Set(theme.Surface, theme.Appearance) error
	}

	// Autostarter registers a command to start at logon. Both methods
	// succeed if the registration is already as requested.
	Autostarter interface {
		EnableAutostart(appID, execPath string) error
		DisableAutostart(appID string) error
	}

	// Desktop combines the appearance and logon start capabilities.
	Desktop interface {
		Provider
		Autostarter
	}

	// Info describes the operating system and the surfaces it supports.
	Info struct {
		Caption   string                 `json:"caption"`
		Version   string                 `json:"version"`
		Build     int                    `json:"build"`
		Supported map[theme.Surface]bool `json:"supported"`
	}

	// WriteError reports a failure to set the appearance of a surface.
	WriteError struct {
		Surface theme.Surface
		Err     error
	}

	// AutostartError reports a failure to change the logon start registration.
	AutostartError struct {
		AppID  string
		Enable bool
		Err    error
	}
)

// Error method to comply with error interface.
func (err *WriteError) Error() string {
	return fmt.Sprintf("set %s appearance: %v", err.Surface, err.Err)
}

// Unwrap method to comply with error interface.
func (err *WriteError) Unwrap() error {
	return err.Err
}

// Error method to comply with error interface.
func (err *AutostartError) Error() string {
	op := "disable"
	if err.Enable {
		op = "enable"
	}
	return fmt.Sprintf("%s autostart %s: %v", op, err.AppID, err.Err)
}

// Unwrap method to comply with error interface.
func (err *AutostartError) Unwrap() error {
	return err.Err
}

// New returns the desktop of the host operating system.
func New() (Desktop, error) {
	return open()
}

// Probe identifies the operating system and which surfaces it supports.
func Probe() (Info, error) {
	return probe()
}
