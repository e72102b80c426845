// Copyright © 2025 The Gotheme Project.

//go:build !windows

package desktop

import (
	"github.com/zosmac/gocore"
)

// open reports that the host has no supported appearance settings.
func open() (Desktop, error) {
	return nil, gocore.Unsupported()
}

// probe reports that the host has no supported appearance settings.
func probe() (Info, error) {
	return Info{}, gocore.Unsupported()
}
