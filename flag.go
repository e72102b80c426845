// Copyright © 2025 The Gotheme Project.

package main

import (
	"github.com/zosmac/gocore"
)

// appID names the logon start registration.
const appID = "gotheme"

// init initializes the command description.
func init() {
	gocore.Flags.CommandDescription = `Switches the desktop between light and dark,
	by hand or on a nightly schedule, for:
		• applications
		• the taskbar and shell
	following edits to the configuration file as they are saved.`
}
