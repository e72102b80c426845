// Copyright © 2025 The Gotheme Project.

package serve

import (
	"github.com/zosmac/gocore"
)

var (
	// flags defines the command line flags.
	flags = struct {
		port int
	}{}
)

// init initializes the command line flags.
func init() {
	gocore.Flags.Var(
		&flags.port,
		"port",
		"[-port n]",
		"Port number on localhost for the status server, 0 to disable",
	)
}
