// Copyright © 2025 The Gotheme Project.

package config

import (
	"os"
	"path/filepath"

	"github.com/zosmac/gocore"
)

var (
	// flags defines the command line flags.
	flags = struct {
		path string
	}{
		path: DefaultPath(),
	}
)

// init initializes the command line flags.
func init() {
	gocore.Flags.Var(
		&flags.path,
		"config",
		"[-config <path>]",
		"Read and write the configuration at `path`, in YAML if it ends in .yaml or .yml, otherwise TOML",
	)
}

// DefaultPath is config.toml in the user's configuration directory, or in
// the working directory if the user has none.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(dir, "gotheme", "config.toml")
}

// Path returns the configuration path set on the command line.
func Path() string {
	return flags.path
}
