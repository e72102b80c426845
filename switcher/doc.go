// Copyright © 2025 The Gotheme Project.

/*
Package switcher drives the desktop appearance to the configured state.

Each step persists the configuration, reads the appearance of both
surfaces, reconciles them with the scheduler, and writes the surfaces
whose appearance must change. A failed write is logged and retried on the
next step. Edits to the configuration file are applied as they are
noticed; a changed hand-set appearance is written at once.

The switcher package defines the following command line flags:
  - -interval: the time between steps (default 5s)
  - -once:     take a single step and exit
  - -dry-run:  keep the desktop appearance in memory
*/
package switcher
