// Copyright © 2025 The Gotheme Project.

/*
Package main implements the Go language "gotheme" desktop appearance switcher.
It keeps the light/dark appearance of applications and of the taskbar either
as set by hand or dark through a nightly window, and persists its
configuration to a TOML (or YAML) file that may be edited while it runs.
Additional functionality includes
  - logon start registration
  - an HTTP status server with JSON state and Prometheus metrics

The command line flags are:
  - -config:   the path of the configuration file
  - -interval: the time between reconcile steps (default 5s)
  - -once:     reconcile once and exit
  - -dry-run:  keep the desktop appearance in memory
  - -port:     the port of the status server on localhost (default 0, disabled)
*/
package main
