// Copyright © 2025 The Gotheme Project.

/*
Package config persists the theme switching configuration. The record is
written in TOML by default, or in YAML if the file name ends in .yaml or .yml.
A record is rewritten only when its content changes, and edits made by others
are detected so that they are loaded rather than overwritten.

The config package defines the following command line flag:
  - -config: the path of the configuration file
*/
package config
