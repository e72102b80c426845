// Copyright © 2025 The Gotheme Project.

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/zosmac/gocore"
	"tailscale.com/atomicfile"
)

var (
	// ErrNotFound reports that there is no record to load.
	ErrNotFound = errors.New("config not found")

	// ErrModified reports that the record was changed by someone else since
	// it was last loaded or saved.
	ErrModified = errors.New("config modified")
)

type (
	// ParseError reports a record that could not be decoded.
	ParseError struct {
		Path string
		Err  error
	}

	// Store loads and saves the record at a path.
	Store struct {
		path  string
		codec codec
		last  []byte // content last read or written
	}
)

// Error method to comply with error interface.
func (err *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", err.Path, err.Err)
}

// Unwrap method to comply with error interface.
func (err *ParseError) Unwrap() error {
	return err.Err
}

// NewStore returns a store for the record at path.
func NewStore(path string) *Store {
	return &Store{
		path:  path,
		codec: codecFor(path),
	}
}

// Path of the record.
func (s *Store) Path() string {
	return s.path
}

// Load reads and decodes the record. Keys missing from the record keep
// their default values.
func (s *Store) Load() (Config, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("%w: %s", ErrNotFound, s.path)
	}
	if err != nil {
		return Config{}, err
	}
	s.last = data

	c := Default()
	if err := s.codec.unmarshal(data, &c); err != nil {
		return Config{}, &ParseError{Path: s.path, Err: err}
	}
	return c.Mirror(), nil
}

// LoadOrDefault loads the record, falling back to the default
// configuration if the record is missing or malformed.
func (s *Store) LoadOrDefault() Config {
	c, err := s.Load()
	if err != nil {
		gocore.Error("load config", err, map[string]string{
			"path": s.path,
		}).Warn()
		return Default()
	}
	return c
}

// Save encodes and writes the record, unless its content is unchanged. If
// the record on disk was changed since the store last read or wrote it,
// Save leaves it in place and returns ErrModified.
func (s *Store) Save(c Config) error {
	data, err := s.codec.marshal(c.Mirror())
	if err != nil {
		return gocore.Error("encode config", err)
	}

	current, err := os.ReadFile(s.path)
	switch {
	case err == nil:
		if bytes.Equal(current, data) {
			s.last = data
			return nil
		}
		if s.last != nil && !bytes.Equal(current, s.last) {
			return fmt.Errorf("%w: %s", ErrModified, s.path)
		}
	case errors.Is(err, fs.ErrNotExist):
		if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
			return gocore.Error("save config", err)
		}
	default:
		return gocore.Error("save config", err)
	}

	if err := atomicfile.WriteFile(s.path, data, 0o644); err != nil {
		return gocore.Error("save config", err)
	}
	s.last = data
	return nil
}

// Changed reports whether the record on disk differs from the content the
// store last read or wrote, as when someone else edited or removed it.
func (s *Store) Changed() bool {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return !errors.Is(err, fs.ErrNotExist) || s.last != nil
	}
	return !bytes.Equal(data, s.last)
}

// Encode returns the record as the store would write it.
func (s *Store) Encode(c Config) ([]byte, error) {
	return s.codec.marshal(c.Mirror())
}
