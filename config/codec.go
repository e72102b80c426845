// Copyright © 2025 The Gotheme Project.

package config

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

type (
	// codec encodes a record in a file format.
	codec interface {
		marshal(Config) ([]byte, error)
		unmarshal([]byte, *Config) error
	}

	tomlCodec struct{}
	yamlCodec struct{}
)

// codecFor selects the codec by the file extension.
func codecFor(path string) codec {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yamlCodec{}
	}
	return tomlCodec{}
}

func (tomlCodec) marshal(c Config) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (tomlCodec) unmarshal(data []byte, c *Config) error {
	_, err := toml.Decode(string(data), c)
	return err
}

func (yamlCodec) marshal(c Config) ([]byte, error) {
	return yaml.Marshal(c)
}

func (yamlCodec) unmarshal(data []byte, c *Config) error {
	return yaml.Unmarshal(data, c)
}
