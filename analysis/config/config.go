// Copyright the scc-tools authors. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config manages the configuration of the scc tools: tool options
// loaded from a YAML or JSON file, and the leveled loggers configured from
// them.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// Options are the user-settable options of the scc tools.
type Options struct {
	// LogLevel controls the verbosity of the tools (see the LogLevel
	// constants in this package).
	LogLevel int `yaml:"log-level" json:"log-level"`

	// Strict makes out-of-range edge targets a fatal input error instead of
	// a warning. The algorithm itself always tolerates them; this only
	// controls the tools' input checking.
	Strict bool `yaml:"strict" json:"strict"`

	// JSON switches tool output to JSON.
	JSON bool `yaml:"json" json:"json"`
}

// Config holds the full configuration of a tool run. If some field is not
// defined in the config file, it will be empty/zero in the struct.
type Config struct {
	Options `yaml:",inline"`

	sourceFile string
}

// NewDefault returns a config with the default options.
func NewDefault() *Config {
	return &Config{Options: Options{LogLevel: int(InfoLevel)}}
}

// SourceFile returns the name of the file the config was loaded from, or ""
// for a default config.
func (c *Config) SourceFile() string {
	return c.sourceFile
}

// Load reads a config from filename. The format is chosen by extension:
// .yaml or .yml for YAML, .json for JSON.
func Load(filename string) (*Config, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("could not read config file %s: %w", filename, err)
	}

	c := NewDefault()
	switch ext := strings.ToLower(path.Ext(filename)); ext {
	case ".json":
		err = json.Unmarshal(b, c)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, c)
	default:
		return nil, fmt.Errorf("unsupported config file extension %q (expected .yaml, .yml or .json)", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("could not parse config file %s: %w", filename, err)
	}

	if c.LogLevel < int(ErrLevel) || c.LogLevel > int(TraceLevel) {
		return nil, fmt.Errorf("config file %s: log-level %d outside [%d, %d]",
			filename, c.LogLevel, ErrLevel, TraceLevel)
	}
	c.sourceFile = filename
	return c, nil
}
