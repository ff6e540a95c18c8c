// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package utils

import (
	"os"
	"strings"

	"gopkg.in/ini.v1"

	"github.com/scc-digitalhub/s3manager-sdk/sdk/errs"
)

// Mapping is section name -> key -> value. Values are string, or bool for
// "true"/"false" literals.
type Mapping map[string]map[string]any

// ConfigReader turns an INI file into a Mapping.
type ConfigReader struct {
	path string
}

func NewConfigReader(path string) *ConfigReader {
	return &ConfigReader{path: path}
}

func (r *ConfigReader) Path() string {
	return r.path
}

func (r *ConfigReader) SetPath(path string) {
	r.path = path
}

// loadOptions keep values verbatim: ";" and "#" inside a value are data,
// and surrounding quotes are part of the value.
var loadOptions = ini.LoadOptions{
	IgnoreInlineComment:     true,
	PreserveSurroundedQuote: true,
}

// Parse reads path, or the reader's own path when path is empty. A file that
// yields no section besides DEFAULT is reported exactly like a missing one.
func (r *ConfigReader) Parse(path string) (Mapping, error) {
	if path == "" {
		path = r.path
	}
	if path == "" {
		return nil, &errs.ConfigError{Msg: "configuration file path undefined; pass one explicitly or set it on the reader"}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &errs.NotFoundError{Name: path, Path: path, Err: err}
		}
		return nil, &errs.ConfigError{Msg: "failed to read " + path, Err: err}
	}
	cfg, err := ini.LoadSources(loadOptions, data)
	if err != nil {
		return nil, &errs.ConfigError{Msg: "failed to parse " + path, Err: err}
	}

	sections := cfg.Sections()
	if len(sections) <= 1 {
		return nil, &errs.NotFoundError{Name: path, Path: path}
	}

	raw := rawDelimitedValues(data)
	value := func(section string, k *ini.Key) any {
		if v, ok := raw[section][k.Name()]; ok {
			return coerce(v)
		}
		return coerce(k.Value())
	}

	defaults := cfg.Section(ini.DefaultSection).Keys()
	out := make(Mapping, len(sections))
	for _, sec := range sections {
		values := make(map[string]any)
		for _, k := range defaults {
			values[k.Name()] = value(ini.DefaultSection, k)
		}
		for _, k := range sec.Keys() {
			values[k.Name()] = value(sec.Name(), k)
		}
		out[sec.Name()] = values
	}
	return out, nil
}

// rawDelimitedValues returns the verbatim text of single-line values that
// start with a backtick or triple quote. ini.v1 always unwraps those, with no
// load option to turn it off.
func rawDelimitedValues(data []byte) map[string]map[string]string {
	out := map[string]map[string]string{}
	section := ini.DefaultSection
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || line[0] == ';' || line[0] == '#' {
			continue
		}
		if line[0] == '[' && strings.HasSuffix(line, "]") {
			section = strings.TrimSpace(line[1 : len(line)-1])
			continue
		}
		i := strings.IndexAny(line, "=:")
		if i < 1 {
			continue
		}
		val := strings.TrimSpace(line[i+1:])
		closed := (strings.HasPrefix(val, "`") && strings.Count(val, "`") >= 2) ||
			(strings.HasPrefix(val, `"""`) && strings.Contains(val[3:], `"""`))
		if !closed {
			continue
		}
		if out[section] == nil {
			out[section] = map[string]string{}
		}
		out[section][strings.TrimSpace(line[:i])] = val
	}
	return out
}

func coerce(v string) any {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "true":
		return true
	case "false":
		return false
	default:
		return v
	}
}

// String returns section/key as a string, whatever its coerced type.
func (m Mapping) String(section, key string) (string, bool) {
	sec, ok := m[section]
	if !ok {
		return "", false
	}
	v, ok := sec[key]
	if !ok {
		return "", false
	}
	return ReflectValue(v), true
}
