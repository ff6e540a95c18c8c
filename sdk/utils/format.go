// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package utils

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"sigs.k8s.io/yaml"
)

func ReflectValue(v interface{}) string {
	f := reflect.ValueOf(v)
	switch f.Kind() {
	case reflect.String:
		return f.String()
	case reflect.Int, reflect.Int64:
		return fmt.Sprint(f.Int())
	case reflect.Uint, reflect.Uint64:
		return fmt.Sprint(f.Uint())
	case reflect.Float64:
		return fmt.Sprint(f.Float())
	case reflect.Bool:
		return fmt.Sprint(f.Bool())
	default:
		return ""
	}
}

func TranslateFormat(format string) string {
	switch strings.ToLower(format) {
	case "yaml", "yml":
		return "yaml"
	default:
		return "json"
	}
}

// Render marshals v as indented JSON or as YAML.
func Render(v any, format string) (string, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal: %w", err)
	}
	if TranslateFormat(format) == "json" {
		return string(b), nil
	}
	y, err := yaml.JSONToYAML(b)
	if err != nil {
		return "", fmt.Errorf("json to yaml failed: %w", err)
	}
	return strings.TrimSuffix(string(y), "\n"), nil
}
