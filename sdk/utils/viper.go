// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package utils

import (
	"fmt"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"github.com/scc-digitalhub/s3manager-sdk/sdk/config"
)

// Settings holds all logical keys. Tags:
// - vkey: Viper key
// - env: env name. If empty, derived from vkey
// - secret: "true" if sensitive; never logged
type Settings struct {
	StoreEndpoint   string `vkey:"store_endpoint"        env:"S3MANAGER_ENDPOINT"`
	StoreAuthToken  string `vkey:"store_auth_token"      env:"S3MANAGER_AUTH_TOKEN"  secret:"true"`
	StoreConfigPath string `vkey:"store_config_path"     env:"S3MANAGER_CONFIG_PATH"`
	StoreTimeout    string `vkey:"store_timeout"         env:"S3MANAGER_TIMEOUT"`
	AwsAccessKeyID  string `vkey:"aws_access_key_id"     env:"AWS_ACCESS_KEY_ID"     secret:"true"`
	AwsSecretKey    string `vkey:"aws_secret_access_key" env:"AWS_SECRET_ACCESS_KEY" secret:"true"`
	AwsSessionToken string `vkey:"aws_session_token"     env:"AWS_SESSION_TOKEN"     secret:"true"`
	AwsRegion       string `vkey:"aws_region"            env:"AWS_REGION"`
	AwsEndpointURL  string `vkey:"aws_endpoint_url"      env:"AWS_ENDPOINT_URL"`
}

// BindEnvFromStruct binds env for every field of Settings. Defaults are
// applied by LoadConfig.
func BindEnvFromStruct(v *viper.Viper) {
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	rt := reflect.TypeOf(Settings{})
	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)

		key := f.Tag.Get("vkey")
		if key == "" {
			continue
		}

		env := f.Tag.Get("env")
		if env == "" {
			env = strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		}
		_ = v.BindEnv(key, env)
	}
}

// IsSecret reports whether the viper key holds a credential.
func IsSecret(key string) bool {
	rt := reflect.TypeOf(Settings{})
	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)
		if f.Tag.Get("vkey") == key {
			return f.Tag.Get("secret") == "true"
		}
	}
	return false
}

// DefaultConfigPath is the credentials discovery location used when nothing
// else is configured: ~/.s3manager/authorizers.ini.
func DefaultConfigPath() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, IniDir, IniName), nil
}

// LoadConfig builds the sdk Config from the values bound into v (flags, env),
// falling back to DefaultStoreEndpoint, DefaultConfigPath and
// config.DefaultTimeout.
func LoadConfig(v *viper.Viper) (config.Config, error) {
	configPath := v.GetString(StoreConfigPath)
	if configPath == "" {
		p, err := DefaultConfigPath()
		if err != nil {
			return config.Config{}, err
		}
		configPath = p
	} else {
		p, err := homedir.Expand(configPath)
		if err != nil {
			return config.Config{}, fmt.Errorf("invalid %s %q: %w", StoreConfigPath, configPath, err)
		}
		configPath = p
	}

	timeout := config.DefaultTimeout
	if raw := v.GetString(StoreTimeout); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return config.Config{}, fmt.Errorf("invalid %s %q: %w", StoreTimeout, raw, err)
		}
		timeout = d
	}

	endpoint := v.GetString(StoreEndpoint)
	if endpoint == "" {
		endpoint = DefaultStoreEndpoint
	}

	return config.Config{
		Store: config.StoreConfig{
			Endpoint:   endpoint,
			AuthToken:  v.GetString(StoreAuthToken),
			ConfigPath: configPath,
			Timeout:    timeout,
		},
		S3: config.S3Config{
			AccessKey:   v.GetString(AwsAccessKeyID),
			SecretKey:   v.GetString(AwsSecretKey),
			AccessToken: v.GetString(AwsSessionToken),
			Region:      v.GetString(AwsRegion),
			EndpointURL: v.GetString(AwsEndpointURL),
		},
	}, nil
}
