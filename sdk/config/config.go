// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package config

import "time"

// Config is what the sdk services are built from. Loading it from env or
// files is the caller's job (see utils.LoadConfig).
type Config struct {
	Store StoreConfig
	S3    S3Config
}

type StoreConfig struct {
	Endpoint   string
	AuthToken  string        // optional; resolved from ConfigPath when empty
	ConfigPath string        // credentials INI consulted when AuthToken is empty
	Timeout    time.Duration // zero means DefaultTimeout
}

type S3Config struct {
	AccessKey   string
	SecretKey   string
	AccessToken string
	Region      string
	EndpointURL string
}

const DefaultTimeout = 30 * time.Second
