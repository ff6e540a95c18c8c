// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package storage

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/scc-digitalhub/s3manager-sdk/sdk/config"
	"github.com/scc-digitalhub/s3manager-sdk/sdk/utils"
)

var _ Backend = (*StorageService)(nil)

// StorageService uploads and downloads objects through the storage endpoint.
// The auth token is resolved at most once per instance and kept for its
// lifetime. Concurrent calls share one resolution; HTTP calls themselves are
// neither deduplicated nor rate-limited.
type StorageService struct {
	http       config.StoreHTTP
	configPath string
	source     ConfigSource
	log        logrus.FieldLogger

	mu    sync.Mutex
	token string
}

type Option func(*options)

type options struct {
	httpClient *http.Client
	source     ConfigSource
	log        logrus.FieldLogger
}

// WithHTTPClient replaces the default client (which applies StoreConfig.Timeout).
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) { o.httpClient = c }
}

func WithConfigSource(src ConfigSource) Option {
	return func(o *options) { o.source = src }
}

func WithLogger(log logrus.FieldLogger) Option {
	return func(o *options) { o.log = log }
}

func NewStorageService(_ context.Context, conf config.Config, opts ...Option) (*StorageService, error) {
	if conf.Store.Endpoint == "" {
		return nil, errors.New("invalid store config: endpoint is required")
	}
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.source == nil {
		o.source = utils.NewConfigReader(conf.Store.ConfigPath)
	}
	if o.log == nil {
		o.log = logrus.StandardLogger()
	}

	return &StorageService{
		http:       config.NewHTTPCore(o.httpClient, conf.Store),
		configPath: conf.Store.ConfigPath,
		source:     o.source,
		log:        o.log.WithField("module", "storage"),
		token:      conf.Store.AuthToken,
	}, nil
}
