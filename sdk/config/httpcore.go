// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/google/uuid"

	"github.com/scc-digitalhub/s3manager-sdk/sdk/errs"
)

const (
	AuthTokenHeader = "auth-token"
	RequestIDHeader = "x-request-id"
)

// StoreHTTP sends one JSON request to the storage endpoint.
type StoreHTTP interface {
	Endpoint() string
	// Do returns the body of a 200 response. Anything else is a *errs.TransportError.
	Do(ctx context.Context, method, token string, payload any) ([]byte, string, error)
}

type httpCore struct {
	httpClient  *http.Client
	storeConfig StoreConfig
}

func NewHTTPCore(httpClient *http.Client, storeConfig StoreConfig) StoreHTTP {
	if httpClient == nil {
		timeout := storeConfig.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	return &httpCore{httpClient: httpClient, storeConfig: storeConfig}
}

func (httpCore *httpCore) Endpoint() string {
	return httpCore.storeConfig.Endpoint
}

func (httpCore *httpCore) Do(ctx context.Context, method, token string, payload any) ([]byte, string, error) {
	url := httpCore.storeConfig.Endpoint
	requestID := uuid.NewString()

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, requestID, &errs.TransportError{Method: method, URL: url, Message: "failed to encode request", Err: err}
		}
		body = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, requestID, &errs.TransportError{Method: method, URL: url, Err: err}
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set(AuthTokenHeader, token)
	req.Header.Set(RequestIDHeader, requestID)

	resp, err := httpCore.httpClient.Do(req)
	if err != nil {
		return nil, requestID, &errs.TransportError{Method: method, URL: url, Err: err}
	}
	defer resp.Body.Close()

	b, rerr := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		terr := &errs.TransportError{Method: method, URL: url, StatusCode: resp.StatusCode, Err: rerr}
		var m map[string]any
		if json.Unmarshal(b, &m) == nil {
			if msg, ok := m["errorMessage"].(string); ok && msg != "" {
				terr.Message = msg
			} else if msg, ok := m["message"].(string); ok && msg != "" {
				terr.Message = msg
			}
		}
		return b, requestID, terr
	}
	if rerr != nil {
		return nil, requestID, &errs.TransportError{Method: method, URL: url, StatusCode: resp.StatusCode, Message: "failed to read response", Err: rerr}
	}
	return b, requestID, nil
}
