// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package storage

import (
	"fmt"

	"github.com/scc-digitalhub/s3manager-sdk/sdk/errs"
	"github.com/scc-digitalhub/s3manager-sdk/sdk/utils"
)

// SetAuthToken presets the token; the credentials file is then never read.
func (s *StorageService) SetAuthToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}

// authToken returns the cached token, reading it from the credentials file
// the first time. A failed resolution leaves the token unset.
func (s *StorageService) authToken() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.token != "" {
		return s.token, nil
	}

	m, err := s.source.Parse(s.configPath)
	if err != nil {
		if errs.IsNotFoundError(err) {
			return "", &errs.ConfigNotFoundError{Path: s.configPath, Err: err}
		}
		return "", err
	}
	token, ok := m.String(utils.AuthorizersSection, utils.AuthTokenKey)
	if !ok || token == "" {
		return "", &errs.ConfigError{Msg: fmt.Sprintf("no %q key in section [%s] of %s", utils.AuthTokenKey, utils.AuthorizersSection, s.configPath)}
	}

	s.log.WithField("path", s.configPath).Debug("auth token resolved from credentials file")
	s.token = token
	return s.token, nil
}
