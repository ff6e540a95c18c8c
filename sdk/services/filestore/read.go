// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package filestore

import "os"

// Read returns the whole content of location/name (or name when location is empty).
func (s *FileService) Read(name, location string) (string, error) {
	if err := checkType(name); err != nil {
		return "", err
	}
	path := fullPath(name, location)

	data, err := os.ReadFile(path)
	if err != nil {
		return "", classify("read", name, location, path, err)
	}
	s.log.WithField("path", path).Debugf("read %d bytes", len(data))
	return string(data), nil
}
