// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package filestore

import "os"

// Write replaces location/name with content. Missing directories are not created.
func (s *FileService) Write(name, location, content string) (WriteResult, error) {
	if err := checkType(name); err != nil {
		return WriteResult{}, err
	}
	path := fullPath(name, location)

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return WriteResult{}, classify("write", name, location, path, err)
	}
	s.log.WithField("path", path).Debugf("wrote %d bytes", len(content))
	return WriteResult{Result: ResultSuccessful}, nil
}
