// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package filestore

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/scc-digitalhub/s3manager-sdk/sdk/errs"
)

// SupportedTypes are matched as substrings anywhere in the file name, so
// "notes.txt.bak" and "csvdump" both pass. This is a known limitation.
var SupportedTypes = []string{"csv", "txt"}

// FileService reads and writes whole text files.
type FileService struct {
	log logrus.FieldLogger
}

func NewFileService(log logrus.FieldLogger) *FileService {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &FileService{log: log.WithField("module", "filestore")}
}

func checkType(name string) error {
	for _, t := range SupportedTypes {
		if strings.Contains(name, t) {
			return nil
		}
	}
	return &errs.UnsupportedTypeError{Name: name}
}

func fullPath(name, location string) string {
	if location == "" {
		return name
	}
	return filepath.Join(location, name)
}

func classify(op, name, location, path string, err error) error {
	if os.IsNotExist(err) {
		return &errs.NotFoundError{Name: name, Location: location, Path: path, Err: err}
	}
	return errs.NewIOError(op, name, location, err)
}
