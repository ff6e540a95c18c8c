// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package storage

import (
	"context"
	"net/http"

	"github.com/sirupsen/logrus"
)

// UploadFile stores content as bucketName/objectName.
func (s *StorageService) UploadFile(ctx context.Context, bucketName, objectName, content string) (Result, error) {
	token, err := s.authToken()
	if err != nil {
		return Result{}, err
	}

	req := UploadRequest{
		ObjectRequest: ObjectRequest{BucketName: bucketName, ObjectName: objectName},
		Content:       content,
	}
	body, requestID, err := s.http.Do(ctx, http.MethodPost, token, req)
	log := s.log.WithFields(logrus.Fields{"bucket": bucketName, "object": objectName, "request_id": requestID})
	if err != nil {
		log.WithError(err).Warn("upload failed")
		return Result{}, err
	}

	_, failure, err := decode(http.MethodPost, s.http.Endpoint(), body)
	if err != nil {
		return Result{}, err
	}
	if failure != nil {
		log.WithField("reason", failure.Reason).Info("upload rejected by endpoint")
		return *failure, nil
	}
	log.Infof("uploaded %d bytes", len(content))
	return Success(""), nil
}
