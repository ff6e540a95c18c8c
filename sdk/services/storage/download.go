// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package storage

import (
	"context"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/scc-digitalhub/s3manager-sdk/sdk/errs"
)

// DownloadFile fetches bucketName/objectName. The request is a GET carrying
// a JSON body, mirroring the upload shape.
func (s *StorageService) DownloadFile(ctx context.Context, bucketName, objectName string) (Result, error) {
	token, err := s.authToken()
	if err != nil {
		return Result{}, err
	}

	req := ObjectRequest{BucketName: bucketName, ObjectName: objectName}
	body, requestID, err := s.http.Do(ctx, http.MethodGet, token, req)
	log := s.log.WithFields(logrus.Fields{"bucket": bucketName, "object": objectName, "request_id": requestID})
	if err != nil {
		log.WithError(err).Warn("download failed")
		return Result{}, err
	}

	m, failure, err := decode(http.MethodGet, s.http.Endpoint(), body)
	if err != nil {
		return Result{}, err
	}
	if failure != nil {
		log.WithField("reason", failure.Reason).Info("download rejected by endpoint")
		return *failure, nil
	}
	raw, ok := m[keyBody]
	if !ok {
		return Result{}, &errs.TransportError{Method: http.MethodGet, URL: s.http.Endpoint(), StatusCode: http.StatusOK, Message: "response has no Body"}
	}
	data := text(raw)
	log.Infof("downloaded %d bytes", len(data))
	return Success(data), nil
}
