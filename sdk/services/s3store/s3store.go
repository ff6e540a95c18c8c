// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

// Package s3store is a storage.Backend that reaches S3 directly with AWS
// credentials instead of going through the storage endpoint.
package s3store

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/smithy-go"
	"github.com/sirupsen/logrus"

	"github.com/scc-digitalhub/s3manager-sdk/sdk/config"
	"github.com/scc-digitalhub/s3manager-sdk/sdk/errs"
	"github.com/scc-digitalhub/s3manager-sdk/sdk/services/storage"
)

var _ storage.Backend = (*S3Store)(nil)

type objectClient interface {
	PutObject(ctx context.Context, bucket, key, content string) error
	GetObject(ctx context.Context, bucket, key string) (string, error)
}

type S3Store struct {
	client objectClient
	log    logrus.FieldLogger
}

func NewS3Store(ctx context.Context, conf config.Config, log logrus.FieldLogger) (*S3Store, error) {
	c, err := config.NewS3Client(ctx, conf.S3)
	if err != nil {
		return nil, fmt.Errorf("S3 init failed: %w", err)
	}
	return newS3Store(c, log), nil
}

func newS3Store(c objectClient, log logrus.FieldLogger) *S3Store {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &S3Store{client: c, log: log.WithField("module", "s3store")}
}

func (s *S3Store) UploadFile(ctx context.Context, bucketName, objectName, content string) (storage.Result, error) {
	log := s.log.WithFields(logrus.Fields{"bucket": bucketName, "object": objectName})
	if err := s.client.PutObject(ctx, bucketName, objectName, content); err != nil {
		return classify(log, "PUT", bucketName, objectName, err)
	}
	log.Infof("uploaded %d bytes", len(content))
	return storage.Success(""), nil
}

func (s *S3Store) DownloadFile(ctx context.Context, bucketName, objectName string) (storage.Result, error) {
	log := s.log.WithFields(logrus.Fields{"bucket": bucketName, "object": objectName})
	data, err := s.client.GetObject(ctx, bucketName, objectName)
	if err != nil {
		return classify(log, "GET", bucketName, objectName, err)
	}
	log.Infof("downloaded %d bytes", len(data))
	return storage.Success(data), nil
}

// classify turns S3 API errors (NoSuchKey, AccessDenied, ...) into Failure
// results, the same way errorType payloads are handled by the endpoint
// client. Everything else is a transport problem.
func classify(log logrus.FieldLogger, method, bucket, key string, err error) (storage.Result, error) {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		reason := apiErr.ErrorMessage()
		if reason == "" {
			reason = apiErr.ErrorCode()
		}
		log.WithField("code", apiErr.ErrorCode()).Info("request rejected by S3")
		return storage.Failure(reason), nil
	}
	log.WithError(err).Warn("S3 request failed")
	return storage.Result{}, &errs.TransportError{Method: method, URL: fmt.Sprintf("s3://%s/%s", bucket, key), Err: err}
}
