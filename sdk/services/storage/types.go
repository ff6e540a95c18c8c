// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package storage

import (
	"context"

	"github.com/scc-digitalhub/s3manager-sdk/sdk/utils"
)

type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeFail    Outcome = "fail"
)

// Result is the uniform outcome of an upload or download. A Failure is the
// endpoint's own verdict and is not an error.
type Result struct {
	Result Outcome `json:"result"`
	Reason string  `json:"reason,omitempty"`
	Data   string  `json:"data,omitempty"`
}

func Success(data string) Result { return Result{Result: OutcomeSuccess, Data: data} }

func Failure(reason string) Result { return Result{Result: OutcomeFail, Reason: reason} }

func (r Result) Ok() bool { return r.Result == OutcomeSuccess }

// ObjectRequest addresses one object. ObjectName is expected to carry a file
// extension; it is not checked.
type ObjectRequest struct {
	BucketName string `json:"bucketName"`
	ObjectName string `json:"objectName"`
}

type UploadRequest struct {
	ObjectRequest
	Content string `json:"content"`
}

// Backend is anything that can store and fetch whole string objects.
type Backend interface {
	UploadFile(ctx context.Context, bucketName, objectName, content string) (Result, error)
	DownloadFile(ctx context.Context, bucketName, objectName string) (Result, error)
}

// ConfigSource parses a credentials file into a mapping. *utils.ConfigReader
// satisfies it.
type ConfigSource interface {
	Parse(path string) (utils.Mapping, error)
}
