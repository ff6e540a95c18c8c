// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Client talks to an S3-compatible store directly, bypassing the
// storage endpoint. Objects are whole strings.
type S3Client struct {
	s3 *s3.Client
}

func NewS3Client(ctx context.Context, cfgCreds S3Config) (*S3Client, error) {
	var opts []func(*config.LoadOptions) error
	if cfgCreds.AccessKey != "" {
		creds := aws.NewCredentialsCache(credentials.NewStaticCredentialsProvider(
			cfgCreds.AccessKey,
			cfgCreds.SecretKey,
			cfgCreds.AccessToken,
		))
		opts = append(opts, config.WithCredentialsProvider(creds))
	}
	if cfgCreds.Region != "" {
		opts = append(opts, config.WithRegion(cfgCreds.Region))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	s3Options := func(o *s3.Options) {
		if cfgCreds.EndpointURL != "" {
			o.BaseEndpoint = aws.String(cfgCreds.EndpointURL)
			o.UsePathStyle = true // required by most S3-compatible stores
		}
	}

	return &S3Client{
		s3: s3.NewFromConfig(cfg, s3Options),
	}, nil
}

func (c *S3Client) PutObject(ctx context.Context, bucket, key, content string) error {
	_, err := c.s3.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(bucket),
		Key:           aws.String(key),
		Body:          strings.NewReader(content),
		ContentLength: aws.Int64(int64(len(content))),
		ContentType:   aws.String(http.DetectContentType([]byte(content))),
	})
	if err != nil {
		return fmt.Errorf("failed to put object to S3: %w", err)
	}
	return nil
}

func (c *S3Client) GetObject(ctx context.Context, bucket, key string) (string, error) {
	out, err := c.s3.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return "", fmt.Errorf("failed to get object from S3: %w", err)
	}
	defer out.Body.Close()

	var sb strings.Builder
	if _, err := io.Copy(&sb, out.Body); err != nil {
		return "", fmt.Errorf("failed to read object body: %w", err)
	}
	return sb.String(), nil
}
