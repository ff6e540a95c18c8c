// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package utils

const (
	// Credentials file looked up under the home directory when no path is configured.
	IniDir  = ".s3manager"
	IniName = "authorizers.ini"

	// Section and key holding the storage auth token in the credentials file.
	AuthorizersSection = "authorizers"
	AuthTokenKey       = "auth-token"

	DefaultStoreEndpoint = "https://tqz3wlewoc.execute-api.eu-west-1.amazonaws.com/s3store"

	StoreEndpoint   = "store_endpoint"
	StoreAuthToken  = "store_auth_token"
	StoreConfigPath = "store_config_path"
	StoreTimeout    = "store_timeout"
	AwsAccessKeyID  = "aws_access_key_id"
	AwsSecretKey    = "aws_secret_access_key"
	AwsSessionToken = "aws_session_token"
	AwsRegion       = "aws_region"
	AwsEndpointURL  = "aws_endpoint_url"
)
