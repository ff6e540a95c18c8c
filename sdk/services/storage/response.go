// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package storage

import (
	"encoding/json"

	"github.com/scc-digitalhub/s3manager-sdk/sdk/errs"
)

const (
	keyErrorType    = "errorType"
	keyErrorMessage = "errorMessage"
	keyBody         = "Body"
)

// decode parses a 200 body. failure is set when the endpoint reported an errorType.
func decode(method, url string, body []byte) (m map[string]json.RawMessage, failure *Result, err error) {
	if err := json.Unmarshal(body, &m); err != nil {
		return nil, nil, &errs.TransportError{Method: method, URL: url, StatusCode: 200, Message: "undecodable response body", Err: err}
	}
	if _, has := m[keyErrorType]; has {
		f := Failure(text(m[keyErrorMessage]))
		return m, &f, nil
	}
	return m, nil, nil
}

// text renders a JSON value as a plain string: strings are unquoted, anything
// else keeps its JSON form.
func text(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if json.Unmarshal(raw, &s) == nil {
		return s
	}
	if string(raw) == "null" {
		return ""
	}
	return string(raw)
}
