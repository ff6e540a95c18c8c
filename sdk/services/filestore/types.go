// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package filestore

type WriteResult struct {
	Result string `json:"result"`
}

const ResultSuccessful = "successful"
