// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"github.com/spf13/cobra"

	"github.com/scc-digitalhub/s3manager-sdk/sdk/services/filestore"
)

func newDownloadCmd(c *cli) *cobra.Command {
	var bucket, object, file, location string

	cmd := &cobra.Command{
		Use:   "download",
		Short: "Download an object and print it, or save it to a local .txt/.csv file",
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := c.backend(cmd.Context())
			if err != nil {
				return c.fail(err)
			}
			res, err := b.DownloadFile(cmd.Context(), bucket, object)
			if err != nil {
				return c.fail(err)
			}
			if file != "" && res.Ok() {
				if _, err := filestore.NewFileService(c.log).Write(file, location, res.Data); err != nil {
					return c.fail(err)
				}
			}
			return c.print(cmd, res)
		},
	}

	cmd.Flags().StringVarP(&bucket, "bucket", "b", "", "source bucket")
	cmd.Flags().StringVar(&object, "object", "", "object name, with extension")
	cmd.Flags().StringVarP(&file, "file", "f", "", "write the object to this local file")
	cmd.Flags().StringVarP(&location, "location", "l", "", "directory holding --file")
	_ = cmd.MarkFlagRequired("bucket")
	_ = cmd.MarkFlagRequired("object")
	return cmd
}
