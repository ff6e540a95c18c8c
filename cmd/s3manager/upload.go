// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/scc-digitalhub/s3manager-sdk/sdk/services/filestore"
)

func newUploadCmd(c *cli) *cobra.Command {
	var bucket, object, file, location, content string

	cmd := &cobra.Command{
		Use:   "upload",
		Short: "Upload a local .txt/.csv file, or a literal string, as an object",
		RunE: func(cmd *cobra.Command, args []string) error {
			if (file == "") == !cmd.Flags().Changed("content") {
				return c.fail(errors.New("exactly one of --file or --content is required"))
			}
			if file != "" {
				var err error
				content, err = filestore.NewFileService(c.log).Read(file, location)
				if err != nil {
					return c.fail(err)
				}
			}
			if object == "" {
				object = file
			}
			if object == "" {
				return c.fail(errors.New("--object is required with --content"))
			}

			b, err := c.backend(cmd.Context())
			if err != nil {
				return c.fail(err)
			}
			res, err := b.UploadFile(cmd.Context(), bucket, object, content)
			if err != nil {
				return c.fail(err)
			}
			return c.print(cmd, res)
		},
	}

	cmd.Flags().StringVarP(&bucket, "bucket", "b", "", "destination bucket")
	cmd.Flags().StringVar(&object, "object", "", "object name, with extension (defaults to --file)")
	cmd.Flags().StringVarP(&file, "file", "f", "", "local file to upload")
	cmd.Flags().StringVarP(&location, "location", "l", "", "directory holding --file")
	cmd.Flags().StringVar(&content, "content", "", "literal content to upload")
	_ = cmd.MarkFlagRequired("bucket")
	return cmd
}
