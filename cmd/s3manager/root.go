// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/scc-digitalhub/s3manager-sdk/sdk/services/s3store"
	"github.com/scc-digitalhub/s3manager-sdk/sdk/services/storage"
	"github.com/scc-digitalhub/s3manager-sdk/sdk/utils"
)

type cli struct {
	v       *viper.Viper
	log     *logrus.Logger
	output  string
	direct  bool
	verbose bool
}

func newRootCmd() *cobra.Command {
	c := &cli{v: viper.New(), log: logrus.New()}

	root := &cobra.Command{
		Use:           "s3manager",
		Short:         "Store and fetch text objects in a remote bucket",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if c.verbose {
				c.log.SetLevel(logrus.DebugLevel)
			}
			for _, key := range c.v.AllKeys() {
				if utils.IsSecret(key) {
					continue
				}
				c.log.WithField(key, c.v.GetString(key)).Debug("setting")
			}
		},
	}
	root.SetErr(c.log.Out)

	flags := root.PersistentFlags()
	flags.String("endpoint", "", "storage endpoint URL (env S3MANAGER_ENDPOINT)")
	flags.String("token", "", "auth token; read from the credentials file when empty (env S3MANAGER_AUTH_TOKEN)")
	flags.String("config", "", "credentials INI file (env S3MANAGER_CONFIG_PATH, default ~/.s3manager/authorizers.ini)")
	flags.StringVarP(&c.output, "output", "o", "json", "result format: json or yaml")
	flags.BoolVar(&c.direct, "direct", false, "talk to S3 directly using AWS credentials")
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "debug logging")

	utils.BindEnvFromStruct(c.v)
	_ = c.v.BindPFlag(utils.StoreEndpoint, flags.Lookup("endpoint"))
	_ = c.v.BindPFlag(utils.StoreAuthToken, flags.Lookup("token"))
	_ = c.v.BindPFlag(utils.StoreConfigPath, flags.Lookup("config"))

	root.AddCommand(newUploadCmd(c), newDownloadCmd(c))
	return root
}

func (c *cli) backend(ctx context.Context) (storage.Backend, error) {
	conf, err := utils.LoadConfig(c.v)
	if err != nil {
		return nil, err
	}
	if c.direct {
		return s3store.NewS3Store(ctx, conf, c.log)
	}
	return storage.NewStorageService(ctx, conf, storage.WithLogger(c.log))
}

func (c *cli) print(cmd *cobra.Command, v any) error {
	out, err := utils.Render(v, c.output)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
	return err
}

// fail logs err and hands it back so cobra exits non-zero.
func (c *cli) fail(err error) error {
	c.log.Error(err)
	return err
}
