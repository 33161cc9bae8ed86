// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"
)

func newConfigCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the resolved settings as YAML",
		Long: "Print the settings in effect after the config file and flags are applied.\n" +
			"The output is a valid --config file.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			raw, err := a.cfg.Marshal()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(raw)

			return err
		},
	}
}
