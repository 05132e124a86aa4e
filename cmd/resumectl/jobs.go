package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"resume-insight/internal/catalog"
)

func newJobsCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "jobs [id]",
		Short: "List job profiles, or show one with its keywords",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return writeJSON(cmd.OutOrStdout(), v, map[string]any{
					"jobs":         catalog.List(),
					"defaultJobId": catalog.DefaultJobID,
				})
			}
			profile, err := catalog.Get(args[0])
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), v, profile)
		},
	}
}
