package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"resume-insight/internal/catalog"
	"resume-insight/internal/matcher"
)

func newMatchCmd(v *viper.Viper) *cobra.Command {
	var (
		jobID    string
		keywords []string
	)
	cmd := &cobra.Command{
		Use:   "match",
		Short: "Match a résumé against a job's keywords or an explicit keyword list",
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, err := loadResume(cmd.Context(), v)
			if err != nil {
				return err
			}
			if len(keywords) == 0 {
				keywords = catalog.KeywordsFor(jobID)
			}
			return writeJSON(cmd.OutOrStdout(), v, matcher.Match(r, keywords))
		},
	}
	cmd.Flags().StringVar(&jobID, "job", "", "job profile id (default keywords when empty or unknown)")
	cmd.Flags().StringSliceVar(&keywords, "keyword", nil, "keyword to match; repeatable, overrides --job")
	return cmd
}
