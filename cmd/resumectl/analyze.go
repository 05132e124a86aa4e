package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"resume-insight/internal/analysis"
	"resume-insight/internal/catalog"
)

func newAnalyzeCmd(v *viper.Viper) *cobra.Command {
	var jobID string
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Produce the analysis report for a résumé",
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, err := loadResume(cmd.Context(), v)
			if err != nil {
				return err
			}
			report, err := analysis.NewAggregator().Analyze(r, jobID)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), v, report)
		},
	}
	cmd.Flags().StringVar(&jobID, "job", catalog.DefaultJobID, "job profile id")
	return cmd
}
