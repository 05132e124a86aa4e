package main

import (
	"math/rand"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"resume-insight/internal/catalog"
	"resume-insight/internal/chat"
)

func newChatCmd(v *viper.Viper) *cobra.Command {
	var (
		jobID     string
		seed      int64
		noContext bool
	)
	cmd := &cobra.Command{
		Use:   "chat <message>",
		Short: "Ask the résumé assistant a question",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resumeContext := ""
			if !noContext {
				r, err := loadResume(cmd.Context(), v)
				if err != nil {
					return err
				}
				var job *catalog.JobProfile
				if p, ok := catalog.Resolve(jobID); ok {
					job = &p
				}
				resumeContext = chat.BuildContext(&r, job)
			}

			var src rand.Source
			if seed != 0 {
				src = rand.NewSource(seed)
			}
			reply, err := chat.NewCannedResponder(src).Respond(cmd.Context(), strings.Join(args, " "), resumeContext)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), v, map[string]string{
				"category": string(reply.Category),
				"response": reply.Text,
			})
		},
	}
	cmd.Flags().StringVar(&jobID, "job", "", "job profile id included in the context")
	cmd.Flags().Int64Var(&seed, "seed", 0, "fixed seed for reply selection")
	cmd.Flags().BoolVar(&noContext, "no-context", false, "answer without résumé context")
	return cmd
}
