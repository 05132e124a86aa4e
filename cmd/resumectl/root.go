package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"resume-insight/internal/extract"
	"resume-insight/internal/resume"
)

const envPrefix = "RESUMECTL"

// newRootCmd builds the command tree. Persistent flags are bound to viper so each can
// also come from RESUMECTL_* environment variables.
func newRootCmd() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	v.SetDefault("parser", string(resume.ModeStub))

	root := &cobra.Command{
		Use:           "resumectl",
		Short:         "Offline résumé matching, analysis and chat",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().String("parser", "", "parser mode: stub or extract")
	root.PersistentFlags().String("file", "", "résumé document (.pdf or .docx) to parse")
	root.PersistentFlags().String("resume", "", "parsed résumé JSON file, used instead of --file")
	root.PersistentFlags().Bool("pretty", true, "indent JSON output")
	for _, name := range []string{"parser", "file", "resume", "pretty"} {
		if err := v.BindPFlag(name, root.PersistentFlags().Lookup(name)); err != nil {
			panic(err)
		}
	}

	root.AddCommand(
		newJobsCmd(v),
		newMatchCmd(v),
		newAnalyzeCmd(v),
		newChatCmd(v),
	)
	return root
}

// loadResume resolves the résumé from --resume, --file or the stub sample, in that order.
func loadResume(ctx context.Context, v *viper.Viper) (resume.ParsedResume, error) {
	if path := strings.TrimSpace(v.GetString("resume")); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return resume.ParsedResume{}, fmt.Errorf("read resume: %w", err)
		}
		var r resume.ParsedResume
		if err := json.Unmarshal(raw, &r); err != nil {
			return resume.ParsedResume{}, fmt.Errorf("decode resume: %w", err)
		}
		return r.Normalize(), nil
	}

	parser, err := resume.NewParser(v.GetString("parser"))
	if err != nil {
		return resume.ParsedResume{}, err
	}

	doc := resume.Document{}
	if path := strings.TrimSpace(v.GetString("file")); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return resume.ParsedResume{}, fmt.Errorf("read document: %w", err)
		}
		doc = resume.Document{
			FileName: filepath.Base(path),
			MimeType: extract.NormalizeMimeType(http.DetectContentType(data), path, data),
			Data:     data,
		}
	} else if parser.Mode() != resume.ModeStub {
		return resume.ParsedResume{}, fmt.Errorf("--file is required with parser %q", parser.Mode())
	}
	return parser.Parse(ctx, doc)
}

func writeJSON(w io.Writer, v *viper.Viper, payload any) error {
	enc := json.NewEncoder(w)
	if v.GetBool("pretty") {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(payload)
}
