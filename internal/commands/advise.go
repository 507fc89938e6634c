// internal/commands/advise.go
package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mwiater/careerpath/internal/advisor"
	"github.com/mwiater/careerpath/internal/providers"
	"github.com/mwiater/careerpath/internal/quotes"
	"github.com/mwiater/careerpath/internal/render"
	"github.com/mwiater/careerpath/internal/tui"
	"github.com/mwiater/careerpath/internal/util"
)

// runTUI is a function alias to tui.Run so tests can bypass the terminal.
var runTUI = tui.Run

var (
	adviseProfile string
	adviseOut     string
)

// adviseCmd suggests career roles for a profile file.
var adviseCmd = &cobra.Command{
	Use:   "advise",
	Short: "Suggest career roles for a profile",
	Long:  `The 'advise' command reads a YAML or JSON profile (qualification, field of study, skills, interests) and asks the model for suggested roles with roadmaps.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := advisor.LoadProfile(adviseProfile)
		if err != nil {
			return err
		}
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		var advice advisor.CareerAdvice
		job := func(ctx context.Context, progress providers.ProgressFunc) error {
			advice, err = a.service.GenerateCareerAdvice(ctx, in, progress)
			return err
		}
		title := "Career advice"
		if in.FullName != "" {
			title += " for " + in.FullName
		}
		if err := generate(cmd.Context(), title, quotes.Relevant(in.Categories()), job); err != nil {
			return err
		}

		if adviseOut != "" {
			if err := util.WriteJSONFile(adviseOut, advice); err != nil {
				return err
			}
		}
		return output(cmd.OutOrStdout(), advice, func(w io.Writer) { render.CareerAdvice(w, advice) })
	},
}

func init() {
	adviseCmd.Flags().StringVarP(&adviseProfile, "profile", "p", "", "profile file (.yaml, .yml or .json)")
	adviseCmd.Flags().StringVarP(&adviseOut, "out", "o", "", "also write the result as JSON to this file")
	_ = adviseCmd.MarkFlagRequired("profile")
	rootCmd.AddCommand(adviseCmd)
}

// generate runs job in the streaming view when enabled, otherwise directly.
func generate(ctx context.Context, title string, pool []quotes.Quote, job tui.Job) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg := GetConfig()
	if cfg != nil && cfg.TUI {
		return runTUI(ctx, title, pool, job)
	}
	return job(ctx, nil)
}

// output prints v as indented JSON in JSON mode, otherwise through pretty.
// Debug mode appends a dump of v.
func output(w io.Writer, v any, pretty func(io.Writer)) error {
	cfg := GetConfig()
	if cfg != nil && cfg.JSONMode {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode result: %w", err)
		}
		return nil
	}
	pretty(w)
	if cfg != nil && cfg.Debug {
		render.Debug(w, v)
	}
	return nil
}
