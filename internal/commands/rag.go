// internal/commands/rag.go
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mwiater/careerpath/internal/rag"
)

var (
	previewCorpus string
	previewAsJob  bool
)

// ragCmd groups retrieval-related CLI commands.
var ragCmd = &cobra.Command{
	Use:   "rag",
	Short: "Knowledge retrieval utilities",
}

// ragPreviewCmd previews keyword retrieval and context assembly for a query.
var ragPreviewCmd = &cobra.Command{
	Use:   "preview <query words>",
	Short: "Preview keyword retrieval and context assembly",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		var r *rag.Retriever
		switch previewCorpus {
		case "career":
			r = a.career
		case "timetable":
			r = a.timetable
		default:
			return fmt.Errorf("unknown corpus %q (want career or timetable)", previewCorpus)
		}
		return rag.RunPreview(cmd.Context(), cmd.OutOrStdout(), r, previewCorpus, previewAsJob, args)
	},
}

func init() {
	ragPreviewCmd.Flags().StringVar(&previewCorpus, "corpus", "career", "corpus to search: career or timetable")
	ragPreviewCmd.Flags().BoolVar(&previewAsJob, "job", false, "treat the query as a job title")
	ragCmd.AddCommand(ragPreviewCmd)
	rootCmd.AddCommand(ragCmd)
}
