// internal/commands/terms.go
package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mwiater/careerpath/internal/advisor"
	"github.com/mwiater/careerpath/internal/render"
	"github.com/mwiater/careerpath/internal/store"
)

var termType string

// termsCmd groups the user-defined term registry commands.
var termsCmd = &cobra.Command{
	Use:   "terms",
	Short: "Manage user-defined skills and interests",
}

var termsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List user-defined skills and interests",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		terms, err := st.ListTerms(cmd.Context())
		if err != nil {
			return err
		}
		return output(cmd.OutOrStdout(), terms, func(w io.Writer) { render.Terms(w, terms) })
	},
}

var termsAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a skill or interest, or bump its count",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		t, err := st.AddTerm(cmd.Context(), store.Term{Name: strings.Join(args, " "), Type: termType})
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %q (count %d)\n", t.Type, t.Name, t.Count)
		return nil
	},
}

func init() {
	termsAddCmd.Flags().StringVar(&termType, "type", advisor.TermSkill, "term type: skill or interest")
	termsCmd.AddCommand(termsListCmd, termsAddCmd)
	rootCmd.AddCommand(termsCmd)
}
