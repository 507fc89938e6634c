// internal/commands/timetable.go
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mwiater/careerpath/internal/advisor"
	"github.com/mwiater/careerpath/internal/providers"
	"github.com/mwiater/careerpath/internal/quotes"
	"github.com/mwiater/careerpath/internal/render"
	"github.com/mwiater/careerpath/internal/util"
)

var (
	timetableReq     advisor.TimetableRequest
	timetableSave    bool
	timetableUser    string
	timetableProfile string
	timetableOut     string
)

// timetableCmd builds a week-by-week learning plan for a role.
var timetableCmd = &cobra.Command{
	Use:   "timetable",
	Short: "Generate a learning timetable for a role",
	Long:  `The 'timetable' command asks the model for a phased, week-by-week learning plan for the given role and timeframe, optionally saving it as a session.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := timetableReq.Validate(); err != nil {
			return err
		}

		var in advisor.UserInput
		if timetableProfile != "" {
			p, err := advisor.LoadProfile(timetableProfile)
			if err != nil {
				return err
			}
			in = p
		}

		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		var plan advisor.Timetable
		job := func(ctx context.Context, progress providers.ProgressFunc) error {
			plan, err = a.service.GenerateTimetable(ctx, timetableReq, progress)
			return err
		}
		title := fmt.Sprintf("Timetable: %s in %s", timetableReq.JobTitle, timetableReq.Timeframe)
		if err := generate(cmd.Context(), title, quotes.Relevant(in.Categories()), job); err != nil {
			return err
		}

		result := advisor.PersonalizedTimetable{
			JobTitle:          timetableReq.JobTitle,
			UserTimeframe:     timetableReq.Timeframe,
			GeneratedSchedule: &plan,
		}
		if timetableOut != "" {
			if err := util.WriteJSONFile(timetableOut, result); err != nil {
				return err
			}
		}

		if timetableSave {
			sess := advisor.NewSession(timetableUser, in, timetableReq.Role(), plan)
			if err := a.store.SaveSession(cmd.Context(), sess); err != nil {
				return fmt.Errorf("save session: %w", err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Saved session %s\n", sess.ID)
		}

		return output(cmd.OutOrStdout(), result, func(w io.Writer) { render.Timetable(w, plan) })
	},
}

func init() {
	f := timetableCmd.Flags()
	f.StringVarP(&timetableReq.JobTitle, "job", "j", "", "job title")
	f.StringVar(&timetableReq.JobDescription, "description", "", "job description")
	f.StringVar(&timetableReq.Roadmap, "roadmap", "", "roadmap to follow")
	f.StringVarP(&timetableReq.Timeframe, "timeframe", "t", "3 months", `timeframe such as "1 month", "3 months" or "1 year"`)
	f.StringVarP(&timetableProfile, "profile", "p", "", "profile file stored with a saved session")
	f.BoolVar(&timetableSave, "save", false, "save the timetable as a session")
	f.StringVarP(&timetableUser, "user", "u", "", "user name for the saved session (defaults to the profile's full name)")
	f.StringVarP(&timetableOut, "out", "o", "", "also write the result as JSON to this file")
	rootCmd.AddCommand(timetableCmd)
}
