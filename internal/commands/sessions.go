// internal/commands/sessions.go
package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mwiater/careerpath/internal/render"
)

// sessionsCmd groups saved-session commands.
var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "Manage saved timetables",
}

var sessionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved sessions, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		sessions, err := st.ListSessions(cmd.Context())
		if err != nil {
			return err
		}
		return output(cmd.OutOrStdout(), sessions, func(w io.Writer) { render.Sessions(w, sessions) })
	},
}

var sessionsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a saved timetable",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		sess, err := st.GetSession(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return output(cmd.OutOrStdout(), sess, func(w io.Writer) {
			fmt.Fprintf(w, "%s - %s\n\n", sess.UserName, sess.SelectedJob.Title)
			render.Timetable(w, sess.GeneratedTimetable)
		})
	},
}

var sessionsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a saved session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.DeleteSession(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted session %s\n", args[0])
		return nil
	},
}

var sessionsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every saved session",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.ClearSessions(cmd.Context()); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Cleared saved sessions")
		return nil
	},
}

func init() {
	sessionsCmd.AddCommand(sessionsListCmd, sessionsShowCmd, sessionsDeleteCmd, sessionsClearCmd)
	rootCmd.AddCommand(sessionsCmd)
}
