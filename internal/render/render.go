// internal/render/render.go

// Package render prints career advice, timetables, terms and sessions for the terminal.
package render

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/k0kubun/pp"

	"github.com/mwiater/careerpath/internal/advisor"
	"github.com/mwiater/careerpath/internal/store"
	"github.com/mwiater/careerpath/internal/util"
)

const wrapWidth = 88

var (
	heading = color.New(color.FgCyan, color.Bold).SprintFunc()
	title   = color.New(color.FgGreen, color.Bold).SprintFunc()
	label   = color.New(color.FgYellow).SprintFunc()
	muted   = color.New(color.FgHiBlack).SprintFunc()
)

// CareerAdvice writes the suggested roles with their roadmaps.
func CareerAdvice(w io.Writer, a advisor.CareerAdvice) {
	fmt.Fprintln(w, heading("Suggested Roles"))
	for i, role := range a.SuggestedRoles {
		fmt.Fprintf(w, "\n%d. %s", i+1, title(role.Title))
		if role.RelevanceScore > 0 {
			fmt.Fprintf(w, " %s", muted(fmt.Sprintf("(relevance %.0f)", float64(role.RelevanceScore))))
		}
		fmt.Fprintln(w)
		block(w, role.Description)
		field(w, "Pay", role.EstimatedPayBracket)
		field(w, "Demand", role.MarketDemand)
		field(w, "Effort", role.LearningEffort)
		if role.Roadmap != "" {
			fmt.Fprintln(w, util.Indent(label("Roadmap:"), "   "))
			block(w, role.Roadmap)
		}
	}
	if a.KeyConsiderations != "" {
		fmt.Fprintf(w, "\n%s\n", heading("Key Considerations"))
		block(w, a.KeyConsiderations)
	}
	if a.GeneralAdvice != "" {
		fmt.Fprintf(w, "\n%s\n", heading("General Advice"))
		block(w, a.GeneralAdvice)
	}
}

// Timetable writes the phases, weeks and tasks of a plan.
func Timetable(w io.Writer, t advisor.Timetable) {
	fmt.Fprintln(w, heading(t.Title))
	if t.IntroductoryNote != "" {
		block(w, t.IntroductoryNote)
	}
	for _, phase := range t.Phases {
		fmt.Fprintf(w, "\n%s", title(phase.PhaseTitle))
		if phase.PhaseDuration != "" {
			fmt.Fprintf(w, " %s", muted("("+phase.PhaseDuration+")"))
		}
		fmt.Fprintln(w)
		if phase.Summary != "" {
			block(w, phase.Summary)
		}
		for _, week := range phase.Weeks {
			fmt.Fprintf(w, "   %s %s\n", label(week.WeekRange+":"), week.FocusArea)
			for _, task := range week.Tasks {
				fmt.Fprintln(w, util.Indent(util.WrapToWidth("- "+task.TaskDescription, wrapWidth-6), "     "))
				if len(task.SkillsToFocus) > 0 {
					fmt.Fprintf(w, "       %s %s\n", muted("skills:"), strings.Join(task.SkillsToFocus, ", "))
				}
				for _, r := range task.SuggestedResources {
					fmt.Fprintf(w, "       %s %s\n", muted(r.Type+":"), util.TruncateRunes(r.Details, wrapWidth))
				}
			}
		}
	}
	if len(t.GeneralTips) > 0 {
		fmt.Fprintf(w, "\n%s\n", heading("Tips"))
		for _, tip := range t.GeneralTips {
			fmt.Fprintln(w, util.Indent(util.WrapToWidth("- "+tip, wrapWidth-3), "   "))
		}
	}
}

// Terms writes the user-defined term registry.
func Terms(w io.Writer, terms []store.Term) {
	if len(terms) == 0 {
		fmt.Fprintln(w, "No user-defined terms.")
		return
	}
	for _, t := range terms {
		fmt.Fprintf(w, "%-9s %-30s %s\n", t.Type, t.Name, muted(fmt.Sprintf("x%d", t.Count)))
	}
}

// Sessions writes one line per saved session.
func Sessions(w io.Writer, sessions []advisor.SavedSession) {
	if len(sessions) == 0 {
		fmt.Fprintln(w, "No saved sessions.")
		return
	}
	for _, s := range sessions {
		fmt.Fprintf(w, "%s  %s  %-20s %s\n", s.ID, s.Created().Format(time.DateTime), s.UserName, title(s.SelectedJob.Title))
	}
}

// Debug pretty-prints v for --debug output.
func Debug(w io.Writer, v any) {
	pp.Fprintln(w, v)
}

func field(w io.Writer, name, value string) {
	if strings.TrimSpace(value) == "" {
		return
	}
	fmt.Fprintf(w, "   %s %s\n", label(name+":"), value)
}

func block(w io.Writer, text string) {
	fmt.Fprintln(w, util.Indent(util.WrapToWidth(strings.TrimSpace(text), wrapWidth-3), "   "))
}
