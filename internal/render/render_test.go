// internal/render/render_test.go
package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/mwiater/careerpath/internal/advisor"
	"github.com/mwiater/careerpath/internal/store"
)

func init() {
	color.NoColor = true
}

func TestCareerAdvice(t *testing.T) {
	var buf bytes.Buffer
	CareerAdvice(&buf, advisor.CareerAdvice{
		SuggestedRoles: []advisor.JobRole{{
			Title:          "Data Analyst",
			Description:    "Turns data into decisions.",
			RelevanceScore: 92,
			Roadmap:        "1. Learn SQL\n2. Build dashboards",
			MarketDemand:   "High",
		}},
		GeneralAdvice: "Keep a portfolio.",
	})
	out := buf.String()
	for _, want := range []string{"Suggested Roles", "1. Data Analyst", "(relevance 92)", "Demand: High", "Roadmap:", "2. Build dashboards", "General Advice", "Keep a portfolio."} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Pay:") {
		t.Fatalf("empty fields should be omitted:\n%s", out)
	}
}

func TestTimetable(t *testing.T) {
	var buf bytes.Buffer
	Timetable(&buf, advisor.Timetable{
		Title: "Go Developer in 3 months",
		Phases: []advisor.Phase{{
			PhaseTitle:    "Foundations",
			PhaseDuration: "Weeks 1-4",
			Weeks: []advisor.Week{{
				WeekRange: "Week 1",
				FocusArea: "Syntax",
				Tasks: []advisor.Task{{
					TaskDescription:    "Complete the tour",
					SkillsToFocus:      []string{"types", "slices"},
					SuggestedResources: []advisor.Resource{{Type: "Online Course", Details: "A Tour of Go"}},
				}},
			}},
		}},
		GeneralTips: []string{"Code daily."},
	})
	out := buf.String()
	for _, want := range []string{"Go Developer in 3 months", "Foundations (Weeks 1-4)", "Week 1: Syntax", "- Complete the tour", "skills: types, slices", "Online Course: A Tour of Go", "- Code daily."} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestTermsAndSessions(t *testing.T) {
	var buf bytes.Buffer
	Terms(&buf, nil)
	Sessions(&buf, nil)
	Terms(&buf, []store.Term{{Name: "Rust", Type: "skill", Count: 3}})
	Sessions(&buf, []advisor.SavedSession{{ID: "abc", Timestamp: 0, UserName: "Ada", SelectedJob: advisor.JobRole{Title: "Engineer"}}})
	out := buf.String()
	for _, want := range []string{"No user-defined terms.", "No saved sessions.", "Rust", "x3", "abc", "Ada", "Engineer"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}
