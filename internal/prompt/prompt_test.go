package prompt

import (
	"strings"
	"testing"
)

func TestCareerAdvice(t *testing.T) {
	got, err := CareerAdvice(CareerInput{
		Qualification: "Bachelor's Degree",
		FieldOfStudy:  "Computer Science",
		Skills:        []string{"Python", "SQL"},
		Context:       "Tip A",
	})
	if err != nil {
		t.Fatalf("CareerAdvice error: %v", err)
	}
	for _, want := range []string{
		"Highest Qualification: Bachelor's Degree\nField of Study: Computer Science\n- Skills: Python, SQL",
		"- Interests: Not specified",
		"- Experience/Journey: Not specified",
		"\"\"\"\nTip A\n\"\"\"",
		`"suggestedRoles"`,
		"3 to 5 diverse suggestedRoles",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in prompt:\n%s", want, got)
		}
	}
	if strings.Contains(got, "Education Journey Notes") {
		t.Fatal("empty education notes should be omitted")
	}
	if strings.Contains(got, "<no value>") {
		t.Fatal("template rendered a missing value")
	}
}

func TestCareerAdviceMissingQualification(t *testing.T) {
	got, err := CareerAdvice(CareerInput{EducationNotes: "Self-taught"})
	if err != nil {
		t.Fatalf("CareerAdvice error: %v", err)
	}
	if !strings.Contains(got, "Highest Qualification: Not specified\nEducation Journey Notes: Self-taught") {
		t.Fatalf("unexpected education block:\n%s", got)
	}
}

func TestTimetable(t *testing.T) {
	got, err := Timetable(TimetableInput{
		JobTitle:       "Data Analyst",
		JobDescription: "Turns data into decisions.",
		Roadmap:        "1. SQL\n2. Tableau",
		Timeframe:      "3 months",
		Context:        "Study Tip",
	})
	if err != nil {
		t.Fatalf("Timetable error: %v", err)
	}
	for _, want := range []string{
		"Job Title: Data Analyst",
		"User's Desired Timeframe for Learning: 3 months",
		`- "1 month" means the plan MUST cover EXACTLY 4 weeks in total.`,
		`- "3 months" means the plan MUST cover EXACTLY 12 weeks in total.`,
		`- "4 months" means the plan MUST cover EXACTLY 16-17 weeks in total (usually four 4-week phases, 16 weeks in total).`,
		`- "6 months" means the plan MUST cover approximately 24-26 weeks in total.`,
		`- "1 year" means the plan MUST cover approximately 52 weeks in total.`,
		`"generalTips"`,
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in prompt:\n%s", want, got)
		}
	}
}

func TestWeeksFor(t *testing.T) {
	tests := []struct {
		in    string
		weeks string
		ok    bool
	}{
		{"1 month", "4", true},
		{"  3   Months ", "12", true},
		{"4 months", "16-17", true},
		{"six months", "24-26", true},
		{"12 months", "52", true},
		{"dedicated", "", false},
	}
	for _, tt := range tests {
		rule, ok := WeeksFor(tt.in)
		if ok != tt.ok {
			t.Fatalf("WeeksFor(%q) ok = %v", tt.in, ok)
		}
		if ok && rule.Weeks() != tt.weeks {
			t.Fatalf("WeeksFor(%q) = %s, want %s", tt.in, rule.Weeks(), tt.weeks)
		}
	}
}
