// Package prompt renders the instruction prompts sent to the completion endpoint.
package prompt

import (
	"strings"
	"text/template"
)

// CareerInput is the profile data embedded in the career prompt.
type CareerInput struct {
	Qualification  string
	FieldOfStudy   string
	EducationNotes string
	Experience     string
	Skills         []string
	Interests      []string
	// Context is the retrieved knowledge block.
	Context string
}

// TimetableInput is the role data embedded in the timetable prompt.
type TimetableInput struct {
	JobTitle       string
	JobDescription string
	Roadmap        string
	Timeframe      string
	Context        string
}

const notSpecified = "Not specified"

var (
	careerTmpl    = template.Must(template.New("career").Funcs(funcs).Parse(careerTemplate))
	timetableTmpl = template.Must(template.New("timetable").Funcs(funcs).Parse(timetableTemplate))
)

var funcs = template.FuncMap{
	"orNotSpecified": func(s string) string {
		if strings.TrimSpace(s) == "" {
			return notSpecified
		}
		return s
	},
	"list": func(items []string) string {
		if len(items) == 0 {
			return notSpecified
		}
		return strings.Join(items, ", ")
	},
}

// CareerAdvice renders the career suggestion prompt.
func CareerAdvice(in CareerInput) (string, error) {
	var b strings.Builder
	if err := careerTmpl.Execute(&b, in); err != nil {
		return "", err
	}
	return b.String(), nil
}

// Timetable renders the learning timetable prompt.
func Timetable(in TimetableInput) (string, error) {
	data := struct {
		TimetableInput
		Rules []TimeframeRule
	}{in, TimeframeWeeks}
	var b strings.Builder
	if err := timetableTmpl.Execute(&b, data); err != nil {
		return "", err
	}
	return b.String(), nil
}
