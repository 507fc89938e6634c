package advisor

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// UserDefinedCategory marks skills and interests typed in by the user.
const UserDefinedCategory = "User Defined"

// Item is a selected skill or interest.
type Item struct {
	ID        string   `json:"id" yaml:"id"`
	Name      string   `json:"name" yaml:"name"`
	Category  string   `json:"category" yaml:"category"`
	Relevance *float64 `json:"relevance,omitempty" yaml:"relevance,omitempty"`
}

// Custom reports whether the item was defined by the user rather than picked from the catalog.
func (i Item) Custom() bool { return strings.EqualFold(i.Category, UserDefinedCategory) }

// UserInput is the questionnaire profile.
type UserInput struct {
	FullName              string `json:"fullName" yaml:"fullName"`
	HighestQualification  string `json:"highestQualification" yaml:"highestQualification"`
	FieldOfStudy          string `json:"fieldOfStudy" yaml:"fieldOfStudy"`
	EducationJourneyNotes string `json:"educationJourneyNotes" yaml:"educationJourneyNotes"`
	Experience            string `json:"experience" yaml:"experience"`
	SelectedSkills        []Item `json:"selectedSkills" yaml:"selectedSkills"`
	SelectedInterests     []Item `json:"selectedInterests" yaml:"selectedInterests"`
}

// SkillNames returns the names of the selected skills.
func (u UserInput) SkillNames() []string { return names(u.SelectedSkills) }

// InterestNames returns the names of the selected interests.
func (u UserInput) InterestNames() []string { return names(u.SelectedInterests) }

// Categories returns the distinct skill and interest categories in selection order.
func (u UserInput) Categories() []string {
	seen := map[string]bool{}
	var out []string
	for _, it := range append(append([]Item{}, u.SelectedSkills...), u.SelectedInterests...) {
		if it.Category == "" || seen[it.Category] {
			continue
		}
		seen[it.Category] = true
		out = append(out, it.Category)
	}
	return out
}

func names(items []Item) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		if n := strings.TrimSpace(it.Name); n != "" {
			out = append(out, n)
		}
	}
	return out
}

// Score is a relevance score. Models sometimes quote it, so both
// 0.8 and "0.8" decode; unparseable strings decode as zero.
type Score float64

func (s *Score) UnmarshalJSON(b []byte) error {
	raw := strings.TrimSpace(string(b))
	if raw == "null" {
		*s = 0
		return nil
	}
	if strings.HasPrefix(raw, `"`) {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return err
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(str), 64)
		if err != nil {
			*s = 0
			return nil
		}
		*s = Score(f)
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return fmt.Errorf("relevanceScore: %w", err)
	}
	*s = Score(f)
	return nil
}

// JobRole is one suggested career.
type JobRole struct {
	Title               string `json:"title" yaml:"title"`
	Description         string `json:"description" yaml:"description"`
	RelevanceScore      Score  `json:"relevanceScore,omitempty" yaml:"relevanceScore,omitempty"`
	Roadmap             string `json:"roadmap" yaml:"roadmap"`
	EstimatedPayBracket string `json:"estimatedPayBracket,omitempty" yaml:"estimatedPayBracket,omitempty"`
	MarketDemand        string `json:"marketDemand,omitempty" yaml:"marketDemand,omitempty"`
	LearningEffort      string `json:"learningEffort,omitempty" yaml:"learningEffort,omitempty"`
}

// CareerAdvice is the parsed career suggestion response.
type CareerAdvice struct {
	SuggestedRoles    []JobRole `json:"suggestedRoles"`
	KeyConsiderations string    `json:"keyConsiderations,omitempty"`
	GeneralAdvice     string    `json:"generalAdvice,omitempty"`
}

// Resource is a suggested learning resource.
type Resource struct {
	Type    string `json:"type"`
	Details string `json:"details"`
}

type Task struct {
	TaskDescription    string     `json:"taskDescription"`
	SkillsToFocus      []string   `json:"skillsToFocus,omitempty"`
	SuggestedResources []Resource `json:"suggestedResources,omitempty"`
}

type Week struct {
	WeekRange string `json:"weekRange"`
	FocusArea string `json:"focusArea"`
	Tasks     []Task `json:"tasks"`
}

type Phase struct {
	PhaseTitle    string `json:"phaseTitle"`
	PhaseDuration string `json:"phaseDuration,omitempty"`
	Summary       string `json:"summary,omitempty"`
	Weeks         []Week `json:"weeks"`
}

// Timetable is the parsed learning plan.
type Timetable struct {
	Title            string   `json:"title"`
	IntroductoryNote string   `json:"introductoryNote,omitempty"`
	Phases           []Phase  `json:"phases"`
	GeneralTips      []string `json:"generalTips,omitempty"`
}

// ErrInvalidRequest marks a timetable request missing required fields.
var ErrInvalidRequest = errors.New("invalid timetable request")

// TimetableRequest selects the role and timeframe a timetable is generated for.
type TimetableRequest struct {
	JobTitle       string `json:"jobTitle" yaml:"jobTitle"`
	JobDescription string `json:"jobDescription" yaml:"jobDescription"`
	Roadmap        string `json:"roadmap" yaml:"roadmap"`
	Timeframe      string `json:"timeframe" yaml:"timeframe"`
}

// Validate reports missing required fields.
func (r TimetableRequest) Validate() error {
	var missing []string
	if strings.TrimSpace(r.JobTitle) == "" {
		missing = append(missing, "jobTitle")
	}
	if strings.TrimSpace(r.Timeframe) == "" {
		missing = append(missing, "timeframe")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrInvalidRequest, strings.Join(missing, ", "))
	}
	return nil
}

// Role returns the request as a JobRole for session storage.
func (r TimetableRequest) Role() JobRole {
	return JobRole{Title: r.JobTitle, Description: r.JobDescription, Roadmap: r.Roadmap}
}

// PersonalizedTimetable pairs a generated schedule with the request that produced it.
type PersonalizedTimetable struct {
	JobTitle          string     `json:"jobTitle"`
	UserTimeframe     string     `json:"userTimeframe"`
	GeneratedSchedule *Timetable `json:"generatedSchedule"`
}

// SavedSession is a persisted timetable with the profile and role it was built for.
type SavedSession struct {
	ID                 string    `json:"id"`
	Timestamp          int64     `json:"timestamp"`
	UserName           string    `json:"userName"`
	UserInput          UserInput `json:"userInput"`
	SelectedJob        JobRole   `json:"selectedJob"`
	GeneratedTimetable Timetable `json:"generatedTimetable"`
}

// NewSession stamps a session with a fresh id and the current time in milliseconds.
func NewSession(userName string, input UserInput, job JobRole, plan Timetable) SavedSession {
	if strings.TrimSpace(userName) == "" {
		userName = input.FullName
	}
	return SavedSession{
		ID:                 uuid.NewString(),
		Timestamp:          time.Now().UnixMilli(),
		UserName:           userName,
		UserInput:          input,
		SelectedJob:        job,
		GeneratedTimetable: plan,
	}
}

// Created returns the session timestamp as a time.Time.
func (s SavedSession) Created() time.Time { return time.UnixMilli(s.Timestamp) }
