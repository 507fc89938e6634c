package advisor

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/mwiater/careerpath/internal/providers"
	"github.com/mwiater/careerpath/internal/rag"
	"github.com/mwiater/careerpath/internal/schema"
)

type scriptedCompleter struct {
	reply string
	err   error
	req   providers.CompletionRequest
}

func (c *scriptedCompleter) Complete(_ context.Context, req providers.CompletionRequest, progress providers.ProgressFunc) (string, error) {
	c.req = req
	if progress != nil {
		if c.reply != "" {
			progress(providers.StreamChunk{Text: c.reply})
		}
		progress(providers.StreamChunk{IsFinal: true})
	}
	return c.reply, c.err
}

type memoryRecorder struct {
	mu    sync.Mutex
	terms []string
}

func (m *memoryRecorder) Record(_ context.Context, name, kind string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.terms = append(m.terms, kind+":"+name)
	return nil
}

type observations struct {
	retrievals  []string
	completions []string
}

func (o *observations) ObserveRetrieval(kind string, matches int) {
	o.retrievals = append(o.retrievals, kind)
}

func (o *observations) ObserveCompletion(kind string, _ time.Duration, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	o.completions = append(o.completions, kind+":"+outcome)
}

const careerReply = "```json\n" + `{
  "suggestedRoles": [
    {"title": "Backend Developer", "description": "Builds APIs.", "relevanceScore": "0.9", "roadmap": "1. Go\n2. SQL", "marketDemand": "High"},
    {"title": "Data Engineer", "description": "Moves data.", "relevanceScore": 0.7, "roadmap": "1. Python"}
  ],
  "keyConsiderations": "Focus.",
  "generalAdvice": "Keep learning."
}` + "\n```"

func sampleInput() UserInput {
	return UserInput{
		FullName:             "Ada",
		HighestQualification: "Bachelor's Degree",
		FieldOfStudy:         "Computer Science",
		SelectedSkills: []Item{
			{ID: "s1", Name: "Python", Category: "Technical Skills"},
			{ID: "u1", Name: "Rust Tooling", Category: UserDefinedCategory},
		},
		SelectedInterests: []Item{
			{ID: "u2", Name: "Open Source", Category: "User Defined"},
		},
	}
}

func TestGenerateCareerAdvice(t *testing.T) {
	completer := &scriptedCompleter{reply: careerReply}
	terms := &memoryRecorder{}
	obs := &observations{}
	svc := New(completer, nil, nil, WithTermRecorder(terms), WithRecorder(obs), WithStrictSchema(true))

	var chunks []providers.StreamChunk
	got, err := svc.GenerateCareerAdvice(context.Background(), sampleInput(), func(c providers.StreamChunk) {
		chunks = append(chunks, c)
	})
	if err != nil {
		t.Fatalf("GenerateCareerAdvice error: %v", err)
	}
	if len(got.SuggestedRoles) != 2 || got.SuggestedRoles[0].RelevanceScore != 0.9 || got.SuggestedRoles[1].RelevanceScore != 0.7 {
		t.Fatalf("unexpected roles: %+v", got.SuggestedRoles)
	}
	if got.GeneralAdvice != "Keep learning." {
		t.Fatalf("unexpected advice: %q", got.GeneralAdvice)
	}
	if len(chunks) != 2 || !chunks[1].IsFinal {
		t.Fatalf("expected progress to be forwarded, got %+v", chunks)
	}

	if completer.req.Kind != providers.KindCareer {
		t.Fatalf("unexpected kind %q", completer.req.Kind)
	}
	for _, want := range []string{"Skills: Python, Rust Tooling", "Interests: Open Source", "Expert Tip for Software/Web Developers"} {
		if !strings.Contains(completer.req.Prompt, want) {
			t.Fatalf("expected %q in prompt:\n%s", want, completer.req.Prompt)
		}
	}

	if strings.Join(terms.terms, ",") != "skill:Rust Tooling,interest:Open Source" {
		t.Fatalf("unexpected recorded terms: %v", terms.terms)
	}
	if strings.Join(obs.retrievals, ",") != "career" || strings.Join(obs.completions, ",") != "career:ok" {
		t.Fatalf("unexpected observations: %+v", obs)
	}
}

func TestGenerateCareerAdviceUsesUserDefinedTerms(t *testing.T) {
	completer := &scriptedCompleter{reply: `{"suggestedRoles":[]}`}
	career := rag.NewRetriever(rag.CareerAdviceCorpus(), 3, staticNames{"Python Automation"})
	svc := New(completer, career, nil)
	if _, err := svc.GenerateCareerAdvice(context.Background(), sampleInput(), nil); err != nil {
		t.Fatalf("GenerateCareerAdvice error: %v", err)
	}
	if !strings.Contains(completer.req.Prompt, "Previously user-defined relevant items: Python Automation.") {
		t.Fatalf("expected dynamic terms in prompt:\n%s", completer.req.Prompt)
	}
}

type staticNames []string

func (s staticNames) TermNames(context.Context) ([]string, error) { return s, nil }

func TestGenerateTimetable(t *testing.T) {
	reply := `{"title":"Personalized 12-Week Plan","phases":[{"phaseTitle":"Phase 1","phaseDuration":"12 Weeks","weeks":[{"weekRange":"Week 1-12","focusArea":"SQL","tasks":[{"taskDescription":"Practice"}]}]}],"generalTips":["Rest"]}`
	completer := &scriptedCompleter{reply: reply}
	obs := &observations{}
	svc := New(completer, nil, nil, WithRecorder(obs), WithStrictSchema(true))

	got, err := svc.GenerateTimetable(context.Background(), TimetableRequest{
		JobTitle:  "Python Developer",
		Roadmap:   "1. Python",
		Timeframe: "3 months",
	}, nil)
	if err != nil {
		t.Fatalf("GenerateTimetable error: %v", err)
	}
	if got.Title != "Personalized 12-Week Plan" || len(got.Phases) != 1 || got.Phases[0].Weeks[0].Tasks[0].TaskDescription != "Practice" {
		t.Fatalf("unexpected timetable: %+v", got)
	}
	if completer.req.Kind != providers.KindTimetable {
		t.Fatalf("unexpected kind %q", completer.req.Kind)
	}
	if !strings.Contains(completer.req.Prompt, "Study Tip: Utilize interactive platforms") {
		t.Fatalf("expected timetable context in prompt:\n%s", completer.req.Prompt)
	}
	if strings.Join(obs.completions, ",") != "timetable:ok" {
		t.Fatalf("unexpected observations: %+v", obs)
	}
}

func TestGenerateErrors(t *testing.T) {
	t.Run("parse failure", func(t *testing.T) {
		obs := &observations{}
		svc := New(&scriptedCompleter{reply: "Sure! Here is your plan"}, nil, nil, WithRecorder(obs))
		_, err := svc.GenerateTimetable(context.Background(), TimetableRequest{JobTitle: "x", Timeframe: "1 month"}, nil)
		var parseErr *providers.FinalParseError
		if !errors.As(err, &parseErr) {
			t.Fatalf("expected FinalParseError, got %v", err)
		}
		if strings.Join(obs.completions, ",") != "timetable:error" {
			t.Fatalf("unexpected observations: %+v", obs)
		}
	})

	t.Run("strict schema", func(t *testing.T) {
		svc := New(&scriptedCompleter{reply: `{"suggestedRoles":[{"title":"Only a title"}]}`}, nil, nil, WithStrictSchema(true))
		_, err := svc.GenerateCareerAdvice(context.Background(), UserInput{}, nil)
		var vErr *schema.ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
	})

	t.Run("completer error", func(t *testing.T) {
		svc := New(&scriptedCompleter{err: providers.ErrConfiguration}, nil, nil)
		if _, err := svc.GenerateCareerAdvice(context.Background(), UserInput{}, nil); !errors.Is(err, providers.ErrConfiguration) {
			t.Fatalf("expected ErrConfiguration, got %v", err)
		}
	})

	t.Run("nil completer", func(t *testing.T) {
		svc := New(nil, nil, nil)
		if _, err := svc.GenerateTimetable(context.Background(), TimetableRequest{JobTitle: "x", Timeframe: "1 month"}, nil); !errors.Is(err, providers.ErrConfiguration) {
			t.Fatalf("expected ErrConfiguration, got %v", err)
		}
	})

	t.Run("invalid timetable request", func(t *testing.T) {
		completer := &scriptedCompleter{reply: "{}"}
		obs := &observations{}
		svc := New(completer, nil, nil, WithRecorder(obs))
		_, err := svc.GenerateTimetable(context.Background(), TimetableRequest{Roadmap: "1. Python"}, nil)
		if !errors.Is(err, ErrInvalidRequest) {
			t.Fatalf("expected ErrInvalidRequest, got %v", err)
		}
		if completer.req.Prompt != "" {
			t.Fatalf("expected no completion call, got prompt %q", completer.req.Prompt)
		}
		if len(obs.completions) != 0 || len(obs.retrievals) != 0 {
			t.Fatalf("expected no observations, got %+v", obs)
		}
	})
}
