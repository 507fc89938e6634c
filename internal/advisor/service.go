// Package advisor generates career suggestions and learning timetables by
// combining keyword retrieval, prompt rendering and a streamed completion.
package advisor

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mwiater/careerpath/internal/logging"
	"github.com/mwiater/careerpath/internal/prompt"
	"github.com/mwiater/careerpath/internal/providers"
	"github.com/mwiater/careerpath/internal/rag"
	"github.com/mwiater/careerpath/internal/schema"
)

// Term kinds recorded in the user-defined registry.
const (
	TermSkill    = "skill"
	TermInterest = "interest"
)

// TermRecorder stores user-defined skills and interests.
type TermRecorder interface {
	Record(ctx context.Context, name, kind string) error
}

// Recorder receives retrieval and completion observations.
type Recorder interface {
	ObserveRetrieval(kind string, matches int)
	ObserveCompletion(kind string, elapsed time.Duration, err error)
}

// Service runs the career and timetable pipelines.
type Service struct {
	completer    providers.Completer
	career       *rag.Retriever
	timetable    *rag.Retriever
	terms        TermRecorder
	recorder     Recorder
	strictSchema bool
}

// Option customises a Service.
type Option func(*Service)

// WithTermRecorder records custom skills and interests before retrieval.
func WithTermRecorder(t TermRecorder) Option { return func(s *Service) { s.terms = t } }

// WithRecorder reports retrieval and completion observations.
func WithRecorder(r Recorder) Option { return func(s *Service) { s.recorder = r } }

// WithStrictSchema validates parsed responses against the JSON schemas.
func WithStrictSchema(v bool) Option { return func(s *Service) { s.strictSchema = v } }

// New builds a Service. Nil retrievers fall back to the built-in corpora.
func New(c providers.Completer, career, timetable *rag.Retriever, opts ...Option) *Service {
	if career == nil {
		career = rag.NewRetriever(rag.CareerAdviceCorpus(), 3, nil)
	}
	if timetable == nil {
		timetable = rag.NewRetriever(rag.TimetableResourcesCorpus(), 2, nil)
	}
	s := &Service{completer: c, career: career, timetable: timetable}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GenerateCareerAdvice suggests roles for the profile. progress may be nil.
func (s *Service) GenerateCareerAdvice(ctx context.Context, in UserInput, progress providers.ProgressFunc) (CareerAdvice, error) {
	s.recordCustomItems(ctx, in)

	res := s.career.Retrieve(ctx, rag.ProfileQuery{
		SkillNames:    in.SkillNames(),
		InterestNames: in.InterestNames(),
		FieldOfStudy:  in.FieldOfStudy,
		Qualification: in.HighestQualification,
	})
	s.observeRetrieval(providers.KindCareer, res)

	text, err := prompt.CareerAdvice(prompt.CareerInput{
		Qualification:  in.HighestQualification,
		FieldOfStudy:   in.FieldOfStudy,
		EducationNotes: in.EducationJourneyNotes,
		Experience:     in.Experience,
		Skills:         in.SkillNames(),
		Interests:      in.InterestNames(),
		Context:        res.Context,
	})
	if err != nil {
		return CareerAdvice{}, fmt.Errorf("render career prompt: %w", err)
	}

	return complete[CareerAdvice](ctx, s, providers.KindCareer, text, progress)
}

// GenerateTimetable builds a learning plan for the requested role. Invalid requests
// fail with ErrInvalidRequest before anything is sent. progress may be nil.
func (s *Service) GenerateTimetable(ctx context.Context, req TimetableRequest, progress providers.ProgressFunc) (Timetable, error) {
	if err := req.Validate(); err != nil {
		return Timetable{}, err
	}

	res := s.timetable.Retrieve(ctx, rag.JobQuery{Title: req.JobTitle, Timeframe: req.Timeframe})
	s.observeRetrieval(providers.KindTimetable, res)

	text, err := prompt.Timetable(prompt.TimetableInput{
		JobTitle:       req.JobTitle,
		JobDescription: req.JobDescription,
		Roadmap:        req.Roadmap,
		Timeframe:      req.Timeframe,
		Context:        res.Context,
	})
	if err != nil {
		return Timetable{}, fmt.Errorf("render timetable prompt: %w", err)
	}

	return complete[Timetable](ctx, s, providers.KindTimetable, text, progress)
}

func complete[T any](ctx context.Context, s *Service, kind, text string, progress providers.ProgressFunc) (T, error) {
	start := time.Now()
	parsed, err := s.generate(ctx, kind, text, progress)
	if err == nil {
		var out T
		if out, err = providers.DecodeFinal[T](string(parsed)); err == nil {
			s.observeCompletion(kind, time.Since(start), nil)
			return out, nil
		}
	}
	s.observeCompletion(kind, time.Since(start), err)
	logging.LogEvent("advisor: %s completion failed: %v", kind, err)
	var zero T
	return zero, err
}

// generate returns the fence-stripped JSON document, schema-checked when strict.
func (s *Service) generate(ctx context.Context, kind, text string, progress providers.ProgressFunc) (json.RawMessage, error) {
	if s.completer == nil {
		return nil, providers.ErrConfiguration
	}
	doc, err := providers.GenerateJSON[json.RawMessage](ctx, s.completer, providers.CompletionRequest{Prompt: text, Kind: kind}, progress)
	if err != nil {
		return nil, err
	}
	if s.strictSchema {
		if err := schema.Validate(kind, doc); err != nil {
			return nil, err
		}
	}
	return doc, nil
}

func (s *Service) recordCustomItems(ctx context.Context, in UserInput) {
	if s.terms == nil {
		return
	}
	record := func(items []Item, kind string) {
		for _, it := range items {
			if !it.Custom() || it.Name == "" {
				continue
			}
			if err := s.terms.Record(ctx, it.Name, kind); err != nil {
				logging.LogWarning("advisor: could not record %s %q: %v", kind, it.Name, err)
			}
		}
	}
	record(in.SelectedSkills, TermSkill)
	record(in.SelectedInterests, TermInterest)
}

func (s *Service) observeRetrieval(kind string, res rag.Result) {
	if s.recorder != nil {
		s.recorder.ObserveRetrieval(kind, len(res.Matches))
	}
}

func (s *Service) observeCompletion(kind string, elapsed time.Duration, err error) {
	if s.recorder != nil {
		s.recorder.ObserveCompletion(kind, elapsed, err)
	}
}
