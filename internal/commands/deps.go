// internal/commands/deps.go
package commands

import (
	"fmt"

	"github.com/mwiater/careerpath/internal/advisor"
	"github.com/mwiater/careerpath/internal/appconfig"
	"github.com/mwiater/careerpath/internal/logging"
	"github.com/mwiater/careerpath/internal/metrics"
	"github.com/mwiater/careerpath/internal/providers"
	"github.com/mwiater/careerpath/internal/providers/ollama"
	"github.com/mwiater/careerpath/internal/rag"
	"github.com/mwiater/careerpath/internal/store"
)

// newCompleter builds the completion backend. Tests replace it.
var newCompleter = func(cfg *appconfig.Config, reg *metrics.Registry) providers.Completer {
	client := ollama.New(cfg, ollama.WithObserver(reg.Observer()))
	return metrics.NewProvider(client, reg)
}

// app bundles the store, metrics and advisor built from one configuration.
type app struct {
	cfg       *appconfig.Config
	store     store.Store
	metrics   *metrics.Registry
	career    *rag.Retriever
	timetable *rag.Retriever
	service   *advisor.Service
}

func loadedConfig() (*appconfig.Config, error) {
	cfg := GetConfig()
	if cfg == nil {
		return nil, fmt.Errorf("config is nil")
	}
	return cfg, nil
}

// openStore opens the configured database without building the advisor.
func openStore() (store.Store, error) {
	cfg, err := loadedConfig()
	if err != nil {
		return nil, err
	}
	st, err := store.Open(cfg.DatabaseFile())
	if err != nil {
		return nil, fmt.Errorf("open store %s: %w", cfg.DatabaseFile(), err)
	}
	return st, nil
}

// newApp wires corpora, retrievers, the completer and the advisor service.
func newApp() (*app, error) {
	cfg, err := loadedConfig()
	if err != nil {
		return nil, err
	}

	careerCorpus, err := rag.ResolveCorpus(cfg.CareerCorpusPath, rag.CareerAdviceCorpus())
	if err != nil {
		return nil, err
	}
	timetableCorpus, err := rag.ResolveCorpus(cfg.TimetableCorpusPath, rag.TimetableResourcesCorpus())
	if err != nil {
		return nil, err
	}

	st, err := openStore()
	if err != nil {
		return nil, err
	}

	reg := metrics.New()
	a := &app{
		cfg:       cfg,
		store:     st,
		metrics:   reg,
		career:    rag.NewRetriever(careerCorpus, cfg.CareerContexts(), st),
		timetable: rag.NewRetriever(timetableCorpus, cfg.TimetableContexts(), nil),
	}
	a.service = advisor.New(newCompleter(cfg, reg), a.career, a.timetable,
		advisor.WithTermRecorder(st),
		advisor.WithRecorder(reg),
		advisor.WithStrictSchema(cfg.StrictSchema),
	)
	logging.LogEvent("careerpath: model=%s endpoint=%q corpora=%d/%d", cfg.ModelName(), cfg.Endpoint, len(careerCorpus), len(timetableCorpus))
	return a, nil
}

func (a *app) Close() error {
	if a == nil || a.store == nil {
		return nil
	}
	return a.store.Close()
}
