package rag

// KnowledgeEntry is a keyword-tagged expert tip.
type KnowledgeEntry struct {
	ID       string   `json:"id" yaml:"id"`
	Keywords []string `json:"keywords" yaml:"keywords"`
	Content  string   `json:"content" yaml:"content"`
}

// Corpus is an ordered, read-only set of entries. Order breaks score ties.
type Corpus []KnowledgeEntry

// Query is either a ProfileQuery or a JobQuery.
type Query interface {
	fields() []string
	profile() bool
}

// ProfileQuery is derived from the career questionnaire.
type ProfileQuery struct {
	SkillNames    []string
	InterestNames []string
	FieldOfStudy  string
	Qualification string
}

func (q ProfileQuery) fields() []string {
	out := make([]string, 0, len(q.SkillNames)+len(q.InterestNames)+2)
	out = append(out, q.SkillNames...)
	out = append(out, q.InterestNames...)
	return append(out, q.FieldOfStudy, q.Qualification)
}

func (ProfileQuery) profile() bool { return true }

// JobQuery is derived from a chosen role. Only Title contributes tokens.
type JobQuery struct {
	Title     string
	Timeframe string
}

func (q JobQuery) fields() []string { return []string{q.Title} }

func (JobQuery) profile() bool { return false }

// Match is a scored entry kept for diagnostics.
type Match struct {
	ID    string
	Score int
	// Index is the entry's position in the corpus.
	Index int
}

// Result is the output of a retrieval.
type Result struct {
	// Context is the text embedded into the prompt.
	Context      string
	Tokens       []string
	Matches      []Match
	DynamicTerms []string
	// Fallback is set when no entry scored and a default was used.
	Fallback bool
}
