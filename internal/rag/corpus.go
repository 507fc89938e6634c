package rag

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadCorpus reads a corpus from a YAML (.yaml, .yml) or JSON (.json) file
// holding a list of entries. Keywords are lowercased and trimmed.
func LoadCorpus(path string) (Corpus, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open corpus: %w", err)
	}

	var entries []KnowledgeEntry
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &entries); err != nil {
			return nil, fmt.Errorf("parse corpus %s: %w", path, err)
		}
	case ".json":
		if err := json.Unmarshal(data, &entries); err != nil {
			return nil, fmt.Errorf("parse corpus %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported corpus format %q (want .yaml, .yml or .json)", ext)
	}

	return normalizeCorpus(entries)
}

// ResolveCorpus loads path when set and falls back to builtin otherwise.
func ResolveCorpus(path string, builtin Corpus) (Corpus, error) {
	if strings.TrimSpace(path) == "" {
		return builtin, nil
	}
	return LoadCorpus(path)
}

func normalizeCorpus(entries []KnowledgeEntry) (Corpus, error) {
	seen := make(map[string]struct{}, len(entries))
	out := make(Corpus, 0, len(entries))
	for i, entry := range entries {
		entry.ID = strings.TrimSpace(entry.ID)
		if entry.ID == "" {
			return nil, fmt.Errorf("corpus entry %d: id is required", i+1)
		}
		if _, dup := seen[entry.ID]; dup {
			return nil, fmt.Errorf("corpus entry %d: duplicate id %q", i+1, entry.ID)
		}
		seen[entry.ID] = struct{}{}
		if strings.TrimSpace(entry.Content) == "" {
			return nil, fmt.Errorf("corpus entry %q: content is required", entry.ID)
		}
		keywords := make([]string, 0, len(entry.Keywords))
		for _, kw := range entry.Keywords {
			if kw = strings.ToLower(strings.TrimSpace(kw)); kw != "" {
				keywords = append(keywords, kw)
			}
		}
		entry.Keywords = keywords
		out = append(out, entry)
	}
	return out, nil
}
