package advisor

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadProfile reads a UserInput from a YAML or JSON file. Items without an id
// get one derived from their name.
func LoadProfile(path string) (UserInput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return UserInput{}, fmt.Errorf("read profile: %w", err)
	}

	var in UserInput
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		err = json.Unmarshal(data, &in)
	case ".yaml", ".yml", "":
		err = yaml.Unmarshal(data, &in)
	default:
		return UserInput{}, fmt.Errorf("unsupported profile format %q", ext)
	}
	if err != nil {
		return UserInput{}, fmt.Errorf("parse profile %s: %w", path, err)
	}

	fillIDs(in.SelectedSkills, "skill")
	fillIDs(in.SelectedInterests, "interest")
	return in, nil
}

func fillIDs(items []Item, prefix string) {
	for i := range items {
		if items[i].ID != "" {
			continue
		}
		items[i].ID = prefix + "-" + slug(items[i].Name)
	}
}

func slug(name string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
			dash = false
		case !dash && b.Len() > 0:
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
