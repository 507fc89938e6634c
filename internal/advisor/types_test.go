package advisor

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestScoreDecoding(t *testing.T) {
	tests := map[string]Score{
		`{"relevanceScore":0.85}`:   0.85,
		`{"relevanceScore":"0.4"}`:  0.4,
		`{"relevanceScore":"high"}`: 0,
		`{"relevanceScore":null}`:   0,
		`{}`:                        0,
	}
	for in, want := range tests {
		var role JobRole
		if err := json.Unmarshal([]byte(in), &role); err != nil {
			t.Fatalf("unmarshal %s: %v", in, err)
		}
		if role.RelevanceScore != want {
			t.Fatalf("%s: got %v, want %v", in, role.RelevanceScore, want)
		}
	}
	var role JobRole
	if err := json.Unmarshal([]byte(`{"relevanceScore":[1]}`), &role); err == nil {
		t.Fatal("expected error for array score")
	}
}

func TestTimetableRequestValidate(t *testing.T) {
	if err := (TimetableRequest{JobTitle: "Nurse", Timeframe: "6 months"}).Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err := (TimetableRequest{}).Validate()
	if !errors.Is(err, ErrInvalidRequest) || !strings.Contains(err.Error(), "jobTitle, timeframe") {
		t.Fatalf("expected both fields reported, got %v", err)
	}
}

func TestUserInputHelpers(t *testing.T) {
	in := sampleInput()
	if strings.Join(in.SkillNames(), "|") != "Python|Rust Tooling" {
		t.Fatalf("unexpected skills %v", in.SkillNames())
	}
	if strings.Join(in.Categories(), "|") != "Technical Skills|User Defined" {
		t.Fatalf("unexpected categories %v", in.Categories())
	}
	if !in.SelectedSkills[1].Custom() || in.SelectedSkills[0].Custom() {
		t.Fatal("Custom() misclassified items")
	}
}

func TestNewSession(t *testing.T) {
	in := sampleInput()
	s := NewSession("", in, JobRole{Title: "Data Engineer"}, Timetable{Title: "Plan"})
	if s.ID == "" || s.Timestamp == 0 {
		t.Fatalf("expected id and timestamp, got %+v", s)
	}
	if s.UserName != "Ada" {
		t.Fatalf("expected user name from profile, got %q", s.UserName)
	}
	if other := NewSession("Bob", in, JobRole{}, Timetable{}); other.ID == s.ID {
		t.Fatal("expected unique session ids")
	}
}

func TestLoadProfile(t *testing.T) {
	dir := t.TempDir()
	yamlPath := filepath.Join(dir, "profile.yaml")
	body := `fullName: Grace
highestQualification: Master's Degree
fieldOfStudy: Mathematics
experience: Two years of teaching
selectedSkills:
  - name: Data Analysis
    category: Scientific & Academic Skills
  - name: COBOL Modernisation
    category: User Defined
selectedInterests:
  - id: int-7
    name: Education
    category: Community
`
	if err := os.WriteFile(yamlPath, []byte(body), 0o644); err != nil {
		t.Fatalf("write profile: %v", err)
	}
	in, err := LoadProfile(yamlPath)
	if err != nil {
		t.Fatalf("LoadProfile error: %v", err)
	}
	if in.FullName != "Grace" || len(in.SelectedSkills) != 2 {
		t.Fatalf("unexpected profile: %+v", in)
	}
	if in.SelectedSkills[0].ID != "skill-data-analysis" || in.SelectedSkills[1].ID != "skill-cobol-modernisation" {
		t.Fatalf("unexpected generated ids: %+v", in.SelectedSkills)
	}
	if in.SelectedInterests[0].ID != "int-7" {
		t.Fatalf("existing id overwritten: %+v", in.SelectedInterests)
	}

	jsonPath := filepath.Join(dir, "profile.json")
	if err := os.WriteFile(jsonPath, []byte(`{"fullName":"Lin","selectedSkills":[{"name":"Go"}]}`), 0o644); err != nil {
		t.Fatalf("write profile: %v", err)
	}
	in, err = LoadProfile(jsonPath)
	if err != nil || in.SelectedSkills[0].ID != "skill-go" {
		t.Fatalf("unexpected JSON profile %+v, err %v", in, err)
	}

	if _, err := LoadProfile(filepath.Join(dir, "profile.toml")); err == nil {
		t.Fatal("expected error for missing/unsupported profile")
	}
}
