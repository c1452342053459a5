package store

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/eslsoft/lexiroad/internal/entity"
)

func TestCreateDictionaryAndAddEntry(t *testing.T) {
	s := newTestStore(t)
	signIn(t, s, "sarah@example.com")

	d, err := s.CreateDictionary(entity.Dictionary{
		ID:             "ignored",
		Name:           "  Kitchen words ",
		SourceLanguage: "english",
		TargetLanguage: "Italian",
		EntryCount:     12,
		IsPublic:       true,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if d.ID == "ignored" || d.Name != "Kitchen words" || d.OwnerID != "user-2" || d.EntryCount != 0 {
		t.Fatalf("unexpected dictionary: %+v", d)
	}
	if d.SourceLanguage != entity.LanguageEnglish {
		t.Fatalf("expected language normalized, got %q", d.SourceLanguage)
	}

	e, err := s.AddDictionaryEntry(d.ID, entity.DictionaryEntry{
		Term:         "forchetta",
		PartOfSpeech: "Noun",
		Definitions:  []entity.Definition{{Text: "fork"}},
		Examples:     []entity.Example{{Text: "Passami la forchetta", Translation: "Pass me the fork"}},
	})
	if err != nil {
		t.Fatalf("add entry: %v", err)
	}
	if e.ID == "" || e.DictionaryID != d.ID || e.Definitions[0].ID == "" || e.Examples[0].ID == "" {
		t.Fatalf("expected ids assigned: %+v", e)
	}
	if e.PartOfSpeech != "noun" {
		t.Fatalf("expected part of speech normalized, got %q", e.PartOfSpeech)
	}

	stored, _ := s.Snapshot().Dictionary(d.ID)
	if stored.EntryCount != 1 {
		t.Fatalf("expected entry count to follow added entry, got %d", stored.EntryCount)
	}

	if _, err := s.AddDictionaryEntry(d.ID, entity.DictionaryEntry{Term: "  "}); !errors.Is(err, entity.ErrInvalidTerm) {
		t.Fatalf("expected ErrInvalidTerm, got %v", err)
	}
	if _, err := s.AddDictionaryEntry("nope", entity.DictionaryEntry{Term: "x"}); !errors.Is(err, entity.ErrDictionaryNotFound) {
		t.Fatalf("expected ErrDictionaryNotFound, got %v", err)
	}
	if _, err := s.CreateDictionary(entity.Dictionary{Name: " "}); !errors.Is(err, entity.ErrInvalidName) {
		t.Fatalf("expected ErrInvalidName, got %v", err)
	}
}

func TestCreateGrammarAndAddRule(t *testing.T) {
	s := newTestStore(t)

	g, err := s.CreateGrammar(entity.Grammar{Name: "German Cases", Language: "German"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if g.OwnerID != DefaultFallbackOwnerID {
		t.Fatalf("expected fallback owner, got %q", g.OwnerID)
	}
	r, err := s.AddGrammarRule(g.ID, entity.GrammarRule{
		Title:    "Accusative",
		Examples: []entity.Example{{Text: "Ich sehe den Hund"}},
	})
	if err != nil {
		t.Fatalf("add rule: %v", err)
	}
	if r.GrammarID != g.ID || r.Examples[0].ID == "" {
		t.Fatalf("unexpected rule: %+v", r)
	}
	stored, _ := s.Snapshot().Grammar(g.ID)
	if stored.RuleCount != 1 {
		t.Fatalf("expected rule count 1, got %d", stored.RuleCount)
	}
	if _, err := s.AddGrammarRule(g.ID, entity.GrammarRule{}); !errors.Is(err, entity.ErrInvalidRuleTitle) {
		t.Fatalf("expected ErrInvalidRuleTitle, got %v", err)
	}
	if _, err := s.AddGrammarRule("nope", entity.GrammarRule{Title: "x"}); !errors.Is(err, entity.ErrGrammarNotFound) {
		t.Fatalf("expected ErrGrammarNotFound, got %v", err)
	}
}

func TestCreateRoadmapRenumbersSteps(t *testing.T) {
	s := newTestStore(t)
	signIn(t, s, "alex@example.com")

	r, err := s.CreateRoadmap(entity.Roadmap{
		Name:              "Italian Basics",
		Language:          "italian",
		Level:             "Beginner",
		EstimatedDuration: "2 months",
		EnrollmentCount:   40,
		Steps: []entity.RoadmapStep{
			{Title: "Greetings", Order: 7, Type: entity.StepTypeDictionary, Objectives: []string{"ciao", " ", ""}},
			{Title: "Checkpoint", Order: 3, Type: entity.StepTypeMilestone, Objectives: []string{" grazie "}},
		},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if r.Level != entity.LevelBeginner || r.Language != entity.LanguageItalian || r.EnrollmentCount != 0 {
		t.Fatalf("unexpected roadmap: %+v", r)
	}
	orders := []int{r.Steps[0].Order, r.Steps[1].Order}
	if diff := cmp.Diff([]int{1, 2}, orders); diff != "" {
		t.Fatalf("orders mismatch (-want +got):\n%s", diff)
	}
	if r.Steps[0].Title != "Greetings" {
		t.Fatalf("expected submitted order kept, got %q first", r.Steps[0].Title)
	}
	if diff := cmp.Diff([]string{"ciao"}, r.Steps[0].Objectives); diff != "" {
		t.Fatalf("objectives mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"grazie"}, r.Steps[1].Objectives); diff != "" {
		t.Fatalf("objectives mismatch (-want +got):\n%s", diff)
	}
	if r.Steps[0].ID == r.Steps[1].ID {
		t.Fatalf("expected distinct step ids")
	}
}

func TestCreateRoadmapValidation(t *testing.T) {
	s := newTestStore(t)
	step := entity.RoadmapStep{Title: "x", Type: entity.StepTypePractice}

	tests := []struct {
		name string
		in   entity.Roadmap
		want error
	}{
		{name: "name", in: entity.Roadmap{Level: "beginner", Steps: []entity.RoadmapStep{step}}, want: entity.ErrInvalidName},
		{name: "level", in: entity.Roadmap{Name: "r", Level: "expert", Steps: []entity.RoadmapStep{step}}, want: entity.ErrInvalidLevel},
		{name: "no steps", in: entity.Roadmap{Name: "r", Level: "beginner"}, want: entity.ErrEmptyRoadmap},
		{name: "step title", in: entity.Roadmap{Name: "r", Level: "beginner", Steps: []entity.RoadmapStep{{Type: entity.StepTypeGrammar}}}, want: entity.ErrInvalidStepTitle},
		{name: "step type", in: entity.Roadmap{Name: "r", Level: "beginner", Steps: []entity.RoadmapStep{{Title: "x", Type: "video"}}}, want: entity.ErrInvalidStepType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := s.CreateRoadmap(tt.in); !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
	if len(s.Snapshot().Roadmaps) != 3 {
		t.Fatalf("expected no roadmap created")
	}
}
