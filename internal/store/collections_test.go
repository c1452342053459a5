package store

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/eslsoft/lexiroad/internal/entity"
)

func TestSetDictionariesCascadesEntries(t *testing.T) {
	s := newTestStore(t)
	if err := s.SetCurrentDictionary("dict-2"); err != nil {
		t.Fatalf("select: %v", err)
	}
	st := s.Snapshot()
	keep, _ := st.Dictionary("dict-1")
	keep.EntryCount = 99

	if err := s.SetDictionaries([]entity.Dictionary{keep}); err != nil {
		t.Fatalf("set dictionaries: %v", err)
	}
	st = s.Snapshot()
	if len(st.Dictionaries) != 1 {
		t.Fatalf("expected 1 dictionary, got %d", len(st.Dictionaries))
	}
	if _, ok := st.DictionaryEntries["dict-2"]; ok {
		t.Fatalf("expected entries of removed dictionary to be dropped")
	}
	if st.Dictionaries[0].EntryCount != 2 {
		t.Fatalf("expected entry count derived from entries, got %d", st.Dictionaries[0].EntryCount)
	}
	if st.CurrentDictionaryID != "" {
		t.Fatalf("expected selection of removed dictionary to be cleared")
	}
}

func TestSetRoadmapsDropsOrphanProgress(t *testing.T) {
	s := newTestStore(t)
	st := s.Snapshot()
	r2, _ := st.Roadmap("roadmap-2")

	if err := s.SetRoadmaps([]entity.Roadmap{r2}); err != nil {
		t.Fatalf("set roadmaps: %v", err)
	}
	if n := len(s.Snapshot().Progress); n != 0 {
		t.Fatalf("expected progress on roadmap-1 dropped, got %d", n)
	}
}

func TestSetRoadmapsRecomputesProgress(t *testing.T) {
	s := newTestStore(t)
	r1, _ := s.Snapshot().Roadmap("roadmap-1")
	r1 = r1.Clone()
	r1.Steps = r1.Steps[:2]
	r1.Steps[0], r1.Steps[1] = r1.Steps[1], r1.Steps[0]

	if err := s.SetRoadmaps([]entity.Roadmap{r1}); err != nil {
		t.Fatalf("set roadmaps: %v", err)
	}
	st := s.Snapshot()
	got, _ := st.Roadmap("roadmap-1")
	if got.Steps[0].ID != "step-1" {
		t.Fatalf("expected steps sorted by order, got %s first", got.Steps[0].ID)
	}
	p, _ := st.ProgressFor("user-1", "roadmap-1")
	if p.CompletionPercentage != 50 || p.CurrentStep != 2 {
		t.Fatalf("expected 50%% at step 2, got %+v", p)
	}
}

func TestSetRoadmapsRejectsInvalidRoadmaps(t *testing.T) {
	valid := func() entity.Roadmap {
		return entity.Roadmap{ID: "r", Name: "Road", Level: entity.LevelBeginner, Steps: []entity.RoadmapStep{
			{ID: "s1", Title: "One", Order: 1, Type: entity.StepTypePractice},
			{ID: "s2", Title: "Two", Order: 2, Type: entity.StepTypeGrammar},
		}}
	}
	tests := []struct {
		name   string
		mutate func(r *entity.Roadmap)
		want   error
	}{
		{name: "duplicate order", mutate: func(r *entity.Roadmap) { r.Steps[1].Order = 1 }, want: entity.ErrInvalidStepOrder},
		{name: "order gap", mutate: func(r *entity.Roadmap) { r.Steps[1].Order = 7 }, want: entity.ErrInvalidStepOrder},
		{name: "unknown step type", mutate: func(r *entity.Roadmap) { r.Steps[1].Type = "bogus" }, want: entity.ErrInvalidStepType},
		{name: "duplicate step id", mutate: func(r *entity.Roadmap) { r.Steps[1].ID = "s1" }, want: entity.ErrDuplicateID},
		{name: "unknown level", mutate: func(r *entity.Roadmap) { r.Level = "nope" }, want: entity.ErrInvalidLevel},
		{name: "no steps", mutate: func(r *entity.Roadmap) { r.Steps = nil }, want: entity.ErrEmptyRoadmap},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestStore(t)
			before := s.Snapshot()
			r := valid()
			tt.mutate(&r)

			if err := s.SetRoadmaps([]entity.Roadmap{r}); !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
			after := s.Snapshot()
			if after.Version != before.Version || len(after.Roadmaps) != len(before.Roadmaps) {
				t.Fatalf("expected state untouched after rejected set")
			}
		})
	}
}

func TestSetRoadmapsDropsRemovedCompletedSteps(t *testing.T) {
	s := newTestStore(t)
	signIn(t, s, "alex@example.com")
	for _, id := range []string{"step-2", "step-3"} {
		if _, err := s.CompleteStep("roadmap-1", id); err != nil {
			t.Fatalf("complete %s: %v", id, err)
		}
	}

	r1, _ := s.Snapshot().Roadmap("roadmap-1")
	r1 = r1.Clone()
	r1.Steps = []entity.RoadmapStep{
		{ID: "n1", Title: "New one", Order: 1, Type: entity.StepTypePractice},
		{ID: "n2", Title: "New two", Order: 2, Type: entity.StepTypePractice},
	}
	if err := s.SetRoadmaps([]entity.Roadmap{r1}); err != nil {
		t.Fatalf("set roadmaps: %v", err)
	}

	p, ok := s.Snapshot().ProgressFor("user-1", "roadmap-1")
	if !ok {
		t.Fatalf("expected progress kept")
	}
	if len(p.CompletedSteps) != 0 || p.CompletionPercentage != 0 || p.CurrentStep != 2 {
		t.Fatalf("expected stale completions dropped, got %+v", p)
	}
}

func TestSetRoadmapsKeepsSurvivingCompletedSteps(t *testing.T) {
	s := newTestStore(t)
	r1, _ := s.Snapshot().Roadmap("roadmap-1")
	r1 = r1.Clone()
	r1.Steps = append(r1.Steps[:1:1], entity.RoadmapStep{ID: "n2", Title: "New", Order: 2, Type: entity.StepTypeMilestone})

	if err := s.SetRoadmaps([]entity.Roadmap{r1}); err != nil {
		t.Fatalf("set roadmaps: %v", err)
	}
	p, _ := s.Snapshot().ProgressFor("user-1", "roadmap-1")
	if diff := cmp.Diff([]string{"step-1"}, p.CompletedSteps); diff != "" {
		t.Fatalf("completed steps mismatch (-want +got):\n%s", diff)
	}
	if p.CompletionPercentage != 50 {
		t.Fatalf("expected 50%%, got %d", p.CompletionPercentage)
	}
}

func TestSetCollectionsRejectDuplicateIDs(t *testing.T) {
	s := newTestStore(t)
	dup := []entity.Grammar{{ID: "g"}, {ID: "g"}}
	if err := s.SetGrammars(dup); !errors.Is(err, entity.ErrDuplicateID) {
		t.Fatalf("expected ErrDuplicateID, got %v", err)
	}
	if err := s.SetDictionaries([]entity.Dictionary{{Name: "no id"}}); !errors.Is(err, entity.ErrInvalidID) {
		t.Fatalf("expected ErrInvalidID, got %v", err)
	}
	if len(s.Snapshot().Grammars) != 2 {
		t.Fatalf("expected grammars untouched")
	}
}

func TestSetDictionaryEntriesTouchesOneParent(t *testing.T) {
	s := newTestStore(t)
	before := s.Snapshot()

	entries := []entity.DictionaryEntry{
		{ID: "entry-9", DictionaryID: "elsewhere", Term: "gato"},
		{ID: "entry-10", Term: "perro"},
		{ID: "entry-11", Term: "pájaro"},
	}
	if err := s.SetDictionaryEntries("dict-1", entries); err != nil {
		t.Fatalf("set entries: %v", err)
	}
	st := s.Snapshot()
	got := st.Entries("dict-1")
	if len(got) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(got))
	}
	for _, e := range got {
		if e.DictionaryID != "dict-1" {
			t.Fatalf("expected parent id forced, got %q", e.DictionaryID)
		}
		if !e.CreatedAt.Equal(fixedNow) {
			t.Fatalf("expected missing timestamps stamped")
		}
	}
	d, _ := st.Dictionary("dict-1")
	if d.EntryCount != 3 {
		t.Fatalf("expected entry count 3, got %d", d.EntryCount)
	}
	if len(st.Entries("dict-2")) != 1 || &st.Entries("dict-2")[0] != &before.Entries("dict-2")[0] {
		t.Fatalf("expected dict-2 entries untouched")
	}
	if entries[0].DictionaryID != "elsewhere" {
		t.Fatalf("caller slice was modified")
	}
}

func TestSetGrammarRules(t *testing.T) {
	s := newTestStore(t)
	if err := s.SetGrammarRules("grammar-2", nil); err != nil {
		t.Fatalf("set rules: %v", err)
	}
	g, _ := s.Snapshot().Grammar("grammar-2")
	if g.RuleCount != 0 {
		t.Fatalf("expected rule count 0, got %d", g.RuleCount)
	}
	if err := s.SetGrammarRules("nope", nil); !errors.Is(err, entity.ErrGrammarNotFound) {
		t.Fatalf("expected ErrGrammarNotFound, got %v", err)
	}
	if err := s.SetDictionaryEntries("nope", nil); !errors.Is(err, entity.ErrDictionaryNotFound) {
		t.Fatalf("expected ErrDictionaryNotFound, got %v", err)
	}
}
