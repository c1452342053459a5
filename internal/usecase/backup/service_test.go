package backup

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/eslsoft/lexiroad/internal/entity"
)

var fixedNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func TestServiceExportImportRoundTrip(t *testing.T) {
	ctx := context.Background()
	src := sampleSnapshot()

	svc := NewService(WithClock(func() time.Time { return fixedNow }))

	var buf bytes.Buffer
	if err := svc.Export(ctx, &buf, src); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	got, meta, err := svc.Import(ctx, bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("import failed: %v", err)
	}

	if meta.Version != formatVersion {
		t.Fatalf("expected version %d, got %d", formatVersion, meta.Version)
	}
	if !meta.ExportedAt.Equal(fixedNow) {
		t.Fatalf("expected exported_at %v, got %v", fixedNow, meta.ExportedAt)
	}
	if meta.SchemaHash != svc.SchemaHash() {
		t.Fatalf("schema hash mismatch: %s vs %s", meta.SchemaHash, svc.SchemaHash())
	}
	if meta.RowCounts[KindDictionaryEntries] != 2 {
		t.Fatalf("expected 2 entry rows, got %d", meta.RowCounts[KindDictionaryEntries])
	}

	want := sampleSnapshot()
	want.Reconcile()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("snapshot mismatch after import (-want +got):\n%s", diff)
	}
}

func TestServiceExportKindsFilter(t *testing.T) {
	ctx := context.Background()
	svc := NewService()

	var buf bytes.Buffer
	if err := svc.Export(ctx, &buf, sampleSnapshot(), WithKinds([]string{"dictionaries", "dictionary_entries"})); err != nil {
		t.Fatalf("filtered export failed: %v", err)
	}

	got, meta, err := svc.Import(ctx, bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("filtered import failed: %v", err)
	}
	if len(meta.Kinds) != 2 {
		t.Fatalf("expected 2 kinds in meta, got %v", meta.Kinds)
	}
	if len(got.Users) != 0 || len(got.Roadmaps) != 0 {
		t.Fatalf("expected only dictionaries, got users=%d roadmaps=%d", len(got.Users), len(got.Roadmaps))
	}
	if len(got.Dictionaries) != 1 || got.Dictionaries[0].EntryCount != 2 {
		t.Fatalf("expected one dictionary with 2 entries, got %#v", got.Dictionaries)
	}
}

func TestServiceImportKindsFilter(t *testing.T) {
	ctx := context.Background()
	svc := NewService()

	var buf bytes.Buffer
	if err := svc.Export(ctx, &buf, sampleSnapshot()); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	got, _, err := svc.Import(ctx, bytes.NewReader(buf.Bytes()), WithImportKinds([]string{"users"}))
	if err != nil {
		t.Fatalf("import failed: %v", err)
	}
	if len(got.Users) != 1 {
		t.Fatalf("expected 1 user, got %d", len(got.Users))
	}
	if len(got.Dictionaries) != 0 || got.CountEntries() != 0 {
		t.Fatalf("expected dictionaries to be skipped")
	}
}

func TestServiceExportReportsProgress(t *testing.T) {
	rep := &recordingReporter{counts: map[string]int{}}
	svc := NewService()

	var buf bytes.Buffer
	if err := svc.Export(context.Background(), &buf, sampleSnapshot(), WithProgressReporter(rep)); err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if len(rep.started) != len(allKinds) {
		t.Fatalf("expected %d kinds started, got %v", len(allKinds), rep.started)
	}
	if rep.counts[KindRoadmaps] != 1 {
		t.Fatalf("expected 1 roadmap increment, got %d", rep.counts[KindRoadmaps])
	}
	if rep.finished != len(allKinds) {
		t.Fatalf("expected %d kinds finished, got %d", len(allKinds), rep.finished)
	}
}

func TestServiceImportRejectsBadInput(t *testing.T) {
	svc := NewService()
	ctx := context.Background()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "missing meta", input: `{"type":"users","payload":{"id":"u"}}`, want: "missing meta"},
		{name: "empty", input: "", want: "missing meta"},
		{name: "bad version", input: `{"type":"meta","version":9}`, want: "unsupported format version"},
		{name: "unknown kind", input: "{\"type\":\"meta\",\"version\":1}\n{\"type\":\"words\",\"payload\":{}}", want: "unknown record type"},
		{name: "orphan entry", input: "{\"type\":\"meta\",\"version\":1}\n{\"type\":\"dictionary_entries\",\"payload\":{\"id\":\"e\"}}", want: "without dictionary_id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := svc.Import(ctx, strings.NewReader(tt.input))
			if err == nil {
				t.Fatalf("expected error containing %q", tt.want)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestSelectKindsRejectsUnknown(t *testing.T) {
	if _, err := selectKinds([]string{"words"}); err == nil {
		t.Fatalf("expected unknown kind error")
	}
	if _, err := selectKinds([]string{" "}); err != errNoKindsSelected {
		t.Fatalf("expected errNoKindsSelected, got %v", err)
	}
	got, err := selectKinds([]string{"progress", "USERS"})
	if err != nil {
		t.Fatalf("select kinds: %v", err)
	}
	if diff := cmp.Diff([]string{KindUsers, KindProgress}, got); diff != "" {
		t.Fatalf("kinds mismatch (-want +got):\n%s", diff)
	}
}

type recordingReporter struct {
	started  []string
	counts   map[string]int
	finished int
}

func (r *recordingReporter) StartTable(kind string, _ int)    { r.started = append(r.started, kind) }
func (r *recordingReporter) Increment(kind string, delta int) { r.counts[kind] += delta }
func (r *recordingReporter) FinishTable(string)               { r.finished++ }

func sampleSnapshot() *entity.Snapshot {
	return &entity.Snapshot{
		Users: []entity.User{{
			ID:        "user-1",
			Name:      "Alex Johnson",
			Email:     "alex@example.com",
			Favorites: entity.Favorites{Dictionaries: []string{"dict-1"}},
		}},
		Dictionaries: []entity.Dictionary{{
			ID:             "dict-1",
			Name:           "English to Spanish",
			SourceLanguage: entity.LanguageEnglish,
			TargetLanguage: entity.LanguageSpanish,
			OwnerID:        "user-1",
			IsPublic:       true,
			FavoriteCount:  1,
			CreatedAt:      fixedNow,
			UpdatedAt:      fixedNow,
		}},
		DictionaryEntries: map[string][]entity.DictionaryEntry{
			"dict-1": {
				{ID: "entry-1", DictionaryID: "dict-1", Term: "hello", PartOfSpeech: "interjection",
					Definitions: []entity.Definition{{ID: "def-1", Text: "hola"}},
					Examples:    []entity.Example{}, CreatedAt: fixedNow, UpdatedAt: fixedNow},
				{ID: "entry-2", DictionaryID: "dict-1", Term: "goodbye", PartOfSpeech: "interjection",
					Definitions: []entity.Definition{{ID: "def-2", Text: "adiós"}},
					Examples:    []entity.Example{}, CreatedAt: fixedNow, UpdatedAt: fixedNow},
			},
		},
		Grammars: []entity.Grammar{{
			ID: "grammar-1", Name: "Spanish Verb Conjugation", Language: entity.LanguageSpanish,
			OwnerID: "user-1", CreatedAt: fixedNow, UpdatedAt: fixedNow,
		}},
		GrammarRules: map[string][]entity.GrammarRule{
			"grammar-1": {{ID: "rule-1", GrammarID: "grammar-1", Title: "Present Tense -AR Verbs",
				Examples: []entity.Example{{ID: "ex-1", Text: "Yo hablo"}}, CreatedAt: fixedNow, UpdatedAt: fixedNow}},
		},
		Roadmaps: []entity.Roadmap{{
			ID: "roadmap-1", Name: "Spanish for Beginners", Language: entity.LanguageSpanish,
			Level: entity.LevelBeginner, OwnerID: "user-1", IsPublic: true, EnrollmentCount: 1,
			Steps: []entity.RoadmapStep{
				{ID: "step-1", Title: "Greetings", Order: 1, Type: entity.StepTypeDictionary, ResourceID: "dict-1", Objectives: []string{"Say hello"}},
				{ID: "step-2", Title: "Verbs", Order: 2, Type: entity.StepTypeGrammar, ResourceID: "grammar-1", Objectives: []string{}},
			},
			CreatedAt: fixedNow, UpdatedAt: fixedNow,
		}},
		Progress: []entity.UserProgress{{
			RoadmapID: "roadmap-1", UserID: "user-1", CurrentStep: 2,
			CompletedSteps: []string{"step-1"}, StartedAt: fixedNow, LastAccessedAt: fixedNow,
			CompletionPercentage: 50,
		}},
	}
}
