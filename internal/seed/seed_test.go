package seed

import (
	"bytes"
	"compress/gzip"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/eslsoft/lexiroad/internal/entity"
	"github.com/eslsoft/lexiroad/internal/infrastructure/config"
	"github.com/eslsoft/lexiroad/internal/usecase/backup"
)

var fixedNow = time.Date(2024, 5, 10, 8, 30, 0, 0, time.UTC)

func loadFixtures(t *testing.T) *Snapshot {
	t.Helper()
	snap, err := NewFixtureProvider(func() time.Time { return fixedNow }).Load(context.Background())
	if err != nil {
		t.Fatalf("load fixtures: %v", err)
	}
	return snap
}

func TestFixtureProviderLoadsDemoData(t *testing.T) {
	snap := loadFixtures(t)

	if len(snap.Users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(snap.Users))
	}
	if len(snap.Dictionaries) != 2 || snap.CountEntries() != 3 {
		t.Fatalf("expected 2 dictionaries / 3 entries, got %d / %d", len(snap.Dictionaries), snap.CountEntries())
	}
	if len(snap.Grammars) != 2 || snap.CountRules() != 3 {
		t.Fatalf("expected 2 grammars / 3 rules, got %d / %d", len(snap.Grammars), snap.CountRules())
	}

	steps := make([]int, 0, len(snap.Roadmaps))
	for _, r := range snap.Roadmaps {
		steps = append(steps, len(r.Steps))
	}
	if diff := cmp.Diff([]int{5, 3, 2}, steps); diff != "" {
		t.Fatalf("roadmap step counts mismatch (-want +got):\n%s", diff)
	}

	if snap.Dictionaries[0].EntryCount != 2 || snap.Dictionaries[1].EntryCount != 1 {
		t.Fatalf("entry counts not derived: %d, %d", snap.Dictionaries[0].EntryCount, snap.Dictionaries[1].EntryCount)
	}
	if snap.Grammars[0].RuleCount != 2 || snap.Grammars[1].RuleCount != 1 {
		t.Fatalf("rule counts not derived: %d, %d", snap.Grammars[0].RuleCount, snap.Grammars[1].RuleCount)
	}
	if snap.Roadmaps[0].EnrollmentCount != 245 || snap.Roadmaps[0].FavoriteCount != 89 {
		t.Fatalf("roadmap counters not loaded: %+v", snap.Roadmaps[0])
	}
	if got := snap.Roadmaps[0].Steps[2].ResourceID; got != "grammar-1" {
		t.Fatalf("expected step-3 resource grammar-1, got %q", got)
	}

	entry := snap.DictionaryEntries["dict-1"][0]
	if entry.DictionaryID != "dict-1" || entry.Pronunciation != "həˈloʊ" {
		t.Fatalf("unexpected entry: %+v", entry)
	}
	if !entry.CreatedAt.Equal(fixedNow) {
		t.Fatalf("expected entry stamped at %v, got %v", fixedNow, entry.CreatedAt)
	}
	if snap.Users[0].Favorites.Roadmaps == nil {
		t.Fatalf("expected favorites to be normalized")
	}
}

func TestFixtureProviderProgressStartedAgo(t *testing.T) {
	snap := loadFixtures(t)

	if len(snap.Progress) != 1 {
		t.Fatalf("expected 1 progress record, got %d", len(snap.Progress))
	}
	p := snap.Progress[0]
	if want := fixedNow.Add(-7 * 24 * time.Hour); !p.StartedAt.Equal(want) {
		t.Fatalf("expected started_at %v, got %v", want, p.StartedAt)
	}
	if !p.LastAccessedAt.Equal(fixedNow) {
		t.Fatalf("expected last_accessed_at %v, got %v", fixedNow, p.LastAccessedAt)
	}
	if p.CurrentStep != 2 || p.CompletionPercentage != 20 {
		t.Fatalf("expected step 2 at 20%%, got step %d at %d%%", p.CurrentStep, p.CompletionPercentage)
	}
}

func TestFixtureProviderRejectsBadDuration(t *testing.T) {
	doc := []byte("progress:\n  - roadmap_id: r\n    user_id: u\n    started_ago: soon\n")
	if _, err := NewFixtureProviderFromYAML(doc, nil).Load(context.Background()); err == nil {
		t.Fatalf("expected started_ago parse error")
	}
}

func TestFileProviderReadsExport(t *testing.T) {
	src := loadFixtures(t)
	svc := backup.NewService()

	var plain bytes.Buffer
	if err := svc.Export(context.Background(), &plain, src); err != nil {
		t.Fatalf("export: %v", err)
	}
	var zipped bytes.Buffer
	gz := gzip.NewWriter(&zipped)
	if _, err := gz.Write(plain.Bytes()); err != nil {
		t.Fatalf("gzip write: %v", err)
	}
	if err := gz.Close(); err != nil {
		t.Fatalf("gzip close: %v", err)
	}

	dir := t.TempDir()
	for name, data := range map[string][]byte{"plain.jsonl": plain.Bytes(), "zipped.jsonl.gz": zipped.Bytes()} {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, data, 0o600); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
		got, err := NewFileProvider(path).Load(context.Background())
		if err != nil {
			t.Fatalf("load %s: %v", name, err)
		}
		if diff := cmp.Diff(src, got); diff != "" {
			t.Fatalf("%s mismatch (-want +got):\n%s", name, diff)
		}
	}
}

func TestNewProviderBySource(t *testing.T) {
	tests := []struct {
		name    string
		seed    config.SeedConfig
		wantErr bool
		want    any
	}{
		{name: "default", seed: config.SeedConfig{}, want: &FixtureProvider{}},
		{name: "fixtures", seed: config.SeedConfig{Source: "Fixtures"}, want: &FixtureProvider{}},
		{name: "file", seed: config.SeedConfig{Source: "file", Path: "snap.jsonl"}, want: &FileProvider{}},
		{name: "file without path", seed: config.SeedConfig{Source: "file"}, wantErr: true},
		{name: "unknown", seed: config.SeedConfig{Source: "postgres"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewProvider(&config.Config{Seed: tt.seed})
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			switch tt.want.(type) {
			case *FixtureProvider:
				if _, ok := p.(*FixtureProvider); !ok {
					t.Fatalf("expected fixture provider, got %T", p)
				}
			case *FileProvider:
				if _, ok := p.(*FileProvider); !ok {
					t.Fatalf("expected file provider, got %T", p)
				}
			}
		})
	}
}

func TestSnapshotReconcileClampsProgress(t *testing.T) {
	snap := &Snapshot{
		Roadmaps: []entity.Roadmap{{ID: "r", Steps: []entity.RoadmapStep{{ID: "s2", Order: 2}, {ID: "s1", Order: 1}}}},
		Progress: []entity.UserProgress{{RoadmapID: "r", UserID: "u", CurrentStep: 9, CompletedSteps: []string{"s1"}}},
	}
	snap.Reconcile()
	if snap.Roadmaps[0].Steps[0].ID != "s1" {
		t.Fatalf("expected steps sorted by order")
	}
	if snap.Progress[0].CurrentStep != 2 || snap.Progress[0].CompletionPercentage != 50 {
		t.Fatalf("expected clamped progress, got %+v", snap.Progress[0])
	}
}

func TestSnapshotReconcileDropsUnknownCompletedSteps(t *testing.T) {
	snap := &Snapshot{
		Roadmaps: []entity.Roadmap{{ID: "r", Steps: []entity.RoadmapStep{{ID: "n1", Order: 1}, {ID: "n2", Order: 2}}}},
		Progress: []entity.UserProgress{
			{RoadmapID: "r", UserID: "u", CurrentStep: 2, CompletedSteps: []string{"step-1", "n2", "step-3"}},
			{RoadmapID: "gone", UserID: "u", CurrentStep: 3, CompletedSteps: []string{"step-1"}},
		},
	}
	snap.Reconcile()

	if diff := cmp.Diff([]string{"n2"}, snap.Progress[0].CompletedSteps); diff != "" {
		t.Fatalf("completed steps mismatch (-want +got):\n%s", diff)
	}
	if snap.Progress[0].CompletionPercentage != 50 {
		t.Fatalf("expected 50%%, got %d", snap.Progress[0].CompletionPercentage)
	}
	if got := snap.Progress[1]; got.CompletionPercentage != 0 || len(got.CompletedSteps) != 1 {
		t.Fatalf("expected progress of unknown roadmap left alone, got %+v", got)
	}
}

func TestFileProviderLoadWithMeta(t *testing.T) {
	src := loadFixtures(t)
	svc := backup.NewService(backup.WithClock(func() time.Time { return fixedNow }))

	var buf bytes.Buffer
	if err := svc.Export(context.Background(), &buf, src); err != nil {
		t.Fatalf("export: %v", err)
	}
	path := filepath.Join(t.TempDir(), "snap.jsonl")
	if err := os.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	snap, meta, err := NewFileProvider(path).LoadWithMeta(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !meta.ExportedAt.Equal(fixedNow) {
		t.Fatalf("expected exported_at %v, got %v", fixedNow, meta.ExportedAt)
	}
	if meta.SchemaHash != svc.SchemaHash() {
		t.Fatalf("schema hash mismatch: %q vs %q", meta.SchemaHash, svc.SchemaHash())
	}
	if diff := cmp.Diff(backup.Counts(src), backup.Counts(snap)); diff != "" {
		t.Fatalf("counts mismatch (-want +got):\n%s", diff)
	}

	if _, _, err := NewFileProvider(filepath.Join(t.TempDir(), "missing.jsonl")).LoadWithMeta(context.Background()); err == nil {
		t.Fatalf("expected missing file to fail")
	}
}
