package seed

import (
	"context"
	_ "embed"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/eslsoft/lexiroad/internal/entity"
)

//go:embed fixtures.yaml
var fixturesYAML []byte

// fixtureProgress lets a fixture express StartedAt relative to load time.
type fixtureProgress struct {
	entity.UserProgress `yaml:",inline"`
	StartedAgo          string `yaml:"started_ago"`
}

type fixtureDocument struct {
	Users             []entity.User                       `yaml:"users"`
	Dictionaries      []entity.Dictionary                 `yaml:"dictionaries"`
	DictionaryEntries map[string][]entity.DictionaryEntry `yaml:"dictionary_entries"`
	Grammars          []entity.Grammar                    `yaml:"grammars"`
	GrammarRules      map[string][]entity.GrammarRule     `yaml:"grammar_rules"`
	Roadmaps          []entity.Roadmap                    `yaml:"roadmaps"`
	Progress          []fixtureProgress                   `yaml:"progress"`
}

// FixtureProvider serves the embedded demo data set.
type FixtureProvider struct {
	clock func() time.Time
	data  []byte
}

// NewFixtureProvider returns a provider over the embedded fixtures stamped with clock.
func NewFixtureProvider(clock func() time.Time) *FixtureProvider {
	if clock == nil {
		clock = time.Now
	}
	return &FixtureProvider{clock: clock, data: fixturesYAML}
}

// NewFixtureProviderFromYAML builds a provider over caller supplied fixture YAML.
func NewFixtureProviderFromYAML(data []byte, clock func() time.Time) *FixtureProvider {
	p := NewFixtureProvider(clock)
	p.data = data
	return p
}

// Load decodes the fixtures, stamps missing timestamps and reconciles derived counters.
func (p *FixtureProvider) Load(ctx context.Context) (*Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var doc fixtureDocument
	if err := yaml.Unmarshal(p.data, &doc); err != nil {
		return nil, fmt.Errorf("decode fixtures: %w", err)
	}

	now := p.clock().UTC()
	snap := &Snapshot{
		Users:             doc.Users,
		Dictionaries:      doc.Dictionaries,
		DictionaryEntries: doc.DictionaryEntries,
		Grammars:          doc.Grammars,
		GrammarRules:      doc.GrammarRules,
		Roadmaps:          doc.Roadmaps,
	}
	for i := range snap.Dictionaries {
		stamp(&snap.Dictionaries[i].CreatedAt, &snap.Dictionaries[i].UpdatedAt, now)
	}
	for _, entries := range snap.DictionaryEntries {
		for i := range entries {
			entries[i].Normalize(now)
		}
	}
	for i := range snap.Grammars {
		stamp(&snap.Grammars[i].CreatedAt, &snap.Grammars[i].UpdatedAt, now)
	}
	for _, rules := range snap.GrammarRules {
		for i := range rules {
			rules[i].Normalize(now)
		}
	}
	for i := range snap.Roadmaps {
		stamp(&snap.Roadmaps[i].CreatedAt, &snap.Roadmaps[i].UpdatedAt, now)
	}

	for _, fp := range doc.Progress {
		progress := fp.UserProgress
		if fp.StartedAgo != "" {
			ago, err := time.ParseDuration(fp.StartedAgo)
			if err != nil {
				return nil, fmt.Errorf("fixture progress %s/%s: started_ago: %w", progress.UserID, progress.RoadmapID, err)
			}
			progress.StartedAt = now.Add(-ago)
		}
		stamp(&progress.StartedAt, &progress.LastAccessedAt, now)
		snap.Progress = append(snap.Progress, progress)
	}

	snap.Reconcile()
	return snap, nil
}

func stamp(createdAt, updatedAt *time.Time, now time.Time) {
	if createdAt.IsZero() {
		*createdAt = now
	}
	if updatedAt.IsZero() {
		*updatedAt = now
	}
}
