// Package seed loads the snapshot a store starts from.
package seed

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/eslsoft/lexiroad/internal/entity"
	"github.com/eslsoft/lexiroad/internal/infrastructure/config"
)

// Snapshot is the initial state handed to the store.
type Snapshot = entity.Snapshot

const (
	SourceFixtures = "fixtures"
	SourceFile     = "file"
)

// Provider loads a snapshot once at startup.
type Provider interface {
	Load(ctx context.Context) (*Snapshot, error)
}

// NewProvider picks the provider configured by seed.source.
func NewProvider(cfg *config.Config) (Provider, error) {
	switch source := strings.ToLower(strings.TrimSpace(cfg.Seed.Source)); source {
	case "", SourceFixtures:
		return NewFixtureProvider(time.Now), nil
	case SourceFile:
		if strings.TrimSpace(cfg.Seed.Path) == "" {
			return nil, fmt.Errorf("seed: seed.path is required for source %q", source)
		}
		return NewFileProvider(cfg.Seed.Path), nil
	default:
		return nil, fmt.Errorf("seed: unknown source %q", cfg.Seed.Source)
	}
}

// LoadSnapshot is a wire-friendly helper that runs the provider with a background context.
func LoadSnapshot(p Provider) (*Snapshot, error) {
	return p.Load(context.Background())
}
