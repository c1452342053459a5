package repository

import (
	"context"

	"github.com/eslsoft/lexiroad/internal/entity"
)

// ListDictionaryQuery holds parameters for listing dictionaries.
type ListDictionaryQuery struct {
	Pagination
	FilterOrder

	OwnerID string
}

// ListGrammarQuery holds parameters for listing grammars.
type ListGrammarQuery struct {
	Pagination
	FilterOrder

	OwnerID string
}

// ListRoadmapQuery holds parameters for listing roadmaps.
type ListRoadmapQuery struct {
	Pagination
	FilterOrder

	OwnerID string
}

// DictionaryRepository is the read side over committed dictionaries and their entries.
type DictionaryRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Dictionary, error)
	List(ctx context.Context, query *ListDictionaryQuery) ([]entity.Dictionary, int64, error)
	ListEntries(ctx context.Context, dictionaryID string) ([]entity.DictionaryEntry, error)
}

// GrammarRepository is the read side over committed grammars and their rules.
type GrammarRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Grammar, error)
	List(ctx context.Context, query *ListGrammarQuery) ([]entity.Grammar, int64, error)
	ListRules(ctx context.Context, grammarID string) ([]entity.GrammarRule, error)
}

// RoadmapRepository is the read side over committed roadmaps.
type RoadmapRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Roadmap, error)
	List(ctx context.Context, query *ListRoadmapQuery) ([]entity.Roadmap, int64, error)
}
