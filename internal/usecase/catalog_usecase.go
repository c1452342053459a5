package usecase

import (
	"context"
	"slices"
	"strings"

	"github.com/samber/lo"

	"github.com/eslsoft/lexiroad/internal/entity"
	"github.com/eslsoft/lexiroad/internal/repository"
)

// ExploreResult groups the resources matching a search.
type ExploreResult struct {
	Dictionaries []entity.Dictionary
	Grammars     []entity.Grammar
	Roadmaps     []entity.Roadmap
}

// CatalogUsecase serves the browse and explore views over the committed resources.
type CatalogUsecase interface {
	ListDictionaries(ctx context.Context, query *repository.ListDictionaryQuery) ([]entity.Dictionary, int64, error)
	ListGrammars(ctx context.Context, query *repository.ListGrammarQuery) ([]entity.Grammar, int64, error)
	ListRoadmaps(ctx context.Context, query *repository.ListRoadmapQuery) ([]entity.Roadmap, int64, error)
	GetDictionary(ctx context.Context, id string) (*entity.Dictionary, []entity.DictionaryEntry, error)
	GetGrammar(ctx context.Context, id string) (*entity.Grammar, []entity.GrammarRule, error)
	GetRoadmap(ctx context.Context, id string) (*entity.Roadmap, error)
	Explore(ctx context.Context, filters entity.SearchFilters) (*ExploreResult, error)
	Languages(ctx context.Context) ([]entity.Language, error)
}

// NewCatalogUsecase wires the read repositories.
func NewCatalogUsecase(dictionaries repository.DictionaryRepository, grammars repository.GrammarRepository, roadmaps repository.RoadmapRepository) CatalogUsecase {
	return &catalogUsecase{
		dictionaries: dictionaries,
		grammars:     grammars,
		roadmaps:     roadmaps,
	}
}

type catalogUsecase struct {
	dictionaries repository.DictionaryRepository
	grammars     repository.GrammarRepository
	roadmaps     repository.RoadmapRepository
}

func (u *catalogUsecase) ListDictionaries(ctx context.Context, query *repository.ListDictionaryQuery) ([]entity.Dictionary, int64, error) {
	if query == nil {
		query = &repository.ListDictionaryQuery{}
	}
	return u.dictionaries.List(ctx, query)
}

func (u *catalogUsecase) ListGrammars(ctx context.Context, query *repository.ListGrammarQuery) ([]entity.Grammar, int64, error) {
	if query == nil {
		query = &repository.ListGrammarQuery{}
	}
	return u.grammars.List(ctx, query)
}

func (u *catalogUsecase) ListRoadmaps(ctx context.Context, query *repository.ListRoadmapQuery) ([]entity.Roadmap, int64, error) {
	if query == nil {
		query = &repository.ListRoadmapQuery{}
	}
	return u.roadmaps.List(ctx, query)
}

func (u *catalogUsecase) GetDictionary(ctx context.Context, id string) (*entity.Dictionary, []entity.DictionaryEntry, error) {
	d, err := u.dictionaries.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	entries, err := u.dictionaries.ListEntries(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return d, entries, nil
}

func (u *catalogUsecase) GetGrammar(ctx context.Context, id string) (*entity.Grammar, []entity.GrammarRule, error) {
	g, err := u.grammars.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	rules, err := u.grammars.ListRules(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return g, rules, nil
}

func (u *catalogUsecase) GetRoadmap(ctx context.Context, id string) (*entity.Roadmap, error) {
	return u.roadmaps.GetByID(ctx, id)
}

// Explore applies the search filters to every resource kind. The query matches names and descriptions
// case-insensitively; a dictionary matches a language when it translates from or into it.
func (u *catalogUsecase) Explore(ctx context.Context, filters entity.SearchFilters) (*ExploreResult, error) {
	dictionaries, _, err := u.dictionaries.List(ctx, &repository.ListDictionaryQuery{})
	if err != nil {
		return nil, err
	}
	grammars, _, err := u.grammars.List(ctx, &repository.ListGrammarQuery{})
	if err != nil {
		return nil, err
	}
	roadmaps, _, err := u.roadmaps.List(ctx, &repository.ListRoadmapQuery{})
	if err != nil {
		return nil, err
	}

	query := strings.ToLower(strings.TrimSpace(filters.Query))
	admits := func(name, description string, isPublic bool, langs ...entity.Language) bool {
		if filters.IsPublicOnly && !isPublic {
			return false
		}
		if query != "" && !strings.Contains(strings.ToLower(name), query) && !strings.Contains(strings.ToLower(description), query) {
			return false
		}
		if len(filters.Languages) == 0 {
			return true
		}
		return lo.ContainsBy(langs, func(l entity.Language) bool {
			return lo.ContainsBy(filters.Languages, l.Equal)
		})
	}

	return &ExploreResult{
		Dictionaries: lo.Filter(dictionaries, func(d entity.Dictionary, _ int) bool {
			return admits(d.Name, d.Description, d.IsPublic, d.SourceLanguage, d.TargetLanguage)
		}),
		Grammars: lo.Filter(grammars, func(g entity.Grammar, _ int) bool {
			return admits(g.Name, g.Description, g.IsPublic, g.Language)
		}),
		Roadmaps: lo.Filter(roadmaps, func(r entity.Roadmap, _ int) bool {
			return admits(r.Name, r.Description, r.IsPublic, r.Language)
		}),
	}, nil
}

// Languages returns the distinct languages used across all resources, sorted by name.
func (u *catalogUsecase) Languages(ctx context.Context) ([]entity.Language, error) {
	result, err := u.Explore(ctx, entity.SearchFilters{})
	if err != nil {
		return nil, err
	}

	var langs []entity.Language
	for _, d := range result.Dictionaries {
		langs = append(langs, d.SourceLanguage, d.TargetLanguage)
	}
	for _, g := range result.Grammars {
		langs = append(langs, g.Language)
	}
	for _, r := range result.Roadmaps {
		langs = append(langs, r.Language)
	}

	langs = lo.Filter(lo.Map(langs, func(l entity.Language, _ int) entity.Language { return entity.ParseLanguage(string(l)) }),
		func(l entity.Language, _ int) bool { return l != entity.LanguageUnspecified })
	langs = lo.Uniq(langs)
	slices.Sort(langs)
	return langs, nil
}
