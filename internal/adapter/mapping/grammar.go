package mapping

import (
	"strings"

	"github.com/samber/lo"

	lexiroadv1 "github.com/eslsoft/lexiroad/api/lexiroad/v1"
	"github.com/eslsoft/lexiroad/internal/entity"
)

func FromAPIGrammar(in *lexiroadv1.Grammar) entity.Grammar {
	return entity.Grammar{
		ID:            strings.TrimSpace(in.ID),
		Name:          strings.TrimSpace(in.Name),
		Description:   strings.TrimSpace(in.Description),
		Language:      entity.ParseLanguage(in.Language),
		OwnerID:       strings.TrimSpace(in.OwnerID),
		IsPublic:      in.IsPublic,
		RuleCount:     in.RuleCount,
		FavoriteCount: in.FavoriteCount,
		CopyCount:     in.CopyCount,
		CreatedAt:     in.CreatedAt,
		UpdatedAt:     in.UpdatedAt,
	}
}

func ToAPIGrammar(in *entity.Grammar) *lexiroadv1.Grammar {
	return &lexiroadv1.Grammar{
		ID:            in.ID,
		Name:          in.Name,
		Description:   in.Description,
		Language:      in.Language.Name(),
		OwnerID:       in.OwnerID,
		IsPublic:      in.IsPublic,
		RuleCount:     in.RuleCount,
		FavoriteCount: in.FavoriteCount,
		CopyCount:     in.CopyCount,
		CreatedAt:     in.CreatedAt,
		UpdatedAt:     in.UpdatedAt,
	}
}

func ToAPIGrammars(in []entity.Grammar) []*lexiroadv1.Grammar {
	return lo.Map(in, func(g entity.Grammar, _ int) *lexiroadv1.Grammar { return ToAPIGrammar(&g) })
}

func FromAPIRule(in *lexiroadv1.GrammarRule) entity.GrammarRule {
	return entity.GrammarRule{
		ID:          strings.TrimSpace(in.ID),
		GrammarID:   strings.TrimSpace(in.GrammarID),
		Title:       strings.TrimSpace(in.Title),
		Explanation: strings.TrimSpace(in.Explanation),
		Examples:    lo.Map(in.Examples, func(ex lexiroadv1.Example, _ int) entity.Example { return FromAPIExample(ex) }),
		Notes:       strings.TrimSpace(in.Notes),
		CreatedAt:   in.CreatedAt,
		UpdatedAt:   in.UpdatedAt,
	}
}

func ToAPIRule(in *entity.GrammarRule) *lexiroadv1.GrammarRule {
	return &lexiroadv1.GrammarRule{
		ID:          in.ID,
		GrammarID:   in.GrammarID,
		Title:       in.Title,
		Explanation: in.Explanation,
		Examples:    lo.Map(in.Examples, func(ex entity.Example, _ int) lexiroadv1.Example { return ToAPIExample(ex) }),
		Notes:       in.Notes,
		CreatedAt:   in.CreatedAt,
		UpdatedAt:   in.UpdatedAt,
	}
}

func ToAPIRules(in []entity.GrammarRule) []*lexiroadv1.GrammarRule {
	return lo.Map(in, func(r entity.GrammarRule, _ int) *lexiroadv1.GrammarRule { return ToAPIRule(&r) })
}
