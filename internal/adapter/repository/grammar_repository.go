package repository

import (
	"context"
	"fmt"

	"github.com/eslsoft/lexiroad/internal/entity"
	"github.com/eslsoft/lexiroad/internal/repository"
)

type grammarRepository struct {
	src   StateSource
	order map[string]string
}

// NewGrammarRepository constructs a repository reading the store's committed grammars.
func NewGrammarRepository(src StateSource) repository.GrammarRepository {
	return &grammarRepository{src: src, order: orderExprs(listGrammarsSchema.Order.Fields)}
}

func (r *grammarRepository) GetByID(ctx context.Context, id string) (*entity.Grammar, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	st := r.src.Snapshot()
	g, ok := st.Grammar(id)
	if !ok {
		return nil, entity.ErrGrammarNotFound
	}
	return &g, nil
}

func (r *grammarRepository) List(ctx context.Context, query *repository.ListGrammarQuery) ([]entity.Grammar, int64, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}
	var p listParams
	if err := grammarBinder.Bind(query, &p); err != nil {
		return nil, 0, fmt.Errorf("list grammars: %w: %w", entity.ErrInvalidQuery, err)
	}
	p.normalize()
	if query.OwnerID != "" {
		p.OwnerID = &query.OwnerID
	}

	st := r.src.Snapshot()
	items, total := selectPage(st.Grammars, grammarItem, &p, r.order, query.Pagination)
	return items, total, nil
}

func (r *grammarRepository) ListRules(ctx context.Context, grammarID string) ([]entity.GrammarRule, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	st := r.src.Snapshot()
	if _, ok := st.Grammar(grammarID); !ok {
		return nil, entity.ErrGrammarNotFound
	}
	return st.Rules(grammarID), nil
}

func grammarItem(g entity.Grammar) catalogItem {
	return catalogItem{
		ID:            g.ID,
		Name:          g.Name,
		Description:   g.Description,
		OwnerID:       g.OwnerID,
		Languages:     []entity.Language{g.Language},
		IsPublic:      g.IsPublic,
		FavoriteCount: g.FavoriteCount,
		CopyCount:     g.CopyCount,
		CreatedAt:     g.CreatedAt,
		UpdatedAt:     g.UpdatedAt,
	}
}
