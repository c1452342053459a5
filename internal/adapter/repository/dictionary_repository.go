package repository

import (
	"context"
	"fmt"

	"github.com/eslsoft/lexiroad/internal/entity"
	"github.com/eslsoft/lexiroad/internal/repository"
)

type dictionaryRepository struct {
	src   StateSource
	order map[string]string
}

// NewDictionaryRepository constructs a repository reading the store's committed dictionaries.
func NewDictionaryRepository(src StateSource) repository.DictionaryRepository {
	return &dictionaryRepository{src: src, order: orderExprs(listDictionariesSchema.Order.Fields)}
}

func (r *dictionaryRepository) GetByID(ctx context.Context, id string) (*entity.Dictionary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	st := r.src.Snapshot()
	d, ok := st.Dictionary(id)
	if !ok {
		return nil, entity.ErrDictionaryNotFound
	}
	return &d, nil
}

func (r *dictionaryRepository) List(ctx context.Context, query *repository.ListDictionaryQuery) ([]entity.Dictionary, int64, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}
	var p listParams
	if err := dictionaryBinder.Bind(query, &p); err != nil {
		return nil, 0, fmt.Errorf("list dictionaries: %w: %w", entity.ErrInvalidQuery, err)
	}
	p.normalize()
	if query.OwnerID != "" {
		p.OwnerID = &query.OwnerID
	}

	st := r.src.Snapshot()
	items, total := selectPage(st.Dictionaries, dictionaryItem, &p, r.order, query.Pagination)
	return items, total, nil
}

func (r *dictionaryRepository) ListEntries(ctx context.Context, dictionaryID string) ([]entity.DictionaryEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	st := r.src.Snapshot()
	if _, ok := st.Dictionary(dictionaryID); !ok {
		return nil, entity.ErrDictionaryNotFound
	}
	return st.Entries(dictionaryID), nil
}

func dictionaryItem(d entity.Dictionary) catalogItem {
	return catalogItem{
		ID:            d.ID,
		Name:          d.Name,
		Description:   d.Description,
		OwnerID:       d.OwnerID,
		Languages:     []entity.Language{d.SourceLanguage, d.TargetLanguage},
		IsPublic:      d.IsPublic,
		FavoriteCount: d.FavoriteCount,
		CopyCount:     d.CopyCount,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}
