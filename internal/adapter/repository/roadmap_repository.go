package repository

import (
	"context"
	"fmt"

	"github.com/eslsoft/lexiroad/internal/entity"
	"github.com/eslsoft/lexiroad/internal/repository"
)

type roadmapRepository struct {
	src   StateSource
	order map[string]string
}

// NewRoadmapRepository constructs a repository reading the store's committed roadmaps.
func NewRoadmapRepository(src StateSource) repository.RoadmapRepository {
	return &roadmapRepository{src: src, order: orderExprs(listRoadmapsSchema.Order.Fields)}
}

func (r *roadmapRepository) GetByID(ctx context.Context, id string) (*entity.Roadmap, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	st := r.src.Snapshot()
	rm, ok := st.Roadmap(id)
	if !ok {
		return nil, entity.ErrRoadmapNotFound
	}
	return &rm, nil
}

func (r *roadmapRepository) List(ctx context.Context, query *repository.ListRoadmapQuery) ([]entity.Roadmap, int64, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}
	var p listParams
	if err := roadmapBinder.Bind(query, &p); err != nil {
		return nil, 0, fmt.Errorf("list roadmaps: %w: %w", entity.ErrInvalidQuery, err)
	}
	p.normalize()
	if query.OwnerID != "" {
		p.OwnerID = &query.OwnerID
	}

	st := r.src.Snapshot()
	items, total := selectPage(st.Roadmaps, roadmapItem, &p, r.order, query.Pagination)
	return items, total, nil
}

func roadmapItem(rm entity.Roadmap) catalogItem {
	return catalogItem{
		ID:              rm.ID,
		Name:            rm.Name,
		Description:     rm.Description,
		OwnerID:         rm.OwnerID,
		Languages:       []entity.Language{rm.Language},
		Level:           rm.Level,
		IsPublic:        rm.IsPublic,
		FavoriteCount:   rm.FavoriteCount,
		CopyCount:       rm.CopyCount,
		EnrollmentCount: rm.EnrollmentCount,
		CreatedAt:       rm.CreatedAt,
		UpdatedAt:       rm.UpdatedAt,
	}
}
