package connectrpc

import (
	"context"

	"connectrpc.com/connect"
	"github.com/samber/lo"

	lexiroadv1 "github.com/eslsoft/lexiroad/api/lexiroad/v1"
	"github.com/eslsoft/lexiroad/api/lexiroad/v1/lexiroadv1connect"
	"github.com/eslsoft/lexiroad/internal/adapter/mapping"
	"github.com/eslsoft/lexiroad/internal/entity"
	"github.com/eslsoft/lexiroad/internal/store"
	"github.com/eslsoft/lexiroad/internal/usecase"
)

var _ lexiroadv1connect.CatalogServiceHandler = (*CatalogServiceServer)(nil)

type CatalogServiceServer struct {
	store   *store.Store
	catalog usecase.CatalogUsecase
}

func NewCatalogServiceServer(s *store.Store, catalog usecase.CatalogUsecase) *CatalogServiceServer {
	return &CatalogServiceServer{store: s, catalog: catalog}
}

func (s *CatalogServiceServer) Explore(ctx context.Context, req *connect.Request[lexiroadv1.ExploreRequest]) (*connect.Response[lexiroadv1.ExploreResponse], error) {
	filters := s.store.Snapshot().UI.SearchFilters
	if req.Msg.Filters != nil {
		filters = mapping.FromAPISearchFilters(req.Msg.Filters)
	}

	result, err := s.catalog.Explore(ctx, filters)
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(&lexiroadv1.ExploreResponse{
		Dictionaries: mapping.ToAPIDictionaries(result.Dictionaries),
		Grammars:     mapping.ToAPIGrammars(result.Grammars),
		Roadmaps:     mapping.ToAPIRoadmaps(result.Roadmaps),
	}), nil
}

func (s *CatalogServiceServer) Languages(ctx context.Context, _ *connect.Request[lexiroadv1.Empty]) (*connect.Response[lexiroadv1.LanguagesResponse], error) {
	langs, err := s.catalog.Languages(ctx)
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(&lexiroadv1.LanguagesResponse{
		Languages: lo.Map(langs, func(l entity.Language, _ int) string { return l.Name() }),
	}), nil
}
