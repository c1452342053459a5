package connectrpc

import (
	"context"
	"errors"

	"connectrpc.com/connect"
	"github.com/samber/lo"

	lexiroadv1 "github.com/eslsoft/lexiroad/api/lexiroad/v1"
	"github.com/eslsoft/lexiroad/api/lexiroad/v1/lexiroadv1connect"
	"github.com/eslsoft/lexiroad/internal/adapter/mapping"
	"github.com/eslsoft/lexiroad/internal/entity"
	"github.com/eslsoft/lexiroad/internal/repository"
	"github.com/eslsoft/lexiroad/internal/store"
	"github.com/eslsoft/lexiroad/internal/usecase"
)

var _ lexiroadv1connect.RoadmapServiceHandler = (*RoadmapServiceServer)(nil)

type RoadmapServiceServer struct {
	store   *store.Store
	catalog usecase.CatalogUsecase
}

func NewRoadmapServiceServer(s *store.Store, catalog usecase.CatalogUsecase) *RoadmapServiceServer {
	return &RoadmapServiceServer{store: s, catalog: catalog}
}

func (s *RoadmapServiceServer) ListRoadmaps(ctx context.Context, req *connect.Request[lexiroadv1.ListRequest]) (*connect.Response[lexiroadv1.ListRoadmapsResponse], error) {
	msg := req.Msg
	query := &repository.ListRoadmapQuery{
		Pagination:  convertPagination(msg.GetPagination()),
		FilterOrder: convertFilterOrder(msg),
		OwnerID:     msg.OwnerID,
	}
	items, total, err := s.catalog.ListRoadmaps(ctx, query)
	if err != nil {
		return nil, err
	}

	return connect.NewResponse(&lexiroadv1.ListRoadmapsResponse{
		Roadmaps: mapping.ToAPIRoadmaps(items),
		Pagination: lexiroadv1.PaginationResponse{
			Total:  total,
			PageNo: query.PageNo,
		},
	}), nil
}

func (s *RoadmapServiceServer) GetRoadmap(ctx context.Context, req *connect.Request[lexiroadv1.IDRequest]) (*connect.Response[lexiroadv1.Roadmap], error) {
	r, err := s.catalog.GetRoadmap(ctx, req.Msg.ID)
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(mapping.ToAPIRoadmap(r)), nil
}

func (s *RoadmapServiceServer) CreateRoadmap(ctx context.Context, req *connect.Request[lexiroadv1.CreateRoadmapRequest]) (*connect.Response[lexiroadv1.Roadmap], error) {
	r, err := s.store.CreateRoadmap(mapping.FromAPIRoadmap(req.Msg.Roadmap))
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(mapping.ToAPIRoadmap(&r)), nil
}

func (s *RoadmapServiceServer) SetRoadmaps(ctx context.Context, req *connect.Request[lexiroadv1.SetRoadmapsRequest]) (*connect.Response[lexiroadv1.Empty], error) {
	items := lo.Map(req.Msg.Roadmaps, func(r *lexiroadv1.Roadmap, _ int) entity.Roadmap {
		return mapping.FromAPIRoadmap(r)
	})
	if err := s.store.SetRoadmaps(items); err != nil {
		return nil, err
	}
	return connect.NewResponse(empty()), nil
}

func (s *RoadmapServiceServer) ToggleFavorite(ctx context.Context, req *connect.Request[lexiroadv1.IDRequest]) (*connect.Response[lexiroadv1.FavoriteResponse], error) {
	favorited, err := s.store.ToggleFavoriteRoadmap(req.Msg.ID)
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(&lexiroadv1.FavoriteResponse{Favorited: favorited}), nil
}

func (s *RoadmapServiceServer) CopyRoadmap(ctx context.Context, req *connect.Request[lexiroadv1.IDRequest]) (*connect.Response[lexiroadv1.Roadmap], error) {
	r, err := s.store.CopyRoadmap(req.Msg.ID)
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(mapping.ToAPIRoadmap(&r)), nil
}

func (s *RoadmapServiceServer) SelectRoadmap(ctx context.Context, req *connect.Request[lexiroadv1.SelectRequest]) (*connect.Response[lexiroadv1.Empty], error) {
	if err := s.store.SetCurrentRoadmap(req.Msg.ID); err != nil {
		return nil, err
	}
	return connect.NewResponse(empty()), nil
}

func (s *RoadmapServiceServer) Enroll(ctx context.Context, req *connect.Request[lexiroadv1.IDRequest]) (*connect.Response[lexiroadv1.Progress], error) {
	p, err := s.store.EnrollInRoadmap(req.Msg.ID)
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(mapping.ToAPIProgress(&p)), nil
}

func (s *RoadmapServiceServer) CompleteStep(ctx context.Context, req *connect.Request[lexiroadv1.CompleteStepRequest]) (*connect.Response[lexiroadv1.Progress], error) {
	p, err := s.store.CompleteStep(req.Msg.RoadmapID, req.Msg.StepID)
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(mapping.ToAPIProgress(&p)), nil
}

// GetProgress reports the signed in user's enrollment. Not being enrolled is an empty response, not an error.
func (s *RoadmapServiceServer) GetProgress(ctx context.Context, req *connect.Request[lexiroadv1.IDRequest]) (*connect.Response[lexiroadv1.ProgressResponse], error) {
	p, err := s.store.Progress(req.Msg.ID)
	if errors.Is(err, entity.ErrNotEnrolled) {
		return connect.NewResponse(&lexiroadv1.ProgressResponse{}), nil
	}
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(&lexiroadv1.ProgressResponse{Progress: mapping.ToAPIProgress(&p)}), nil
}
