package connectrpc

import (
	"context"

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

var _ lexiroadv1connect.GrammarServiceHandler = (*GrammarServiceServer)(nil)

type GrammarServiceServer struct {
	store   *store.Store
	catalog usecase.CatalogUsecase
}

func NewGrammarServiceServer(s *store.Store, catalog usecase.CatalogUsecase) *GrammarServiceServer {
	return &GrammarServiceServer{store: s, catalog: catalog}
}

func (s *GrammarServiceServer) ListGrammars(ctx context.Context, req *connect.Request[lexiroadv1.ListRequest]) (*connect.Response[lexiroadv1.ListGrammarsResponse], error) {
	msg := req.Msg
	query := &repository.ListGrammarQuery{
		Pagination:  convertPagination(msg.GetPagination()),
		FilterOrder: convertFilterOrder(msg),
		OwnerID:     msg.OwnerID,
	}
	items, total, err := s.catalog.ListGrammars(ctx, query)
	if err != nil {
		return nil, err
	}

	return connect.NewResponse(&lexiroadv1.ListGrammarsResponse{
		Grammars: mapping.ToAPIGrammars(items),
		Pagination: lexiroadv1.PaginationResponse{
			Total:  total,
			PageNo: query.PageNo,
		},
	}), nil
}

func (s *GrammarServiceServer) GetGrammar(ctx context.Context, req *connect.Request[lexiroadv1.IDRequest]) (*connect.Response[lexiroadv1.GrammarDetail], error) {
	g, rules, err := s.catalog.GetGrammar(ctx, req.Msg.ID)
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(&lexiroadv1.GrammarDetail{
		Grammar: mapping.ToAPIGrammar(g),
		Rules:   mapping.ToAPIRules(rules),
	}), nil
}

func (s *GrammarServiceServer) CreateGrammar(ctx context.Context, req *connect.Request[lexiroadv1.CreateGrammarRequest]) (*connect.Response[lexiroadv1.Grammar], error) {
	g, err := s.store.CreateGrammar(mapping.FromAPIGrammar(req.Msg.Grammar))
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(mapping.ToAPIGrammar(&g)), nil
}

func (s *GrammarServiceServer) AddRule(ctx context.Context, req *connect.Request[lexiroadv1.AddRuleRequest]) (*connect.Response[lexiroadv1.GrammarRule], error) {
	r, err := s.store.AddGrammarRule(req.Msg.GrammarID, mapping.FromAPIRule(req.Msg.Rule))
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(mapping.ToAPIRule(&r)), nil
}

func (s *GrammarServiceServer) SetGrammars(ctx context.Context, req *connect.Request[lexiroadv1.SetGrammarsRequest]) (*connect.Response[lexiroadv1.Empty], error) {
	items := lo.Map(req.Msg.Grammars, func(g *lexiroadv1.Grammar, _ int) entity.Grammar {
		return mapping.FromAPIGrammar(g)
	})
	if err := s.store.SetGrammars(items); err != nil {
		return nil, err
	}
	return connect.NewResponse(empty()), nil
}

func (s *GrammarServiceServer) SetRules(ctx context.Context, req *connect.Request[lexiroadv1.SetRulesRequest]) (*connect.Response[lexiroadv1.Empty], error) {
	rules := lo.Map(req.Msg.Rules, func(r *lexiroadv1.GrammarRule, _ int) entity.GrammarRule {
		return mapping.FromAPIRule(r)
	})
	if err := s.store.SetGrammarRules(req.Msg.GrammarID, rules); err != nil {
		return nil, err
	}
	return connect.NewResponse(empty()), nil
}

func (s *GrammarServiceServer) ToggleFavorite(ctx context.Context, req *connect.Request[lexiroadv1.IDRequest]) (*connect.Response[lexiroadv1.FavoriteResponse], error) {
	favorited, err := s.store.ToggleFavoriteGrammar(req.Msg.ID)
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(&lexiroadv1.FavoriteResponse{Favorited: favorited}), nil
}

func (s *GrammarServiceServer) CopyGrammar(ctx context.Context, req *connect.Request[lexiroadv1.IDRequest]) (*connect.Response[lexiroadv1.Grammar], error) {
	g, err := s.store.CopyGrammar(req.Msg.ID)
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(mapping.ToAPIGrammar(&g)), nil
}

func (s *GrammarServiceServer) SelectGrammar(ctx context.Context, req *connect.Request[lexiroadv1.SelectRequest]) (*connect.Response[lexiroadv1.Empty], error) {
	if err := s.store.SetCurrentGrammar(req.Msg.ID); err != nil {
		return nil, err
	}
	return connect.NewResponse(empty()), nil
}
