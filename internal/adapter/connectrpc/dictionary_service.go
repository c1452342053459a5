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

var _ lexiroadv1connect.DictionaryServiceHandler = (*DictionaryServiceServer)(nil)

type DictionaryServiceServer struct {
	store   *store.Store
	catalog usecase.CatalogUsecase
}

func NewDictionaryServiceServer(s *store.Store, catalog usecase.CatalogUsecase) *DictionaryServiceServer {
	return &DictionaryServiceServer{store: s, catalog: catalog}
}

func (s *DictionaryServiceServer) ListDictionaries(ctx context.Context, req *connect.Request[lexiroadv1.ListRequest]) (*connect.Response[lexiroadv1.ListDictionariesResponse], error) {
	msg := req.Msg
	query := &repository.ListDictionaryQuery{
		Pagination:  convertPagination(msg.GetPagination()),
		FilterOrder: convertFilterOrder(msg),
		OwnerID:     msg.OwnerID,
	}
	items, total, err := s.catalog.ListDictionaries(ctx, query)
	if err != nil {
		return nil, err
	}

	return connect.NewResponse(&lexiroadv1.ListDictionariesResponse{
		Dictionaries: mapping.ToAPIDictionaries(items),
		Pagination: lexiroadv1.PaginationResponse{
			Total:  total,
			PageNo: query.PageNo,
		},
	}), nil
}

func (s *DictionaryServiceServer) GetDictionary(ctx context.Context, req *connect.Request[lexiroadv1.IDRequest]) (*connect.Response[lexiroadv1.DictionaryDetail], error) {
	d, entries, err := s.catalog.GetDictionary(ctx, req.Msg.ID)
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(&lexiroadv1.DictionaryDetail{
		Dictionary: mapping.ToAPIDictionary(d),
		Entries:    mapping.ToAPIEntries(entries),
	}), nil
}

func (s *DictionaryServiceServer) CreateDictionary(ctx context.Context, req *connect.Request[lexiroadv1.CreateDictionaryRequest]) (*connect.Response[lexiroadv1.Dictionary], error) {
	d, err := s.store.CreateDictionary(mapping.FromAPIDictionary(req.Msg.Dictionary))
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(mapping.ToAPIDictionary(&d)), nil
}

func (s *DictionaryServiceServer) AddEntry(ctx context.Context, req *connect.Request[lexiroadv1.AddEntryRequest]) (*connect.Response[lexiroadv1.DictionaryEntry], error) {
	e, err := s.store.AddDictionaryEntry(req.Msg.DictionaryID, mapping.FromAPIEntry(req.Msg.Entry))
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(mapping.ToAPIEntry(&e)), nil
}

func (s *DictionaryServiceServer) SetDictionaries(ctx context.Context, req *connect.Request[lexiroadv1.SetDictionariesRequest]) (*connect.Response[lexiroadv1.Empty], error) {
	items := lo.Map(req.Msg.Dictionaries, func(d *lexiroadv1.Dictionary, _ int) entity.Dictionary {
		return mapping.FromAPIDictionary(d)
	})
	if err := s.store.SetDictionaries(items); err != nil {
		return nil, err
	}
	return connect.NewResponse(empty()), nil
}

func (s *DictionaryServiceServer) SetEntries(ctx context.Context, req *connect.Request[lexiroadv1.SetEntriesRequest]) (*connect.Response[lexiroadv1.Empty], error) {
	entries := lo.Map(req.Msg.Entries, func(e *lexiroadv1.DictionaryEntry, _ int) entity.DictionaryEntry {
		return mapping.FromAPIEntry(e)
	})
	if err := s.store.SetDictionaryEntries(req.Msg.DictionaryID, entries); err != nil {
		return nil, err
	}
	return connect.NewResponse(empty()), nil
}

func (s *DictionaryServiceServer) ToggleFavorite(ctx context.Context, req *connect.Request[lexiroadv1.IDRequest]) (*connect.Response[lexiroadv1.FavoriteResponse], error) {
	favorited, err := s.store.ToggleFavoriteDictionary(req.Msg.ID)
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(&lexiroadv1.FavoriteResponse{Favorited: favorited}), nil
}

func (s *DictionaryServiceServer) CopyDictionary(ctx context.Context, req *connect.Request[lexiroadv1.IDRequest]) (*connect.Response[lexiroadv1.Dictionary], error) {
	d, err := s.store.CopyDictionary(req.Msg.ID)
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(mapping.ToAPIDictionary(&d)), nil
}

func (s *DictionaryServiceServer) SelectDictionary(ctx context.Context, req *connect.Request[lexiroadv1.SelectRequest]) (*connect.Response[lexiroadv1.Empty], error) {
	if err := s.store.SetCurrentDictionary(req.Msg.ID); err != nil {
		return nil, err
	}
	return connect.NewResponse(empty()), nil
}
