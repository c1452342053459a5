package connectrpc

import (
	"context"
	"sync"

	"connectrpc.com/connect"

	lexiroadv1 "github.com/eslsoft/lexiroad/api/lexiroad/v1"
	"github.com/eslsoft/lexiroad/api/lexiroad/v1/lexiroadv1connect"
	"github.com/eslsoft/lexiroad/internal/adapter/mapping"
	"github.com/eslsoft/lexiroad/internal/entity"
	"github.com/eslsoft/lexiroad/internal/store"
)

var _ lexiroadv1connect.UIServiceHandler = (*UIServiceServer)(nil)

type UIServiceServer struct {
	store *store.Store
}

func NewUIServiceServer(s *store.Store) *UIServiceServer {
	return &UIServiceServer{store: s}
}

func (s *UIServiceServer) GetUIState(ctx context.Context, _ *connect.Request[lexiroadv1.Empty]) (*connect.Response[lexiroadv1.UIState], error) {
	return s.uiState(), nil
}

func (s *UIServiceServer) ToggleSidebar(ctx context.Context, _ *connect.Request[lexiroadv1.Empty]) (*connect.Response[lexiroadv1.UIState], error) {
	s.store.ToggleSidebar()
	return s.uiState(), nil
}

func (s *UIServiceServer) ToggleDarkMode(ctx context.Context, _ *connect.Request[lexiroadv1.Empty]) (*connect.Response[lexiroadv1.UIState], error) {
	s.store.ToggleDarkMode()
	return s.uiState(), nil
}

func (s *UIServiceServer) SetViewMode(ctx context.Context, req *connect.Request[lexiroadv1.SetViewModeRequest]) (*connect.Response[lexiroadv1.UIState], error) {
	if err := s.store.SetEntriesViewMode(entity.ViewMode(req.Msg.Mode)); err != nil {
		return nil, err
	}
	return s.uiState(), nil
}

func (s *UIServiceServer) SetSearchFilters(ctx context.Context, req *connect.Request[lexiroadv1.SetSearchFiltersRequest]) (*connect.Response[lexiroadv1.UIState], error) {
	s.store.SetSearchFilters(mapping.FromAPISearchFiltersPatch(req.Msg))
	return s.uiState(), nil
}

// WatchState streams one event for the state at subscription time and then one per commit. A slow
// client skips intermediate versions and always receives the newest one.
func (s *UIServiceServer) WatchState(ctx context.Context, _ *connect.Request[lexiroadv1.WatchStateRequest], stream *connect.ServerStream[lexiroadv1.StateEvent]) error {
	var (
		mu     sync.Mutex
		latest store.State
	)
	wake := make(chan struct{}, 1)
	unsubscribe := s.store.Subscribe(func(st store.State) {
		mu.Lock()
		if st.Version > latest.Version {
			latest = st
		}
		mu.Unlock()
		select {
		case wake <- struct{}{}:
		default:
		}
	})
	defer unsubscribe()

	current := s.store.Snapshot()
	mu.Lock()
	if current.Version > latest.Version {
		latest = current
	}
	mu.Unlock()

	var sent uint64
	if err := stream.Send(mapping.ToAPIStateEvent(current)); err != nil {
		return err
	}
	sent = current.Version

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-wake:
			mu.Lock()
			st := latest
			mu.Unlock()
			if st.Version <= sent {
				continue
			}
			if err := stream.Send(mapping.ToAPIStateEvent(st)); err != nil {
				return err
			}
			sent = st.Version
		}
	}
}

func (s *UIServiceServer) uiState() *connect.Response[lexiroadv1.UIState] {
	return connect.NewResponse(mapping.ToAPIUIState(s.store.Snapshot()))
}
