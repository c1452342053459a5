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
)

var _ lexiroadv1connect.SessionServiceHandler = (*SessionServiceServer)(nil)

type SessionServiceServer struct {
	store *store.Store
}

func NewSessionServiceServer(s *store.Store) *SessionServiceServer {
	return &SessionServiceServer{store: s}
}

func (s *SessionServiceServer) GetSession(ctx context.Context, _ *connect.Request[lexiroadv1.Empty]) (*connect.Response[lexiroadv1.SessionResponse], error) {
	return connect.NewResponse(s.session()), nil
}

func (s *SessionServiceServer) SetCurrentUser(ctx context.Context, req *connect.Request[lexiroadv1.SetCurrentUserRequest]) (*connect.Response[lexiroadv1.SessionResponse], error) {
	s.store.SetCurrentUser(mapping.FromAPIUser(req.Msg.User))
	return connect.NewResponse(s.session()), nil
}

func (s *SessionServiceServer) SignIn(ctx context.Context, req *connect.Request[lexiroadv1.SignInRequest]) (*connect.Response[lexiroadv1.User], error) {
	u, err := s.store.SignIn(req.Msg.Email)
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(mapping.ToAPIUser(&u)), nil
}

func (s *SessionServiceServer) Register(ctx context.Context, req *connect.Request[lexiroadv1.RegisterRequest]) (*connect.Response[lexiroadv1.User], error) {
	u, err := s.store.Register(req.Msg.Name, req.Msg.Email)
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(mapping.ToAPIUser(&u)), nil
}

func (s *SessionServiceServer) UpdateProfile(ctx context.Context, req *connect.Request[lexiroadv1.UpdateProfileRequest]) (*connect.Response[lexiroadv1.User], error) {
	u, err := s.store.UpdateProfile(req.Msg.Name, req.Msg.Email)
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(mapping.ToAPIUser(&u)), nil
}

func (s *SessionServiceServer) SignOut(ctx context.Context, _ *connect.Request[lexiroadv1.Empty]) (*connect.Response[lexiroadv1.Empty], error) {
	s.store.SignOut()
	return connect.NewResponse(empty()), nil
}

func (s *SessionServiceServer) SearchUsers(ctx context.Context, req *connect.Request[lexiroadv1.SearchUsersRequest]) (*connect.Response[lexiroadv1.ListUsersResponse], error) {
	users := s.store.SearchUsers(req.Msg.Query)
	return connect.NewResponse(&lexiroadv1.ListUsersResponse{
		Users: lo.Map(users, func(u entity.User, _ int) *lexiroadv1.User { return mapping.ToAPIUser(&u) }),
	}), nil
}

func (s *SessionServiceServer) session() *lexiroadv1.SessionResponse {
	u, ok := s.store.CurrentUser()
	if !ok {
		return &lexiroadv1.SessionResponse{}
	}
	return &lexiroadv1.SessionResponse{User: mapping.ToAPIUser(&u)}
}
