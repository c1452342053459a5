package connectrpc

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/google/go-cmp/cmp"

	lexiroadv1 "github.com/eslsoft/lexiroad/api/lexiroad/v1"
	"github.com/eslsoft/lexiroad/api/lexiroad/v1/lexiroadv1connect"
	"github.com/eslsoft/lexiroad/internal/adapter/repository"
	"github.com/eslsoft/lexiroad/internal/seed"
	"github.com/eslsoft/lexiroad/internal/store"
	"github.com/eslsoft/lexiroad/internal/usecase"
)

var fixedNow = time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

type testEnv struct {
	store *store.Store
	srv   *httptest.Server
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	clock := func() time.Time { return fixedNow }
	snap, err := seed.NewFixtureProvider(clock).Load(context.Background())
	if err != nil {
		t.Fatalf("load fixtures: %v", err)
	}
	s := store.New(snap, store.WithClock(clock))
	catalog := usecase.NewCatalogUsecase(
		repository.NewDictionaryRepository(s),
		repository.NewGrammarRepository(s),
		repository.NewRoadmapRepository(s),
	)
	services := &Services{
		Session:    NewSessionServiceServer(s),
		Dictionary: NewDictionaryServiceServer(s, catalog),
		Grammar:    NewGrammarServiceServer(s, catalog),
		Roadmap:    NewRoadmapServiceServer(s, catalog),
		UI:         NewUIServiceServer(s),
		Catalog:    NewCatalogServiceServer(s, catalog),
	}
	mux := http.NewServeMux()
	services.Mount(mux)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return &testEnv{store: s, srv: srv}
}

func call[Req, Res any](t *testing.T, env *testEnv, procedure string, msg *Req) (*Res, error) {
	t.Helper()
	client := connect.NewClient[Req, Res](env.srv.Client(), env.srv.URL+procedure, connect.WithCodec(JSONCodec{}))
	resp, err := client.CallUnary(context.Background(), connect.NewRequest(msg))
	if err != nil {
		return nil, err
	}
	return resp.Msg, nil
}

func TestEnrollmentOverHTTP(t *testing.T) {
	env := newTestEnv(t)

	_, err := call[lexiroadv1.IDRequest, lexiroadv1.Progress](t, env, lexiroadv1connect.RoadmapServiceEnrollProcedure, &lexiroadv1.IDRequest{ID: "roadmap-2"})
	if connect.CodeOf(err) != connect.CodeUnauthenticated {
		t.Fatalf("expected unauthenticated before sign in, got %v", err)
	}

	user, err := call[lexiroadv1.SignInRequest, lexiroadv1.User](t, env, lexiroadv1connect.SessionServiceSignInProcedure, &lexiroadv1.SignInRequest{Email: "alex@example.com"})
	if err != nil {
		t.Fatalf("sign in: %v", err)
	}
	if user.ID != "user-1" {
		t.Fatalf("expected user-1, got %s", user.ID)
	}

	progress, err := call[lexiroadv1.IDRequest, lexiroadv1.Progress](t, env, lexiroadv1connect.RoadmapServiceEnrollProcedure, &lexiroadv1.IDRequest{ID: "roadmap-2"})
	if err != nil {
		t.Fatalf("enroll: %v", err)
	}
	if progress.CurrentStep != 1 || len(progress.CompletedSteps) != 0 {
		t.Fatalf("unexpected fresh progress %+v", progress)
	}

	_, err = call[lexiroadv1.IDRequest, lexiroadv1.Progress](t, env, lexiroadv1connect.RoadmapServiceEnrollProcedure, &lexiroadv1.IDRequest{ID: "roadmap-2"})
	if connect.CodeOf(err) != connect.CodeAlreadyExists {
		t.Fatalf("expected already exists on second enrollment, got %v", err)
	}

	step := &lexiroadv1.CompleteStepRequest{RoadmapID: "roadmap-2", StepID: "step-6"}
	progress, err = call[lexiroadv1.CompleteStepRequest, lexiroadv1.Progress](t, env, lexiroadv1connect.RoadmapServiceCompleteStepProcedure, step)
	if err != nil {
		t.Fatalf("complete step: %v", err)
	}
	if diff := cmp.Diff([]string{"step-6"}, progress.CompletedSteps); diff != "" {
		t.Fatalf("completed steps mismatch (-want +got):\n%s", diff)
	}
	if progress.CompletionPercentage != 33 {
		t.Fatalf("expected 33%%, got %d", progress.CompletionPercentage)
	}

	_, err = call[lexiroadv1.CompleteStepRequest, lexiroadv1.Progress](t, env, lexiroadv1connect.RoadmapServiceCompleteStepProcedure, step)
	if connect.CodeOf(err) != connect.CodeFailedPrecondition {
		t.Fatalf("expected failed precondition for a repeated step, got %v", err)
	}

	got, err := call[lexiroadv1.IDRequest, lexiroadv1.ProgressResponse](t, env, lexiroadv1connect.RoadmapServiceGetProgressProcedure, &lexiroadv1.IDRequest{ID: "roadmap-3"})
	if err != nil {
		t.Fatalf("get progress: %v", err)
	}
	if got.Progress != nil {
		t.Fatalf("expected no progress for a roadmap the user never joined, got %+v", got.Progress)
	}
}

func TestRequestValidation(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name string
		call func() error
	}{
		{
			name: "malformed email",
			call: func() error {
				_, err := call[lexiroadv1.SignInRequest, lexiroadv1.User](t, env, lexiroadv1connect.SessionServiceSignInProcedure, &lexiroadv1.SignInRequest{Email: "nope"})
				return err
			},
		},
		{
			name: "missing id",
			call: func() error {
				_, err := call[lexiroadv1.IDRequest, lexiroadv1.Roadmap](t, env, lexiroadv1connect.RoadmapServiceGetRoadmapProcedure, &lexiroadv1.IDRequest{})
				return err
			},
		},
		{
			name: "unknown view mode",
			call: func() error {
				_, err := call[lexiroadv1.SetViewModeRequest, lexiroadv1.UIState](t, env, lexiroadv1connect.UIServiceSetViewModeProcedure, &lexiroadv1.SetViewModeRequest{Mode: "grid"})
				return err
			},
		},
		{
			name: "bad step type",
			call: func() error {
				_, err := call[lexiroadv1.CreateRoadmapRequest, lexiroadv1.Roadmap](t, env, lexiroadv1connect.RoadmapServiceCreateRoadmapProcedure, &lexiroadv1.CreateRoadmapRequest{
					Roadmap: &lexiroadv1.Roadmap{
						Name: "Trip", Language: "Spanish", Level: "beginner",
						Steps: []*lexiroadv1.RoadmapStep{{Title: "Go", Type: "quiz"}},
					},
				})
				return err
			},
		},
		{
			name: "unsupported filter",
			call: func() error {
				_, err := call[lexiroadv1.ListRequest, lexiroadv1.ListDictionariesResponse](t, env, lexiroadv1connect.DictionaryServiceListDictionariesProcedure, &lexiroadv1.ListRequest{Filter: "entry_count > 3"})
				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.call(); connect.CodeOf(err) != connect.CodeInvalidArgument {
				t.Fatalf("expected invalid argument, got %v", err)
			}
		})
	}
	if env.store.Version() != 0 {
		t.Fatalf("rejected requests must not commit, version is %d", env.store.Version())
	}
}

func TestListAndGetOverHTTP(t *testing.T) {
	env := newTestEnv(t)

	list, err := call[lexiroadv1.ListRequest, lexiroadv1.ListDictionariesResponse](t, env, lexiroadv1connect.DictionaryServiceListDictionariesProcedure, &lexiroadv1.ListRequest{
		Pagination: &lexiroadv1.PaginationRequest{PageSize: 1},
		OrderBy:    "name desc",
	})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if list.Pagination.Total != 2 || list.Pagination.PageNo != 1 {
		t.Fatalf("unexpected pagination %+v", list.Pagination)
	}
	if len(list.Dictionaries) != 1 || list.Dictionaries[0].ID != "dict-2" {
		t.Fatalf("unexpected page %+v", list.Dictionaries)
	}

	detail, err := call[lexiroadv1.IDRequest, lexiroadv1.DictionaryDetail](t, env, lexiroadv1connect.DictionaryServiceGetDictionaryProcedure, &lexiroadv1.IDRequest{ID: "dict-1"})
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if detail.Dictionary.EntryCount != len(detail.Entries) {
		t.Fatalf("entry count %d disagrees with %d entries", detail.Dictionary.EntryCount, len(detail.Entries))
	}

	_, err = call[lexiroadv1.IDRequest, lexiroadv1.GrammarDetail](t, env, lexiroadv1connect.GrammarServiceGetGrammarProcedure, &lexiroadv1.IDRequest{ID: "missing"})
	if connect.CodeOf(err) != connect.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestCopyAndFavoriteFollowOwner(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	dicts := NewDictionaryServiceServer(env.store, nil)

	copied, err := dicts.CopyDictionary(ctx, connect.NewRequest(&lexiroadv1.IDRequest{ID: "dict-2"}))
	if err != nil {
		t.Fatalf("copy: %v", err)
	}
	if copied.Msg.OwnerID != store.DefaultFallbackOwnerID || copied.Msg.Name != "French Vocabulary (Copy)" {
		t.Fatalf("unexpected copy %+v", copied.Msg)
	}

	if _, err := dicts.ToggleFavorite(ctx, connect.NewRequest(&lexiroadv1.IDRequest{ID: "dict-2"})); err == nil {
		t.Fatalf("expected favorites to require a session")
	}

	if _, err := env.store.SignIn("sarah@example.com"); err != nil {
		t.Fatalf("sign in: %v", err)
	}
	fav, err := dicts.ToggleFavorite(ctx, connect.NewRequest(&lexiroadv1.IDRequest{ID: "dict-1"}))
	if err != nil {
		t.Fatalf("toggle favorite: %v", err)
	}
	if !fav.Msg.Favorited {
		t.Fatalf("expected dict-1 to become a favorite")
	}
}

func TestExploreUsesSessionFilters(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	ui := NewUIServiceServer(env.store)
	catalog := NewCatalogServiceServer(env.store, usecase.NewCatalogUsecase(
		repository.NewDictionaryRepository(env.store),
		repository.NewGrammarRepository(env.store),
		repository.NewRoadmapRepository(env.store),
	))

	langs := []string{"french"}
	state, err := ui.SetSearchFilters(ctx, connect.NewRequest(&lexiroadv1.SetSearchFiltersRequest{Languages: &langs}))
	if err != nil {
		t.Fatalf("set filters: %v", err)
	}
	if diff := cmp.Diff([]string{"French"}, state.Msg.SearchFilters.Languages); diff != "" {
		t.Fatalf("languages mismatch (-want +got):\n%s", diff)
	}

	res, err := catalog.Explore(ctx, connect.NewRequest(&lexiroadv1.ExploreRequest{}))
	if err != nil {
		t.Fatalf("explore: %v", err)
	}
	for _, r := range res.Msg.Roadmaps {
		if r.Language != "French" {
			t.Fatalf("session filters ignored, got roadmap %s in %s", r.ID, r.Language)
		}
	}

	res, err = catalog.Explore(ctx, connect.NewRequest(&lexiroadv1.ExploreRequest{Filters: &lexiroadv1.SearchFilters{}}))
	if err != nil {
		t.Fatalf("explore: %v", err)
	}
	if len(res.Msg.Roadmaps) != 3 {
		t.Fatalf("explicit empty filters should match every roadmap, got %d", len(res.Msg.Roadmaps))
	}
}

func TestWatchStateStreamsCommits(t *testing.T) {
	env := newTestEnv(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client := connect.NewClient[lexiroadv1.WatchStateRequest, lexiroadv1.StateEvent](
		env.srv.Client(), env.srv.URL+lexiroadv1connect.UIServiceWatchStateProcedure, connect.WithCodec(JSONCodec{}))
	stream, err := client.CallServerStream(ctx, connect.NewRequest(&lexiroadv1.WatchStateRequest{}))
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	if !stream.Receive() {
		t.Fatalf("expected an initial event: %v", stream.Err())
	}
	if first := stream.Msg(); first.Version != 0 || first.Dictionaries != 2 {
		t.Fatalf("unexpected initial event %+v", first)
	}

	env.store.ToggleSidebar()
	env.store.ToggleDarkMode()
	if _, err := env.store.SignIn("alex@example.com"); err != nil {
		t.Fatalf("sign in: %v", err)
	}

	var last *lexiroadv1.StateEvent
	for last == nil || last.Version < 3 {
		if !stream.Receive() {
			t.Fatalf("stream ended early: %v", stream.Err())
		}
		if last != nil && stream.Msg().Version <= last.Version {
			t.Fatalf("versions must increase, got %d after %d", stream.Msg().Version, last.Version)
		}
		last = stream.Msg()
	}
	if last.CurrentUserID != "user-1" {
		t.Fatalf("expected the newest state, got %+v", last)
	}

	cancel()
	_ = stream.Close()
}
