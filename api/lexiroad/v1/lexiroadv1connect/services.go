// Package lexiroadv1connect binds the lexiroad.v1 services to Connect handlers.
package lexiroadv1connect

import (
	"context"
	"net/http"

	"connectrpc.com/connect"

	lexiroadv1 "github.com/eslsoft/lexiroad/api/lexiroad/v1"
)

const (
	SessionServiceName    = "lexiroad.v1.SessionService"
	DictionaryServiceName = "lexiroad.v1.DictionaryService"
	GrammarServiceName    = "lexiroad.v1.GrammarService"
	RoadmapServiceName    = "lexiroad.v1.RoadmapService"
	UIServiceName         = "lexiroad.v1.UIService"
	CatalogServiceName    = "lexiroad.v1.CatalogService"
)

const (
	SessionServiceGetSessionProcedure     = "/lexiroad.v1.SessionService/GetSession"
	SessionServiceSetCurrentUserProcedure = "/lexiroad.v1.SessionService/SetCurrentUser"
	SessionServiceSignInProcedure         = "/lexiroad.v1.SessionService/SignIn"
	SessionServiceRegisterProcedure       = "/lexiroad.v1.SessionService/Register"
	SessionServiceUpdateProfileProcedure  = "/lexiroad.v1.SessionService/UpdateProfile"
	SessionServiceSignOutProcedure        = "/lexiroad.v1.SessionService/SignOut"
	SessionServiceSearchUsersProcedure    = "/lexiroad.v1.SessionService/SearchUsers"

	DictionaryServiceListDictionariesProcedure = "/lexiroad.v1.DictionaryService/ListDictionaries"
	DictionaryServiceGetDictionaryProcedure    = "/lexiroad.v1.DictionaryService/GetDictionary"
	DictionaryServiceCreateDictionaryProcedure = "/lexiroad.v1.DictionaryService/CreateDictionary"
	DictionaryServiceAddEntryProcedure         = "/lexiroad.v1.DictionaryService/AddEntry"
	DictionaryServiceSetDictionariesProcedure  = "/lexiroad.v1.DictionaryService/SetDictionaries"
	DictionaryServiceSetEntriesProcedure       = "/lexiroad.v1.DictionaryService/SetEntries"
	DictionaryServiceToggleFavoriteProcedure   = "/lexiroad.v1.DictionaryService/ToggleFavorite"
	DictionaryServiceCopyDictionaryProcedure   = "/lexiroad.v1.DictionaryService/CopyDictionary"
	DictionaryServiceSelectDictionaryProcedure = "/lexiroad.v1.DictionaryService/SelectDictionary"

	GrammarServiceListGrammarsProcedure   = "/lexiroad.v1.GrammarService/ListGrammars"
	GrammarServiceGetGrammarProcedure     = "/lexiroad.v1.GrammarService/GetGrammar"
	GrammarServiceCreateGrammarProcedure  = "/lexiroad.v1.GrammarService/CreateGrammar"
	GrammarServiceAddRuleProcedure        = "/lexiroad.v1.GrammarService/AddRule"
	GrammarServiceSetGrammarsProcedure    = "/lexiroad.v1.GrammarService/SetGrammars"
	GrammarServiceSetRulesProcedure       = "/lexiroad.v1.GrammarService/SetRules"
	GrammarServiceToggleFavoriteProcedure = "/lexiroad.v1.GrammarService/ToggleFavorite"
	GrammarServiceCopyGrammarProcedure    = "/lexiroad.v1.GrammarService/CopyGrammar"
	GrammarServiceSelectGrammarProcedure  = "/lexiroad.v1.GrammarService/SelectGrammar"

	RoadmapServiceListRoadmapsProcedure   = "/lexiroad.v1.RoadmapService/ListRoadmaps"
	RoadmapServiceGetRoadmapProcedure     = "/lexiroad.v1.RoadmapService/GetRoadmap"
	RoadmapServiceCreateRoadmapProcedure  = "/lexiroad.v1.RoadmapService/CreateRoadmap"
	RoadmapServiceSetRoadmapsProcedure    = "/lexiroad.v1.RoadmapService/SetRoadmaps"
	RoadmapServiceToggleFavoriteProcedure = "/lexiroad.v1.RoadmapService/ToggleFavorite"
	RoadmapServiceCopyRoadmapProcedure    = "/lexiroad.v1.RoadmapService/CopyRoadmap"
	RoadmapServiceSelectRoadmapProcedure  = "/lexiroad.v1.RoadmapService/SelectRoadmap"
	RoadmapServiceEnrollProcedure         = "/lexiroad.v1.RoadmapService/Enroll"
	RoadmapServiceCompleteStepProcedure   = "/lexiroad.v1.RoadmapService/CompleteStep"
	RoadmapServiceGetProgressProcedure    = "/lexiroad.v1.RoadmapService/GetProgress"

	UIServiceGetUIStateProcedure       = "/lexiroad.v1.UIService/GetUIState"
	UIServiceToggleSidebarProcedure    = "/lexiroad.v1.UIService/ToggleSidebar"
	UIServiceToggleDarkModeProcedure   = "/lexiroad.v1.UIService/ToggleDarkMode"
	UIServiceSetViewModeProcedure      = "/lexiroad.v1.UIService/SetViewMode"
	UIServiceSetSearchFiltersProcedure = "/lexiroad.v1.UIService/SetSearchFilters"
	UIServiceWatchStateProcedure       = "/lexiroad.v1.UIService/WatchState"

	CatalogServiceExploreProcedure   = "/lexiroad.v1.CatalogService/Explore"
	CatalogServiceLanguagesProcedure = "/lexiroad.v1.CatalogService/Languages"
)

// SessionServiceHandler serves sign-in, registration and profile updates for the hosted session.
type SessionServiceHandler interface {
	GetSession(context.Context, *connect.Request[lexiroadv1.Empty]) (*connect.Response[lexiroadv1.SessionResponse], error)
	SetCurrentUser(context.Context, *connect.Request[lexiroadv1.SetCurrentUserRequest]) (*connect.Response[lexiroadv1.SessionResponse], error)
	SignIn(context.Context, *connect.Request[lexiroadv1.SignInRequest]) (*connect.Response[lexiroadv1.User], error)
	Register(context.Context, *connect.Request[lexiroadv1.RegisterRequest]) (*connect.Response[lexiroadv1.User], error)
	UpdateProfile(context.Context, *connect.Request[lexiroadv1.UpdateProfileRequest]) (*connect.Response[lexiroadv1.User], error)
	SignOut(context.Context, *connect.Request[lexiroadv1.Empty]) (*connect.Response[lexiroadv1.Empty], error)
	SearchUsers(context.Context, *connect.Request[lexiroadv1.SearchUsersRequest]) (*connect.Response[lexiroadv1.ListUsersResponse], error)
}

type DictionaryServiceHandler interface {
	ListDictionaries(context.Context, *connect.Request[lexiroadv1.ListRequest]) (*connect.Response[lexiroadv1.ListDictionariesResponse], error)
	GetDictionary(context.Context, *connect.Request[lexiroadv1.IDRequest]) (*connect.Response[lexiroadv1.DictionaryDetail], error)
	CreateDictionary(context.Context, *connect.Request[lexiroadv1.CreateDictionaryRequest]) (*connect.Response[lexiroadv1.Dictionary], error)
	AddEntry(context.Context, *connect.Request[lexiroadv1.AddEntryRequest]) (*connect.Response[lexiroadv1.DictionaryEntry], error)
	SetDictionaries(context.Context, *connect.Request[lexiroadv1.SetDictionariesRequest]) (*connect.Response[lexiroadv1.Empty], error)
	SetEntries(context.Context, *connect.Request[lexiroadv1.SetEntriesRequest]) (*connect.Response[lexiroadv1.Empty], error)
	ToggleFavorite(context.Context, *connect.Request[lexiroadv1.IDRequest]) (*connect.Response[lexiroadv1.FavoriteResponse], error)
	CopyDictionary(context.Context, *connect.Request[lexiroadv1.IDRequest]) (*connect.Response[lexiroadv1.Dictionary], error)
	SelectDictionary(context.Context, *connect.Request[lexiroadv1.SelectRequest]) (*connect.Response[lexiroadv1.Empty], error)
}

type GrammarServiceHandler interface {
	ListGrammars(context.Context, *connect.Request[lexiroadv1.ListRequest]) (*connect.Response[lexiroadv1.ListGrammarsResponse], error)
	GetGrammar(context.Context, *connect.Request[lexiroadv1.IDRequest]) (*connect.Response[lexiroadv1.GrammarDetail], error)
	CreateGrammar(context.Context, *connect.Request[lexiroadv1.CreateGrammarRequest]) (*connect.Response[lexiroadv1.Grammar], error)
	AddRule(context.Context, *connect.Request[lexiroadv1.AddRuleRequest]) (*connect.Response[lexiroadv1.GrammarRule], error)
	SetGrammars(context.Context, *connect.Request[lexiroadv1.SetGrammarsRequest]) (*connect.Response[lexiroadv1.Empty], error)
	SetRules(context.Context, *connect.Request[lexiroadv1.SetRulesRequest]) (*connect.Response[lexiroadv1.Empty], error)
	ToggleFavorite(context.Context, *connect.Request[lexiroadv1.IDRequest]) (*connect.Response[lexiroadv1.FavoriteResponse], error)
	CopyGrammar(context.Context, *connect.Request[lexiroadv1.IDRequest]) (*connect.Response[lexiroadv1.Grammar], error)
	SelectGrammar(context.Context, *connect.Request[lexiroadv1.SelectRequest]) (*connect.Response[lexiroadv1.Empty], error)
}

type RoadmapServiceHandler interface {
	ListRoadmaps(context.Context, *connect.Request[lexiroadv1.ListRequest]) (*connect.Response[lexiroadv1.ListRoadmapsResponse], error)
	GetRoadmap(context.Context, *connect.Request[lexiroadv1.IDRequest]) (*connect.Response[lexiroadv1.Roadmap], error)
	CreateRoadmap(context.Context, *connect.Request[lexiroadv1.CreateRoadmapRequest]) (*connect.Response[lexiroadv1.Roadmap], error)
	SetRoadmaps(context.Context, *connect.Request[lexiroadv1.SetRoadmapsRequest]) (*connect.Response[lexiroadv1.Empty], error)
	ToggleFavorite(context.Context, *connect.Request[lexiroadv1.IDRequest]) (*connect.Response[lexiroadv1.FavoriteResponse], error)
	CopyRoadmap(context.Context, *connect.Request[lexiroadv1.IDRequest]) (*connect.Response[lexiroadv1.Roadmap], error)
	SelectRoadmap(context.Context, *connect.Request[lexiroadv1.SelectRequest]) (*connect.Response[lexiroadv1.Empty], error)
	Enroll(context.Context, *connect.Request[lexiroadv1.IDRequest]) (*connect.Response[lexiroadv1.Progress], error)
	CompleteStep(context.Context, *connect.Request[lexiroadv1.CompleteStepRequest]) (*connect.Response[lexiroadv1.Progress], error)
	GetProgress(context.Context, *connect.Request[lexiroadv1.IDRequest]) (*connect.Response[lexiroadv1.ProgressResponse], error)
}

// UIServiceHandler serves presentation flags and the state change stream.
type UIServiceHandler interface {
	GetUIState(context.Context, *connect.Request[lexiroadv1.Empty]) (*connect.Response[lexiroadv1.UIState], error)
	ToggleSidebar(context.Context, *connect.Request[lexiroadv1.Empty]) (*connect.Response[lexiroadv1.UIState], error)
	ToggleDarkMode(context.Context, *connect.Request[lexiroadv1.Empty]) (*connect.Response[lexiroadv1.UIState], error)
	SetViewMode(context.Context, *connect.Request[lexiroadv1.SetViewModeRequest]) (*connect.Response[lexiroadv1.UIState], error)
	SetSearchFilters(context.Context, *connect.Request[lexiroadv1.SetSearchFiltersRequest]) (*connect.Response[lexiroadv1.UIState], error)
	WatchState(context.Context, *connect.Request[lexiroadv1.WatchStateRequest], *connect.ServerStream[lexiroadv1.StateEvent]) error
}

type CatalogServiceHandler interface {
	Explore(context.Context, *connect.Request[lexiroadv1.ExploreRequest]) (*connect.Response[lexiroadv1.ExploreResponse], error)
	Languages(context.Context, *connect.Request[lexiroadv1.Empty]) (*connect.Response[lexiroadv1.LanguagesResponse], error)
}

func NewSessionServiceHandler(svc SessionServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	mux := http.NewServeMux()
	mux.Handle(SessionServiceGetSessionProcedure, connect.NewUnaryHandler(SessionServiceGetSessionProcedure, svc.GetSession, opts...))
	mux.Handle(SessionServiceSetCurrentUserProcedure, connect.NewUnaryHandler(SessionServiceSetCurrentUserProcedure, svc.SetCurrentUser, opts...))
	mux.Handle(SessionServiceSignInProcedure, connect.NewUnaryHandler(SessionServiceSignInProcedure, svc.SignIn, opts...))
	mux.Handle(SessionServiceRegisterProcedure, connect.NewUnaryHandler(SessionServiceRegisterProcedure, svc.Register, opts...))
	mux.Handle(SessionServiceUpdateProfileProcedure, connect.NewUnaryHandler(SessionServiceUpdateProfileProcedure, svc.UpdateProfile, opts...))
	mux.Handle(SessionServiceSignOutProcedure, connect.NewUnaryHandler(SessionServiceSignOutProcedure, svc.SignOut, opts...))
	mux.Handle(SessionServiceSearchUsersProcedure, connect.NewUnaryHandler(SessionServiceSearchUsersProcedure, svc.SearchUsers, opts...))
	return "/" + SessionServiceName + "/", mux
}

func NewDictionaryServiceHandler(svc DictionaryServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	mux := http.NewServeMux()
	mux.Handle(DictionaryServiceListDictionariesProcedure, connect.NewUnaryHandler(DictionaryServiceListDictionariesProcedure, svc.ListDictionaries, opts...))
	mux.Handle(DictionaryServiceGetDictionaryProcedure, connect.NewUnaryHandler(DictionaryServiceGetDictionaryProcedure, svc.GetDictionary, opts...))
	mux.Handle(DictionaryServiceCreateDictionaryProcedure, connect.NewUnaryHandler(DictionaryServiceCreateDictionaryProcedure, svc.CreateDictionary, opts...))
	mux.Handle(DictionaryServiceAddEntryProcedure, connect.NewUnaryHandler(DictionaryServiceAddEntryProcedure, svc.AddEntry, opts...))
	mux.Handle(DictionaryServiceSetDictionariesProcedure, connect.NewUnaryHandler(DictionaryServiceSetDictionariesProcedure, svc.SetDictionaries, opts...))
	mux.Handle(DictionaryServiceSetEntriesProcedure, connect.NewUnaryHandler(DictionaryServiceSetEntriesProcedure, svc.SetEntries, opts...))
	mux.Handle(DictionaryServiceToggleFavoriteProcedure, connect.NewUnaryHandler(DictionaryServiceToggleFavoriteProcedure, svc.ToggleFavorite, opts...))
	mux.Handle(DictionaryServiceCopyDictionaryProcedure, connect.NewUnaryHandler(DictionaryServiceCopyDictionaryProcedure, svc.CopyDictionary, opts...))
	mux.Handle(DictionaryServiceSelectDictionaryProcedure, connect.NewUnaryHandler(DictionaryServiceSelectDictionaryProcedure, svc.SelectDictionary, opts...))
	return "/" + DictionaryServiceName + "/", mux
}

func NewGrammarServiceHandler(svc GrammarServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	mux := http.NewServeMux()
	mux.Handle(GrammarServiceListGrammarsProcedure, connect.NewUnaryHandler(GrammarServiceListGrammarsProcedure, svc.ListGrammars, opts...))
	mux.Handle(GrammarServiceGetGrammarProcedure, connect.NewUnaryHandler(GrammarServiceGetGrammarProcedure, svc.GetGrammar, opts...))
	mux.Handle(GrammarServiceCreateGrammarProcedure, connect.NewUnaryHandler(GrammarServiceCreateGrammarProcedure, svc.CreateGrammar, opts...))
	mux.Handle(GrammarServiceAddRuleProcedure, connect.NewUnaryHandler(GrammarServiceAddRuleProcedure, svc.AddRule, opts...))
	mux.Handle(GrammarServiceSetGrammarsProcedure, connect.NewUnaryHandler(GrammarServiceSetGrammarsProcedure, svc.SetGrammars, opts...))
	mux.Handle(GrammarServiceSetRulesProcedure, connect.NewUnaryHandler(GrammarServiceSetRulesProcedure, svc.SetRules, opts...))
	mux.Handle(GrammarServiceToggleFavoriteProcedure, connect.NewUnaryHandler(GrammarServiceToggleFavoriteProcedure, svc.ToggleFavorite, opts...))
	mux.Handle(GrammarServiceCopyGrammarProcedure, connect.NewUnaryHandler(GrammarServiceCopyGrammarProcedure, svc.CopyGrammar, opts...))
	mux.Handle(GrammarServiceSelectGrammarProcedure, connect.NewUnaryHandler(GrammarServiceSelectGrammarProcedure, svc.SelectGrammar, opts...))
	return "/" + GrammarServiceName + "/", mux
}

func NewRoadmapServiceHandler(svc RoadmapServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	mux := http.NewServeMux()
	mux.Handle(RoadmapServiceListRoadmapsProcedure, connect.NewUnaryHandler(RoadmapServiceListRoadmapsProcedure, svc.ListRoadmaps, opts...))
	mux.Handle(RoadmapServiceGetRoadmapProcedure, connect.NewUnaryHandler(RoadmapServiceGetRoadmapProcedure, svc.GetRoadmap, opts...))
	mux.Handle(RoadmapServiceCreateRoadmapProcedure, connect.NewUnaryHandler(RoadmapServiceCreateRoadmapProcedure, svc.CreateRoadmap, opts...))
	mux.Handle(RoadmapServiceSetRoadmapsProcedure, connect.NewUnaryHandler(RoadmapServiceSetRoadmapsProcedure, svc.SetRoadmaps, opts...))
	mux.Handle(RoadmapServiceToggleFavoriteProcedure, connect.NewUnaryHandler(RoadmapServiceToggleFavoriteProcedure, svc.ToggleFavorite, opts...))
	mux.Handle(RoadmapServiceCopyRoadmapProcedure, connect.NewUnaryHandler(RoadmapServiceCopyRoadmapProcedure, svc.CopyRoadmap, opts...))
	mux.Handle(RoadmapServiceSelectRoadmapProcedure, connect.NewUnaryHandler(RoadmapServiceSelectRoadmapProcedure, svc.SelectRoadmap, opts...))
	mux.Handle(RoadmapServiceEnrollProcedure, connect.NewUnaryHandler(RoadmapServiceEnrollProcedure, svc.Enroll, opts...))
	mux.Handle(RoadmapServiceCompleteStepProcedure, connect.NewUnaryHandler(RoadmapServiceCompleteStepProcedure, svc.CompleteStep, opts...))
	mux.Handle(RoadmapServiceGetProgressProcedure, connect.NewUnaryHandler(RoadmapServiceGetProgressProcedure, svc.GetProgress, opts...))
	return "/" + RoadmapServiceName + "/", mux
}

func NewUIServiceHandler(svc UIServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	mux := http.NewServeMux()
	mux.Handle(UIServiceGetUIStateProcedure, connect.NewUnaryHandler(UIServiceGetUIStateProcedure, svc.GetUIState, opts...))
	mux.Handle(UIServiceToggleSidebarProcedure, connect.NewUnaryHandler(UIServiceToggleSidebarProcedure, svc.ToggleSidebar, opts...))
	mux.Handle(UIServiceToggleDarkModeProcedure, connect.NewUnaryHandler(UIServiceToggleDarkModeProcedure, svc.ToggleDarkMode, opts...))
	mux.Handle(UIServiceSetViewModeProcedure, connect.NewUnaryHandler(UIServiceSetViewModeProcedure, svc.SetViewMode, opts...))
	mux.Handle(UIServiceSetSearchFiltersProcedure, connect.NewUnaryHandler(UIServiceSetSearchFiltersProcedure, svc.SetSearchFilters, opts...))
	mux.Handle(UIServiceWatchStateProcedure, connect.NewServerStreamHandler(UIServiceWatchStateProcedure, svc.WatchState, opts...))
	return "/" + UIServiceName + "/", mux
}

func NewCatalogServiceHandler(svc CatalogServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	mux := http.NewServeMux()
	mux.Handle(CatalogServiceExploreProcedure, connect.NewUnaryHandler(CatalogServiceExploreProcedure, svc.Explore, opts...))
	mux.Handle(CatalogServiceLanguagesProcedure, connect.NewUnaryHandler(CatalogServiceLanguagesProcedure, svc.Languages, opts...))
	return "/" + CatalogServiceName + "/", mux
}
