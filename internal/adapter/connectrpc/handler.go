package connectrpc

import (
	"net/http"

	"connectrpc.com/connect"

	"github.com/eslsoft/lexiroad/api/lexiroad/v1/lexiroadv1connect"
)

// Services bundles every lexiroad.v1 service implementation.
type Services struct {
	Session    *SessionServiceServer
	Dictionary *DictionaryServiceServer
	Grammar    *GrammarServiceServer
	Roadmap    *RoadmapServiceServer
	UI         *UIServiceServer
	Catalog    *CatalogServiceServer
}

// Mount registers every service on mux. Interceptors passed in opts wrap the built-in error
// translation and validation, so a logging interceptor sees the final connect code.
func (s *Services) Mount(mux *http.ServeMux, opts ...connect.HandlerOption) {
	opts = append(opts,
		connect.WithCodec(JSONCodec{}),
		connect.WithInterceptors(NewErrorInterceptor(), NewValidationInterceptor()),
	)

	mux.Handle(lexiroadv1connect.NewSessionServiceHandler(s.Session, opts...))
	mux.Handle(lexiroadv1connect.NewDictionaryServiceHandler(s.Dictionary, opts...))
	mux.Handle(lexiroadv1connect.NewGrammarServiceHandler(s.Grammar, opts...))
	mux.Handle(lexiroadv1connect.NewRoadmapServiceHandler(s.Roadmap, opts...))
	mux.Handle(lexiroadv1connect.NewUIServiceHandler(s.UI, opts...))
	mux.Handle(lexiroadv1connect.NewCatalogServiceHandler(s.Catalog, opts...))
}
