//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/eslsoft/lexiroad/internal/adapter/connectrpc"
	"github.com/eslsoft/lexiroad/internal/adapter/repository"
	"github.com/eslsoft/lexiroad/internal/infrastructure/config"
	"github.com/eslsoft/lexiroad/internal/infrastructure/metrics"
	"github.com/eslsoft/lexiroad/internal/infrastructure/server"
	"github.com/eslsoft/lexiroad/internal/seed"
	"github.com/eslsoft/lexiroad/internal/store"
	"github.com/eslsoft/lexiroad/internal/usecase"
)

var seedSet = wire.NewSet(
	seed.NewProvider,
	seed.LoadSnapshot,
)

var metricsSet = wire.NewSet(
	NewRegistry,
	wire.Bind(new(prometheus.Registerer), new(*prometheus.Registry)),
	wire.Bind(new(prometheus.Gatherer), new(*prometheus.Registry)),
	metrics.NewStoreObserver,
	wire.Bind(new(store.Observer), new(*metrics.StoreObserver)),
)

var storeSet = wire.NewSet(
	NewStore,
	wire.Bind(new(repository.StateSource), new(*store.Store)),
)

var repositorySet = wire.NewSet(
	repository.NewDictionaryRepository,
	repository.NewGrammarRepository,
	repository.NewRoadmapRepository,
)

var usecaseSet = wire.NewSet(
	usecase.NewCatalogUsecase,
)

var serviceSet = wire.NewSet(
	connectrpc.NewSessionServiceServer,
	connectrpc.NewDictionaryServiceServer,
	connectrpc.NewGrammarServiceServer,
	connectrpc.NewRoadmapServiceServer,
	connectrpc.NewUIServiceServer,
	connectrpc.NewCatalogServiceServer,
	wire.Struct(new(connectrpc.Services), "*"),
)

var serverSet = wire.NewSet(
	server.NewLogger,
	server.NewServer,
)

// Initialize builds the application container using Wire.
func Initialize(cfg *config.Config) (*Container, func(), error) {
	wire.Build(
		seedSet,
		metricsSet,
		storeSet,
		repositorySet,
		usecaseSet,
		serviceSet,
		serverSet,
		wire.Struct(new(Container), "Logger", "Store", "Server"),
	)
	return nil, nil, nil
}
