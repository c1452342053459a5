package app

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"

	"github.com/eslsoft/lexiroad/internal/infrastructure/config"
	"github.com/eslsoft/lexiroad/internal/infrastructure/server"
	"github.com/eslsoft/lexiroad/internal/seed"
	"github.com/eslsoft/lexiroad/internal/store"
)

// Container aggregates the application dependencies produced by Wire.
type Container struct {
	Logger *logrus.Logger
	Store  *store.Store
	Server *server.Server
}

// NewRegistry returns the prometheus registry served on /metrics, preloaded with runtime collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// NewStore hosts the seeded snapshot and, when session.auto_sign_in names a user, signs that user in.
func NewStore(cfg *config.Config, snap *seed.Snapshot, logger *logrus.Logger, observer store.Observer) (*store.Store, error) {
	opts := []store.Option{
		store.WithLogger(logger),
		store.WithObserver(observer),
	}
	if cfg.Session.FallbackOwnerID != "" {
		opts = append(opts, store.WithFallbackOwner(cfg.Session.FallbackOwnerID))
	}
	s := store.New(snap, opts...)

	if id := cfg.Session.AutoSignIn; id != "" {
		u, ok := s.Snapshot().User(id)
		if !ok {
			return nil, fmt.Errorf("session.auto_sign_in: user %q not found", id)
		}
		s.SetCurrentUser(&u)
		logger.WithField("user_id", u.ID).Info("signed in at startup")
	}
	return s, nil
}
