package server

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"

	lexiroadv1 "github.com/eslsoft/lexiroad/api/lexiroad/v1"
	"github.com/eslsoft/lexiroad/api/lexiroad/v1/lexiroadv1connect"
	"github.com/eslsoft/lexiroad/internal/adapter/connectrpc"
	"github.com/eslsoft/lexiroad/internal/adapter/repository"
	"github.com/eslsoft/lexiroad/internal/infrastructure/config"
	"github.com/eslsoft/lexiroad/internal/infrastructure/metrics"
	"github.com/eslsoft/lexiroad/internal/seed"
	"github.com/eslsoft/lexiroad/internal/store"
	"github.com/eslsoft/lexiroad/internal/usecase"
)

func newTestServer(t *testing.T) (*httptest.Server, *logtest.Hook) {
	t.Helper()
	snap, err := seed.NewFixtureProvider(nil).Load(context.Background())
	if err != nil {
		t.Fatalf("load fixtures: %v", err)
	}
	reg := prometheus.NewRegistry()
	s := store.New(snap, store.WithObserver(metrics.NewStoreObserver(reg)))
	catalog := usecase.NewCatalogUsecase(
		repository.NewDictionaryRepository(s),
		repository.NewGrammarRepository(s),
		repository.NewRoadmapRepository(s),
	)
	services := &connectrpc.Services{
		Session:    connectrpc.NewSessionServiceServer(s),
		Dictionary: connectrpc.NewDictionaryServiceServer(s, catalog),
		Grammar:    connectrpc.NewGrammarServiceServer(s, catalog),
		Roadmap:    connectrpc.NewRoadmapServiceServer(s, catalog),
		UI:         connectrpc.NewUIServiceServer(s),
		Catalog:    connectrpc.NewCatalogServiceServer(s, catalog),
	}

	cfg := &config.Config{
		Server:  config.ServerConfig{Host: "127.0.0.1", AllowedOrigins: []string{"http://app.example.com"}},
		Metrics: config.MetricsConfig{Enabled: true},
	}
	logger, hook := logtest.NewNullLogger()
	srv := httptest.NewServer(NewServer(cfg, logger, services, reg).Handler())
	t.Cleanup(srv.Close)
	return srv, hook
}

func get(t *testing.T, url string) string {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("get %s: %v", url, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("get %s: status %d", url, resp.StatusCode)
	}
	return string(body)
}

func TestServerRoutes(t *testing.T) {
	srv, hook := newTestServer(t)

	if body := get(t, srv.URL+"/healthz"); body != "ok" {
		t.Fatalf("unexpected health body %q", body)
	}

	client := connect.NewClient[lexiroadv1.SignInRequest, lexiroadv1.User](
		srv.Client(), srv.URL+lexiroadv1connect.SessionServiceSignInProcedure, connect.WithCodec(connectrpc.JSONCodec{}))
	if _, err := client.CallUnary(context.Background(), connect.NewRequest(&lexiroadv1.SignInRequest{Email: "alex@example.com"})); err != nil {
		t.Fatalf("sign in: %v", err)
	}
	_, err := client.CallUnary(context.Background(), connect.NewRequest(&lexiroadv1.SignInRequest{Email: "ghost@example.com"}))
	if connect.CodeOf(err) != connect.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}

	body := get(t, srv.URL+"/metrics")
	for _, want := range []string{
		`lexiroad_store_operations_total{operation="sign_in",outcome="committed"} 1`,
		`lexiroad_store_operations_total{operation="sign_in",outcome="rejected"} 1`,
		`lexiroad_store_version 1`,
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("metrics output lacks %q", want)
		}
	}

	entries := hook.AllEntries()
	if len(entries) != 2 {
		t.Fatalf("expected 2 request logs, got %d", len(entries))
	}
	if entries[0].Level != logrus.InfoLevel || entries[0].Data["procedure"] != lexiroadv1connect.SessionServiceSignInProcedure {
		t.Fatalf("unexpected success log %+v", entries[0].Data)
	}
	if entries[1].Level != logrus.WarnLevel || entries[1].Data["status"] != "not_found" {
		t.Fatalf("unexpected failure log level=%v data=%+v", entries[1].Level, entries[1].Data)
	}
}

func TestServerCORSPreflight(t *testing.T) {
	srv, _ := newTestServer(t)

	req, err := http.NewRequest(http.MethodOptions, srv.URL+lexiroadv1connect.UIServiceGetUIStateProcedure, nil)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Origin", "http://app.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "connect-protocol-version,content-type")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("preflight: %v", err)
	}
	resp.Body.Close()
	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "http://app.example.com" {
		t.Fatalf("expected origin to be allowed, got %q", got)
	}
	if got := strings.ToLower(resp.Header.Get("Access-Control-Allow-Headers")); !strings.Contains(got, "content-type") {
		t.Fatalf("expected requested headers to be allowed, got %q", got)
	}

	req.Header.Set("Origin", "http://evil.example.com")
	resp, err = http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("preflight: %v", err)
	}
	resp.Body.Close()
	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("expected unknown origin to be refused, got %q", got)
	}
}

func TestDetermineLogLevel(t *testing.T) {
	tests := []struct {
		code connect.Code
		err  bool
		want logrus.Level
	}{
		{want: logrus.InfoLevel},
		{code: connect.CodeNotFound, err: true, want: logrus.WarnLevel},
		{code: connect.CodeUnauthenticated, err: true, want: logrus.WarnLevel},
		{code: connect.CodeInternal, err: true, want: logrus.ErrorLevel},
	}
	for _, tt := range tests {
		var err error
		if tt.err {
			err = connect.NewError(tt.code, io.EOF)
		}
		if got := determineLogLevel(tt.code, err); got != tt.want {
			t.Fatalf("code %v: expected %v, got %v", tt.code, tt.want, got)
		}
	}
}

func TestApplyLogConfig(t *testing.T) {
	logger := logrus.New()
	if err := ApplyLogConfig(logger, config.LogConfig{Level: "debug", Format: "text"}); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if logger.GetLevel() != logrus.DebugLevel {
		t.Fatalf("expected debug level, got %v", logger.GetLevel())
	}
	if _, ok := logger.Formatter.(*logrus.TextFormatter); !ok {
		t.Fatalf("expected text formatter, got %T", logger.Formatter)
	}
	if err := ApplyLogConfig(logger, config.LogConfig{Level: "loud"}); err == nil {
		t.Fatalf("expected unknown level to be rejected")
	}
}
