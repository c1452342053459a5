package server

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"connectrpc.com/connect"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"github.com/eslsoft/lexiroad/internal/infrastructure/config"
)

// Logger logs every unary call once it completed.
func Logger(logger *logrus.Logger) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()
			resp, err := next(ctx, req)

			duration := time.Since(start)
			code := connect.CodeOf(err)
			level := determineLogLevel(code, err)
			fields := buildLogFields(req, resp, code, duration, err)

			logger.WithContext(ctx).WithFields(fields).Log(level, "request completed")

			return resp, err
		}
	}
}

func determineLogLevel(code connect.Code, err error) logrus.Level {
	if err == nil {
		return logrus.InfoLevel
	}
	switch code {
	case connect.CodeInvalidArgument, connect.CodeFailedPrecondition, connect.CodeNotFound,
		connect.CodeAlreadyExists, connect.CodePermissionDenied, connect.CodeUnauthenticated,
		connect.CodeCanceled:
		return logrus.WarnLevel
	default:
		return logrus.ErrorLevel
	}
}

func buildLogFields(req connect.AnyRequest, resp connect.AnyResponse, code connect.Code, duration time.Duration, err error) logrus.Fields {
	status := "ok"
	if err != nil {
		status = code.String()
	}
	fields := requestFields(req, status, duration)
	for k, v := range responseFields(resp) {
		fields[k] = v
	}
	if err != nil {
		fields[logrus.ErrorKey] = err.Error()
	}
	return fields
}

func requestFields(req connect.AnyRequest, status string, duration time.Duration) logrus.Fields {
	fields := logrus.Fields{
		"procedure": req.Spec().Procedure,
		"status":    status,
		"duration":  duration.String(),
	}

	setString(fields, "http_method", req.HTTPMethod())
	setString(fields, "idempotency", req.Spec().IdempotencyLevel.String())

	peer := req.Peer()
	setString(fields, "peer_addr", peer.Addr)
	setString(fields, "protocol", peer.Protocol)

	header := req.Header()
	setString(fields, "user_agent", header.Get("User-Agent"))
	setString(fields, "request_id", header.Get("X-Request-Id"))
	setString(fields, "client_ip", clientIP(header))
	setString(fields, "content_type", header.Get("Content-Type"))

	fields["request_header_count"] = headerCount(header)
	if cl := contentLength(header); cl >= 0 {
		fields["request_bytes"] = cl
	}
	return fields
}

func responseFields(resp connect.AnyResponse) logrus.Fields {
	fields := logrus.Fields{}
	if resp == nil {
		return fields
	}
	if cl := contentLength(resp.Header()); cl >= 0 {
		fields["response_bytes"] = cl
	}
	if len(resp.Header()) > 0 {
		fields["response_header_count"] = headerCount(resp.Header())
	}
	return fields
}

func setString(fields logrus.Fields, key, value string) {
	if value == "" {
		return
	}
	fields[key] = value
}

// clientIP is the left-most X-Forwarded-For hop.
func clientIP(header http.Header) string {
	hops := strings.Split(header.Get("X-Forwarded-For"), ",")
	ip, _ := lo.Find(lo.Map(hops, func(h string, _ int) string { return strings.TrimSpace(h) }), func(h string) bool { return h != "" })
	return ip
}

func headerCount(header http.Header) int {
	return lo.SumBy(lo.Values(header), func(values []string) int { return len(values) })
}

// contentLength returns -1 when the header is absent or malformed.
func contentLength(header http.Header) int {
	n, err := strconv.Atoi(header.Get("Content-Length"))
	if err != nil {
		return -1
	}
	return n
}

// NewLogger builds a configured logrus logger from application config.
func NewLogger(cfg *config.Config) (*logrus.Logger, error) {
	logger := logrus.New()
	if err := ApplyLogConfig(logger, cfg.Log); err != nil {
		return nil, err
	}
	return logger, nil
}

// ApplyLogConfig sets level and formatter on an existing logger. It is used again on config reloads.
func ApplyLogConfig(logger *logrus.Logger, cfg config.LogConfig) error {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return fmt.Errorf("parse log level: %w", err)
	}
	logger.SetLevel(level)
	if cfg.Format == "text" {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	return nil
}
