/*
Copyright © 2025 Ambor <saltbo@foxmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/eslsoft/lexiroad/internal/app"
	"github.com/eslsoft/lexiroad/internal/infrastructure/config"
	"github.com/eslsoft/lexiroad/internal/infrastructure/server"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Connect API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		container, cleanup, err := app.Initialize(cfg)
		if err != nil {
			return fmt.Errorf("initialize app: %w", err)
		}
		defer cleanup()

		logger := container.Logger
		config.Watch(func(next *config.Config, e fsnotify.Event) {
			if err := server.ApplyLogConfig(logger, next.Log); err != nil {
				logger.WithError(err).Warn("ignoring invalid log config")
				return
			}
			logger.WithField("file", e.Name).Infof("config reloaded, log level %s", logger.GetLevel())
		})

		st := container.Store.Snapshot()
		logger.WithFields(logrus.Fields{
			"seed":         cfg.Seed.Source,
			"dictionaries": len(st.Dictionaries),
			"grammars":     len(st.Grammars),
			"roadmaps":     len(st.Roadmaps),
		}).Info("store ready")

		srv := container.Server
		errCh := make(chan error, 1)
		go func() { errCh <- srv.Start() }()

		// Graceful shutdown
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		select {
		case sig := <-sigCh:
			logger.Infof("received signal: %s, shutting down", sig)
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return srv.Shutdown(ctx)
		case err := <-errCh:
			return err
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("host", "", "listen host (default localhost)")
	serveCmd.Flags().Int("port", 0, "HTTP port (default 8080)")
	serveCmd.Flags().String("sign-in", "", "(dev) id of the user signed in at startup")

	bindFlagToViper("server.host", serveCmd.Flags().Lookup("host"))
	bindFlagToViper("server.http_port", serveCmd.Flags().Lookup("port"))
	bindFlagToViper("session.auto_sign_in", serveCmd.Flags().Lookup("sign-in"))
}
