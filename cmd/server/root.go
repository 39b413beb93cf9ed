package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/schaltkraft/website/internal/cms"
	"github.com/schaltkraft/website/internal/config"
	"github.com/schaltkraft/website/internal/contact"
	"github.com/schaltkraft/website/internal/web"
)

var (
	flagPort       string
	flagContentDir string
	flagDebug      bool
)

var rootCmd = &cobra.Command{
	Use:          "website",
	Short:        "Serve the Schaltkraft website",
	Long:         "Renders the company website from CMS content and relays contact form submissions.",
	SilenceUsage: true,
	RunE:         runServe,
}

func init() {
	rootCmd.Flags().StringVar(&flagPort, "port", "", "listen port (overrides PORT)")
	rootCmd.Flags().StringVar(&flagContentDir, "content-dir", "", "content directory (overrides CONTENT_DIR)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "enable debug logging")
	rootCmd.AddCommand(segmentCmd)
}

func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if flagDebug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}

func runServe(cmd *cobra.Command, args []string) error {
	log := newLogger()

	cfg := config.Load()
	if flagPort != "" {
		cfg.Port = flagPort
	}
	if flagContentDir != "" {
		cfg.ContentDir = flagContentDir
	}
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	var live *web.LiveReload
	if cfg.LiveReload {
		live = web.NewLiveReload(log)
	}

	// Content source: local files win over the remote CMS. Either way the
	// pages are served through the TTL cache.
	var (
		source   cms.Source
		cmsClose func()
	)
	if cfg.ContentDir != "" {
		files, err := cms.NewFileSource(cfg.ContentDir, log)
		if err != nil {
			return fmt.Errorf("load content: %w", err)
		}
		source = files
	} else {
		client := cms.NewClient(cfg.CMSURL, cfg.CMSAPIKey, log)
		source = client
		cmsClose = client.Close
	}
	cached := cms.NewCached(source, cfg.CMSCacheTTL)
	go cached.Run(ctx)

	if files, ok := source.(*cms.FileSource); ok {
		go func() {
			err := files.Watch(ctx, func() {
				cached.Invalidate()
				log.Info("content reloaded", "dir", cfg.ContentDir)
				if live != nil {
					live.Broadcast()
				}
			})
			if err != nil {
				log.Error("content watcher stopped", "error", err)
			}
		}()
	}

	stats := contact.NewStats(cfg.StatsWindow)
	relay := contact.NewRelay(cfg.FormEndpoint, &http.Client{Timeout: cfg.FormTimeout}, stats, log)

	srv := web.NewServer(cached, relay, stats, live, log, cfg)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")

		cancel()
		if live != nil {
			live.Close()
		}

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		httpServer.Shutdown(shutdownCtx)

		relay.Close()
		if cmsClose != nil {
			cmsClose()
		}
	}()

	log.Info("starting website", "port", cfg.Port, "content_dir", cfg.ContentDir, "cms_url", cfg.CMSURL, "live_reload", cfg.LiveReload)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", "error", err)
		return err
	}
	return nil
}
