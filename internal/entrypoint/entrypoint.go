package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/omelnyk/taleshelf/internal/config"
	"github.com/omelnyk/taleshelf/internal/database"
	"github.com/omelnyk/taleshelf/internal/database/authors"
	"github.com/omelnyk/taleshelf/internal/database/books"
	"github.com/omelnyk/taleshelf/internal/database/categories"
	"github.com/omelnyk/taleshelf/internal/database/fairytales"
	"github.com/omelnyk/taleshelf/internal/demo"
	http_controllers "github.com/omelnyk/taleshelf/internal/http"
	"github.com/omelnyk/taleshelf/internal/memory"
	"github.com/omelnyk/taleshelf/internal/scheduler"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

// Serve runs the HTTP server until an interrupt or termination signal,
// then shuts down within the configured timeout.
func Serve(handler http.Handler, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: handler,
	}

	go func() {
		log.Printf("Starting server at %s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if onShutdown != nil {
		onShutdown(ctx)
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Printf("Server exited")
}

// Run wires the storage, session, scheduler, and HTTP layers together
// and serves until shutdown.
func Run(cfg *config.Config, version string) {
	db, err := database.NewDatabase(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	var fairytaleStore http_controllers.FairytaleStore
	switch cfg.Database.Storage {
	case config.StorageMemory:
		log.Printf("Storage mode: memory (fairytales held in process)")
		repo := memory.NewFairytaleRepository()
		for _, tale := range demo.Fairytales() {
			t := tale
			if err := repo.Create(&t); err != nil {
				log.Fatalf("Failed to seed in-memory store: %v", err)
			}
		}
		fairytaleStore = repo
	default:
		fairytaleStore = fairytales.NewRepository(db.DB)
	}

	sqlDB, err := db.DB.DB()
	if err != nil {
		log.Fatalf("Failed to get SQL DB for sessions: %v", err)
	}
	sessions, err := http_controllers.NewSessionManager(sqlDB, cfg.Session.Lifetime, cfg.Session.SecureCookies)
	if err != nil {
		log.Fatalf("Failed to initialize session manager: %v", err)
	}

	var cleanup *scheduler.CleanupScheduler
	if cfg.Cleanup.Enabled {
		cleanup = scheduler.NewCleanupScheduler(db, cfg.Cleanup.Schedule)
		if err := cleanup.Start(context.Background()); err != nil {
			log.Fatalf("Failed to start cleanup scheduler: %v", err)
		}
	}

	router := http_controllers.NewRouter(http_controllers.RouterConfig{
		Fairytales:    fairytaleStore,
		Books:         books.NewRepository(db.DB),
		Authors:       authors.NewRepository(db.DB),
		Categories:    categories.NewRepository(db.DB),
		Database:      db,
		Sessions:      sessions,
		TemplatesPath: cfg.UI.TemplatesPath,
		StaticPath:    cfg.UI.StaticPath,
		StorageMode:   string(cfg.Database.Storage),
		Version:       version,
	})

	// Method override must sit outside the router so rewritten PUT and
	// DELETE requests match their routes; CSRF sits between the two so it
	// validates the effective method.
	var handler http.Handler = router
	if cfg.CSRF.Secret != "" {
		handler = http_controllers.CSRFProtect([]byte(cfg.CSRF.Secret), cfg.Session.SecureCookies, handler)
	} else {
		log.Printf("WARNING: CSRF protection is disabled. Set 'CSRF_SECRET' to enable it.")
	}
	handler = http_controllers.MethodOverride(handler)

	onShutdown := func(ctx context.Context) {
		if cleanup != nil {
			cleanup.Stop()
		}
	}

	Serve(handler, cfg, onShutdown)
}
