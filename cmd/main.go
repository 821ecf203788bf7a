package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/wonjunee/essayblog/internal/api/http/handler"
	"github.com/wonjunee/essayblog/internal/api/http/router"
	"github.com/wonjunee/essayblog/internal/auth"
	"github.com/wonjunee/essayblog/internal/config"
	"github.com/wonjunee/essayblog/internal/logger"
	"github.com/wonjunee/essayblog/internal/repository/postgres"
	"github.com/wonjunee/essayblog/internal/server"
	"github.com/wonjunee/essayblog/internal/service"
	"github.com/wonjunee/essayblog/internal/session"
	"github.com/wonjunee/essayblog/internal/view"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer db.Close()

	userRepo := postgres.NewUserRepository(db)
	postRepo := postgres.NewPostRepository(db)
	commentRepo := postgres.NewCommentRepository(db)

	allowlist := auth.NewOwnerAllowlist(cfg.Blog.Owner)
	sessions := session.NewManager(userRepo, cfg.Session.Secret, cfg.Session.CookieName)

	identityService := service.NewIdentity(userRepo, allowlist, logger)
	contentService := service.NewContent(postRepo, commentRepo, logger)

	renderer, err := view.New(logger)
	if err != nil {
		logger.Fatal("failed to parse templates", "error", err)
	}

	h := handler.New(identityService, contentService, sessions, allowlist, renderer, logger)
	r := router.New(h, sessions, logger)

	httpServer := server.NewHTTPServer(r.Register(), fmt.Sprintf(":%s", cfg.HTTP.Port))

	var sl server.SecurityLayer
	if cfg.HTTP.EnableHTTPS {
		sl = server.NewTLSListener(cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)
	} else {
		sl = server.NewPlainListener()
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s *server.HTTPServer) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address())
		if err := s.Start(sl); err != nil {
			logger.Error("failed to start server", "error", err)
		}
	}(httpServer)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpServer.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", httpServer.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
