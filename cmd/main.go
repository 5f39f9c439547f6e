package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/joho/godotenv"

	httpctx "github.com/dtroode/postboard-server/internal/api/http/context"
	"github.com/dtroode/postboard-server/internal/api/http/router"
	httpServer "github.com/dtroode/postboard-server/internal/api/http/server"
	"github.com/dtroode/postboard-server/internal/config"
	"github.com/dtroode/postboard-server/internal/logger"
	"github.com/dtroode/postboard-server/internal/model"
	filerepo "github.com/dtroode/postboard-server/internal/repository/file"
	"github.com/dtroode/postboard-server/internal/repository/postgres"
	"github.com/dtroode/postboard-server/internal/server"
	"github.com/dtroode/postboard-server/internal/service"
	storage "github.com/dtroode/postboard-server/internal/storage/file"
	"github.com/dtroode/postboard-server/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

// collections holds every flat-file collection the server serves.
var collections = []string{"users", "comments", "posts"}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	_ = godotenv.Load()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	var (
		userStore    model.UserStore
		commentStore model.CommentStore
		postStore    model.PostStore
	)

	if cfg.Store.DSN != "" {
		db, err := postgres.NewConnection(ctx, cfg.Store.DSN)
		if err != nil {
			logger.Fatal("failed to initialize storage", "error", err)
		}
		defer db.Close()

		userStore = postgres.NewUserRepository(db)
		commentStore = postgres.NewCommentRepository(db)
		postStore = postgres.NewPostRepository(db)
	} else {
		store, err := storage.NewStore(cfg.Store.Dir)
		if err != nil {
			logger.Fatal("failed to initialize storage", "error", err)
		}
		for _, collection := range collections {
			if err := store.Ensure(collection); err != nil {
				logger.Fatal("failed to initialize collection", "collection", collection, "error", err)
			}
		}

		userStore = filerepo.NewUserRepository(store)
		commentStore = filerepo.NewCommentRepository(store)
		postStore = filerepo.NewPostRepository(store)
	}

	tokenManager := token.NewJWT(cfg.JWT.Secret, cfg.JWT.TokenTTL)
	contextManager := httpctx.NewManager()

	authService := service.NewAuth(userStore, tokenManager, logger)
	commentService := service.NewComment(userStore, commentStore, logger)
	catalogService := service.NewCatalog(userStore, postStore, logger)

	r := router.New(authService, commentService, catalogService, tokenManager, contextManager, cfg.CORS.AllowedOrigins, logger)
	srv := httpServer.NewHTTPServer(r.Register(), fmt.Sprintf(":%s", cfg.HTTP.Port))

	var sl model.SecurityLayer

	if cfg.HTTP.EnableHTTPS {
		sl = server.NewTLSListener(cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)
	} else {
		sl = server.NewPlainListener()
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address())
		err := s.Start(sl)
		if err != nil {
			logger.Error("failed to start server", "error", err)
		}
	}(srv)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", srv.Address())
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
