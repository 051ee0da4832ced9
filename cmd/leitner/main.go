package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/conorfennell/leitner/internal/auth"
	"github.com/conorfennell/leitner/internal/config"
	"github.com/conorfennell/leitner/internal/deck"
	httpx "github.com/conorfennell/leitner/internal/http"
	"github.com/conorfennell/leitner/internal/logging"
	"github.com/conorfennell/leitner/internal/service"
	"github.com/conorfennell/leitner/internal/storage"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

func main() {
	flags := config.NewFlagSet("leitner")
	importFrom := flags.String("import-from", "", "import decks from a directory or git URL, then exit")
	owner := flags.String("owner", "", "owner id for --import-from")
	tokenFor := flags.String("token-for", "", "print a bearer token for this owner id, then exit")
	if err := flags.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		log.Fatal(err)
	}

	cfg, err := config.Load(flags)
	if err != nil {
		log.Fatal("failed to load config: " + err.Error())
	}

	logger, err := logging.New(cfg.Env, cfg.Log.Level)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	jwtSvc := auth.NewJWT(cfg.Auth.Secret, cfg.Auth.TTL)
	if *tokenFor != "" {
		token, err := jwtSvc.Sign(*tokenFor)
		if err != nil {
			logger.Fatal("failed to sign token", zap.Error(err))
		}
		fmt.Println(token)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := storage.Open(ctx, cfg.DB.Driver, cfg.DB.DSN, cfg.DB.MaxOpen)
	if err != nil {
		logger.Fatal("failed to open database", zap.String("driver", cfg.DB.Driver), zap.Error(err))
	}
	defer db.Close()

	svc := service.New(db, logger, service.WithLocation(cfg.Schedule.Location))
	importer := deck.NewImporter(svc, cfg.Import.ReposDir, logger)

	if *importFrom != "" {
		if *owner == "" {
			logger.Fatal("--owner is required with --import-from")
		}
		report, err := importer.ImportSource(ctx, *owner, *importFrom)
		if err != nil {
			logger.Fatal("import failed", zap.String("source", *importFrom), zap.Error(err))
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(report)
		return
	}

	srv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           httpx.NewRouter(*cfg, svc, importer, jwtSvc, logger),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("listening", zap.String("addr", cfg.HTTP.Addr), zap.String("timezone", cfg.Schedule.Location.String()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	// graceful shutdown
	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", zap.Error(err))
	}
	logger.Info("stopped")
}
