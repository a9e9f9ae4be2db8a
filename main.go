package main

import (
	"encoding/json"
	"log"
	"net/http"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/NH-Homelab/subscription-report/internal/config"
	"github.com/NH-Homelab/subscription-report/internal/jwt"
	"github.com/NH-Homelab/subscription-report/internal/logger"
	"github.com/NH-Homelab/subscription-report/internal/pg_db"
	"github.com/NH-Homelab/subscription-report/internal/report"
	reporthandler "github.com/NH-Homelab/subscription-report/internal/reportHandler"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	zl, err := logger.NewLogger(cfg.LogFormat, cfg.LogLevel)
	if err != nil {
		log.Fatalf("Error building logger: %v", err)
	}
	defer zl.Sync()

	strategy, err := report.ParseStrategy(cfg.ReportStrategy)
	if err != nil {
		zl.Fatal("invalid report strategy", zap.Error(err))
	}

	pgDB, err := pg_db.NewPostgresDB(cfg.Postgres())
	if err != nil {
		zl.Fatal("failed to connect to database",
			zap.String("host", cfg.DBHost),
			zap.String("dbname", cfg.DBName),
			zap.Error(err))
	}
	defer pgDB.Close()

	runner := report.NewRunner(pgDB, strategy, zl)

	if cfg.HTTPAddr == "" {
		rows, err := runner.Run()
		if err != nil {
			zl.Fatal("report failed", zap.Error(err))
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(rows); err != nil {
			zl.Fatal("failed to write report", zap.Error(err))
		}
		return
	}

	var verifier *jwt.Verifier
	if cfg.JWTSecret != "" {
		verifier = jwt.NewVerifier(cfg.JWTSecret)
	} else {
		zl.Warn("JWT_SECRET is empty, report endpoint is unauthenticated")
	}

	mux := http.NewServeMux()
	reporthandler.NewReportHandler(runner, verifier, zl).RegisterHandlers(mux)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           reporthandler.LogRequest(zl, mux),
		ReadHeaderTimeout: 10 * time.Second,
	}

	zl.Info("serving application apis report",
		zap.String("addr", cfg.HTTPAddr),
		zap.String("path", reporthandler.ReportPath),
		zap.String("strategy", string(strategy)))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		zl.Fatal("server stopped", zap.Error(err))
	}
}
