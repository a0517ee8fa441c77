package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/privacyshield/linkscanner/internal/application"
	appanalysis "github.com/privacyshield/linkscanner/internal/application/analysis"
	appfeedback "github.com/privacyshield/linkscanner/internal/application/feedback"
	"github.com/privacyshield/linkscanner/internal/config"
	domanalysis "github.com/privacyshield/linkscanner/internal/domain/analysis"
	domfeedback "github.com/privacyshield/linkscanner/internal/domain/feedback"
	"github.com/privacyshield/linkscanner/internal/infra/ai"
	mysqldb "github.com/privacyshield/linkscanner/internal/infra/db/mysql"
	postgresdb "github.com/privacyshield/linkscanner/internal/infra/db/postgres"
	pythonexec "github.com/privacyshield/linkscanner/internal/infra/executor/python"
	"github.com/privacyshield/linkscanner/internal/infra/httpserver"
	minioStore "github.com/privacyshield/linkscanner/internal/infra/storage"
	"github.com/privacyshield/linkscanner/internal/middleware"
)

func main() {
	// path config.yaml
	path := "config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		path = v
	}

	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}

	ctx := context.Background()
	checkers := map[string]middleware.HealthChecker{}

	// optional database (feedback audit trail)
	var db *sql.DB
	var feedbackRepo domfeedback.Repository
	switch cfg.Database.Driver {
	case "mysql":
		db, err = mysqldb.Connect(ctx, cfg.MySQLDSN())
		if err != nil {
			log.Fatalf("mysql connect error: %v", err)
		}
		feedbackRepo = mysqldb.NewFeedbackRepository(db)
	case "postgres":
		db, err = postgresdb.Connect(ctx, cfg.PostgresDSN())
		if err != nil {
			log.Fatalf("postgres connect error: %v", err)
		}
		feedbackRepo = postgresdb.NewFeedbackRepository(db)
	case "":
		// no persistence; reports still reach the trainer
	default:
		log.Fatalf("unknown database driver: %s", cfg.Database.Driver)
	}
	if db != nil {
		defer db.Close()
		checkers["database"] = &middleware.DatabaseHealthChecker{DB: db}
	}

	// optional dataset snapshot store
	var datasets domfeedback.DatasetStore
	if cfg.Minio.Endpoint != "" {
		store, err := minioStore.New(ctx,
			cfg.Minio.Endpoint,
			cfg.Minio.Region,
			cfg.Minio.BucketName,
			cfg.Minio.AccessKey,
			cfg.Minio.SecretKey,
			cfg.Minio.UseSSL,
		)
		if err != nil {
			log.Fatalf("minio init error: %v", err)
		}
		datasets = store
	}

	// optional local scorer
	var scorer domanalysis.Scorer
	if cfg.HasScorer() {
		scorer = pythonexec.NewScorerRunner(
			cfg.Scorer.PythonBin,
			cfg.Scorer.Script,
			time.Duration(cfg.Scorer.TimeoutSeconds)*time.Second,
		)
		checkers["scorer_script"] = &middleware.FileHealthChecker{Path: cfg.Scorer.Script}
	}

	classifier, err := ai.NewClassifier(cfg, scorer)
	if err != nil {
		log.Fatalf("classifier init error: %v", err)
	}
	log.Printf("classifier mode: %s", cfg.ResolveMode())

	analysisSvc := appanalysis.NewService(classifier)

	var trainer domfeedback.Trainer
	if cfg.Trainer.Script != "" {
		trainer = pythonexec.NewTrainerRunner(
			cfg.Scorer.PythonBin,
			cfg.Trainer.Script,
			time.Duration(cfg.Trainer.TimeoutSeconds)*time.Second,
		)
	} else {
		trainer = noopTrainer{}
	}
	feedbackSvc := &appfeedback.Service{
		Trainer:     trainer,
		Repo:        feedbackRepo,
		Datasets:    datasets,
		DatasetPath: cfg.Trainer.DatasetPath,
		Clock:       application.SystemClock{},
	}

	limiter := middleware.NewRateLimiter(10, 2)

	mux := chi.NewRouter()
	mux.Mount("/", httpserver.NewRouter(analysisSvc, feedbackSvc, cfg.Client.Origin, limiter, checkers))

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("server listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	log.Println("shutting down server...")

	ctx2, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx2); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}

// noopTrainer keeps the report endpoint functional when no retrain
// script is configured; the signal is acknowledged and dropped.
type noopTrainer struct{}

func (noopTrainer) Train(_ context.Context, url string, isMalicious bool) (string, error) {
	log.Printf("trainer not configured, dropping feedback for %s (malicious=%t)", url, isMalicious)
	return "", nil
}
