package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/HarborandVale/King-County-Survival-Guide-Demo/internal/api"
	"github.com/HarborandVale/King-County-Survival-Guide-Demo/internal/catalog"
	"github.com/HarborandVale/King-County-Survival-Guide-Demo/internal/eventlog"
	"github.com/HarborandVale/King-County-Survival-Guide-Demo/internal/intake"
	"github.com/HarborandVale/King-County-Survival-Guide-Demo/internal/profile"
	"github.com/HarborandVale/King-County-Survival-Guide-Demo/internal/ratelimit"
	"github.com/HarborandVale/King-County-Survival-Guide-Demo/internal/session"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	// Logger
	logger := mustBuildLogger(envOrDefault("HV_LOG_LEVEL", "info"))
	defer logger.Sync() //nolint:errcheck // best-effort flush

	// Config from env
	httpPort := envOrDefault("HV_HTTP_PORT", "8080")
	baseURL := envOrDefault("HV_BASE_URL", "http://localhost:"+httpPort)
	dataURL := os.Getenv("HV_DATA_URL")
	csvPath := envOrDefault("HV_CSV_PATH", "services.csv")
	jsonPath := envOrDefault("HV_JSON_PATH", "services.json")
	adminKey := os.Getenv("HV_ADMIN_KEY")
	eventCapacity := envOrDefaultInt("HV_EVENT_CAPACITY", 1000)
	intakeCapacity := envOrDefaultInt("HV_INTAKE_CAPACITY", 500)
	sessionTTLMin := envOrDefaultInt("HV_SESSION_TTL_MIN", 120)
	triageMaxHits := envOrDefaultInt("HV_TRIAGE_MAX_HITS", 10)
	triageWindowS := envOrDefaultInt("HV_TRIAGE_WINDOW_S", 60)
	eventMaxHits := envOrDefaultInt("HV_EVENT_MAX_HITS", 60)
	eventWindowS := envOrDefaultInt("HV_EVENT_WINDOW_S", 60)

	logger.Info("starting directory server",
		zap.String("http_port", httpPort),
		zap.String("data_url", dataURL),
		zap.String("csv_path", csvPath),
		zap.String("json_path", jsonPath),
		zap.Bool("admin_enabled", adminKey != ""),
	)

	// Catalog: remote CSV, local CSV, local JSON, then built-in fallback.
	// The server always starts, whatever the data situation.
	loader := &catalog.Loader{
		RemoteURL: dataURL,
		CSVPath:   csvPath,
		JSONPath:  jsonPath,
		Logger:    logger,
	}
	loadCtx, cancelLoad := context.WithTimeout(context.Background(), 15*time.Second)
	cat, report := loader.Load(loadCtx)
	cancelLoad()
	logger.Info("catalog loaded",
		zap.String("source", report.SourceTag),
		zap.Int("accepted", report.Accepted),
		zap.Int("skipped", len(report.Skipped)),
	)

	// Sessions: the case-manager account comes from env; without one the
	// dashboard endpoints simply reject every login.
	sessions := session.NewStore(time.Duration(sessionTTLMin) * time.Minute)
	cmUser := os.Getenv("HV_CASE_MANAGER_USER")
	cmPass := os.Getenv("HV_CASE_MANAGER_PASSWORD")
	if cmUser != "" && cmPass != "" {
		if err := sessions.AddUser(cmUser, cmPass); err != nil {
			logger.Fatal("failed to register case manager account", zap.Error(err))
		}
		logger.Info("case manager account registered", zap.String("username", cmUser))
	} else {
		logger.Info("no case manager account configured, dashboard login disabled")
	}

	deps := &api.Dependencies{
		Catalog:       catalog.NewHolder(cat),
		Events:        eventlog.New(eventCapacity, eventlog.DefaultAllowedTypes()),
		Intakes:       intake.NewStore(intakeCapacity),
		Limiter:       ratelimit.New(),
		Sessions:      sessions,
		Profiles:      profile.NewStore(),
		Logger:        logger,
		AdminKey:      adminKey,
		BaseURL:       baseURL,
		TriageMaxHits: triageMaxHits,
		TriageWindow:  time.Duration(triageWindowS) * time.Second,
		EventMaxHits:  eventMaxHits,
		EventWindow:   time.Duration(eventWindowS) * time.Second,
	}

	httpServer := &http.Server{
		Addr:         ":" + httpPort,
		Handler:      api.NewRouter(deps),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	go func() {
		logger.Info("http server listening", zap.String("addr", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("http server failed", zap.Error(err))
		}
	}()

	// Block until shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	logger.Info("received signal, shutting down", zap.String("signal", sig.String()))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", zap.Error(err))
	}

	logger.Info("directory server stopped")
}

func mustBuildLogger(level string) *zap.Logger {
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.InfoLevel
	}

	cfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      false,
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	logger, err := cfg.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to build logger: %v", err))
	}
	return logger
}

func envOrDefault(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func envOrDefaultInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}
