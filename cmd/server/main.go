package main

import (
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"healthcare-chatbot/internal/agent"
	"healthcare-chatbot/internal/auth"
	"healthcare-chatbot/internal/config"
	"healthcare-chatbot/internal/consultation"
	"healthcare-chatbot/internal/dialogue"
	"healthcare-chatbot/internal/knowledge"
	"healthcare-chatbot/internal/platform/telegram"
	"healthcare-chatbot/internal/report"
	"healthcare-chatbot/internal/summary"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("load config", zap.Error(err))
	}

	// 1. Infrastructure
	var db *sql.DB
	for i := 0; i < 10; i++ {
		db, err = sql.Open("postgres", cfg.DatabaseURL)
		if err == nil {
			err = db.Ping()
		}
		if err == nil {
			break
		}
		logger.Info("waiting for database", zap.Int("attempt", i+1))
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		logger.Fatal("connect to database", zap.Error(err))
	}
	logger.Info("connected to database")

	m, err := migrate.New("file://migrations", cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("init migrations", zap.Error(err))
	}
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		logger.Fatal("run migrations", zap.Error(err))
	}
	logger.Info("migrations applied")

	// 2. Clients
	sttClient := agent.NewWhisperClient(cfg.SpeechServiceURL)
	ttsClient := agent.NewSpeechClient(cfg.SpeechServiceURL)
	translateClient := agent.NewTranslateClient(cfg.TranslateServiceURL, cfg.TranslateTimeout)
	tgClient := telegram.NewClient(cfg.TelegramBotToken)

	// 3. Services
	base := knowledge.Base()
	matcher := knowledge.NewMatcher(base)
	controller := dialogue.NewController(matcher)
	renderer := summary.NewRenderer()

	if cfg.ClinicianChatID == 0 {
		logger.Warn("CLINICIAN_CHAT_ID is not set, summary sheets will not be forwarded")
	}
	reportSvc := report.NewService(tgClient, cfg.ClinicianChatID, logger)

	authRepo := auth.NewRepository(db)
	authSvc := auth.NewService(authRepo, cfg.TokenTTL)
	authHandler := auth.NewHandler(authSvc)
	requireAuth := auth.Middleware(authSvc)

	consultRepo := consultation.NewRepository(db)
	consultSvc := consultation.NewService(
		consultRepo, controller, renderer, translateClient,
		sttClient, ttsClient, reportSvc, logger,
	)
	consultHandler := consultation.NewHandler(consultSvc, authSvc)

	// 4. Router
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS for frontend
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE")
			w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization")
			if r.Method == "OPTIONS" {
				return
			}
			next.ServeHTTP(w, r)
		})
	})

	r.Route("/auth", func(r chi.Router) {
		auth.RegisterRoutes(r, authHandler, requireAuth)
	})
	r.Route("/api", func(r chi.Router) {
		consultation.RegisterRoutes(r, consultHandler, requireAuth)
	})

	addr := fmt.Sprintf(":%d", cfg.Port)
	logger.Info("server starting", zap.String("addr", addr))
	if err := http.ListenAndServe(addr, r); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
