package cli

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"trivia-quiz-service/internal/app"
	"trivia-quiz-service/internal/config"
	"trivia-quiz-service/internal/infra/memory"
	pgstore "trivia-quiz-service/internal/infra/postgres"
	redisstore "trivia-quiz-service/internal/infra/redis"
	"trivia-quiz-service/internal/logger"
	transport "trivia-quiz-service/internal/transport/http"
)

// NewStartCmd builds the CLI subcommand to start the server.
func NewStartCmd(configPath, port *string) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start the trivia quiz server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), *configPath, *port)
		},
	}
}

func runServer(ctx context.Context, configPath, portFlag string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	log := logger.Setup(cfg.Log.Level, cfg.Log.Format)

	if cfg.Postgres.URL != "" {
		if err := runMigrationsWithConfig(ctx, cfg); err != nil {
			return err
		}
	}

	finalPort := portFlag
	if finalPort == "" {
		finalPort = cfg.Server.Port
	}
	if finalPort == "" {
		finalPort = "8080"
	}

	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	}
	sessionTTL := config.TTLDuration(cfg.Redis.TTL, 10*time.Minute)

	var pool *pgxpool.Pool
	if cfg.Postgres.URL != "" {
		pool, err = pgxpool.Connect(ctx, cfg.Postgres.URL)
		if err != nil {
			return err
		}
		defer pool.Close()
	}

	batchSize := cfg.BatchSize()
	poolTTL := config.TTLDuration(cfg.Quiz.PoolTTL, 10*time.Minute)

	var questions app.QuestionStore
	if pool != nil {
		questions = pgstore.NewQuestionStore(pool, batchSize)
	} else {
		log.Warn().Msg("postgres not configured, serving built-in sample questions")
		questions = memory.NewQuestionStore(memory.NewStaticQuestionLoader(sampleQuestions()), batchSize, poolTTL)
	}

	var leaderboard app.LeaderboardStore
	if pool != nil {
		leaderboard = pgstore.NewLeaderboardStore(pool)
	} else {
		leaderboard = memory.NewLeaderboardStore()
	}
	if redisClient != nil {
		lbTTL := config.TTLDuration(cfg.Leaderboard.TTL, time.Minute)
		leaderboard = redisstore.NewLeaderboardCache(redisClient, leaderboard, lbTTL)
	}

	var sessions app.SessionRepository
	if redisClient != nil {
		sessions = redisstore.NewSessionStore(redisClient, sessionTTL)
	} else {
		sessions = memory.NewSessionStore()
	}

	service := app.NewGameService(sessions, questions, leaderboard, log)
	wsHandler := transport.NewWSHandler(service, cfg.TopN(), log)
	restHandler := transport.NewRESTHandler(questions, leaderboard, cfg.TopN(), log)

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	mux.HandleFunc("/ws", wsHandler.ServeWS)
	restHandler.Register(mux)

	// Read/write timeouts are left unset so websocket connections stay open.
	server := &http.Server{
		Addr:              ":" + finalPort,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("port", finalPort).Msg("starting trivia quiz service")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("failed to start server")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		log.Info().Msg("shutting down server")
	case <-ctx.Done():
		log.Info().Msg("context canceled, shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
