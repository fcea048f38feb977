package cli

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	"trivia-quiz-service/internal/config"
	"trivia-quiz-service/internal/logger"
)

// NewSeedCmd inserts the built-in sample questions into postgres.
func NewSeedCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Seed the questions table with the built-in sample set",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(cmd.Context(), *configPath)
		},
	}
}

func runSeed(ctx context.Context, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if cfg.Postgres.URL == "" {
		return fmt.Errorf("postgres url not configured")
	}
	if err := runMigrationsWithConfig(ctx, cfg); err != nil {
		return err
	}

	log := logger.Setup(cfg.Log.Level, cfg.Log.Format)

	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(cfg.Postgres.URL)))
	db := bun.NewDB(sqldb, pgdialect.New())
	defer db.Close()

	seeded := 0
	for _, q := range sampleQuestions() {
		data, err := json.Marshal(q)
		if err != nil {
			return fmt.Errorf("marshal question %d: %w", q.ID, err)
		}
		if _, err := db.ExecContext(ctx,
			`INSERT INTO questions (data) VALUES (?::jsonb)`, string(data)); err != nil {
			return fmt.Errorf("insert question %d: %w", q.ID, err)
		}
		seeded++
	}
	log.Info().Int("count", seeded).Msg("sample questions seeded")
	return nil
}
