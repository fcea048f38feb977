package cli

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/migrate"

	"trivia-quiz-service/internal/config"
	pgmigrations "trivia-quiz-service/internal/infra/postgres/migrations"
	"trivia-quiz-service/internal/logger"
)

// NewMigrateCmd applies database migrations.
func NewMigrateCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrations(cmd.Context(), *configPath)
		},
	}
}

func runMigrations(ctx context.Context, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	return runMigrationsWithConfig(ctx, cfg)
}

func runMigrationsWithConfig(ctx context.Context, cfg config.Config) error {
	if cfg.Postgres.URL == "" {
		return fmt.Errorf("postgres url not configured")
	}

	log := logger.Setup(cfg.Log.Level, cfg.Log.Format)

	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(cfg.Postgres.URL)))
	db := bun.NewDB(sqldb, pgdialect.New())
	defer db.Close()

	migrator := migrate.NewMigrator(db, pgmigrations.Migrations)

	if err := migrator.Init(ctx); err != nil {
		return err
	}

	group, err := migrator.Migrate(ctx)
	if err != nil {
		return err
	}
	log.Info().Str("group", group.String()).Msg("migrations applied")
	return nil
}
