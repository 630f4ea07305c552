package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/advising-studio/engine/internal/repository"
	"github.com/advising-studio/engine/pkg/config"
	"github.com/advising-studio/engine/pkg/database"
	"github.com/advising-studio/engine/pkg/logger"
)

var confirmFlush bool

var rootCmd = &cobra.Command{
	Use:           "migrate <command>",
	Short:         "migrate manages the advising engine database schema and data.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var upCmd = &cobra.Command{
	Use:   "up",
	Short: "create or update tables and indexes",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(cmd.Context(), func(db *gorm.DB) error {
			if err := runMigrations(db); err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}
			logger.L().Info("migrations applied")
			return nil
		})
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "insert the default integrations if they are missing",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(cmd.Context(), func(db *gorm.DB) error {
			n, err := seedIntegrations(db)
			if err != nil {
				return fmt.Errorf("seed failed: %w", err)
			}
			logger.L().Info("integrations seeded", zap.Int64("inserted", n))
			return nil
		})
	},
}

var flushCmd = &cobra.Command{
	Use:   "flush --yes",
	Short: "IRREVERSIBLY delete every row of every domain table",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !confirmFlush {
			return fmt.Errorf("refusing to flush without --yes")
		}
		return withDB(cmd.Context(), func(db *gorm.DB) error {
			report, err := repository.NewMaintenanceRepository(db).Flush(cmd.Context())
			if err != nil {
				return err
			}
			logger.L().Warn("data flushed", zap.Any("deleted", report))
			return nil
		})
	},
}

func init() {
	flushCmd.Flags().BoolVar(&confirmFlush, "yes", false, "confirm the irreversible delete")
	rootCmd.AddCommand(upCmd, seedCmd, flushCmd)
}

func withDB(ctx context.Context, fn func(db *gorm.DB) error) error {
	db, err := database.OpenPostgres(ctx, config.Get().DatabaseURL, database.Options{MaxOpenConns: 2})
	if err != nil {
		return err
	}
	defer func() { _ = database.Close(db) }()
	return fn(db)
}

func main() {
	cfg := config.MustLoad()
	if _, err := logger.Init(cfg.LogLevel, cfg.LogFormat); err != nil {
		panic(err)
	}
	defer logger.Sync()

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "migrate: "+err.Error())
		logger.Sync()
		os.Exit(1)
	}
}
