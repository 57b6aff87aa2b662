package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/clubebrotos/consultant-portal/internal/infrastructure/db/mongo"
	"github.com/clubebrotos/consultant-portal/internal/pkg/config"
	"github.com/clubebrotos/consultant-portal/pkg/logger"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the MongoDB indexes the portal relies on",
	RunE: func(cmd *cobra.Command, args []string) error {
		return migrate(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func migrate(ctx context.Context) error {
	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: cfg.LogPretty, Service: "consultant-portal"})

	client, db, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		return err
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	if err := mongo.NewConsultantRepository(db).EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("consultants indexes: %w", err)
	}
	if err := mongo.NewIdentityRepository(db).EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("identities indexes: %w", err)
	}

	log.Info().Str("database", cfg.Mongo.Database).Msg("indexes ensured")
	return nil
}
