package main

import (
	"context"
	"flag"
	"os"

	"github.com/joho/godotenv"

	"github.com/nammaelampillai-official/namma-elampillai/pkg/config"
	"github.com/nammaelampillai-official/namma-elampillai/pkg/db"
	"github.com/nammaelampillai-official/namma-elampillai/pkg/logger"
	"github.com/nammaelampillai-official/namma-elampillai/pkg/migrate"
)

func main() {
	dir := flag.String("dir", migrate.DefaultDir, "migrations directory")
	flag.Parse()

	command := "up"
	args := flag.Args()
	if len(args) > 0 {
		command = args[0]
		args = args[1:]
	}

	logg := logger.New(logger.Options{ServiceName: "migrate"})
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		logg.Warn(ctx, ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(ctx, "failed to load config", err)
		os.Exit(1)
	}

	client, err := db.New(ctx, cfg.DB, cfg.FeatureFlags, logg)
	if err != nil {
		logg.Error(ctx, "failed to connect to database", err)
		os.Exit(1)
	}
	defer func() { _ = client.Close() }()

	sqlDB, err := client.DB().DB()
	if err != nil {
		logg.Error(ctx, "failed to extract sql handle", err)
		os.Exit(1)
	}

	ctx = logg.WithFields(ctx, map[string]any{"command": command, "dir": *dir})
	if err := migrate.Run(ctx, sqlDB, *dir, command, args...); err != nil {
		logg.Error(ctx, "migration failed", err)
		os.Exit(1)
	}
	logg.Info(ctx, "migration complete")
}
