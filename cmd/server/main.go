package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/dmitrijs2005/testdash/internal/logging"
	"github.com/dmitrijs2005/testdash/internal/server"
	"github.com/dmitrijs2005/testdash/internal/server/config"
)

func main() {
	ctx := context.Background()
	logger := logging.NewJSONLogger(os.Stdout, slog.LevelInfo)

	cfg := config.LoadConfig()
	app, err := server.NewApp(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "startup failed", "error", err)
		os.Exit(1)
	}

	app.Run(ctx)
}
