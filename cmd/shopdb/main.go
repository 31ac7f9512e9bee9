package main

import (
	"context"
	"os"
	"os/signal"

	"go.uber.org/zap"
	"max.ks1230/rub-converter/internal/config"
	"max.ks1230/rub-converter/internal/logger"
	"max.ks1230/rub-converter/internal/model/storage"
	"max.ks1230/rub-converter/internal/tracing"
)

const serviceName = "shopdb"

func main() {
	logger.SetService(serviceName)
	defer logger.Sync()
	logger.Info("Schema init - start")

	conf, err := config.New()
	if err != nil {
		logger.Fatal("failed to init config", zap.Error(err))
	}

	closer, err := tracing.Init(serviceName)
	if err != nil {
		logger.Fatal("failed to init tracing", zap.Error(err))
	}
	defer closer.Close()

	db, err := storage.NewStorage(conf.Database())
	if err != nil {
		logger.Fatal("failed to open database", zap.String("path", conf.Database().Path()), zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("failed to close database", zap.Error(err))
		}
	}()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err = db.EnsureSchema(ctx); err != nil {
		logger.Fatal("failed to ensure schema", zap.Error(err))
	}

	tables, err := db.Tables(ctx)
	if err != nil {
		logger.Fatal("failed to list tables", zap.Error(err))
	}

	logger.Info("Schema init - end",
		zap.String("path", conf.Database().Path()),
		zap.Strings("tables", tables))
}
