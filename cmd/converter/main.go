package main

import (
	"context"

	"fyne.io/fyne/v2/app"
	"go.uber.org/zap"
	"max.ks1230/rub-converter/internal/clients/cbr"
	"max.ks1230/rub-converter/internal/config"
	"max.ks1230/rub-converter/internal/gui"
	"max.ks1230/rub-converter/internal/logger"
	"max.ks1230/rub-converter/internal/metrics"
	"max.ks1230/rub-converter/internal/model/conversion"
	"max.ks1230/rub-converter/internal/model/rates"
	"max.ks1230/rub-converter/internal/tracing"
)

const (
	appID       = "ru.ks1230.rub-converter"
	serviceName = "rub-converter"
)

func main() {
	logger.SetService(serviceName)
	defer logger.Sync()
	logger.Info("Converter init - start")

	conf, err := config.New()
	if err != nil {
		logger.Fatal("failed to init config", zap.Error(err))
	}

	closer, err := tracing.Init(serviceName)
	if err != nil {
		logger.Fatal("failed to init tracing", zap.Error(err))
	}
	defer closer.Close()

	if addr := conf.Metrics().Addr(); addr != "" {
		metricsServer := metrics.NewServer(addr)
		go metricsServer.Serve()
		defer metricsServer.Shutdown(context.Background())
	}

	a := app.NewWithID(appID)

	// the window stays hidden until the rate is known
	loader := rates.NewLoader(cbr.New(conf.Cbr()))
	rate, err := loader.Load(context.Background())
	if err != nil {
		logger.Fatal("failed to load rate", zap.Error(err))
	}

	form := gui.NewForm(conversion.NewConverter(rate), conf.App())

	logger.Info("Converter init - end")
	gui.ShowWindow(a, form)
	logger.Info("Converter window closed")
}
