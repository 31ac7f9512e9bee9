package rates

import (
	"context"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/rub-converter/internal/entity/currency"
	"max.ks1230/rub-converter/internal/logger"
)

//go:generate minimock -i ratesProvider -o ./mock/rates_provider_mock.go -n RatesProviderMock -p mock

type ratesProvider interface {
	GetRate(ctx context.Context, code string) (currency.Rate, error)
}

// Loader fetches the USD rate once; the result is never refreshed.
type Loader struct {
	provider ratesProvider
}

func NewLoader(provider ratesProvider) *Loader {
	return &Loader{provider: provider}
}

func (l *Loader) Load(ctx context.Context) (currency.Rate, error) {
	logger.Info("Loading current rate...", zap.String("currency", currency.USD))

	span, ctx := opentracing.StartSpanFromContext(ctx, "loadRate")
	defer span.Finish()
	span.SetTag("currency", currency.USD)

	start := time.Now()
	rate, err := l.provider.GetRate(ctx, currency.USD)
	observeFetch(time.Since(start), err != nil)
	if err != nil {
		ext.Error.Set(span, true)
		return currency.Rate{}, errors.Wrap(err, "load rate")
	}

	logger.Info("Successfully loaded rate",
		zap.String("currency", rate.Name),
		zap.Float64("value", rate.Value),
		zap.Time("date", rate.Date))
	return rate, nil
}
