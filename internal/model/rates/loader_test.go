package rates

import (
	"context"
	"testing"

	"github.com/gojuno/minimock/v3"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/rub-converter/internal/entity/currency"
	"max.ks1230/rub-converter/internal/model/rates/mock"
)

func Test_OnLoad_ShouldAskProviderForUSD(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	provider := mock.NewRatesProviderMock(m)

	provider.GetRateMock.
		Inspect(func(ctx context.Context, code string) {
			assert.NotNil(m, ctx)
			assert.Equal(m, "USD", code)
		}).
		Return(currency.Rate{Name: currency.USD, Value: 90}, nil)

	rate, err := NewLoader(provider).Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 90.0, rate.Value)
	assert.Equal(t, currency.USD, rate.Name)
	assert.Equal(t, uint64(1), provider.GetRateAfterCounter())
}

func Test_OnProviderError_ShouldWrapIt(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	provider := mock.NewRatesProviderMock(m)

	cause := errors.New("connection refused")
	provider.GetRateMock.Return(currency.Rate{}, cause)

	_, err := NewLoader(provider).Load(context.Background())
	require.Error(t, err)

	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), "load rate")
	assert.Len(t, provider.GetRateMock.Calls(), 1)
}
