package cbr

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gojuno/minimock/v3"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/rub-converter/internal/clients/cbr/mock"
)

const dailyJSON = `{
	"Date": "2024-05-16T11:30:00+03:00",
	"PreviousDate": "2024-05-15T11:30:00+03:00",
	"Timestamp": "2024-05-15T20:00:00+03:00",
	"Valute": {
		"USD": {"ID": "R01235", "NumCode": "840", "CharCode": "USD", "Nominal": 1, "Name": "Доллар США", "Value": 90.0, "Previous": 91.2},
		"JPY": {"ID": "R01820", "NumCode": "392", "CharCode": "JPY", "Nominal": 100, "Name": "Японских иен", "Value": 58.5, "Previous": 58.1}
	}
}`

func newConfig(t *testing.T, url string, timeout time.Duration) *mock.ConfigMock {
	t.Helper()
	m := minimock.NewController(t)
	t.Cleanup(m.Finish)

	return mock.NewConfigMock(m).
		URLMock.Return(url).
		TimeoutMock.Return(timeout)
}

func newFeed(t *testing.T, status int, body string) *Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return New(newConfig(t, srv.URL, 0))
}

func Test_OnGetRate_ShouldReturnUSDValue(t *testing.T) {
	client := newFeed(t, http.StatusOK, dailyJSON)

	rate, err := client.GetRate(context.Background(), "USD")
	require.NoError(t, err)

	assert.Equal(t, "USD", rate.Name)
	assert.Equal(t, 90.0, rate.Value)
	assert.Equal(t, 2024, rate.Date.Year())
	assert.Equal(t, time.May, rate.Date.Month())
	assert.Equal(t, 16, rate.Date.Day())
}

func Test_OnGetRate_ShouldDivideByNominal(t *testing.T) {
	client := newFeed(t, http.StatusOK, dailyJSON)

	rate, err := client.GetRate(context.Background(), "JPY")
	require.NoError(t, err)
	assert.InDelta(t, 0.585, rate.Value, 1e-9)
}

func Test_OnMissingCurrency_ShouldReturnNotFound(t *testing.T) {
	client := newFeed(t, http.StatusOK, `{"Valute": {}}`)

	_, err := client.GetRate(context.Background(), "USD")
	assert.True(t, errors.Is(err, ErrCurrencyNotFound))
}

func Test_OnNonOKStatus_ShouldFail(t *testing.T) {
	client := newFeed(t, http.StatusServiceUnavailable, dailyJSON)

	_, err := client.GetRate(context.Background(), "USD")
	assert.ErrorContains(t, err, "503")
}

func Test_OnMalformedPayload_ShouldFail(t *testing.T) {
	client := newFeed(t, http.StatusOK, `<ValCurs>`)

	_, err := client.GetRate(context.Background(), "USD")
	assert.ErrorContains(t, err, "unmarshalling response")
}

func Test_OnZeroValue_ShouldFail(t *testing.T) {
	client := newFeed(t, http.StatusOK, `{"Valute": {"USD": {"Nominal": 1, "Value": 0}}}`)

	_, err := client.GetRate(context.Background(), "USD")
	assert.ErrorContains(t, err, "invalid USD quote")
}

func Test_OnUnreachableFeed_ShouldFail(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := New(newConfig(t, url, time.Second)).GetRate(context.Background(), "USD")
	assert.ErrorContains(t, err, "request daily rates")
}

func Test_OnNew_ShouldUseConfiguredTimeout(t *testing.T) {
	client := New(newConfig(t, "http://127.0.0.1:1", 3*time.Second))

	assert.Equal(t, 3*time.Second, client.client.Timeout)
	assert.Equal(t, "http://127.0.0.1:1", client.url)
}
