package cbr

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/rub-converter/internal/entity/currency"
	"max.ks1230/rub-converter/internal/logger"
)

var ErrCurrencyNotFound = errors.New("currency not found in feed")

//go:generate minimock -i config -o ./mock/config_mock.go -n ConfigMock -p mock

type config interface {
	URL() string
	Timeout() time.Duration
}

type Client struct {
	url    string
	client *http.Client
}

type valute struct {
	CharCode string  `json:"CharCode"`
	Nominal  float64 `json:"Nominal"`
	Name     string  `json:"Name"`
	Value    float64 `json:"Value"`
}

type dailyResponse struct {
	Date   time.Time         `json:"Date"`
	Valute map[string]valute `json:"Valute"`
}

func New(cfg config) *Client {
	return &Client{
		url:    cfg.URL(),
		client: &http.Client{Timeout: cfg.Timeout()},
	}
}

// GetRate returns how many RUB one unit of code costs according to the daily feed.
func (c *Client) GetRate(ctx context.Context, code string) (currency.Rate, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return currency.Rate{}, errors.Wrap(err, "build request")
	}

	res, err := c.client.Do(req)
	if err != nil {
		return currency.Rate{}, errors.Wrap(err, "request daily rates")
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return currency.Rate{}, fmt.Errorf("daily rates: unexpected status %d", res.StatusCode)
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return currency.Rate{}, errors.Wrap(err, "read daily rates")
	}
	logger.Info("new response from cbr", zap.Int("bytes", len(body)))

	daily := dailyResponse{}
	err = json.Unmarshal(body, &daily)
	if err != nil {
		return currency.Rate{}, errors.Wrap(err, "unmarshalling response")
	}

	v, ok := daily.Valute[code]
	if !ok {
		return currency.Rate{}, errors.Wrap(ErrCurrencyNotFound, code)
	}
	if v.Nominal <= 0 || v.Value <= 0 {
		return currency.Rate{}, fmt.Errorf("invalid %s quote: value %v, nominal %v", code, v.Value, v.Nominal)
	}

	return currency.Rate{
		Name:  code,
		Value: v.Value / v.Nominal,
		Date:  daily.Date,
	}, nil
}
