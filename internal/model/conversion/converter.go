package conversion

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/rub-converter/internal/entity/currency"
	"max.ks1230/rub-converter/internal/logger"
)

// ErrorText is shown instead of a result when the amount cannot be parsed.
const ErrorText = "Ошибка"

var (
	errHexAmount      = errors.New("hexadecimal amounts are not accepted")
	errMisplacedDigit = errors.New("underscore must separate two digits")
)

type Converter struct {
	rate currency.Rate
}

func NewConverter(rate currency.Rate) *Converter {
	return &Converter{rate: rate}
}

func (c *Converter) Rate() currency.Rate {
	return c.rate
}

// Convert turns a RUB amount typed by the user into the target currency
// with two decimals. Negative, zero and infinite amounts are converted as is.
func (c *Converter) Convert(input string) string {
	amount, err := parseAmount(input)
	if err != nil {
		logger.Warn("cannot parse amount", zap.String("input", input), zap.Error(err))
		observeConversion(false)
		return ErrorText
	}

	observeConversion(true)
	return formatAmount(convertFromBase(amount, c.rate.Value))
}

// parseAmount accepts decimal notation with an optional sign and exponent,
// inf/infinity/nan in any case, and underscores between digits.
// Out-of-range values become ±Inf.
func parseAmount(input string) (float64, error) {
	s := strings.TrimSpace(input)

	unsigned := s
	if strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		unsigned = s[1:]
	}
	if strings.HasPrefix(unsigned, "0x") || strings.HasPrefix(unsigned, "0X") {
		return 0, errHexAmount
	}
	if strings.EqualFold(unsigned, "nan") {
		return math.NaN(), nil
	}

	s, err := dropDigitSeparators(s)
	if err != nil {
		return 0, err
	}

	amount, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, err
	}
	return amount, nil
}

func dropDigitSeparators(s string) (string, error) {
	if !strings.Contains(s, "_") {
		return s, nil
	}
	for i := 0; i < len(s); i++ {
		if s[i] != '_' {
			continue
		}
		if i == 0 || i == len(s)-1 || !isDigit(s[i-1]) || !isDigit(s[i+1]) {
			return "", errMisplacedDigit
		}
	}
	return strings.ReplaceAll(s, "_", ""), nil
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func formatAmount(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	return fmt.Sprintf("%.2f", v)
}

func convertFromBase(amount float64, rate float64) float64 {
	return amount / rate
}
