package conversion

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"max.ks1230/rub-converter/internal/entity/currency"
)

func newUSDConverter(value float64) *Converter {
	return NewConverter(currency.Rate{Name: currency.USD, Value: value})
}

func Test_OnConvert_ShouldFormatTwoDecimals(t *testing.T) {
	c := newUSDConverter(90)

	cases := map[string]string{
		"900":   "10.00",
		"0":     "0.00",
		"-50":   "-0.56",
		"1":     "0.01",
		"45":    "0.50",
		" 180 ": "2.00",
		"1e3":   "11.11",
		"99.9":  "1.11",
	}
	for input, want := range cases {
		assert.Equal(t, want, c.Convert(input), "input %q", input)
	}
}

func Test_OnNonNumericInput_ShouldReturnErrorText(t *testing.T) {
	inputs := []string{"abc", "", "   ", "12,5", "10 руб", "0x1p4", "-0X10", "+0x5", "1__000", "_1", "1_", "--5", "nan1"}

	for _, rate := range []float64{90, 1, 0.5} {
		c := newUSDConverter(rate)
		for _, input := range inputs {
			assert.Equal(t, "Ошибка", c.Convert(input), "input %q rate %v", input, rate)
		}
	}
}

func Test_OnNonFiniteInput_ShouldConvertLikeFloat(t *testing.T) {
	c := newUSDConverter(90)

	cases := map[string]string{
		"inf":       "inf",
		"Infinity":  "inf",
		"+INF":      "inf",
		"-inf":      "-inf",
		"1e400":     "inf",
		"-1e400":    "-inf",
		"nan":       "nan",
		"NaN":       "nan",
		"-nan":      "nan",
		"1e-400":    "0.00",
		" inf\t":    "inf",
		"1_000":     "11.11",
		"9_000.0_0": "100.00",
	}
	for input, want := range cases {
		assert.Equal(t, want, c.Convert(input), "input %q", input)
	}
}

func Test_OnAnyRate_ShouldDivideAmountByRate(t *testing.T) {
	rates := []float64{0.01, 1, 73.5, 90, 101.25}
	amounts := []float64{-1000, -0.5, 0, 1, 250.75, 1e6}

	for _, r := range rates {
		c := newUSDConverter(r)
		for _, v := range amounts {
			input := fmt.Sprint(v)
			assert.Equal(t, fmt.Sprintf("%.2f", v/r), c.Convert(input), "input %q rate %v", input, r)
		}
	}
}

func Test_OnRate_ShouldKeepLoadedValue(t *testing.T) {
	c := newUSDConverter(92.5)
	c.Convert("100")

	assert.Equal(t, 92.5, c.Rate().Value)
	assert.Equal(t, currency.USD, c.Rate().Name)
}
