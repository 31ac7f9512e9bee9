package gui

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/gojuno/minimock/v3"
	"github.com/stretchr/testify/assert"
	"max.ks1230/rub-converter/internal/entity/currency"
	"max.ks1230/rub-converter/internal/gui/mock"
	"max.ks1230/rub-converter/internal/model/conversion"
)

func newTestForm(t *testing.T, value float64) *Form {
	t.Helper()
	a := test.NewApp()
	t.Cleanup(a.Quit)

	m := minimock.NewController(t)
	t.Cleanup(m.Finish)
	config := mock.NewConfigMock(m)
	config.FieldWidthMock.Return(200)

	c := conversion.NewConverter(currency.Rate{Name: currency.USD, Value: value})
	return NewForm(c, config)
}

func Test_OnNewForm_ShouldShowRateLabel(t *testing.T) {
	f := newTestForm(t, 90)

	assert.Equal(t, "Курс USD: 90.00 RUB", f.rateLabel.Text)
	assert.True(t, f.resultEntry.Disabled())
	assert.Empty(t, f.resultEntry.Text)
	assert.Equal(t, "Конвертировать", f.convertButton.Text)
}

func Test_OnConvertTap_ShouldShowResult(t *testing.T) {
	f := newTestForm(t, 90)

	f.amountEntry.SetText("900")
	test.Tap(f.convertButton)

	assert.Equal(t, "10.00", f.resultEntry.Text)
	assert.Equal(t, "900", f.amountEntry.Text)
}

func Test_OnInvalidAmount_ShouldShowErrorText(t *testing.T) {
	f := newTestForm(t, 90)

	f.amountEntry.SetText("900")
	test.Tap(f.convertButton)
	f.amountEntry.SetText("abc")
	test.Tap(f.convertButton)

	assert.Equal(t, "Ошибка", f.resultEntry.Text)
	assert.Equal(t, "abc", f.amountEntry.Text)
}

func Test_OnNegativeAmount_ShouldConvertIt(t *testing.T) {
	f := newTestForm(t, 90)

	f.amountEntry.SetText("-50")
	test.Tap(f.convertButton)

	assert.Equal(t, "-0.56", f.resultEntry.Text)
}

func Test_OnRateText_ShouldRoundToTwoDecimals(t *testing.T) {
	assert.Equal(t, "Курс USD: 81.57 RUB", RateText(currency.Rate{Name: currency.USD, Value: 81.5668}))
}

func Test_OnConvertTap_ShouldPassEntryTextToConverter(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	m := minimock.NewController(t)
	defer m.Finish()
	converter := mock.NewConverterMock(m)
	config := mock.NewConfigMock(m)

	converter.RateMock.Return(currency.Rate{Name: currency.USD, Value: 81.5})
	converter.ConvertMock.Expect("900").Return("11.04")
	config.FieldWidthMock.Return(320)

	f := NewForm(converter, config)
	f.amountEntry.SetText("900")
	test.Tap(f.convertButton)

	assert.Equal(t, "Курс USD: 81.50 RUB", f.rateLabel.Text)
	assert.Equal(t, "11.04", f.resultEntry.Text)
	assert.Equal(t, uint64(1), converter.ConvertAfterCounter())
	assert.Equal(t, uint64(1), config.FieldWidthAfterCounter())
}
