package gui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"max.ks1230/rub-converter/internal/entity/currency"
)

const (
	Title = "Конвертер RUB/USD"

	amountLabel   = "Рубли"
	resultLabel   = "Доллары"
	convertAction = "Конвертировать"
)

//go:generate minimock -i converter -o ./mock/converter_mock.go -n ConverterMock -p mock
//go:generate minimock -i config -o ./mock/config_mock.go -n ConfigMock -p mock

type converter interface {
	Convert(input string) string
	Rate() currency.Rate
}

type config interface {
	FieldWidth() float32
}

// Form is the single conversion screen: one amount entry, one read-only
// result entry and a button that triggers the conversion.
type Form struct {
	converter converter

	rateLabel     *widget.Label
	amountEntry   *widget.Entry
	resultEntry   *widget.Entry
	convertButton *widget.Button
	container     *fyne.Container
}

func NewForm(converter converter, config config) *Form {
	f := &Form{converter: converter}
	f.setupComponents()
	f.setupLayout(config.FieldWidth())
	return f
}

func RateText(rate currency.Rate) string {
	return fmt.Sprintf("Курс %s: %.2f %s", rate.Name, rate.Value, currency.RUB)
}

func (f *Form) setupComponents() {
	f.rateLabel = widget.NewLabel(RateText(f.converter.Rate()))

	f.amountEntry = widget.NewEntry()
	f.amountEntry.SetPlaceHolder(amountLabel)

	f.resultEntry = widget.NewEntry()
	f.resultEntry.SetPlaceHolder(resultLabel)
	f.resultEntry.Disable()

	f.convertButton = widget.NewButton(convertAction, f.onConvert)
	f.convertButton.Importance = widget.HighImportance
}

func (f *Form) setupLayout(width float32) {
	size := fyne.NewSize(width, f.amountEntry.MinSize().Height)

	fields := widget.NewForm(
		widget.NewFormItem(amountLabel, container.NewGridWrap(size, f.amountEntry)),
		widget.NewFormItem(resultLabel, container.NewGridWrap(size, f.resultEntry)),
	)

	f.container = container.NewCenter(container.NewVBox(
		f.rateLabel,
		fields,
		f.convertButton,
	))
}

func (f *Form) onConvert() {
	f.resultEntry.SetText(f.converter.Convert(f.amountEntry.Text))
}

func (f *Form) GetContainer() *fyne.Container {
	return f.container
}

// ShowWindow opens the main window with the form and runs the event loop
// until the window is closed.
func ShowWindow(a fyne.App, f *Form) {
	window := a.NewWindow(Title)
	window.SetContent(f.GetContainer())
	window.CenterOnScreen()
	window.ShowAndRun()
}
