package currency

import "time"

const (
	RUB = "RUB"
	USD = "USD"
)

// Rate is the amount of RUB paid for one unit of the named currency.
type Rate struct {
	Name  string
	Value float64
	Date  time.Time
}
