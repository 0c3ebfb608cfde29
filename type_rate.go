package banksim

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Rate is a dimensionless fraction: a commission, a cashback percentage, or
// a savings interest rate. 0.002 means 0.2%.
type Rate struct {
	value decimal.Decimal
}

func R[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) Rate {
	return Rate{value: newDecimal(value)}
}

// Of applies the rate to an amount, keeping the amount's currency.
func (r Rate) Of(m Money) Money {
	return Money{value: m.value.Mul(r.value), cur: m.cur}
}

func (r Rate) IsZero() bool       { return r.value.IsZero() }
func (r Rate) Equal(s Rate) bool  { return r.value.Equal(s.value) }
func (r Rate) AsFloat() float64   { return r.value.InexactFloat64() }

func (r Rate) String() string {
	return fmt.Sprintf("%s%%", r.value.Mul(decimal.NewFromInt(100)))
}

func (r Rate) MarshalJSON() ([]byte, error) {
	return r.value.MarshalJSON()
}

func (r *Rate) UnmarshalJSON(data []byte) error {
	return r.value.UnmarshalJSON(data)
}
