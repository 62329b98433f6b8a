package validator

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Bounded is a numeric value type enforcing an inclusive range and a maximum
// number of decimal places.
type Bounded struct {
	Name        string
	Min         decimal.Decimal
	Max         decimal.Decimal
	MaxDecimals int32
}

var (
	CantidadMonetaria = Bounded{
		Name: "CantidadMonetaria", Min: decimal.Zero,
		Max: decimal.New(1, 12), MaxDecimals: 3,
	}
	ValorNumerico = Bounded{
		Name: "ValorNumerico", Min: decimal.Zero,
		Max: decimal.New(1, 11), MaxDecimals: 3,
	}
	PositiveNegativeNumber = Bounded{
		Name: "PositiveNegativeNumber", Min: decimal.New(-1, 11),
		Max: decimal.New(1, 11), MaxDecimals: 3,
	}
	PositiveNumber = Bounded{
		Name: "PositiveNumber", Min: decimal.Zero,
		Max: decimal.New(1, 11), MaxDecimals: 3,
	}
)

// BoundedError explains why a value could not be constructed as a Bounded.
type BoundedError struct {
	OutOfRange bool
	Reason     string
}

func (e *BoundedError) Error() string { return e.Reason }

// Construct converts v into a decimal that satisfies b.
func (b Bounded) Construct(v any) (decimal.Decimal, error) {
	d, ok := ToDecimal(v)
	if !ok {
		return decimal.Decimal{}, &BoundedError{Reason: "no es numérico."}
	}
	if d.LessThan(b.Min) || d.GreaterThan(b.Max) {
		return decimal.Decimal{}, &BoundedError{
			OutOfRange: true,
			Reason:     fmt.Sprintf("está fuera del rango permitido %s-%s.", b.Min, b.Max),
		}
	}
	if !d.Equal(d.Truncate(b.MaxDecimals)) {
		return decimal.Decimal{}, &BoundedError{Reason: fmt.Sprintf("tiene más de %d decimales.", b.MaxDecimals)}
	}
	return d, nil
}
