package entities

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// MinorUnitDigits is the number of fraction digits of the currency minor unit.
const MinorUnitDigits = 2

// SplitShares divides total across n participants using the largest-remainder
// method in minor units: every share is the floor of the equal division and the
// leftover units go, one each, to the first participants. The result always
// sums to total and is identical for identical inputs.
func SplitShares(total decimal.Decimal, n int) ([]decimal.Decimal, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: participant count must be at least 1", ErrInvalidInput)
	}
	if !total.IsPositive() {
		return nil, fmt.Errorf("%w: total price must be positive", ErrInvalidInput)
	}
	scaled := total.Shift(MinorUnitDigits)
	if !scaled.IsInteger() {
		return nil, fmt.Errorf("%w: total price has more than %d fraction digits", ErrInvalidInput, MinorUnitDigits)
	}
	if scaled.GreaterThan(decimal.NewFromInt(1 << 62)) {
		return nil, fmt.Errorf("%w: total price out of range", ErrInvalidInput)
	}

	units := scaled.IntPart()
	count := int64(n)
	if units < count {
		return nil, fmt.Errorf("%w: total price too small for %d participants", ErrInvalidInput, n)
	}

	base := units / count
	remainder := units % count

	shares := make([]decimal.Decimal, n)
	for i := range shares {
		u := base
		if int64(i) < remainder {
			u++
		}
		shares[i] = decimal.New(u, -MinorUnitDigits)
	}
	return shares, nil
}

// SumShares adds the given amounts.
func SumShares(shares []decimal.Decimal) decimal.Decimal {
	sum := decimal.Zero
	for _, s := range shares {
		sum = sum.Add(s)
	}
	return sum
}
