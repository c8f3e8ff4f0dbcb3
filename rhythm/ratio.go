// Package rhythm is an exact rational time model: durations, time
// signatures, tempo, and the conversions from symbolic lengths to seconds
// and bars.
package rhythm

import (
	"fmt"
	"math"
	"math/big"

	"github.com/jsphweid/musicobjects/util"
	"github.com/pkg/errors"
)

var (
	ErrInvalidRatio = errors.New("ratio numerator and denominator must be positive")
	ErrInvalidTempo = errors.New("tempo must be a positive, finite bpm")
	ErrOverflow     = errors.New("ratio arithmetic overflow")
)

// Ratio is a positive fraction that is not necessarily in lowest terms.
// The zero value is not a valid Ratio; use NewRatio.
type Ratio struct {
	numerator   uint32
	denominator uint32
}

func NewRatio(numerator, denominator uint32) (Ratio, error) {
	if numerator == 0 || denominator == 0 {
		return Ratio{}, errors.Wrapf(ErrInvalidRatio, "%d/%d", numerator, denominator)
	}
	return Ratio{numerator: numerator, denominator: denominator}, nil
}

func MustRatio(numerator, denominator uint32) Ratio {
	r, err := NewRatio(numerator, denominator)
	if err != nil {
		panic(err)
	}
	return r
}

func ratioFromRat(x *big.Rat) (Ratio, error) {
	if x.Sign() <= 0 {
		return Ratio{}, errors.Wrapf(ErrInvalidRatio, "%v", x)
	}
	num, den := x.Num(), x.Denom()
	if !num.IsUint64() || !den.IsUint64() || num.Uint64() > math.MaxUint32 || den.Uint64() > math.MaxUint32 {
		return Ratio{}, errors.Wrapf(ErrOverflow, "%v", x)
	}
	return Ratio{numerator: uint32(num.Uint64()), denominator: uint32(den.Uint64())}, nil
}

func (r Ratio) Numerator() uint32 {
	return r.numerator
}

func (r Ratio) Denominator() uint32 {
	return r.denominator
}

func (r Ratio) Valid() bool {
	return r.numerator != 0 && r.denominator != 0
}

// Compare cross-multiplies in 64 bits, which cannot overflow for 32-bit
// terms, so 1/4 and 2/8 compare equal.
func (r Ratio) Compare(o Ratio) int {
	lhs := uint64(r.numerator) * uint64(o.denominator)
	rhs := uint64(o.numerator) * uint64(r.denominator)
	switch {
	case lhs < rhs:
		return -1
	case lhs > rhs:
		return 1
	}
	return 0
}

func (r Ratio) Equal(o Ratio) bool {
	return r.Compare(o) == 0
}

func (r Ratio) Less(o Ratio) bool {
	return r.Compare(o) < 0
}

func (r Ratio) Reduced() Ratio {
	if !r.Valid() {
		return r
	}
	g := util.GCD(r.numerator, r.denominator)
	return Ratio{numerator: r.numerator / g, denominator: r.denominator / g}
}

func (r Ratio) Rat() *big.Rat {
	return new(big.Rat).SetFrac(
		new(big.Int).SetUint64(uint64(r.numerator)),
		new(big.Int).SetUint64(uint64(r.denominator)),
	)
}

// Add returns the exact sum in lowest terms.
func (r Ratio) Add(o Ratio) (Ratio, error) {
	if !r.Valid() || !o.Valid() {
		return Ratio{}, errors.Wrapf(ErrInvalidRatio, "%v + %v", r, o)
	}
	return ratioFromRat(new(big.Rat).Add(r.Rat(), o.Rat()))
}

// Sub fails with ErrInvalidRatio unless r is strictly greater than o.
func (r Ratio) Sub(o Ratio) (Ratio, error) {
	if !r.Valid() || !o.Valid() {
		return Ratio{}, errors.Wrapf(ErrInvalidRatio, "%v - %v", r, o)
	}
	return ratioFromRat(new(big.Rat).Sub(r.Rat(), o.Rat()))
}

// Mul scales r by another ratio, exactly.
func (r Ratio) Mul(o Ratio) (Ratio, error) {
	if !r.Valid() || !o.Valid() {
		return Ratio{}, errors.Wrapf(ErrInvalidRatio, "%v * %v", r, o)
	}
	return ratioFromRat(new(big.Rat).Mul(r.Rat(), o.Rat()))
}

// Quotient returns r / o as a float64 computed from exact 64-bit products.
func (r Ratio) Quotient(o Ratio) (float64, error) {
	if !r.Valid() || !o.Valid() {
		return 0, errors.Wrapf(ErrInvalidRatio, "%v / %v", r, o)
	}
	num := uint64(r.numerator) * uint64(o.denominator)
	den := uint64(r.denominator) * uint64(o.numerator)
	return float64(num) / float64(den), nil
}

func (r Ratio) Float64() float64 {
	return float64(r.numerator) / float64(r.denominator)
}

func (r Ratio) String() string {
	return fmt.Sprintf("%d/%d", r.numerator, r.denominator)
}
