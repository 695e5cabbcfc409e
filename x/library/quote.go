package library

import (
	"cosmossdk.io/math"

	"github.com/soroswap/core/x/shared/safemath"
)

// Fee parameters: 0.3% of the input is kept by the pool.
const (
	FeeNumerator   = 997
	FeeDenominator = 1000
)

func mul(a, b math.Int) (math.Int, error) {
	r, ok := safemath.Mul(a, b)
	if !ok {
		return math.Int{}, ErrArithmeticOverflow.Wrapf("%s * %s", a, b)
	}
	return r, nil
}

func add(a, b math.Int) (math.Int, error) {
	r, ok := safemath.Add(a, b)
	if !ok {
		return math.Int{}, ErrArithmeticOverflow.Wrapf("%s + %s", a, b)
	}
	return r, nil
}

func sub(a, b math.Int) (math.Int, error) {
	r, ok := safemath.Sub(a, b)
	if !ok {
		return math.Int{}, ErrArithmeticOverflow.Wrapf("%s - %s", a, b)
	}
	return r, nil
}

func quo(a, b math.Int) (math.Int, error) {
	if b.IsZero() {
		return math.Int{}, ErrInsufficientLiquidity.Wrap("division by zero")
	}
	r, ok := safemath.Quo(a, b)
	if !ok {
		return math.Int{}, ErrArithmeticOverflow.Wrapf("%s / %s", a, b)
	}
	return r, nil
}

// Quote returns the amount of B worth amountA at reserves rA and rB,
// amountA * rB / rA.
func Quote(amountA, reserveA, reserveB math.Int) (math.Int, error) {
	if !amountA.IsPositive() {
		return math.Int{}, ErrInsufficientAmount.Wrapf("%s", amountA)
	}
	if !reserveA.IsPositive() || !reserveB.IsPositive() {
		return math.Int{}, ErrInsufficientLiquidity.Wrapf("reserves %s, %s", reserveA, reserveB)
	}
	num, err := mul(amountA, reserveB)
	if err != nil {
		return math.Int{}, err
	}
	return quo(num, reserveA)
}

// GetAmountOut returns the output a swap of amountIn yields at the given
// reserves, after the input fee.
func GetAmountOut(amountIn, reserveIn, reserveOut math.Int) (math.Int, error) {
	if !amountIn.IsPositive() {
		return math.Int{}, ErrInsufficientInputAmount.Wrapf("%s", amountIn)
	}
	if !reserveIn.IsPositive() || !reserveOut.IsPositive() {
		return math.Int{}, ErrInsufficientLiquidity.Wrapf("reserves %s, %s", reserveIn, reserveOut)
	}

	amountInWithFee, err := mul(amountIn, math.NewInt(FeeNumerator))
	if err != nil {
		return math.Int{}, err
	}
	numerator, err := mul(amountInWithFee, reserveOut)
	if err != nil {
		return math.Int{}, err
	}
	scaledReserveIn, err := mul(reserveIn, math.NewInt(FeeDenominator))
	if err != nil {
		return math.Int{}, err
	}
	denominator, err := add(scaledReserveIn, amountInWithFee)
	if err != nil {
		return math.Int{}, err
	}
	return quo(numerator, denominator)
}

// GetAmountIn returns the input a swap needs to yield amountOut at the
// given reserves, after the input fee. The result is rounded up.
func GetAmountIn(amountOut, reserveIn, reserveOut math.Int) (math.Int, error) {
	if !amountOut.IsPositive() {
		return math.Int{}, ErrInsufficientOutputAmount.Wrapf("%s", amountOut)
	}
	if !reserveIn.IsPositive() || !reserveOut.IsPositive() {
		return math.Int{}, ErrInsufficientLiquidity.Wrapf("reserves %s, %s", reserveIn, reserveOut)
	}
	if amountOut.GTE(reserveOut) {
		return math.Int{}, ErrInsufficientLiquidity.Wrapf("output %s >= reserve %s", amountOut, reserveOut)
	}

	numerator, err := mul(reserveIn, amountOut)
	if err != nil {
		return math.Int{}, err
	}
	numerator, err = mul(numerator, math.NewInt(FeeDenominator))
	if err != nil {
		return math.Int{}, err
	}
	remaining, err := sub(reserveOut, amountOut)
	if err != nil {
		return math.Int{}, err
	}
	denominator, err := mul(remaining, math.NewInt(FeeNumerator))
	if err != nil {
		return math.Int{}, err
	}
	amountIn, err := quo(numerator, denominator)
	if err != nil {
		return math.Int{}, err
	}
	return add(amountIn, math.OneInt())
}
