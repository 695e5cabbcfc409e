// Package safemath provides the checked 128-bit integer arithmetic shared by
// the AMM contracts. Amounts are carried as math.Int but must stay inside the
// signed 128-bit range; cumulative prices are math.Uint and wrap at 2^128.
package safemath

import (
	"math/big"

	"cosmossdk.io/math"
)

var (
	maxInt128  = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1))
	minInt128  = new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 127))
	maxUint64  = new(big.Int).SetUint64(^uint64(0))
	twoTo64    = new(big.Int).Lsh(big.NewInt(1), 64)
	twoTo128   = new(big.Int).Lsh(big.NewInt(1), 128)
	maxUint128 = new(big.Int).Sub(twoTo128, big.NewInt(1))
)

// MaxInt128 returns 2^127 - 1.
func MaxInt128() math.Int { return math.NewIntFromBigInt(maxInt128) }

// MinInt128 returns -2^127.
func MinInt128() math.Int { return math.NewIntFromBigInt(minInt128) }

// MaxUint64 returns 2^64 - 1 as a math.Int.
func MaxUint64() math.Int { return math.NewIntFromBigInt(maxUint64) }

// MaxUint128 returns 2^128 - 1.
func MaxUint128() math.Uint { return math.NewUintFromBigInt(maxUint128) }

// FitsInt128 reports whether x is inside the signed 128-bit range.
func FitsInt128(x math.Int) bool {
	b := x.BigInt()
	return b.Cmp(maxInt128) <= 0 && b.Cmp(minInt128) >= 0
}

// FitsUint64 reports whether 0 <= x <= 2^64-1.
func FitsUint64(x math.Int) bool {
	return !x.IsNegative() && x.BigInt().Cmp(maxUint64) <= 0
}

func checked(r *big.Int) (math.Int, bool) {
	if r.Cmp(maxInt128) > 0 || r.Cmp(minInt128) < 0 {
		return math.Int{}, false
	}
	return math.NewIntFromBigInt(r), true
}

// Add returns a+b, or false when the sum leaves the i128 range.
func Add(a, b math.Int) (math.Int, bool) {
	return checked(new(big.Int).Add(a.BigInt(), b.BigInt()))
}

// Sub returns a-b, or false when the difference leaves the i128 range.
func Sub(a, b math.Int) (math.Int, bool) {
	return checked(new(big.Int).Sub(a.BigInt(), b.BigInt()))
}

// Mul returns a*b, or false when the product leaves the i128 range.
func Mul(a, b math.Int) (math.Int, bool) {
	if a.IsZero() || b.IsZero() {
		return math.ZeroInt(), true
	}
	return checked(new(big.Int).Mul(a.BigInt(), b.BigInt()))
}

// Quo returns a/b truncated toward zero, or false on division by zero.
func Quo(a, b math.Int) (math.Int, bool) {
	if b.IsZero() {
		return math.Int{}, false
	}
	return checked(new(big.Int).Quo(a.BigInt(), b.BigInt()))
}

// MulInt64 is Mul with a small constant factor.
func MulInt64(a math.Int, b int64) (math.Int, bool) {
	return Mul(a, math.NewInt(b))
}

// Min returns the smaller of a and b.
func Min(a, b math.Int) math.Int {
	if a.LT(b) {
		return a
	}
	return b
}

// Max returns the larger of a and b.
func Max(a, b math.Int) math.Int {
	if a.GT(b) {
		return a
	}
	return b
}

// Sqrt returns floor(sqrt(x)). Negative inputs yield zero.
func Sqrt(x math.Int) math.Int {
	if !x.IsPositive() {
		return math.ZeroInt()
	}
	return math.NewIntFromBigInt(new(big.Int).Sqrt(x.BigInt()))
}

func wrap128(r *big.Int) math.Uint {
	return math.NewUintFromBigInt(r.Mod(r, twoTo128))
}

// WrappingAddUint128 returns (a+b) mod 2^128.
func WrappingAddUint128(a, b math.Uint) math.Uint {
	return wrap128(new(big.Int).Add(a.BigInt(), b.BigInt()))
}

// WrappingMulUint128 returns (a*b) mod 2^128.
func WrappingMulUint128(a, b math.Uint) math.Uint {
	return wrap128(new(big.Int).Mul(a.BigInt(), b.BigInt()))
}

// UQ64x64 encodes num/den as an unsigned 64.64 fixed point number,
// (num * 2^64) / den. Both operands must fit in 64 bits and den must be
// non-zero; otherwise false is returned.
func UQ64x64(num, den math.Int) (math.Uint, bool) {
	if !FitsUint64(num) || !FitsUint64(den) || den.IsZero() {
		return math.Uint{}, false
	}
	r := new(big.Int).Mul(num.BigInt(), twoTo64)
	r.Quo(r, den.BigInt())
	return math.NewUintFromBigInt(r), true
}
