// Package calc implements the arithmetic operations used by the calculator
// command and several demos.
//
// All operations are pure functions. Invalid inputs (division by zero,
// negative factorial) return structured errors from pkg/errors rather than
// panicking, so callers can branch on the error code.
package calc

import (
	"math"

	"patternbook/pkg/errors"
)

// Add returns a + b.
func Add(a, b float64) float64 { return a + b }

// Subtract returns a - b.
func Subtract(a, b float64) float64 { return a - b }

// Multiply returns a * b.
func Multiply(a, b float64) float64 { return a * b }

// Divide returns a / b.
// Returns ErrCodeDivisionByZero when b is zero.
func Divide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, errors.New(errors.ErrCodeDivisionByZero, "division by zero")
	}
	return a / b, nil
}

// Power returns base raised to exponent.
func Power(base, exponent float64) float64 {
	return math.Pow(base, exponent)
}

// Factorial returns n! as a float64.
// The float64 result matches the range of the power operation and keeps
// larger factorials representable (21! overflows int64).
// Returns ErrCodeNegativeFactorial for negative n.
func Factorial(n int) (float64, error) {
	if n < 0 {
		return 0, errors.New(errors.ErrCodeNegativeFactorial, "factorial of negative number is undefined")
	}
	result := 1.0
	for i := 2; i <= n; i++ {
		result *= float64(i)
	}
	return result, nil
}

// IsPrime reports whether n is prime using 6k±1 trial division.
func IsPrime(n int) bool {
	if n <= 1 {
		return false
	}
	if n <= 3 {
		return true
	}
	if n%2 == 0 || n%3 == 0 {
		return false
	}
	for i := 5; i*i <= n; i += 6 {
		if n%i == 0 || n%(i+2) == 0 {
			return false
		}
	}
	return true
}
