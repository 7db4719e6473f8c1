package cpu

import "math"

// IsPrime reports whether n is prime, by trial division over every candidate
// divisor from 2 up to the integer square root. The full scan keeps the cost
// of one call roughly flat across neighboring inputs, which is what the
// benchmark loop needs from it. Inputs below 2 are not prime.
func IsPrime(n int64) bool {
	if n < 2 {
		return false
	}
	limit := int64(math.Sqrt(float64(n)))
	for i := int64(2); i <= limit; i++ {
		if n%i == 0 {
			return false
		}
	}
	return true
}

// Fibonacci computes the nth Fibonacci number by naive double recursion.
// Exponential on purpose: every benchmark operation calls it at a fixed
// depth to add a predictable amount of pure CPU work.
func Fibonacci(n int) int {
	if n <= 1 {
		return n
	}
	return Fibonacci(n-1) + Fibonacci(n-2)
}
