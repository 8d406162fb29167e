// Package nextgreater finds, for every position of a sequence, the nearest
// value to its right that is strictly greater.
package nextgreater

import (
	"github.com/emirpasic/gods/stacks/arraystack"
)

// Sentinel marks a position with no greater element to its right
const Sentinel = -1

// Result is the next greater element for a single position
type Result struct {
	Value int
	Found bool
}

// OrSentinel returns the value, or Sentinel when no greater element exists
func (r Result) OrSentinel() int {
	if !r.Found {
		return Sentinel
	}
	return r.Value
}

// Compute returns, for each index i of arr, the nearest value to the right of i
// that is strictly greater than arr[i], or Sentinel if there is none.
//
// Use Resolve when arr may itself contain Sentinel and the two cases must be told apart.
func Compute(arr []int) []int {
	resolved := Resolve(arr)

	result := make([]int, len(resolved))
	for i, r := range resolved {
		result[i] = r.OrSentinel()
	}
	return result
}

// Resolve is Compute with an explicit found flag per position.
// It scans right to left keeping a stack of candidates that strictly decrease
// from bottom to top, so every element is pushed once and popped at most once.
func Resolve(arr []int) []Result {
	result := make([]Result, len(arr))
	candidates := arraystack.New()

	for i := len(arr) - 1; i >= 0; i-- {
		// Drop candidates that can never be greater than anything left of i
		for {
			top, ok := candidates.Peek()
			if !ok || top.(int) > arr[i] {
				break
			}
			candidates.Pop()
		}

		if top, ok := candidates.Peek(); ok {
			result[i] = Result{Value: top.(int), Found: true}
		}

		candidates.Push(arr[i])
	}

	return result
}
