// Package input reads the count-prefixed integer sequence the solver consumes.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var (
	// ErrMissingCount is returned when the input holds no tokens at all
	ErrMissingCount = errors.New("missing element count")

	// ErrNegativeCount is returned when the declared count is below zero
	ErrNegativeCount = errors.New("element count must not be negative")

	// ErrInsufficientTokens is returned when fewer values follow than the count declares
	ErrInsufficientTokens = errors.New("insufficient values for declared count")
)

// TokenError reports a token that is not a valid integer
type TokenError struct {
	// Position is the zero-based index of the token in the input, the count being position 0
	Position int
	Token    string
	Err      error
}

func (e *TokenError) Error() string {
	return fmt.Sprintf("token %d (%q) is not an integer: %v", e.Position, e.Token, e.Err)
}

func (e *TokenError) Unwrap() error {
	return e.Err
}

// Parse reads whitespace-separated integers from r. The first integer n declares
// how many values follow; the next n integers are returned. Anything after them is ignored.
func Parse(r io.Reader) ([]int, error) {
	scanner := bufio.NewScanner(r)
	// A single line may hold the whole sequence, so allow tokens well past the default buffer
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	scanner.Split(bufio.ScanWords)

	position := 0
	next := func() (int, bool, error) {
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return 0, false, fmt.Errorf("failed to read input: %w", err)
			}
			return 0, false, nil
		}
		token := scanner.Text()
		value, err := strconv.Atoi(token)
		if err != nil {
			return 0, false, &TokenError{Position: position, Token: token, Err: err}
		}
		position++
		return value, true, nil
	}

	n, ok, err := next()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrMissingCount
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeCount, n)
	}

	values := make([]int, 0, min(n, 1<<16))
	for len(values) < n {
		value, ok, err := next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("%w: declared %d, got %d", ErrInsufficientTokens, n, len(values))
		}
		values = append(values, value)
	}

	return values, nil
}

// ParseString is Parse over an in-memory string
func ParseString(s string) ([]int, error) {
	return Parse(strings.NewReader(s))
}
