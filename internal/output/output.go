// Package output renders computed sequences for the console.
package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Format joins values with single spaces
func Format(values []int) string {
	var sb strings.Builder
	for i, v := range values {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(v))
	}
	return sb.String()
}

// Write prints values space-separated on a single line.
// An empty sequence produces an empty line.
func Write(w io.Writer, values []int) error {
	if _, err := io.WriteString(w, Format(values)+"\n"); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
