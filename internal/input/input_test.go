package input

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []int
	}{
		{
			name:  "single line",
			input: "5 2 1 2 4 3",
			want:  []int{2, 1, 2, 4, 3},
		},
		{
			name:  "trailing newline and spaces",
			input: "  3 1 2 3  \n",
			want:  []int{1, 2, 3},
		},
		{
			name:  "values across lines",
			input: "3\n-1 0\n7\n",
			want:  []int{-1, 0, 7},
		},
		{
			name:  "zero count",
			input: "0",
			want:  []int{},
		},
		{
			name:  "extra tokens are ignored",
			input: "2 9 8 7 not-a-number",
			want:  []int{9, 8},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseString(tt.input)
			if err != nil {
				t.Fatalf("ParseString(%q) error = %v", tt.input, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseString(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{
			name:    "empty input",
			input:   "",
			wantErr: ErrMissingCount,
		},
		{
			name:    "whitespace only",
			input:   " \n\t ",
			wantErr: ErrMissingCount,
		},
		{
			name:    "negative count",
			input:   "-1 4",
			wantErr: ErrNegativeCount,
		},
		{
			name:    "fewer values than declared",
			input:   "4 1 2",
			wantErr: ErrInsufficientTokens,
		},
		{
			name:    "count without values",
			input:   "1",
			wantErr: ErrInsufficientTokens,
		},
		{
			name:    "non-numeric count",
			input:   "abc 1 2",
			wantErr: strconv.ErrSyntax,
		},
		{
			name:    "non-numeric value",
			input:   "3 1 x 3",
			wantErr: strconv.ErrSyntax,
		},
		{
			name:    "value out of range",
			input:   "1 99999999999999999999999",
			wantErr: strconv.ErrRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseString(tt.input)
			if err == nil {
				t.Fatalf("ParseString(%q) = %v, want error", tt.input, got)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ParseString(%q) error = %v, want %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestParse_TokenErrorPosition(t *testing.T) {
	_, err := ParseString("3 1 x 3")

	var tokenErr *TokenError
	if !errors.As(err, &tokenErr) {
		t.Fatalf("error = %v, want *TokenError", err)
	}
	if tokenErr.Position != 2 {
		t.Errorf("Position = %d, want 2", tokenErr.Position)
	}
	if tokenErr.Token != "x" {
		t.Errorf("Token = %q, want %q", tokenErr.Token, "x")
	}
}

func TestParse_LongLine(t *testing.T) {
	const n = 50_000

	var sb strings.Builder
	sb.WriteString(strconv.Itoa(n))
	for i := 0; i < n; i++ {
		sb.WriteByte(' ')
		sb.WriteString(strconv.Itoa(i))
	}

	got, err := Parse(strings.NewReader(sb.String()))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(got) != n {
		t.Fatalf("len(Parse()) = %d, want %d", len(got), n)
	}
	if got[n-1] != n-1 {
		t.Errorf("last value = %d, want %d", got[n-1], n-1)
	}
}
