// SPDX-License-Identifier: Unlicense OR MIT

package eval

import (
	"errors"
	"math"
	"testing"
)

func TestEval(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{in: "1+2", want: 3},
		{in: "7*8", want: 56},
		{in: "2+3*4", want: 14},
		{in: "(1+2)*3", want: 9},
		{in: "2*(3+4)", want: 14},
		{in: "7/2", want: 3.5},
		{in: "10%3", want: 1},
		{in: "-7%3", want: 2},
		{in: "2^10", want: 1024},
		{in: "2^3^2", want: 512},
		{in: "2^-3", want: 0.125},
		{in: "-2^2", want: -4},
		{in: "(-2)^2", want: 4},
		{in: ".5*4", want: 2},
		{in: "00.5", want: 0.5},
		{in: "1e3+1", want: 1001},
		{in: " 1 + 2 ", want: 3},
		{in: "--5", want: 5},
		{in: "-(1+2)", want: -3},
	}

	for _, tt := range tests {
		got, err := Eval(tt.in)
		if err != nil {
			t.Fatalf("Eval(%q) error: %v", tt.in, err)
		}
		if math.Abs(got-tt.want) > 1e-9 {
			t.Fatalf("Eval(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestEvalErrors(t *testing.T) {
	tests := []struct {
		in   string
		want error
	}{
		{in: "", want: ErrParse},
		{in: "5+", want: ErrParse},
		{in: "abc", want: ErrParse},
		{in: "(1+2", want: ErrParse},
		{in: ")", want: ErrParse},
		{in: "1 2", want: ErrParse},
		{in: "1..2", want: ErrParse},
		{in: "5$3", want: ErrParse},
		{in: "007", want: ErrParse},
		{in: "00", want: ErrParse},
		{in: "1/0", want: ErrEval},
		{in: "0/0", want: ErrEval},
		{in: "5%0", want: ErrEval},
		{in: "10^1000", want: ErrEval},
	}

	for _, tt := range tests {
		_, err := Eval(tt.in)
		if !errors.Is(err, tt.want) {
			t.Fatalf("Eval(%q) error = %v, want %v", tt.in, err, tt.want)
		}
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{in: 56, want: "56"},
		{in: -5, want: "-5"},
		{in: 0, want: "0"},
		{in: 0.5, want: "0.5"},
		{in: 3.5, want: "3.5"},
		{in: 10000000, want: "10000000"},
		{in: 1e16, want: "1e+16"},
	}

	for _, tt := range tests {
		if got := Format(tt.in); got != tt.want {
			t.Fatalf("Format(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
