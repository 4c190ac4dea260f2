// SPDX-License-Identifier: Unlicense OR MIT

package main

import "testing"

func TestCalc(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "7X8", want: "56"},
		{in: "2^10", want: "1024"},
		{in: "1+2*3", want: "7"},
		{in: "10%3", want: "1"},
		{in: "1/2", want: "0.5"},
		{in: "2.5X4", want: "10"},
		{in: "-(5)", want: "-5"},
		{in: "56", want: "56"},
	}

	for _, tt := range tests {
		if got := calc(tt.in); got != tt.want {
			t.Fatalf("calc(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCalcFallback(t *testing.T) {
	inputs := []string{
		"",
		"5+",
		"1/0",
		"abc",
		"(1+2",
		"5%0",
		"XX",
		"-()",
		"007",
	}

	for _, in := range inputs {
		if got := calc(in); got != fallback {
			t.Fatalf("calc(%q) = %q, want fallback", in, got)
		}
	}
}

func TestPress(t *testing.T) {
	ui := newUI()
	for _, label := range []string{"7", "X", "8", "="} {
		ui.press(label)
	}
	if ui.display != "56" {
		t.Fatalf("display = %q, want %q", ui.display, "56")
	}

	ui.press("DEL")
	ui.press("DEL")
	ui.press("DEL") // empty display, no-op
	if ui.display != "" {
		t.Fatalf("display after DEL = %q, want empty", ui.display)
	}

	ui.press("4")
	ui.press("+/-")
	if ui.display != "-4" {
		t.Fatalf("display after +/- = %q, want %q", ui.display, "-4")
	}

	ui.press("CE")
	if ui.display != "" {
		t.Fatalf("display after CE = %q, want empty", ui.display)
	}
}
