// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"strings"

	"gioplay/eval"
)

// fallback is shown whenever the display does not evaluate. No
// distinction is made between failure kinds.
const fallback = "What are you doing Dave?"

// calc substitutes the display glyphs for their arithmetic operators and
// evaluates the result. The caller never sees an error; every failure
// becomes the fallback string.
func calc(text string) string {
	v, err := eval.Eval(strings.ReplaceAll(text, "X", "*"))
	if err != nil {
		return fallback
	}
	return eval.Format(v)
}
