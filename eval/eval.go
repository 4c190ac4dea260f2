// SPDX-License-Identifier: Unlicense OR MIT

// Package eval evaluates arithmetic expressions over decimal numbers and
// the operators + - * / % ^. The grammar is deliberately closed: no
// identifiers, no function calls, no assignment.
package eval

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"unicode"
)

// ErrParse reports malformed input, ErrEval a well-formed expression that
// has no finite value. Both are recognized by errors.Is.
var (
	ErrParse = errors.New("eval: parse error")
	ErrEval  = errors.New("eval: evaluation error")
)

type tokenKind uint8

const (
	tokEOF tokenKind = iota
	tokNumber
	tokPlus
	tokMinus
	tokStar
	tokSlash
	tokPercent
	tokCaret
	tokLParen
	tokRParen
	tokBad
)

type token struct {
	kind tokenKind
	text string
	num  float64
}

type lexer struct {
	s string
	i int
}

func (l *lexer) next() token {
	for l.i < len(l.s) && unicode.IsSpace(rune(l.s[l.i])) {
		l.i++
	}
	if l.i >= len(l.s) {
		return token{kind: tokEOF}
	}

	switch l.s[l.i] {
	case '+':
		l.i++
		return token{kind: tokPlus, text: "+"}
	case '-':
		l.i++
		return token{kind: tokMinus, text: "-"}
	case '*':
		l.i++
		return token{kind: tokStar, text: "*"}
	case '/':
		l.i++
		return token{kind: tokSlash, text: "/"}
	case '%':
		l.i++
		return token{kind: tokPercent, text: "%"}
	case '^':
		l.i++
		return token{kind: tokCaret, text: "^"}
	case '(':
		l.i++
		return token{kind: tokLParen, text: "("}
	case ')':
		l.i++
		return token{kind: tokRParen, text: ")"}
	}

	ch := rune(l.s[l.i])
	if ch == '.' || unicode.IsDigit(ch) {
		start := l.i
		l.i = scanNumber(l.s, l.i)
		txt := l.s[start:l.i]
		if leadingZeroInt(txt) {
			return token{kind: tokBad, text: txt}
		}
		f, err := strconv.ParseFloat(txt, 64)
		if err != nil {
			return token{kind: tokBad, text: txt}
		}
		return token{kind: tokNumber, text: txt, num: f}
	}

	l.i++
	return token{kind: tokBad, text: string(ch)}
}

func scanNumber(s string, i int) int {
	if i < len(s) && s[i] == '.' {
		i++
	}
	for i < len(s) && unicode.IsDigit(rune(s[i])) {
		i++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && unicode.IsDigit(rune(s[i])) {
			i++
		}
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		k := j
		for k < len(s) && unicode.IsDigit(rune(s[k])) {
			k++
		}
		if k > j {
			i = k
		}
	}
	return i
}

// leadingZeroInt reports whether txt is an integer literal with leading
// zeros. Those do not evaluate; fractions and exponents are unaffected.
func leadingZeroInt(txt string) bool {
	if len(txt) < 2 || txt[0] != '0' {
		return false
	}
	for i := 1; i < len(txt); i++ {
		switch txt[i] {
		case '.', 'e', 'E':
			return false
		}
	}
	return true
}

type node interface {
	eval() (float64, error)
}

type numberNode float64

func (n numberNode) eval() (float64, error) { return float64(n), nil }

type unaryNode struct {
	op byte
	x  node
}

func (n unaryNode) eval() (float64, error) {
	v, err := n.x.eval()
	if err != nil {
		return 0, err
	}
	if n.op == '-' {
		v = -v
	}
	return v, nil
}

type binaryNode struct {
	op    byte
	left  node
	right node
}

func (n binaryNode) eval() (float64, error) {
	a, err := n.left.eval()
	if err != nil {
		return 0, err
	}
	b, err := n.right.eval()
	if err != nil {
		return 0, err
	}
	switch n.op {
	case '+':
		return a + b, nil
	case '-':
		return a - b, nil
	case '*':
		return a * b, nil
	case '/':
		if b == 0 {
			return 0, fmt.Errorf("%w: division by zero", ErrEval)
		}
		return a / b, nil
	case '%':
		if b == 0 {
			return 0, fmt.Errorf("%w: modulo by zero", ErrEval)
		}
		// Floored modulo, so the result takes the divisor's sign.
		return a - b*math.Floor(a/b), nil
	case '^':
		return math.Pow(a, b), nil
	}
	return 0, fmt.Errorf("%w: unknown operator %q", ErrEval, string(n.op))
}

type parser struct {
	l   lexer
	cur token
}

func (p *parser) next() { p.cur = p.l.next() }

func (p *parser) parseSum() (node, error) {
	left, err := p.parseProduct()
	if err != nil {
		return nil, err
	}
	for p.cur.kind == tokPlus || p.cur.kind == tokMinus {
		op := p.cur.text[0]
		p.next()
		right, err := p.parseProduct()
		if err != nil {
			return nil, err
		}
		left = binaryNode{op: op, left: left, right: right}
	}
	return left, nil
}

func (p *parser) parseProduct() (node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.cur.kind == tokStar || p.cur.kind == tokSlash || p.cur.kind == tokPercent {
		op := p.cur.text[0]
		p.next()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = binaryNode{op: op, left: left, right: right}
	}
	return left, nil
}

func (p *parser) parseUnary() (node, error) {
	if p.cur.kind == tokPlus || p.cur.kind == tokMinus {
		op := p.cur.text[0]
		p.next()
		x, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return unaryNode{op: op, x: x}, nil
	}
	return p.parsePower()
}

// parsePower binds tighter than a leading unary minus, so -2^2 is -(2^2).
// The right operand is a unary expression, which makes ^ right associative
// and lets 2^-3 parse.
func (p *parser) parsePower() (node, error) {
	left, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	if p.cur.kind == tokCaret {
		p.next()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return binaryNode{op: '^', left: left, right: right}, nil
	}
	return left, nil
}

func (p *parser) parsePrimary() (node, error) {
	switch p.cur.kind {
	case tokNumber:
		n := numberNode(p.cur.num)
		p.next()
		return n, nil
	case tokLParen:
		p.next()
		ex, err := p.parseSum()
		if err != nil {
			return nil, err
		}
		if p.cur.kind != tokRParen {
			return nil, fmt.Errorf("%w: expected ')'", ErrParse)
		}
		p.next()
		return ex, nil
	case tokEOF:
		return nil, fmt.Errorf("%w: unexpected end of expression", ErrParse)
	}
	return nil, fmt.Errorf("%w: unexpected %q", ErrParse, p.cur.text)
}

// Eval parses and evaluates an expression. Expressions that do not consume
// the whole input fail with ErrParse; expressions without a finite value,
// such as division by zero or an overflowing power, fail with ErrEval.
func Eval(s string) (float64, error) {
	p := &parser{l: lexer{s: s}}
	p.next()
	ex, err := p.parseSum()
	if err != nil {
		return 0, err
	}
	if p.cur.kind != tokEOF {
		return 0, fmt.Errorf("%w: unexpected %q", ErrParse, p.cur.text)
	}
	v, err := ex.eval()
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: result out of range", ErrEval)
	}
	return v, nil
}

// Format renders a value the way a calculator display expects it: whole
// numbers without a decimal point, everything else in shortest form.
func Format(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
