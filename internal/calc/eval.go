// Package calc runs bignum operations named by strings, at a capacity chosen
// at run time. It backs the bncalc command.
package calc

import (
	"errors"
	"fmt"
	"strconv"

	bignum "github.com/shabbyrobe/go-bignum"
)

// Ops lists every operator Eval accepts, binary ones first.
var Ops = []string{
	"+", "-", "*", "/", "%", "/%", "&", "|", "^", "&^", "<<", ">>", "cmp",
	"inc", "dec",
}

var ErrDivisionByZero = errors.New("calc: division by zero")

// Result is the outcome of a single Eval. Values holds hex digits, except
// for "cmp" where it holds -1, 0 or 1. "/%" yields the quotient and then the
// remainder.
type Result struct {
	Values   []string
	Overflow bool
}

func (r Result) String() string {
	s := ""
	for _, v := range r.Values {
		s += v + " "
	}
	return s + "overflow=" + strconv.FormatBool(r.Overflow)
}

// Unary reports whether op takes a single operand.
func Unary(op string) bool {
	return op == "inc" || op == "dec"
}

// Eval applies op to the hex operands a and b in a Uint of the given width.
// For shifts b is a decimal bit count; for unary ops b is ignored. Operands
// wider than the capacity are an error rather than being truncated.
func Eval(bits int, a, op, b string) (Result, error) {
	switch bits {
	case 32:
		return eval[bignum.L32](a, op, b)
	case 64:
		return eval[bignum.L64](a, op, b)
	case 128:
		return eval[bignum.L128](a, op, b)
	case 256:
		return eval[bignum.L256](a, op, b)
	case 512:
		return eval[bignum.L512](a, op, b)
	case 1024:
		return eval[bignum.L1024](a, op, b)
	case 2048:
		return eval[bignum.L2048](a, op, b)
	case 4096:
		return eval[bignum.L4096](a, op, b)
	default:
		return Result{}, fmt.Errorf("calc: unsupported width %d", bits)
	}
}

func operand[L bignum.Limbs](s string) (bignum.Uint[L], error) {
	u, overflow, err := bignum.FromHex[L](s)
	if err != nil {
		return u, err
	}
	if overflow {
		return u, fmt.Errorf("calc: operand %q does not fit in %d bits", s, u.Bits())
	}
	return u, nil
}

func eval[L bignum.Limbs](as, op, bs string) (res Result, err error) {
	a, err := operand[L](as)
	if err != nil {
		return res, err
	}

	one := func(u bignum.Uint[L], overflow bool) (Result, error) {
		return Result{Values: []string{u.Hex()}, Overflow: overflow}, nil
	}

	switch op {
	case "inc":
		return one(a.Inc())
	case "dec":
		return one(a.Dec())
	case "<<", ">>":
		n, err := strconv.ParseUint(bs, 10, 0)
		if err != nil {
			return res, fmt.Errorf("calc: invalid shift %q: %w", bs, err)
		}
		if op == "<<" {
			return one(a.Lsh(uint(n)), false)
		}
		return one(a.Rsh(uint(n)), false)
	}

	b, err := operand[L](bs)
	if err != nil {
		return res, err
	}

	switch op {
	case "+":
		return one(a.Add(b))
	case "-":
		return one(a.Sub(b))
	case "*":
		return one(a.Mul(b))
	case "/", "%", "/%":
		if b.IsZero() {
			return res, ErrDivisionByZero
		}
		q, r := a.QuoRem(b)
		switch op {
		case "/":
			return one(q, false)
		case "%":
			return one(r, false)
		}
		return Result{Values: []string{q.Hex(), r.Hex()}}, nil
	case "&":
		return one(a.And(b), false)
	case "|":
		return one(a.Or(b), false)
	case "^":
		return one(a.Xor(b), false)
	case "&^":
		return one(a.AndNot(b), false)
	case "cmp":
		return Result{Values: []string{strconv.Itoa(a.Cmp(b))}}, nil
	}
	return res, fmt.Errorf("calc: unknown op %q", op)
}
