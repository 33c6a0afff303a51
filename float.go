// This file contains a heavily modified version of math.Mod
// that only supports our specific range of values.
//
// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bignum

import (
	"math"
	"math/big"
)

// modpos is a very slimmed-down approximation of math.Mod, but without support
// for any of the things we don't need here. It is intended for when x is known
// to be positive. All calls have been hand-inlined for performance.
func modpos(x, y float64) float64 {
	const (
		mask  = 0x7FF
		shift = 64 - 11 - 1
		bias  = 1023
	)

	ybits := math.Float64bits(y)

	bits := ybits
	yexp := int((bits>>shift)&mask) - bias + 1
	bits &^= mask << shift
	bits |= (-1 + bias) << shift
	yfr := math.Float64frombits(bits)

	r := x
	for r >= y {
		bits = math.Float64bits(r)
		rexp := int((bits>>shift)&mask) - bias + 1
		bits &^= mask << shift
		bits |= (-1 + bias) << shift
		rfr := math.Float64frombits(bits)

		if rfr < yfr {
			rexp = rexp - 1
		}

		x := ybits
		exp := (rexp - yexp) + int(x>>shift)&mask - bias
		x &^= mask << shift
		x |= uint64(exp+bias) << shift
		r = r - math.Float64frombits(x)
	}
	return r
}

func FromFloat32[L Limbs](f float32) (out Uint[L], inRange bool) {
	return FromFloat64[L](float64(f))
}

// FromFloat64 creates a Uint from a float64. Any fractional portion will be
// truncated towards zero. Floats too large for the capacity are clamped to
// Max and inRange is false.
//
// NaN and negative floats are treated as 0 and inRange is set to false.
func FromFloat64[L Limbs](f float64) (out Uint[L], inRange bool) {
	if f == 0 {
		return out, true

	} else if f < 0 || f != f { // (f != f) == NaN
		return out, false

	} else if f >= math.Ldexp(1, len(out.limbs)*wordBits) { // Ldexp gives +Inf from 1024 bits up
		return Max[L](), false
	}

	// Dividing by a power of two is exact, so each limb can be peeled off the
	// top without losing anything below it.
	for i := len(out.limbs) - 1; i >= 0 && f >= 1; i-- {
		scale := math.Ldexp(1, i*wordBits)
		if f < scale {
			continue
		}
		out.limbs[i] = uint32(f / scale)
		f = modpos(f, scale)
	}
	return out, true
}

// Float64 returns the float64 nearest to u, rounding half to even.
func (u Uint[L]) Float64() float64 {
	if v, overflow := u.Uint64(); !overflow {
		return float64(v)
	}
	f, _ := u.AsBigFloat().Float64()
	return f
}

func (u Uint[L]) AsBigFloat() (b *big.Float) {
	return new(big.Float).SetInt(u.AsBigInt())
}
