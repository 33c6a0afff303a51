package bignum

// Quo returns the quotient u/by for by != 0. If by == 0, a division-by-zero
// run-time panic occurs. Quo implements truncated division (like Go); see
// QuoRem for more details.
func (u Uint[L]) Quo(by Uint[L]) (q Uint[L]) {
	q, _ = u.QuoRem(by)
	return q
}

// Rem returns the remainder of u%by for by != 0. If by == 0, a
// division-by-zero run-time panic occurs.
func (u Uint[L]) Rem(by Uint[L]) (r Uint[L]) {
	_, r = u.QuoRem(by)
	return r
}

// QuoRem returns the quotient q and remainder r for by != 0. If by == 0, a
// division-by-zero run-time panic occurs.
//
// QuoRem implements T-division and modulus (like Go):
//
//	q = u/by      with the result truncated to zero
//	r = u - by*q
//
// The result always satisfies q*by + r == u and r < by, so QuoRem can never
// overflow.
//
func (u Uint[L]) QuoRem(by Uint[L]) (q, r Uint[L]) {
	bl := by.activeLimbs()
	if bl == 0 {
		panic("bignum: division by zero")
	}

	if cmp := u.Cmp(by); cmp < 0 {
		return q, u // it's 100% remainder

	} else if cmp == 0 {
		q.limbs[0] = 1 // dividend and divisor are the same
		return q, r
	}

	ul := u.activeLimbs()
	if ul == 1 {
		// bl must also be 1, as u > by.
		q.limbs[0] = u.limbs[0] / by.limbs[0]
		r.limbs[0] = u.limbs[0] % by.limbs[0]
		return q, r
	}

	if bl == 1 {
		return quoremWord(u, by.limbs[0], ul)
	}

	// When the quotient can't be wider than a single limb, shifting and
	// subtracting one bit at a time beats the long division's digit search.
	if by.LeadingZeros()-u.LeadingZeros() < wordBits {
		return quoremBin(u, by)
	}

	return quoremLong(u, by, ul, bl)
}

// quoremWord divides u by a single-limb divisor, carrying the running
// remainder down from the top limb.
func quoremWord[L Limbs](u Uint[L], by uint32, ul int) (q, r Uint[L]) {
	var rem uint64
	d := uint64(by)
	for i := ul - 1; i >= 0; i-- {
		cur := rem<<wordBits | uint64(u.limbs[i])
		q.limbs[i] = uint32(cur / d)
		rem = cur % d
	}
	r.limbs[0] = uint32(rem)
	return q, r
}

// quoremBin is binary long division; u must be greater than by.
func quoremBin[L Limbs](u, by Uint[L]) (q, r Uint[L]) {
	shift := int(by.LeadingZeros() - u.LeadingZeros())
	by = by.Lsh(uint(shift))

	for {
		q = q.Lsh(1)

		if u.GreaterOrEqualTo(by) {
			u, _ = u.Sub(by)
			q.limbs[0] |= 1
		}

		by = by.Rsh(1)

		if shift <= 0 {
			break
		}
		shift--
	}

	r = u
	return q, r
}

// quoremLong is schoolbook long division, one limb of quotient at a time. ul
// and bl are the active limb counts of u and by; u must be greater than by
// and bl must be at least 2.
//
// The window holds the running remainder. Before each digit it is less than
// by; appending the next dividend limb makes it less than by*2^32, so every
// quotient digit fits in a single limb and the window never needs more than
// bl+1 limbs.
func quoremLong[L Limbs](u, by Uint[L], ul, bl int) (q, r Uint[L]) {
	var window Uint[L]
	for i := 0; i < bl-1; i++ {
		window.limbs[i] = u.limbs[ul-bl+1+i]
	}

	for di := ul - bl; di >= 0; di-- {
		window = window.appendLimb(u.limbs[di])
		var digit uint32
		digit, window = quoDigit(window, by, bl)
		q = q.appendLimb(digit)
	}

	return q, window
}

// quoDigit finds the largest digit such that digit*by <= window, and returns
// it along with window - digit*by.
//
// Rather than subtracting by from the window one step at a time, the digit is
// bracketed using the leading limbs of the window and divisor (Knuth, TAOCP
// vol. 2, 4.3.1), then narrowed by binary search. The result is identical to
// repeated subtraction.
func quoDigit[L Limbs](window, by Uint[L], bl int) (digit uint32, rem Uint[L]) {
	top := uint64(window.Limb(bl))<<wordBits | uint64(window.Limb(bl-1))
	vtop := uint64(by.limbs[bl-1])

	lo := top / (vtop + 1)
	hi := top / vtop
	if hi > wordMax {
		hi = wordMax
	}
	if lo > hi {
		lo = hi
	}

	for lo < hi {
		mid := lo + (hi-lo+1)/2
		p, carry := by.mulWord(uint32(mid))
		if carry == 0 && p.LessOrEqualTo(window) {
			lo = mid
		} else {
			hi = mid - 1
		}
	}

	digit = uint32(lo)
	if digit != 0 {
		p, _ := by.mulWord(digit)
		window, _ = window.Sub(p)
	}
	return digit, window
}

// appendLimb shifts u left by one limb and places d in the least significant
// limb. The most significant limb is discarded.
func (u Uint[L]) appendLimb(d uint32) (v Uint[L]) {
	for i := len(u.limbs) - 1; i > 0; i-- {
		v.limbs[i] = u.limbs[i-1]
	}
	v.limbs[0] = d
	return v
}
