package bignum

// Add returns u+n. If the sum does not fit, the result wraps and overflow is
// set.
func (u Uint[L]) Add(n Uint[L]) (v Uint[L], overflow bool) {
	var carry uint64
	for i := 0; i < len(u.limbs); i++ {
		t := uint64(u.limbs[i]) + uint64(n.limbs[i]) + carry
		v.limbs[i] = uint32(t)
		carry = t >> wordBits
	}
	return v, carry != 0
}

// Sub returns u-n. If n > u, the result wraps around as an unsigned integer
// would and overflow is set.
func (u Uint[L]) Sub(n Uint[L]) (v Uint[L], overflow bool) {
	var borrow uint64
	for i := 0; i < len(u.limbs); i++ {
		t := uint64(u.limbs[i]) - uint64(n.limbs[i]) - borrow
		v.limbs[i] = uint32(t)
		borrow = (t >> wordBits) & 1
	}
	return v, borrow != 0
}

// Inc returns u+1. Incrementing the maximum value wraps to 0 and sets
// overflow.
func (u Uint[L]) Inc() (v Uint[L], overflow bool) {
	v = u
	for i := 0; i < len(v.limbs); i++ {
		v.limbs[i]++
		if v.limbs[i] != 0 {
			return v, false
		}
	}
	return v, true
}

// Dec returns u-1. Decrementing 0 wraps to the maximum value and sets
// overflow.
func (u Uint[L]) Dec() (v Uint[L], overflow bool) {
	v = u
	for i := 0; i < len(v.limbs); i++ {
		v.limbs[i]--
		if v.limbs[i] != wordMax {
			return v, false
		}
	}
	return v, true
}

// Mul returns u*n, truncated to the capacity of a Uint[L]. Overflow is set if
// any part of the product was discarded.
func (u Uint[L]) Mul(n Uint[L]) (dest Uint[L], overflow bool) {
	sz := len(u.limbs)

	for i := 0; i < sz; i++ {
		d := uint64(n.limbs[i])
		if d == 0 {
			continue
		}

		var row Uint[L]
		var carry uint64
		for j := 0; i+j < sz; j++ {
			t := uint64(u.limbs[j])*d + carry
			row.limbs[i+j] = uint32(t)
			carry = t >> wordBits
		}
		if carry != 0 {
			overflow = true
		}

		// Partial products that would land past the top limb are dropped:
		for j := sz - i; j < sz; j++ {
			if u.limbs[j] != 0 {
				overflow = true
				break
			}
		}

		var rowOverflow bool
		dest, rowOverflow = dest.Add(row)
		overflow = overflow || rowOverflow
	}

	return dest, overflow
}

// mulWord multiplies u by a single limb, returning the product truncated to
// the capacity of u and the limb that was carried out of the top.
func (u Uint[L]) mulWord(d uint32) (v Uint[L], carry uint32) {
	var c uint64
	for i := 0; i < len(u.limbs); i++ {
		t := uint64(u.limbs[i])*uint64(d) + c
		v.limbs[i] = uint32(t)
		c = t >> wordBits
	}
	return v, uint32(c)
}
