package bignum

import (
	"math/bits"
)

func (u Uint[L]) And(n Uint[L]) (out Uint[L]) {
	for i := 0; i < len(u.limbs); i++ {
		out.limbs[i] = u.limbs[i] & n.limbs[i]
	}
	return out
}

func (u Uint[L]) AndNot(n Uint[L]) (out Uint[L]) {
	for i := 0; i < len(u.limbs); i++ {
		out.limbs[i] = u.limbs[i] &^ n.limbs[i]
	}
	return out
}

func (u Uint[L]) Not() (out Uint[L]) {
	for i := 0; i < len(u.limbs); i++ {
		out.limbs[i] = ^u.limbs[i]
	}
	return out
}

func (u Uint[L]) Or(n Uint[L]) (out Uint[L]) {
	for i := 0; i < len(u.limbs); i++ {
		out.limbs[i] = u.limbs[i] | n.limbs[i]
	}
	return out
}

func (u Uint[L]) Xor(n Uint[L]) (out Uint[L]) {
	for i := 0; i < len(u.limbs); i++ {
		out.limbs[i] = u.limbs[i] ^ n.limbs[i]
	}
	return out
}

// Lsh returns u<<n. Bits shifted past the top limb are discarded; shifting by
// the bit capacity or more yields 0.
func (u Uint[L]) Lsh(n uint) (v Uint[L]) {
	sz := len(u.limbs)
	if n == 0 {
		return u
	} else if n >= uint(sz)*wordBits {
		return v
	}

	ls := int(n / wordBits)
	bs := n % wordBits

	if bs == 0 {
		for i := sz - 1; i >= ls; i-- {
			v.limbs[i] = u.limbs[i-ls]
		}
		return v
	}

	for i := sz - 1; i > ls; i-- {
		v.limbs[i] = (u.limbs[i-ls] << bs) | (u.limbs[i-ls-1] >> (wordBits - bs))
	}
	v.limbs[ls] = u.limbs[0] << bs
	return v
}

// Rsh returns u>>n. Shifting by the bit capacity or more yields 0.
func (u Uint[L]) Rsh(n uint) (v Uint[L]) {
	sz := len(u.limbs)
	if n == 0 {
		return u
	} else if n >= uint(sz)*wordBits {
		return v
	}

	ls := int(n / wordBits)
	bs := n % wordBits
	top := sz - 1 - ls

	if bs == 0 {
		for i := 0; i <= top; i++ {
			v.limbs[i] = u.limbs[i+ls]
		}
		return v
	}

	for i := 0; i < top; i++ {
		v.limbs[i] = (u.limbs[i+ls] >> bs) | (u.limbs[i+ls+1] << (wordBits - bs))
	}
	v.limbs[top] = u.limbs[sz-1] >> bs
	return v
}

// Bit returns the value of the i'th bit of u. The bit index must be >= 0 and
// less than the bit capacity; Bit panics otherwise.
func (u Uint[L]) Bit(i int) uint {
	if i < 0 || i >= len(u.limbs)*wordBits {
		panic("bignum: bit out of range")
	}
	return uint(u.limbs[i/wordBits]>>(uint(i)%wordBits)) & 1
}

// SetBit returns a copy of u with u's i'th bit set to b (0 or 1). The bit
// index must be >= 0 and less than the bit capacity; SetBit panics otherwise.
func (u Uint[L]) SetBit(i int, b uint) (out Uint[L]) {
	if i < 0 || i >= len(u.limbs)*wordBits {
		panic("bignum: bit out of range")
	}
	out = u
	mask := uint32(1) << (uint(i) % wordBits)
	switch b {
	case 0:
		out.limbs[i/wordBits] &^= mask
	case 1:
		out.limbs[i/wordBits] |= mask
	default:
		panic("bignum: bit value not 0 or 1")
	}
	return out
}

// BitLen returns the length of the absolute value of u in bits. The bit length
// of 0 is 0.
func (u Uint[L]) BitLen() int {
	return len(u.limbs)*wordBits - int(u.LeadingZeros())
}

func (u Uint[L]) LeadingZeros() uint {
	for i := len(u.limbs) - 1; i >= 0; i-- {
		if u.limbs[i] != 0 {
			return uint(len(u.limbs)-1-i)*wordBits + uint(bits.LeadingZeros32(u.limbs[i]))
		}
	}
	return uint(len(u.limbs)) * wordBits
}

func (u Uint[L]) TrailingZeros() uint {
	for i := 0; i < len(u.limbs); i++ {
		if u.limbs[i] != 0 {
			return uint(i)*wordBits + uint(bits.TrailingZeros32(u.limbs[i]))
		}
	}
	return uint(len(u.limbs)) * wordBits
}
