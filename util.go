package bignum

type RandSource interface {
	Uint64() uint64
}

// Rand generates a random Uint filling every limb from an external source.
func Rand[L Limbs](source RandSource) (out Uint[L]) {
	for i := 0; i < len(out.limbs); i += 2 {
		v := source.Uint64()
		out.limbs[i] = uint32(v)
		if i+1 < len(out.limbs) {
			out.limbs[i+1] = uint32(v >> wordBits)
		}
	}
	return out
}

// Difference subtracts the smaller of a and b from the larger.
func Difference[L Limbs](a, b Uint[L]) (out Uint[L]) {
	switch a.Cmp(b) {
	case 1:
		out, _ = a.Sub(b)
	case -1:
		out, _ = b.Sub(a)
	}
	return out
}

func Larger[L Limbs](a, b Uint[L]) Uint[L] {
	if b.GreaterThan(a) {
		return b
	}
	return a
}

func Smaller[L Limbs](a, b Uint[L]) Uint[L] {
	if b.LessThan(a) {
		return b
	}
	return a
}
