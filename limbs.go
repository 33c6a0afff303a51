package bignum

// Limbs is the set of limb arrays a Uint can be built on. The array length is
// the capacity of the Uint in 32-bit words, least significant word first.
type Limbs interface {
	~[1]uint32 | ~[2]uint32 | ~[4]uint32 | ~[8]uint32 |
		~[16]uint32 | ~[32]uint32 | ~[64]uint32 | ~[128]uint32
}

type (
	L32   [1]uint32
	L64   [2]uint32
	L128  [4]uint32
	L256  [8]uint32
	L512  [16]uint32
	L1024 [32]uint32
	L2048 [64]uint32
	L4096 [128]uint32
)

type (
	U32   = Uint[L32]
	U64   = Uint[L64]
	U128  = Uint[L128]
	U256  = Uint[L256]
	U512  = Uint[L512]
	U1024 = Uint[L1024]
	U2048 = Uint[L2048]
	U4096 = Uint[L4096]
)

// Uint is an unsigned integer of fixed capacity. The zero value is 0.
//
// Uint is a value type; all operations return new values, so it is always
// safe to assign a result back to one of its operands.
type Uint[L Limbs] struct {
	limbs L
}

// FromLimbs creates a Uint from a raw limb array, least significant limb
// first. See Limbs() for the counterpart.
func FromLimbs[L Limbs](limbs L) Uint[L] { return Uint[L]{limbs: limbs} }

// Max returns the largest value representable by a Uint[L].
func Max[L Limbs]() (out Uint[L]) {
	for i := 0; i < len(out.limbs); i++ {
		out.limbs[i] = wordMax
	}
	return out
}

// Limbs returns a copy of the underlying limb array.
func (u Uint[L]) Limbs() L { return u.limbs }

// Limb returns the i'th limb, counting from the least significant. Limbs
// beyond the capacity read as 0.
func (u Uint[L]) Limb(i int) uint32 {
	if i < 0 || i >= len(u.limbs) {
		return 0
	}
	return u.limbs[i]
}

// Len returns the capacity in limbs.
func (u Uint[L]) Len() int { return len(u.limbs) }

// Bits returns the capacity in bits.
func (u Uint[L]) Bits() int { return len(u.limbs) * wordBits }

// activeLimbs returns the index of the most significant non-zero limb plus
// one, or 0 if u is zero.
func (u Uint[L]) activeLimbs() int {
	for i := len(u.limbs) - 1; i >= 0; i-- {
		if u.limbs[i] != 0 {
			return i + 1
		}
	}
	return 0
}
