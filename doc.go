/*
Package bignum provides fixed-capacity unsigned integers wider than a machine
word, built on an array of 32-bit limbs.

The capacity of a Uint is part of its type. Uint[L] is parameterised by a
limb array type; aliases are provided for the supported sizes:

	U32   = Uint[L32]   // 1 limb
	U64   = Uint[L64]   // 2 limbs
	U128  = Uint[L128]  // 4 limbs
	U256  = Uint[L256]  // 8 limbs
	U512  = Uint[L512]  // 16 limbs
	U1024 = Uint[L1024] // 32 limbs
	U2048 = Uint[L2048] // 64 limbs
	U4096 = Uint[L4096] // 128 limbs

Uint is a value type; all operations return new values and none of the
arithmetic allocates. Capacity never grows: operations whose true result does
not fit return the wrapped value along with an overflow flag, so every
fallible operation reports overflow to its own caller:

	a, _ := bignum.From64[bignum.L256](math.MaxUint64)
	b, overflow := a.Mul(a)
	fmt.Println(b, overflow)
	// Output: 340282366920938463426481119284349108225 false

Division by zero panics, as it does for Go's integers.

Uints can be created from a variety of sources:

	From64[L](v uint64) (out Uint[L], overflow bool)
	FromHex[L](s string) (out Uint[L], overflow bool, err error)
	FromHexN[L](s string, maxLen int) (out Uint[L], overflow bool, err error)
	FromString[L](s string) (out Uint[L], overflow bool, err error)
	FromBigInt[L](v *big.Int) (out Uint[L], overflow bool)
	FromFloat64[L](f float64) (out Uint[L], inRange bool)
	FromLimbs[L](limbs L) Uint[L]
	Rand[L](source RandSource) Uint[L]

Uint supports the following formatting and marshalling interfaces:

	- fmt.Formatter
	- fmt.Stringer
	- json.Marshaler
	- json.Unmarshaler
	- encoding.TextMarshaler
	- encoding.TextUnmarshaler

*/
package bignum
