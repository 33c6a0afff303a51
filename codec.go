package bignum

import (
	"fmt"
	"math/big"
	"strconv"
)

// From64 creates a Uint from a uint64. If L holds fewer than 64 bits, the
// value is truncated and overflow is set.
func From64[L Limbs](v uint64) (out Uint[L], overflow bool) {
	out.limbs[0] = uint32(v)
	hi := uint32(v >> wordBits)
	if len(out.limbs) > 1 {
		i := 1 // a constant index is out of range for L32, so it won't compile
		out.limbs[i] = hi
	} else if hi != 0 {
		overflow = true
	}
	return out, overflow
}

// Uint64 returns the low 64 bits of u. Overflow is set if u is not
// representable as a uint64. See IsUint64() if you want to check before you
// convert.
func (u Uint[L]) Uint64() (v uint64, overflow bool) {
	v = uint64(u.limbs[0])
	if len(u.limbs) > 1 {
		i := 1 // see From64
		v |= uint64(u.limbs[i]) << wordBits
	}
	return v, !u.IsUint64()
}

// IsUint64 reports whether u can be represented as a uint64.
func (u Uint[L]) IsUint64() bool {
	for i := 2; i < len(u.limbs); i++ {
		if u.limbs[i] != 0 {
			return false
		}
	}
	return true
}

// FromHex creates a Uint from a string of hex digits, most significant digit
// first. See FromHexN.
func FromHex[L Limbs](s string) (out Uint[L], overflow bool, err error) {
	return FromHexN[L](s, len(s))
}

// FromHexN creates a Uint from at most maxLen bytes of s. Decoding also stops
// at the first NUL byte.
//
// Digits may be upper or lower case; there is no "0x" prefix. A string
// holding fewer digits than the capacity is zero-extended. If the string
// encodes a value wider than the capacity, the most significant digits are
// dropped and overflow is set. Overflow depends on the value, not the length:
// dropping leading zero digits never sets it, however long the string is.
func FromHexN[L Limbs](s string, maxLen int) (out Uint[L], overflow bool, err error) {
	if maxLen < 0 {
		panic("bignum: negative hex length")
	}
	if maxLen > len(s) {
		maxLen = len(s)
	}

	end := 0
	for end < maxLen && s[end] != 0 {
		end++
	}

	capDigits := len(out.limbs) * wordDigits
	digit := 0
	for i := end - 1; i >= 0; i-- {
		c := s[i]
		d, ok := hexValue(c)
		if !ok {
			return Uint[L]{}, false, fmt.Errorf("bignum: invalid hex digit %q at offset %d", c, i)
		}
		if digit < capDigits {
			out.limbs[digit/wordDigits] |= uint32(d) << (4 * uint(digit%wordDigits))
		} else if d != 0 {
			overflow = true
		}
		digit++
	}

	return out, overflow, nil
}

func hexValue(c byte) (v byte, ok bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

const hexDigits = "0123456789abcdef"

// PutHex renders u as lower case hex digits into buf, most significant digit
// first, with leading zeros suppressed, and returns the number of digits
// written. A NUL byte follows the digits, so buf needs room for the digits
// plus one. If the digits do not fit, only the least significant
// len(buf)-1 digits of the value are rendered (again without leading zeros)
// and overflow is set.
//
// PutHex panics if buf is empty.
func (u Uint[L]) PutHex(buf []byte) (n int, overflow bool) {
	if len(buf) == 0 {
		panic("bignum: empty hex buffer")
	}
	room := len(buf) - 1

	digits := (u.BitLen() + 3) / 4
	if digits > room {
		digits = room
		overflow = true
	}

	// Strip zeros left exposed by truncation:
	for digits > 0 && u.hexDigit(digits-1) == 0 {
		digits--
	}

	if digits == 0 {
		if room == 0 {
			buf[0] = 0
			return 0, true
		}
		buf[0], buf[1] = '0', 0
		return 1, overflow
	}

	for i := 0; i < digits; i++ {
		buf[i] = hexDigits[u.hexDigit(digits-1-i)]
	}
	buf[digits] = 0
	return digits, overflow
}

// hexDigit returns the i'th hex digit of u, counting from the least
// significant.
func (u Uint[L]) hexDigit(i int) uint32 {
	return (u.limbs[i/wordDigits] >> (4 * uint(i%wordDigits))) & 0xf
}

// Hex returns u as lower case hex digits with no leading zeros.
func (u Uint[L]) Hex() string {
	buf := make([]byte, len(u.limbs)*wordDigits+1)
	n, _ := u.PutHex(buf)
	return string(buf[:n])
}

// FromBigInt creates a Uint from a big.Int. Values wider than the capacity are
// truncated to the low bits and set overflow. Negative values are not
// representable; they return 0 and set overflow.
func FromBigInt[L Limbs](v *big.Int) (out Uint[L], overflow bool) {
	if v.Sign() < 0 {
		return out, true
	}

	words := v.Bits()
	sz := len(out.limbs)

	switch intSize {
	case 64:
		for i, w := range words {
			lo, hi := i*2, i*2+1
			if lo < sz {
				out.limbs[lo] = uint32(w)
			} else if uint32(w) != 0 {
				overflow = true
			}
			if hi < sz {
				out.limbs[hi] = uint32(uint64(w) >> wordBits)
			} else if uint64(w)>>wordBits != 0 {
				overflow = true
			}
		}

	case 32:
		for i, w := range words {
			if i < sz {
				out.limbs[i] = uint32(w)
			} else if w != 0 {
				overflow = true
			}
		}

	default:
		panic("bignum: unsupported bit size")
	}

	return out, overflow
}

// FromString creates a Uint from a decimal string. Values wider than the
// capacity are truncated and set overflow.
func FromString[L Limbs](s string) (out Uint[L], overflow bool, err error) {
	b, ok := new(big.Int).SetString(s, 10)
	if !ok || b.Sign() < 0 {
		return out, false, fmt.Errorf("bignum: string %q invalid", s)
	}
	out, overflow = FromBigInt[L](b)
	return out, overflow, nil
}

func (u Uint[L]) IntoBigInt(b *big.Int) {
	sz := len(u.limbs)

	switch intSize {
	case 64:
		words := make([]big.Word, (sz+1)/2)
		for i := 0; i < sz; i++ {
			words[i/2] |= big.Word(uint64(u.limbs[i]) << (wordBits * uint(i%2)))
		}
		b.SetBits(words)

	case 32:
		words := make([]big.Word, sz)
		for i := 0; i < sz; i++ {
			words[i] = big.Word(u.limbs[i])
		}
		b.SetBits(words)

	default:
		panic("bignum: unsupported bit size")
	}
}

func (u Uint[L]) AsBigInt() (b *big.Int) {
	var v big.Int
	u.IntoBigInt(&v)
	return &v
}

func (u Uint[L]) String() string {
	if u.IsUint64() {
		v, _ := u.Uint64()
		return strconv.FormatUint(v, 10)
	}
	return u.AsBigInt().String()
}

func (u Uint[L]) Format(s fmt.State, c rune) {
	u.AsBigInt().Format(s, c)
}

func (u Uint[L]) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

func (u *Uint[L]) UnmarshalText(bts []byte) (err error) {
	v, overflow, err := FromString[L](string(bts))
	if err != nil {
		return err
	}
	if overflow {
		return fmt.Errorf("bignum: %q overflows %d bits", string(bts), u.Bits())
	}
	*u = v
	return nil
}

func (u Uint[L]) MarshalJSON() ([]byte, error) {
	return []byte(`"` + u.String() + `"`), nil
}

func (u *Uint[L]) UnmarshalJSON(bts []byte) (err error) {
	if len(bts) > 0 && bts[0] == '"' {
		ln := len(bts)
		if ln < 2 || bts[ln-1] != '"' {
			return fmt.Errorf("bignum: invalid JSON %q", string(bts))
		}
		bts = bts[1 : ln-1]
	}
	return u.UnmarshalText(bts)
}
