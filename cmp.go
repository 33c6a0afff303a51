package bignum

func (u Uint[L]) IsZero() bool {
	for i := 0; i < len(u.limbs); i++ {
		if u.limbs[i] != 0 {
			return false
		}
	}
	return true
}

// Cmp compares u and n and returns:
//
//	-1 if u <  n
//	 0 if u == n
//	+1 if u >  n
//
func (u Uint[L]) Cmp(n Uint[L]) int {
	for i := len(u.limbs) - 1; i >= 0; i-- {
		if u.limbs[i] > n.limbs[i] {
			return 1
		} else if u.limbs[i] < n.limbs[i] {
			return -1
		}
	}
	return 0
}

func (u Uint[L]) Equal(n Uint[L]) bool {
	for i := 0; i < len(u.limbs); i++ {
		if u.limbs[i] != n.limbs[i] {
			return false
		}
	}
	return true
}

func (u Uint[L]) GreaterThan(n Uint[L]) bool      { return u.Cmp(n) > 0 }
func (u Uint[L]) GreaterOrEqualTo(n Uint[L]) bool { return u.Cmp(n) >= 0 }
func (u Uint[L]) LessThan(n Uint[L]) bool         { return u.Cmp(n) < 0 }
func (u Uint[L]) LessOrEqualTo(n Uint[L]) bool    { return u.Cmp(n) <= 0 }
