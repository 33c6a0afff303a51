package bignum

const (
	wordBits = 32
	wordMax  = 1<<wordBits - 1

	// hex digits per limb
	wordDigits = wordBits / 4

	maxUint64 = 1<<64 - 1

	intSize = 32 << (^uint(0) >> 63)
)

