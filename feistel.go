package everyuuid

// rotl61 rotates a 61 bit value left by k bits.
func rotl61(x uint64, k uint) uint64 {
	return ((x << k) | (x >> (halfBits - k))) & mask61
}

// roundFunction mixes a 61 bit half with the key for a given round.
//
// It does not need to be invertible; the feistel structure is.
func roundFunction(block uint64, round int) uint64 {
	block ^= RoundConstants[round] & mask61
	block = rotl61(block, 7)
	block = (block * roundMultiplier) & mask61
	return rotl61(block, 13)
}

// encipher runs the feistel rounds forward over a pair of 61 bit halves.
func encipher(left, right uint64) (uint64, uint64) {
	for round := 0; round < Rounds; round++ {
		left, right = right, left^(roundFunction(right, round)&mask61)
	}
	return left, right
}

// decipher undoes [encipher].
func decipher(left, right uint64) (uint64, uint64) {
	for round := Rounds - 1; round >= 0; round-- {
		left, right = right^(roundFunction(left, round)&mask61), left
	}
	return left, right
}
