package everyuuid

import (
	"math/rand/v2"
	"testing"
)

func Test_rotl61(t *testing.T) {
	assert_equal(t, 128, rotl61(1, 7))
	assert_equal(t, 1, rotl61(1<<60, 1))
	assert_equal(t, mask61, rotl61(mask61, 13))
	assert_equal(t, 0x7f, rotl61(uint64(0x7f)<<54, 7))
	assert_equal(t, 0xc0, rotl61(1|1<<60, 7))
}

func Test_roundFunction_staysWithin61Bits(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 8))
	for x := 0; x < 10000; x++ {
		for round := 0; round < Rounds; round++ {
			out := roundFunction(rng.Uint64()&mask61, round)
			if out > mask61 {
				t.Fatalf("round function output %x exceeds 61 bits", out)
			}
		}
	}
}

func Test_encipher_decipher(t *testing.T) {
	rng := rand.New(rand.NewPCG(9, 10))
	for x := 0; x < 10000; x++ {
		left, right := rng.Uint64()&mask61, rng.Uint64()&mask61
		el, er := encipher(left, right)
		assert_equal(t, true, el <= mask61)
		assert_equal(t, true, er <= mask61)
		dl, dr := decipher(el, er)
		assert_equal(t, left, dl)
		assert_equal(t, right, dr)
	}
}

func Test_pack_unpack(t *testing.T) {
	rng := rand.New(rand.NewPCG(11, 12))
	for x := 0; x < 10000; x++ {
		left, right := rng.Uint64()&mask61, rng.Uint64()&mask61
		id := pack(left, right)
		assert_equal(t, 4, id.Version())
		assert_equal(t, 2, id.Variant())
		ul, ur := unpack(id)
		assert_equal(t, left, ul)
		assert_equal(t, right, ur)
	}
}
