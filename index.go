package everyuuid

import (
	"fmt"
	"math/big"
	"math/bits"
	"strconv"
	"strings"
)

// hiMask is the mask for the valid bits of [Index.Hi].
const hiMask = (uint64(1) << (IndexBits - 64)) - 1

// MaxIndex is the largest valid index, 2^122-1.
var MaxIndex = Index{Hi: hiMask, Lo: ^uint64(0)}

// Index is an unsigned 128 bit integer split into its high and low 64 bits.
//
// Only values below 2^122 are valid inputs to the mapping; see [Index.Valid].
type Index struct {
	Hi uint64
	Lo uint64
}

// IndexFromUint64 returns an index for a given uint64 value.
func IndexFromUint64(v uint64) Index {
	return Index{Lo: v}
}

// IndexFromBig returns the index for a given big integer.
//
// Negative values yield [ErrInvalidIndex], values at or above 2^122 yield [ErrOutOfRange].
func IndexFromBig(v *big.Int) (Index, error) {
	if v == nil || v.Sign() < 0 {
		return Index{}, fmt.Errorf("%w; value must be a non-negative integer", ErrInvalidIndex)
	}
	if v.BitLen() > IndexBits {
		return Index{}, fmt.Errorf("%w; %s is not below 2^%d", ErrOutOfRange, v.String(), IndexBits)
	}
	var lo, hi big.Int
	lo.And(v, maxUint64Big)
	hi.Rsh(v, 64)
	return Index{Hi: hi.Uint64(), Lo: lo.Uint64()}, nil
}

var maxUint64Big = new(big.Int).SetUint64(^uint64(0))

// ParseIndex parses a base 10 index, ignoring surrounding whitespace.
func ParseIndex(s string) (Index, error) {
	s = strings.TrimSpace(s)
	if s == "" || s[0] == '-' || s[0] == '+' {
		return Index{}, fmt.Errorf("%w; %q is not a base 10 unsigned integer", ErrInvalidIndex, s)
	}
	if v, err := strconv.ParseUint(s, 10, 64); err == nil {
		return IndexFromUint64(v), nil
	}
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Index{}, fmt.Errorf("%w; %q is not a base 10 unsigned integer", ErrInvalidIndex, s)
	}
	return IndexFromBig(v)
}

// Valid returns if the index is within [0, 2^122).
func (i Index) Valid() bool {
	return i.Hi <= hiMask
}

// IsZero returns if the index is zero.
func (i Index) IsZero() bool {
	return i.Hi == 0 && i.Lo == 0
}

// Cmp compares two indexes, returning -1, 0 or +1.
func (i Index) Cmp(other Index) int {
	switch {
	case i.Hi < other.Hi:
		return -1
	case i.Hi > other.Hi:
		return 1
	case i.Lo < other.Lo:
		return -1
	case i.Lo > other.Lo:
		return 1
	}
	return 0
}

// Add returns the index n positions after this one, wrapping modulo 2^122.
func (i Index) Add(n uint64) Index {
	lo, carry := bits.Add64(i.Lo, n, 0)
	return Index{Hi: (i.Hi + carry) & hiMask, Lo: lo}
}

// Next returns the following index, wrapping from [MaxIndex] to zero.
func (i Index) Next() Index {
	return i.Add(1)
}

// Prev returns the preceding index, staying at zero.
func (i Index) Prev() Index {
	if i.IsZero() {
		return i
	}
	lo, borrow := bits.Sub64(i.Lo, 1, 0)
	return Index{Hi: i.Hi - borrow, Lo: lo}
}

// Big returns the index as a big integer.
func (i Index) Big() *big.Int {
	v := new(big.Int).SetUint64(i.Hi)
	v.Lsh(v, 64)
	return v.Or(v, new(big.Int).SetUint64(i.Lo))
}

// String returns the base 10 representation of the index.
func (i Index) String() string {
	if i.Hi == 0 {
		return strconv.FormatUint(i.Lo, 10)
	}
	return i.Big().String()
}

// halves splits a valid index into its left (high) and right (low) 61 bit halves.
func (i Index) halves() (left, right uint64) {
	left = (i.Hi<<(64-halfBits) | i.Lo>>halfBits) & mask61
	right = i.Lo & mask61
	return
}

// indexFromHalves is the inverse of [Index.halves].
func indexFromHalves(left, right uint64) Index {
	return Index{
		Hi: left >> (64 - halfBits),
		Lo: left<<halfBits | right,
	}
}
