package everyuuid

import "fmt"

// FromIndex returns the identifier for a given index.
//
// The index must be below 2^122, otherwise [ErrOutOfRange] is returned.
func FromIndex(index Index) (Identifier, error) {
	if !index.Valid() {
		return zero, fmt.Errorf("%w; %s is not below 2^%d", ErrOutOfRange, index.String(), IndexBits)
	}
	left, right := encipher(index.halves())
	return pack(left, right), nil
}

// IndexToIdentifier returns the canonical string identifier for a given index.
func IndexToIdentifier(index Index) (string, error) {
	id, err := FromIndex(index)
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// ToIndex returns the index a given identifier was produced from.
//
// Identifiers without the version 4 and variant 10 markers yield [ErrInvalidFormat].
func ToIndex(id Identifier) (Index, error) {
	if id.Version() != versionNibble || id.Variant() != variantBits {
		return Index{}, fmt.Errorf("%w; %s is not a version 4 variant 10 identifier", ErrInvalidFormat, id.String())
	}
	left, right := decipher(unpack(id))
	return indexFromHalves(left, right), nil
}

// IdentifierToIndex parses a canonical string identifier and returns its index.
func IdentifierToIndex(s string) (Index, error) {
	id, err := ParseIdentifier(s)
	if err != nil {
		return Index{}, err
	}
	return ToIndex(id)
}

// pack lays out the enciphered halves around the fixed version and variant bits.
//
//	[127:80] left >> 13
//	[79:76]  0100
//	[75:64]  (left >> 1) & 0xfff
//	[63:62]  10
//	[61]     left & 1
//	[60:0]   right
func pack(left, right uint64) Identifier {
	hi := (left>>13)<<16 | versionNibble<<12 | (left>>1)&mask12
	lo := variantBits<<62 | (left&1)<<61 | right&mask61
	return identifierFromWords(hi, lo)
}

func unpack(id Identifier) (left, right uint64) {
	hi, lo := id.words()
	left = (hi>>16)<<13 | (hi&mask12)<<1 | (lo>>61)&1
	right = lo & mask61
	return
}
