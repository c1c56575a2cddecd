package everyuuid

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"
)

// IdentifierLength is the length of the canonical string form of an identifier.
const IdentifierLength = 36

// Identifier is a 128 bit version 4 style identifier stored big-endian.
type Identifier [16]byte

var zero Identifier

// IdentifierFromUUID returns the identifier for a given uuid.
func IdentifierFromUUID(u uuid.UUID) Identifier {
	return Identifier(u)
}

// ParseIdentifier parses the canonical 8-4-4-4-12 hex form of an identifier.
//
// Hex digits may be either case. Braced, urn prefixed or unhyphenated forms
// are rejected, as are identifiers without the version 4 and variant 10 markers.
func ParseIdentifier(s string) (id Identifier, err error) {
	if len(s) != IdentifierLength {
		err = fmt.Errorf("%w; expected %d characters, got %d", ErrInvalidFormat, IdentifierLength, len(s))
		return
	}
	if s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
		err = fmt.Errorf("%w; %q is missing hyphens at offsets 8, 13, 18 and 23", ErrInvalidFormat, s)
		return
	}
	var buf [32]byte
	copy(buf[0:8], s[0:8])
	copy(buf[8:12], s[9:13])
	copy(buf[12:16], s[14:18])
	copy(buf[16:20], s[19:23])
	copy(buf[20:32], s[24:36])
	if _, decodeErr := hex.Decode(id[:], buf[:]); decodeErr != nil {
		err = fmt.Errorf("%w; %q: %v", ErrInvalidFormat, s, decodeErr)
		return
	}
	if id.Version() != versionNibble {
		err = fmt.Errorf("%w; %q has version %d, expected %d", ErrInvalidFormat, s, id.Version(), versionNibble)
		return
	}
	if id.Variant() != variantBits {
		err = fmt.Errorf("%w; %q has variant bits %02b, expected %02b", ErrInvalidFormat, s, id.Variant(), variantBits)
		return
	}
	return
}

// IsZero returns if the identifier is unset.
func (id Identifier) IsZero() bool {
	return id == zero
}

// Version returns the version nibble of the identifier.
func (id Identifier) Version() byte {
	return id[6] >> 4
}

// Variant returns the top two bits of the ninth byte of the identifier.
func (id Identifier) Variant() byte {
	return id[8] >> 6
}

// UUID returns the identifier as a uuid.
func (id Identifier) UUID() uuid.UUID {
	return uuid.UUID(id)
}

// String returns the canonical lowercase 8-4-4-4-12 form of the identifier.
func (id Identifier) String() string {
	var buf [IdentifierLength]byte
	hex.Encode(buf[0:8], id[0:4])
	buf[8] = '-'
	hex.Encode(buf[9:13], id[4:6])
	buf[13] = '-'
	hex.Encode(buf[14:18], id[6:8])
	buf[18] = '-'
	hex.Encode(buf[19:23], id[8:10])
	buf[23] = '-'
	hex.Encode(buf[24:], id[10:])
	return string(buf[:])
}

// Short returns the short hex representation of the id.
//
// In practice this is the last 4 bytes of the identifier.
func (id Identifier) Short() string {
	var buf [8]byte
	hex.Encode(buf[:], id[12:])
	return string(buf[:])
}

func (id Identifier) words() (hi, lo uint64) {
	hi = binary.BigEndian.Uint64(id[:8])
	lo = binary.BigEndian.Uint64(id[8:])
	return
}

func identifierFromWords(hi, lo uint64) (id Identifier) {
	binary.BigEndian.PutUint64(id[:8], hi)
	binary.BigEndian.PutUint64(id[8:], lo)
	return
}
