package everyuuid

const (
	// IndexBits is the number of free payload bits in a version 4 identifier,
	// and as a result the size in bits of the index domain.
	IndexBits = 122

	// Rounds is the number of feistel rounds applied to each index.
	Rounds = 4

	halfBits = 61
	mask61   = (uint64(1) << halfBits) - 1
	mask12   = (uint64(1) << 12) - 1

	roundMultiplier = 0x6c8e944d1f5aa3b7

	versionNibble = 0x4
	variantBits   = 0x2
)

// RoundConstants are the per-round keys of the feistel network.
//
// Only the first [Rounds] are used; each is masked to 61 bits before use.
var RoundConstants = [8]uint64{
	0x47f5417d6b82b5d1,
	0x90a7c5fe8c345af2,
	0xd8796c3b2a1e4f8d,
	0x6f4a3c8e7d5b9102,
	0xb3f8c7d6e5a49201,
	0x2d9e8b7c6f5a3d4e,
	0xa1b2c3d4e5f6789a,
	0x123456789abcdef0,
}
