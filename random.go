package everyuuid

import (
	crand "crypto/rand"
	"encoding/binary"
	"io"
	"math/rand/v2"
	"sync"

	"github.com/google/uuid"
)

// NewRandom returns a random version 4 identifier read from crypto/rand.
//
// It is independent of the index mapping.
func NewRandom() Identifier {
	return Identifier(uuid.New())
}

// RandomIdentifier returns a random version 4 identifier from a pool of
// ChaCha8 generators seeded from crypto/rand, which is much cheaper than
// [NewRandom] under heavy concurrent use.
func RandomIdentifier() Identifier {
	g := generatorPool.Get().(*generator)
	defer generatorPool.Put(g)
	return g.next()
}

var generatorPool = sync.Pool{
	New: func() any {
		return newGenerator()
	},
}

type generator struct {
	rng rand.ChaCha8
}

func newGenerator() *generator {
	var seed [32]byte
	if _, err := io.ReadFull(crand.Reader, seed[:]); err != nil {
		panic(err)
	}
	return &generator{
		rng: *rand.NewChaCha8(seed),
	}
}

func (g *generator) next() (output Identifier) {
	binary.NativeEndian.PutUint64(output[:8], g.rng.Uint64())
	binary.NativeEndian.PutUint64(output[8:], g.rng.Uint64())
	output[6] = (output[6] & 0x0f) | 0x40 // Version 4
	output[8] = (output[8] & 0x3f) | 0x80 // Variant is 10
	return
}
