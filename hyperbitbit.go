package hyperbitbit

import (
	"math"
	"math/bits"

	"github.com/dgryski/go-metro"
)

// hashSeed is the fixed metro hash seed. Changing it changes every estimate,
// so it is pinned to keep sketches reproducible across runs and platforms.
const hashSeed = 1337

// maxPopcount is the number of set bits in sketch1 that triggers a rescale.
const maxPopcount = 31

// Sketch estimates the number of distinct elements inserted into it.
//
// sketch1 tracks which of 64 buckets have seen a hash rarer than the current
// scale lgn; sketch2 tracks the same one scale higher and seeds sketch1 when
// the structure rescales. lgn only ever grows.
type Sketch struct {
	lgn     uint8
	sketch1 uint64
	sketch2 uint64
}

// New creates an empty Sketch. The zero value of Sketch is not valid; always
// start from New.
func New() *Sketch {
	return &Sketch{lgn: 5}
}

// Insert records v as an element of the multiset. Duplicate inserts of equal
// byte sequences leave the state unchanged. The hash is metro with a fixed
// seed, so equal inputs collide deterministically across processes.
func (s *Sketch) Insert(v []byte) {
	s.InsertHash(metro.Hash64(v, hashSeed))
}

// InsertString records v without forcing a []byte conversion on the caller.
func (s *Sketch) InsertString(v string) {
	s.InsertHash(metro.Hash64Str(v, hashSeed))
}

// InsertHash records an element by its precomputed 64-bit hash. It exists for
// callers that already hash their elements or want a different hash function;
// a single Sketch must see hashes from one function only for its whole
// lifetime, or the estimate is meaningless.
func (s *Sketch) InsertHash(h uint64) {
	// Low 6 bits pick the bucket, the remaining 58 bits provide the rarity
	// rank. The shifted value has at least 6 leading zeros, so r >= 0.
	k := h & 63
	r := uint8(bits.LeadingZeros64(h>>6) - 6)

	if r > s.lgn {
		s.sketch1 |= 1 << k
	}
	if r > s.lgn+1 {
		s.sketch2 |= 1 << k
	}
	if bits.OnesCount64(s.sketch1) > maxPopcount {
		s.sketch1 = s.sketch2
		s.sketch2 = 0
		s.lgn++
	}
}

// Cardinality returns the estimated number of distinct elements inserted so
// far. It never fails and is cheap to call at any point in the stream. The
// estimate floors at 1351 for a fresh or nearly empty sketch.
func (s *Sketch) Cardinality() uint64 {
	exponent := float64(s.lgn) + 5.4 + float64(bits.OnesCount64(s.sketch1))/32.0
	if exponent >= 64 {
		// Only reachable after far more than 2^64 distinct elements;
		// saturate instead of overflowing the conversion.
		return math.MaxUint64
	}
	return uint64(math.Pow(2, exponent))
}
