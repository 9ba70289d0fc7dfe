package gen

import "math/rand"

// RandomSource abstracts the source of randomness.
type RandomSource interface {
	Intn(n int) int
	Int63n(n int64) int64
	Float64() float64
}

// RandSource wraps math/rand.
type RandSource struct {
	*rand.Rand
}

// NewRandSource creates a seeded source. Streams built from distinct
// sources are independent; the same seed reproduces the same sequence.
func NewRandSource(seed int64) *RandSource {
	return &RandSource{rand.New(rand.NewSource(seed))}
}

const atomAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// randAtomName produces a short alphanumeric symbol name.
func randAtomName(src RandomSource) string {
	n := src.Intn(8) + 1
	buf := make([]byte, n)
	// First char is a letter.
	buf[0] = atomAlphabet[src.Intn(26)]
	for i := 1; i < n; i++ {
		buf[i] = atomAlphabet[src.Intn(len(atomAlphabet))]
	}
	return string(buf)
}

// randBytes produces up to 16 arbitrary bytes.
func randBytes(src RandomSource) []byte {
	n := src.Intn(17)
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = byte(src.Intn(256))
	}
	return buf
}

// randPrintable produces a short printable ASCII string.
func randPrintable(src RandomSource) string {
	n := src.Intn(17)
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = byte(32 + src.Intn(95))
	}
	return string(buf)
}

// intBetween draws uniformly from the inclusive range [lo, hi].
func intBetween(src RandomSource, lo, hi int64) int64 {
	if hi <= lo {
		return lo
	}
	return lo + src.Int63n(hi-lo+1)
}
