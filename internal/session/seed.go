package session

// Seed derivation constants (splitmix64).
const (
	seedGolden = 0x9E3779B97F4A7C15
	seedMulA   = 0xBF58476D1CE4E5B9
	seedMulB   = 0x94D049BB133111EB
)

// DeriveSeed folds a reset counter into a master seed, producing the seed
// for one episode. For a fixed master the derived seeds are pairwise
// distinct across counters: the pre-mix values differ by an odd multiple
// of the counter and mix64 is a bijection on uint64.
func DeriveSeed(master int64, counter uint64) int64 {
	return int64(mix64(uint64(master) + (counter+1)*seedGolden))
}

// mix64 is the splitmix64 output function.
func mix64(x uint64) uint64 {
	x ^= x >> 30
	x *= seedMulA
	x ^= x >> 27
	x *= seedMulB
	x ^= x >> 31
	return x
}
