package core

// Source is the deterministic random stream threaded through every tick
// Implementations must be bit-reproducibly re-creatable from a plain integer
// seed so that restarting a run replays the exact same draw sequence
type Source interface {
	// Next returns the next raw 32-bit value of the stream
	Next() uint32

	// NextFloat returns the next value in [0, 1)
	NextFloat() float64

	// NextInt returns the next integer in [min, max] inclusive
	NextInt(min, max int) int
}

// PCG-XSH-RR 64/32 constants (O'Neill)
const (
	pcgMultiplier = 6364136223846793005
	pcgIncrement  = 1442695040888963407
)

// Rand is a PCG32 generator. It is not safe for concurrent use; the
// simulation owns exactly one stream per run and advances it in place
type Rand struct {
	state uint64
}

// NewRand creates a generator from a plain integer seed
// Identical seeds always yield identical streams across runs and platforms
func NewRand(seed int64) *Rand {
	r := &Rand{}
	r.state = 0
	r.Next()
	r.state += uint64(seed)
	r.Next()
	return r
}

// Next advances the stream and returns the next raw 32-bit value
func (r *Rand) Next() uint32 {
	old := r.state
	r.state = old*pcgMultiplier + pcgIncrement
	xorshifted := uint32(((old >> 18) ^ old) >> 27)
	rot := uint32(old >> 59)
	return (xorshifted >> rot) | (xorshifted << ((-rot) & 31))
}

// NextFloat returns the next value in [0, 1)
func (r *Rand) NextFloat() float64 {
	return float64(r.Next()) / (1 << 32)
}

// NextInt returns the next integer in [min, max] inclusive
func (r *Rand) NextInt(min, max int) int {
	if max < min {
		min, max = max, min
	}
	span := max - min + 1
	return min + int(r.NextFloat()*float64(span))
}
