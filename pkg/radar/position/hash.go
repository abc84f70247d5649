package position

// fracMod is the prime modulus used to reduce the 32-bit hash to a fraction.
const fracMod = 1009

// stableHash is a 32-bit rolling hash over the bytes of s. It stands in for
// a random source so that placement depends only on the tool's identifier.
func stableHash(s string) uint32 {
	var h uint32
	for i := 0; i < len(s); i++ {
		h = h*31 + uint32(s[i])
	}
	return h
}

// unitInterval reduces the hash of id to a value in [0,1).
func unitInterval(id string) float64 {
	return float64(stableHash(id)%fracMod) / fracMod
}

// centeredInterval applies a second, shifted reduction of the same hash,
// yielding a value in [-0.5,0.5).
func centeredInterval(id string) float64 {
	return float64((stableHash(id)/fracMod)%fracMod)/fracMod - 0.5
}
