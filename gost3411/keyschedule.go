package gost3411

// roundKeys builds K1..K13 from the starting key k (spec.md §4.3):
// K1 = k, and K_{i+1} = LPS(K_i xor C_i) for i = 1..12.
func roundKeys(k block512) [13]block512 {
	var keys [13]block512
	keys[0] = k
	for i := 0; i < 12; i++ {
		keys[i+1] = lps(xTransform(keys[i], c[i]))
	}
	return keys
}

// encrypt computes E(K, m): 12 rounds of (XOR with round key, then LPS),
// followed by a final XOR with K13. No LPS follows the 12th round.
func encrypt(k, m block512) block512 {
	keys := roundKeys(k)
	state := m
	for i := 0; i < 12; i++ {
		state = lps(xTransform(state, keys[i]))
	}
	return xTransform(state, keys[12])
}
