package gost3411

// xTransform returns a XOR k (GOST R 34.11-2018 §5.2).
func xTransform(a, k block512) block512 {
	return xorBlocks(a, k)
}

// sTransform is the byte-wise S-box substitution of §5.1.
func sTransform(a block512) block512 {
	var out block512
	for i := 0; i < blockSize; i++ {
		out[i] = pi[a[i]]
	}
	return out
}

// pTransform is the byte permutation of §5.3.
func pTransform(a block512) block512 {
	var out block512
	for i := 0; i < blockSize; i++ {
		out[i] = a[tau[i]]
	}
	return out
}

// lTransform is the GF(2)-linear map of §5.4: each output qword is the XOR
// of the rows of a selected by the set bits of the corresponding input
// qword (bit 0 is the LSB, row a[63] is selected by bit 0).
func lTransform(in block512) block512 {
	var out block512
	for q := 0; q < 8; q++ {
		w := in.word(q)
		var acc uint64
		for j := 0; j < 64; j++ {
			if w&(1<<uint(j)) != 0 {
				acc ^= a[63-j]
			}
		}
		out.setWord(q, acc)
	}
	return out
}

// lpsTable is T[8][256] of spec.md §4.2: the precomputed fusion of L, P and
// S. lpsTable[i][b] is L applied to a single 64-bit word that is all-zero
// except for pi[b] at byte position i within the word; each output qword
// of LPS is the XOR of eight such entries, one per byte position.
//
// Built from a and pi via buildLPSTable, following the derivation in
// original_source/optimized/src/lib/gost34112018_optimized.c's
// LINEAR_TRANSFORM_TABLE: for byte position i and input byte value b,
// T[i][b] is the XOR of the rows a[63-(8*i+k)] selected by the set bits k
// of pi[b].
//
// Declared as a var initializer rather than populated from an init() func
// so that package-level initialization order (which Go resolves by
// dependency, not file order) guarantees lpsTable is ready before
// tables.go's round-constant derivation, which calls lps, runs.
var lpsTable = buildLPSTable()

func buildLPSTable() [8][256]uint64 {
	var t [8][256]uint64
	for i := 0; i < 8; i++ {
		for b := 0; b < 256; b++ {
			v := pi[byte(b)]
			var acc uint64
			for k := 0; k < 8; k++ {
				if v&(1<<uint(k)) != 0 {
					acc ^= a[63-(8*i+k)]
				}
			}
			t[i][b] = acc
		}
	}
	return t
}

// lps computes L(P(S(a))) using the fused table, observationally equal to
// calling lTransform(pTransform(sTransform(a))) for every a (spec.md §4.2's
// contract for LPS). P is itself a byte permutation, so the table is
// addressed using a.bytes[tau[8k+i]] directly rather than pre-permuting a.
func lps(in block512) block512 {
	var out block512
	for k := 0; k < 8; k++ {
		var acc uint64
		for i := 0; i < 8; i++ {
			acc ^= lpsTable[i][in[tau[8*k+i]]]
		}
		out.setWord(k, acc)
	}
	return out
}
