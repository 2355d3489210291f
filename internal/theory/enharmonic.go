package theory

// Enharmonics returns every other spelling of p's absolute value, searching
// all letters and accidentals within one octave either side. Each spelling
// (letter plus accidental) appears once.
func Enharmonics(p Pitch) []Pitch {
	target := p.Abs()
	var out []Pitch
	seen := map[string]bool{p.Name(): true}
	for _, l := range Letters {
		for _, a := range Accidentals {
			for o := p.Octave - 1; o <= p.Octave+1; o++ {
				cand := Pitch{Letter: l, Accidental: a, Octave: o}
				if cand.Abs() != target || seen[cand.Name()] {
					continue
				}
				seen[cand.Name()] = true
				out = append(out, cand)
			}
		}
	}
	return out
}

// IsEnharmonic reports whether p and q sound the same but are spelled differently.
func IsEnharmonic(p, q Pitch) bool {
	return p.Abs() == q.Abs() && p.Name() != q.Name()
}
