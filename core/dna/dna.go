// core/dna/dna.go
package dna

var complement [256]byte

func init() {
	complement['A'] = 'T'; complement['T'] = 'A'
	complement['C'] = 'G'; complement['G'] = 'C'
	complement['R'] = 'Y'; complement['Y'] = 'R'
	complement['S'] = 'S'; complement['W'] = 'W'
	complement['K'] = 'M'; complement['M'] = 'K'
	complement['B'] = 'V'; complement['V'] = 'B'
	complement['D'] = 'H'; complement['H'] = 'D'
	complement['N'] = 'N'; complement['X'] = 'X'
	complement['U'] = 'A'
	complement['-'] = '-'; complement['.'] = '.'
	complement[' '] = ' '
}

// Upper returns a new slice with residues uppercased. Gap and spacer
// characters pass through unchanged.
func Upper(seq []byte) []byte {
	out := make([]byte, len(seq))
	for i, b := range seq {
		if b >= 'a' && b <= 'z' {
			b -= 'a' - 'A'
		}
		out[i] = b
	}
	return out
}

// Complement returns the complement of a single uppercase base. Unknown
// characters complement to 'N'.
func Complement(b byte) byte {
	c := complement[b]
	if c == 0 {
		c = 'N'
	}
	return c
}

// RevComp returns the reverse complement of seq over the IUPAC nucleotide
// alphabet, including gap ('-') and spacer (' ', '.') characters, which map
// to themselves. Input is uppercased first.
func RevComp(seq []byte) []byte {
	n := len(seq)
	if n == 0 {
		return nil
	}
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		b := seq[n-1-i]
		if b >= 'a' && b <= 'z' {
			b -= 'a' - 'A'
		}
		out[i] = Complement(b)
	}
	return out
}
