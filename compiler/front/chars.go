package front

// charset is a set of ASCII characters.
type charset [2]uint64

var (
	spaces = newCharset(" \t\r\n")
	digits = newCharset("0123456789")
)

func newCharset(chars string) (s charset) {
	for _, q := range []byte(chars) {
		if q >= 128 {
			panic("non-ascii char")
		}

		s[q/64] |= 1 << (q % 64)
	}

	return
}

func (s charset) Has(c byte) bool {
	return c < 128 && s[c/64]&(1<<(c%64)) != 0
}

func (s charset) Skip(b []byte, st int) (i int) {
	i = st

	for i < len(b) && s.Has(b[i]) {
		i++
	}

	return
}
