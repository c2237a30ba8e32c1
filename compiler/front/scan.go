package front

import (
	"context"
	"strconv"
	"unicode"
	"unicode/utf8"

	"tlog.app/go/loc"
	"tlog.app/go/tlog"
)

type (
	// Scanner turns text into tokens.
	//
	// By default unrecognized characters and incomplete two-char operators
	// (lone '=', '!', '&', '|') are dropped silently.
	// Strict scanner reports them as ScanError instead.
	Scanner struct {
		Strict bool
	}

	pair struct {
		second byte
		kind   Kind
	}
)

var single = [128]Kind{
	'+': Plus,
	'-': Minus,
	'*': Star,
	'/': Slash,
	'(': LParen,
	')': RParen,
}

var pairs = map[byte]pair{
	'=': {'=', Eq},
	'!': {'=', Ne},
	'&': {'&', And},
	'|': {'|', Or},
}

// Tokenize scans text with the default lenient Scanner. It never fails.
func Tokenize(ctx context.Context, text []byte) []Token {
	var s Scanner

	toks, err := s.Scan(ctx, text)
	if err != nil {
		panic(err) // lenient scanner has no error paths reachable by input
	}

	return toks
}

func (s *Scanner) Scan(ctx context.Context, text []byte) (toks []Token, err error) {
	var t Token

	for i := 0; i < len(text); {
		t, i, err = s.token(ctx, text, i)
		if err != nil {
			return nil, err
		}

		if t.Kind != 0 {
			toks = append(toks, t)
		}
	}

	if tr := tlog.SpanFromContext(ctx); tr.If("scan") {
		tr.Printw("scanned", "size", len(text), "tokens", len(toks), "strict", s.Strict)
	}

	return toks, nil
}

// token scans one token starting at st.
// Zero Kind means something was skipped and no token was produced.
func (s *Scanner) token(ctx context.Context, b []byte, st int) (t Token, i int, err error) {
	if tr := tlog.SpanFromContext(ctx); tr.If("scan_token") {
		defer func() {
			tr.Printw("scan token", "st", st, "tk", t, "kind", t.Kind, "i", i, "err", err, "from", loc.Callers(1, 2))
		}()
	}

	c := b[st]

	switch {
	case digits.Has(c):
		return s.number(b, st)
	case spaces.Has(c):
		return Token{}, spaces.Skip(b, st), nil
	case c < utf8.RuneSelf && single[c] != 0:
		return Token{Kind: single[c], Pos: st, End: st + 1}, st + 1, nil
	}

	switch c {
	case '<', '>':
		k, ke := Lt, Le
		if c == '>' {
			k, ke = Gt, Ge
		}

		if st+1 < len(b) && b[st+1] == '=' {
			return Token{Kind: ke, Pos: st, End: st + 2}, st + 2, nil
		}

		return Token{Kind: k, Pos: st, End: st + 1}, st + 1, nil
	case '=', '!', '&', '|':
		p := pairs[c]

		if st+1 < len(b) && b[st+1] == p.second {
			return Token{Kind: p.kind, Pos: st, End: st + 2}, st + 2, nil
		}

		if s.Strict {
			return Token{}, st, ScanError{Kind: IncompleteOperator, Pos: st, Char: rune(c)}
		}

		return Token{}, st + 1, nil
	}

	r, w := utf8.DecodeRune(b[st:])

	if isAlpha(r) {
		i = skipIdent(b, st+w)

		return Token{Kind: Ident, Name: string(b[st:i]), Pos: st, End: i}, i, nil
	}

	if s.Strict {
		return Token{}, st, ScanError{Kind: UnknownChar, Pos: st, Char: r}
	}

	return Token{}, st + w, nil
}

// number scans digits [ '.' digits ].
// Anything it accepts is valid ParseFloat syntax, so the only possible failure is a value out of float64 range.
func (s *Scanner) number(b []byte, st int) (t Token, i int, err error) {
	i = digits.Skip(b, st)

	if i < len(b) && b[i] == '.' {
		i = digits.Skip(b, i+1)
	}

	v, err := strconv.ParseFloat(string(b[st:i]), 64)
	if err != nil {
		ne, ok := err.(*strconv.NumError)

		if s.Strict || !ok || ne.Err != strconv.ErrRange {
			return Token{}, st, ScanError{Kind: MalformedNumber, Pos: st, Text: string(b[st:i]), Err: err}
		}

		// v is +Inf here
	}

	return Token{Kind: Number, Value: v, Pos: st, End: i}, i, nil
}

func skipIdent(b []byte, i int) int {
	for i < len(b) {
		if b[i] == '_' {
			i++
			continue
		}

		r, w := utf8.DecodeRune(b[i:])
		if !isAlpha(r) && !unicode.IsNumber(r) {
			break
		}

		i += w
	}

	return i
}

// isAlpha reports the Unicode Alphabetic property: letters, letter numbers
// and alphabetic marks like the vowel signs of Indic scripts.
func isAlpha(r rune) bool {
	return unicode.IsLetter(r) || unicode.Is(unicode.Nl, r) || unicode.Is(unicode.Other_Alphabetic, r)
}
