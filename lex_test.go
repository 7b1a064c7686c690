package deriv

import (
	"errors"
	"strings"
	"testing"
)

func scanAll(t *testing.T, src string) ([]lexToken, error) {
	t.Helper()
	l := lex(strings.NewReader(src))
	var toks []lexToken
	for {
		tok, err := l.next()
		if err != nil {
			return toks, err
		}
		toks = append(toks, tok)
		if tok.kind == tokenEOF {
			return toks, nil
		}
	}
}

func TestLex(t *testing.T) {
	cases := []struct {
		src  string
		want []lexToken
	}{
		{
			src: "x",
			want: []lexToken{
				{text: "x", kind: tokenIdent, pos: 1},
				{kind: tokenEOF, pos: 2},
			},
		},
		{
			src: "x + 2",
			want: []lexToken{
				{text: "x", kind: tokenIdent, pos: 1},
				{text: "+", kind: tokenOp, pos: 3},
				{text: "2", kind: tokenNum, pos: 5},
				{kind: tokenEOF, pos: 6},
			},
		},
		{
			src: "sin(x)",
			want: []lexToken{
				{text: "sin", kind: tokenIdent, pos: 1},
				{text: "(", kind: tokenOpen, pos: 4},
				{text: "x", kind: tokenIdent, pos: 5},
				{text: ")", kind: tokenClose, pos: 6},
				{kind: tokenEOF, pos: 7},
			},
		},
		{
			src: "2.5e-3",
			want: []lexToken{
				{text: "2.5e-3", kind: tokenNum, pos: 1},
				{kind: tokenEOF, pos: 7},
			},
		},
		{
			src: "1e3",
			want: []lexToken{
				{text: "1e3", kind: tokenNum, pos: 1},
				{kind: tokenEOF, pos: 4},
			},
		},
		{
			src: "2i",
			want: []lexToken{
				{text: "2i", kind: tokenImag, pos: 1},
				{kind: tokenEOF, pos: 3},
			},
		},
		{
			src: "3.5i",
			want: []lexToken{
				{text: "3.5i", kind: tokenImag, pos: 1},
				{kind: tokenEOF, pos: 5},
			},
		},
		{
			src: "1+2",
			want: []lexToken{
				{text: "1", kind: tokenNum, pos: 1},
				{text: "+", kind: tokenOp, pos: 2},
				{text: "2", kind: tokenNum, pos: 3},
				{kind: tokenEOF, pos: 4},
			},
		},
		{
			src: "x_1*y",
			want: []lexToken{
				{text: "x_1", kind: tokenIdent, pos: 1},
				{text: "*", kind: tokenOp, pos: 4},
				{text: "y", kind: tokenIdent, pos: 5},
				{kind: tokenEOF, pos: 6},
			},
		},
		{
			src: "2^x",
			want: []lexToken{
				{text: "2", kind: tokenNum, pos: 1},
				{text: "^", kind: tokenOp, pos: 2},
				{text: "x", kind: tokenIdent, pos: 3},
				{kind: tokenEOF, pos: 4},
			},
		},
		{
			src: ".5",
			want: []lexToken{
				{text: ".5", kind: tokenNum, pos: 1},
				{kind: tokenEOF, pos: 3},
			},
		},
	}
	for _, c := range cases {
		t.Run(c.src, func(t *testing.T) {
			toks, err := scanAll(t, c.src)
			if err != nil {
				t.Fatalf("error scanning %q: %v", c.src, err)
			}
			if len(toks) != len(c.want) {
				t.Fatalf("wrong tokens scanning %q: want %v, got %v", c.src, c.want, toks)
			}
			for i, tok := range toks {
				if tok != c.want[i] {
					t.Errorf("wrong token %d scanning %q: want %v, got %v", i, c.src, c.want[i], tok)
				}
			}
		})
	}
}

func TestLexErrors(t *testing.T) {
	cases := []string{
		"2..3",
		"1e",
		"1ee3",
		".",
		"i2x@",
		"@",
		"2.5e",
		".i",
	}
	for _, src := range cases {
		t.Run(src, func(t *testing.T) {
			toks, err := scanAll(t, src)
			if err == nil {
				t.Fatalf("no error scanning %q: got %v", src, toks)
			}
			var lerr *LexError
			if !errors.As(err, &lerr) {
				t.Errorf("error scanning %q is %#v, not *LexError", src, err)
			}
			if lerr.Pos() < 1 {
				t.Errorf("error scanning %q has position %d", src, lerr.Pos())
			}
		})
	}
}

func TestLexEOF(t *testing.T) {
	l := lex(strings.NewReader("x"))
	for i := 0; i < 2; i++ {
		if _, err := l.next(); err != nil {
			t.Fatalf("error on token %d: %v", i, err)
		}
	}
	// Scanning past the EOF token is an error.
	if tok, err := l.next(); err == nil {
		t.Errorf("no error past eof: got %v", tok)
	}
}
