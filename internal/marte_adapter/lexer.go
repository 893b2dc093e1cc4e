package marte_adapter

import (
	"fmt"
	"strconv"
	"strings"
	"text/scanner"
	"unicode"
)

// punctuation is the set of characters that are never part of a bare word.
const punctuation = "{}=,()\"'"

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokWord
	tokString
	tokLBrace
	tokRBrace
	tokEqual
	tokLParen
	tokRParen
	tokComma
)

func (k tokenKind) String() string {
	switch k {
	case tokEOF:
		return "end of file"
	case tokWord:
		return "word"
	case tokString:
		return "string"
	case tokLBrace:
		return "'{'"
	case tokRBrace:
		return "'}'"
	case tokEqual:
		return "'='"
	case tokLParen:
		return "'('"
	case tokRParen:
		return "')'"
	case tokComma:
		return "','"
	default:
		return "unknown token"
	}
}

type token struct {
	kind tokenKind
	text string
	pos  scanner.Position
}

// isWordRune accepts everything but whitespace and punctuation. A slash may
// not start a word so that `//` and `/*` still open comments.
func isWordRune(ch rune, i int) bool {
	if ch == scanner.EOF || unicode.IsSpace(ch) || strings.ContainsRune(punctuation, ch) {
		return false
	}
	return i > 0 || ch != '/'
}

// tokenize splits src into tokens. Comments are dropped.
func tokenize(filename string, src string) ([]token, error) {
	var s scanner.Scanner
	s.Init(strings.NewReader(src))
	s.Filename = filename
	s.Mode = scanner.ScanIdents | scanner.ScanStrings | scanner.ScanComments | scanner.SkipComments
	s.IsIdentRune = isWordRune

	var scanErr error
	s.Error = func(s *scanner.Scanner, msg string) {
		if scanErr == nil {
			pos := s.Position
			if !pos.IsValid() {
				pos = s.Pos()
			}
			scanErr = &ParseError{Pos: pos, Msg: msg}
		}
	}

	var toks []token
	for {
		r := s.Scan()
		if scanErr != nil {
			return nil, scanErr
		}
		pos := s.Position
		switch r {
		case scanner.EOF:
			return append(toks, token{kind: tokEOF, pos: pos}), nil
		case scanner.Ident:
			toks = append(toks, token{kind: tokWord, text: s.TokenText(), pos: pos})
		case scanner.String:
			toks = append(toks, token{kind: tokString, text: unquote(s.TokenText()), pos: pos})
		case '{':
			toks = append(toks, token{kind: tokLBrace, text: "{", pos: pos})
		case '}':
			toks = append(toks, token{kind: tokRBrace, text: "}", pos: pos})
		case '=':
			toks = append(toks, token{kind: tokEqual, text: "=", pos: pos})
		case '(':
			toks = append(toks, token{kind: tokLParen, text: "(", pos: pos})
		case ')':
			toks = append(toks, token{kind: tokRParen, text: ")", pos: pos})
		case ',':
			toks = append(toks, token{kind: tokComma, text: ",", pos: pos})
		default:
			return nil, &ParseError{Pos: pos, Msg: fmt.Sprintf("unexpected character %q", s.TokenText())}
		}
	}
}

// unquote strips the quotes of a string literal, interpreting Go escapes
// when they are valid and keeping the raw text otherwise.
func unquote(lit string) string {
	if v, err := strconv.Unquote(lit); err == nil {
		return v
	}
	return strings.TrimSuffix(strings.TrimPrefix(lit, `"`), `"`)
}
