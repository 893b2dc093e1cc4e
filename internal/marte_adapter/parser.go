package marte_adapter

import (
	"fmt"
	"text/scanner"

	"github.com/vk/cfgdot/internal/config"
)

// ParseError reports a syntax error with its position in the source.
type ParseError struct {
	Pos scanner.Position
	Msg string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Msg)
}

type parser struct {
	toks []token
	pos  int
}

func (p *parser) peek(offset int) token {
	i := p.pos + offset
	if i >= len(p.toks) {
		return p.toks[len(p.toks)-1]
	}
	return p.toks[i]
}

func (p *parser) next() token {
	t := p.peek(0)
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

func (p *parser) errorf(t token, format string, args ...any) error {
	return &ParseError{Pos: t.pos, Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) expect(kind tokenKind) (token, error) {
	t := p.next()
	if t.kind != kind {
		return t, p.errorf(t, "expected %s, found %s", kind, describe(t))
	}
	return t, nil
}

func describe(t token) string {
	if t.kind == tokWord || t.kind == tokString {
		return fmt.Sprintf("%s %q", t.kind, t.text)
	}
	return t.kind.String()
}

// parseBody reads `name = value` definitions into n until a closing brace
// (when nested) or the end of input.
func (p *parser) parseBody(n *config.Node, nested bool) error {
	for {
		t := p.peek(0)
		switch t.kind {
		case tokEOF:
			if nested {
				return p.errorf(t, "unexpected end of file, missing '}'")
			}
			return nil
		case tokRBrace:
			if !nested {
				return p.errorf(t, "unexpected '}'")
			}
			p.next()
			return nil
		case tokComma:
			p.next()
			continue
		case tokWord, tokString:
		default:
			return p.errorf(t, "expected a name, found %s", describe(t))
		}

		name := p.next().text
		if _, err := p.expect(tokEqual); err != nil {
			return err
		}
		if err := p.parseDefinition(n, name); err != nil {
			return err
		}
	}
}

// parseDefinition reads the right-hand side of `name =`.
func (p *parser) parseDefinition(n *config.Node, name string) error {
	if p.peek(0).kind != tokLBrace {
		v, err := p.parseScalar()
		if err != nil {
			return err
		}
		n.SetScalar(name, v)
		return nil
	}

	p.next()
	if p.opensNode(name) {
		return p.parseBody(n.AddChild(name), true)
	}
	values, err := p.parseArray()
	if err != nil {
		return err
	}
	n.SetArray(name, values)
	return nil
}

// opensNode decides, right after an opening brace, whether the block is an
// object or an array. An object starts with `name =`. An empty block is an
// object only when its name carries a sigil.
func (p *parser) opensNode(name string) bool {
	first := p.peek(0)
	if first.kind == tokRBrace {
		return config.StripSigil(name) != name
	}
	return (first.kind == tokWord || first.kind == tokString) && p.peek(1).kind == tokEqual
}

// parseArray reads array elements up to the closing brace. Nested arrays
// (matrices) are flattened row by row.
func (p *parser) parseArray() ([]string, error) {
	values := []string{}
	for {
		t := p.peek(0)
		switch t.kind {
		case tokRBrace:
			p.next()
			return values, nil
		case tokComma:
			p.next()
		case tokLBrace:
			p.next()
			row, err := p.parseArray()
			if err != nil {
				return nil, err
			}
			values = append(values, row...)
		case tokEOF:
			return nil, p.errorf(t, "unexpected end of file, missing '}'")
		default:
			v, err := p.parseScalar()
			if err != nil {
				return nil, err
			}
			values = append(values, v)
		}
	}
}

// parseScalar reads a word or string, skipping an optional `(type)` prefix.
func (p *parser) parseScalar() (string, error) {
	if p.peek(0).kind == tokLParen {
		p.next()
		if _, err := p.expect(tokWord); err != nil {
			return "", err
		}
		if _, err := p.expect(tokRParen); err != nil {
			return "", err
		}
	}
	t := p.next()
	if t.kind != tokWord && t.kind != tokString {
		return "", p.errorf(t, "expected a value, found %s", describe(t))
	}
	return t.text, nil
}
