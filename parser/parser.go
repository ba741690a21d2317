// Package parser turns lispi source text into ast.Form values, one
// top-level form at a time. It is the parser half of the external
// collaborator spec §6 describes: the evaluator only ever sees the
// resulting ast.Node tree, never source text.
package parser

import (
	"fmt"
	"io"
	"strconv"

	"lispi/ast"
	"lispi/types"
)

// Parser parses lispi source held entirely in memory, grounded on the
// teacher's two-token-lookahead recursive-descent shape.
type Parser struct {
	lexer   *Lexer
	current Token
	peek    Token
}

// NewParser returns a Parser ready to read the first form from input.
func NewParser(input string) *Parser {
	p := &Parser{lexer: NewLexer(input)}
	p.nextToken()
	p.nextToken()
	return p
}

func (p *Parser) nextToken() {
	p.current = p.peek
	p.peek = p.lexer.NextToken()
}

func (p *Parser) errorf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", types.NewEvalError(types.ParseError), fmt.Sprintf(format, args...))
}

// ParseForm parses and returns the next top-level form. It returns io.EOF
// (wrapping nothing else) once the input is exhausted, matching the
// io.Reader-style "done" signal idiomatic Go readers use instead of the
// original C parser's sentinel return value.
func (p *Parser) ParseForm() (*ast.Form, error) {
	if p.current.Type == TOKEN_EOF {
		return nil, io.EOF
	}

	switch p.current.Type {
	case TOKEN_INT, TOKEN_LBRACKET:
		body, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		return &ast.Form{Body: body}, nil

	case TOKEN_IDENT:
		return p.parseIdentLedForm()

	default:
		err := p.errorf("unexpected token %s", p.current.Type)
		p.nextToken() // skip it so the next ParseForm call makes progress
		return nil, err
	}
}

// parseIdentLedForm handles every form that begins with an identifier:
// a bare reference, a call expression, a constant definition (name = expr),
// or a function definition (name(params) = expr).
func (p *Parser) parseIdentLedForm() (*ast.Form, error) {
	name := p.current.Literal
	p.nextToken()

	if p.current.Type != TOKEN_LPAREN {
		if p.current.Type == TOKEN_EQUALS {
			p.nextToken()
			body, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			return &ast.Form{Name: name, Body: body}, nil
		}
		return &ast.Form{Body: ast.Ref(name)}, nil
	}

	p.nextToken() // consume "("
	args, err := p.parseExpressionList(TOKEN_RPAREN)
	if err != nil {
		return nil, err
	}
	if p.current.Type != TOKEN_RPAREN {
		return nil, p.errorf("expected ) after argument list, got %s", p.current.Type)
	}
	p.nextToken() // consume ")"

	if p.current.Type == TOKEN_EQUALS {
		p.nextToken()
		params, err := namesFromRefs(args)
		if err != nil {
			return nil, err
		}
		body, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		return &ast.Form{Name: name, Params: params, Body: body}, nil
	}

	return &ast.Form{Body: ast.App(name, args...)}, nil
}

// parseExpression parses one expression: an integer literal, the empty
// list literal, an identifier reference, or a call.
func (p *Parser) parseExpression() (*ast.Node, error) {
	switch p.current.Type {
	case TOKEN_INT:
		v, err := strconv.ParseInt(p.current.Literal, 10, 64)
		if err != nil {
			err := p.errorf("malformed integer literal %q", p.current.Literal)
			p.nextToken()
			return nil, err
		}
		p.nextToken()
		return ast.Leaf(types.NewInt(v)), nil

	case TOKEN_LBRACKET:
		p.nextToken()
		if p.current.Type != TOKEN_RBRACKET {
			return nil, p.errorf("expected ] (only the empty list literal is supported), got %s", p.current.Type)
		}
		p.nextToken()
		return ast.Leaf(types.NewEmptyList()), nil

	case TOKEN_IDENT:
		name := p.current.Literal
		p.nextToken()
		if p.current.Type != TOKEN_LPAREN {
			return ast.Ref(name), nil
		}
		p.nextToken()
		args, err := p.parseExpressionList(TOKEN_RPAREN)
		if err != nil {
			return nil, err
		}
		if p.current.Type != TOKEN_RPAREN {
			return nil, p.errorf("expected ) after argument list, got %s", p.current.Type)
		}
		p.nextToken()
		return ast.App(name, args...), nil

	default:
		return nil, p.errorf("unexpected token %s in expression", p.current.Type)
	}
}

// parseExpressionList parses a comma-separated list of expressions up to
// (but not consuming) the stop token. Always returns a non-nil slice.
func (p *Parser) parseExpressionList(stop TokenType) ([]*ast.Node, error) {
	exprs := []*ast.Node{}
	if p.current.Type == stop {
		return exprs, nil
	}
	for {
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, expr)
		if p.current.Type != TOKEN_COMMA {
			break
		}
		p.nextToken()
	}
	return exprs, nil
}

// namesFromRefs converts a parsed parenthesized list back into parameter
// names, failing if any entry turns out not to be a bare identifier
// (i.e. the form was written as if it were a definition but an argument
// slot held a literal or a call).
func namesFromRefs(args []*ast.Node) ([]string, error) {
	names := make([]string, len(args))
	for i, a := range args {
		ref, ok := a.Tag.(types.SymRefValue)
		if !ok || a.Children != nil {
			return nil, fmt.Errorf("%w: parameter %d is not a plain name", types.NewEvalError(types.ParseError), i+1)
		}
		names[i] = ref.Name
	}
	return names, nil
}
