// Package parser turns Matrizer source text into internal/ast.Expr and
// internal/preamble.Line values, implementing the grammar SPEC_FULL.md §14
// supplements onto spec.md §6's contract. It is a small hand-rolled
// recursive-descent parser, grounded on the shape of funxy/internal/lexer
// and funxy/internal/parser (a curToken/peekToken pair advanced by
// nextToken) simplified to the much smaller expression grammar here.
package parser

import (
	"fmt"
	"strconv"

	"github.com/cortexlang/matrizer/internal/ast"
	"github.com/cortexlang/matrizer/internal/lexer"
)

// exprParser walks a lexer.Lexer's token stream one token of lookahead
// ahead, the same cur/peek shape the teacher's parser uses.
type exprParser struct {
	l    *lexer.Lexer
	cur  lexer.Token
	peek lexer.Token
}

func newExprParser(src string) *exprParser {
	p := &exprParser{l: lexer.New(src)}
	p.cur = p.l.NextToken()
	p.peek = p.l.NextToken()
	return p
}

func (p *exprParser) next() {
	p.cur = p.peek
	p.peek = p.l.NextToken()
}

// ParseExpr parses src as a single matrix expression body (the part of a
// Matrizer source file after the preamble), per SPEC_FULL.md §14's grammar.
func ParseExpr(src string) (ast.Expr, ast.MError) {
	p := newExprParser(src)
	e, err := p.parseAdd()
	if err != nil {
		return nil, err
	}
	if p.cur.Type != lexer.EOF {
		return nil, ast.NewParserError(fmt.Errorf("unexpected token %q after expression", p.cur.Lexeme))
	}
	return e, nil
}

// parseAdd implements AddExpr := MulExpr ('+' MulExpr)*, left-associative.
func (p *exprParser) parseAdd() (ast.Expr, ast.MError) {
	left, err := p.parseMul()
	if err != nil {
		return nil, err
	}
	for p.cur.Type == lexer.PLUS {
		p.next()
		right, err := p.parseMul()
		if err != nil {
			return nil, err
		}
		left = ast.Branch2{Op: ast.Sum, Left: left, Right: right}
	}
	return left, nil
}

// parseMul implements MulExpr := UnaryExpr (('*')? UnaryExpr)*: an explicit
// '*' or plain juxtaposition (the next token directly starting a unary
// expression) both mean Product. A chain of factors groups to the right, so
// "A B x" is A*(B*x).
func (p *exprParser) parseMul() (ast.Expr, ast.MError) {
	first, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	factors := []ast.Expr{first}
	for {
		if p.cur.Type == lexer.STAR {
			p.next()
		} else if !p.startsUnary() {
			break
		}
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		factors = append(factors, right)
	}
	e := factors[len(factors)-1]
	for i := len(factors) - 2; i >= 0; i-- {
		e = ast.Branch2{Op: ast.Product, Left: factors[i], Right: e}
	}
	return e, nil
}

// startsUnary reports whether the current token could begin a UnaryExpr,
// used to recognize implicit-juxtaposition products. The keyword "in"
// terminates a let/tmp binding's right-hand side rather than starting a
// new factor, so it is excluded even though it lexes as an IDENT.
func (p *exprParser) startsUnary() bool {
	switch p.cur.Type {
	case lexer.MINUS, lexer.LPAREN, lexer.NUMBER:
		return true
	case lexer.IDENT:
		return p.cur.Lexeme != "in"
	}
	return false
}

// parseUnary implements UnaryExpr := '-'? PostfixExpr.
func (p *exprParser) parseUnary() (ast.Expr, ast.MError) {
	if p.cur.Type == lexer.MINUS {
		p.next()
		child, err := p.parsePostfix()
		if err != nil {
			return nil, err
		}
		return ast.Branch1{Op: ast.Negate, Child: child}, nil
	}
	return p.parsePostfix()
}

// parsePostfix implements PostfixExpr := Primary ( "'" | "^-1" )*.
func (p *exprParser) parsePostfix() (ast.Expr, ast.MError) {
	e, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for {
		switch p.cur.Type {
		case lexer.QUOTE:
			p.next()
			e = ast.Branch1{Op: ast.Transpose, Child: e}
		case lexer.INV:
			p.next()
			e = ast.Branch1{Op: ast.Inverse, Child: e}
		default:
			return e, nil
		}
	}
}

// parsePrimary implements the Primary production.
func (p *exprParser) parsePrimary() (ast.Expr, ast.MError) {
	switch p.cur.Type {
	case lexer.LPAREN:
		p.next()
		e, err := p.parseAdd()
		if err != nil {
			return nil, err
		}
		if err := p.expect(lexer.RPAREN); err != nil {
			return nil, err
		}
		return e, nil

	case lexer.NUMBER:
		v, err := strconv.ParseFloat(p.cur.Lexeme, 64)
		if err != nil {
			return nil, ast.NewParserError(fmt.Errorf("bad number literal %q", p.cur.Lexeme))
		}
		p.next()
		return ast.LiteralScalar{Value: v}, nil

	case lexer.IDENT:
		return p.parseIdentPrimary()
	}
	return nil, ast.NewParserError(fmt.Errorf("unexpected token %q", p.cur.Lexeme))
}

// parseIdentPrimary handles every Primary alternative that starts with an
// identifier: a bare single-letter Leaf, or one of the keyword forms
// (chol, linsolve, cholsolve, let, tmp).
func (p *exprParser) parseIdentPrimary() (ast.Expr, ast.MError) {
	name := p.cur.Lexeme

	switch name {
	case "chol":
		p.next()
		if err := p.expect(lexer.LPAREN); err != nil {
			return nil, err
		}
		e, err := p.parseAdd()
		if err != nil {
			return nil, err
		}
		if err := p.expect(lexer.RPAREN); err != nil {
			return nil, err
		}
		return ast.Branch1{Op: ast.Chol, Child: e}, nil

	case "linsolve", "cholsolve":
		op := ast.LinSolve
		if name == "cholsolve" {
			op = ast.CholSolve
		}
		p.next()
		if err := p.expect(lexer.LPAREN); err != nil {
			return nil, err
		}
		a, err := p.parseAdd()
		if err != nil {
			return nil, err
		}
		if err := p.expect(lexer.COMMA); err != nil {
			return nil, err
		}
		b, err := p.parseAdd()
		if err != nil {
			return nil, err
		}
		if err := p.expect(lexer.RPAREN); err != nil {
			return nil, err
		}
		return ast.Branch2{Op: op, Left: a, Right: b}, nil

	case "let", "tmp":
		isTemp := name == "tmp"
		p.next()
		if p.cur.Type != lexer.IDENT || len(p.cur.Lexeme) != 1 {
			return nil, ast.NewParserError(fmt.Errorf("expected a single-letter binding name, got %q", p.cur.Lexeme))
		}
		bindName := p.cur.Lexeme
		p.next()
		if err := p.expect(lexer.ASSIGN); err != nil {
			return nil, err
		}
		rhs, err := p.parseAdd()
		if err != nil {
			return nil, err
		}
		if p.cur.Type != lexer.IDENT || p.cur.Lexeme != "in" {
			return nil, ast.NewParserError(fmt.Errorf(`expected "in", got %q`, p.cur.Lexeme))
		}
		p.next()
		body, err := p.parseAdd()
		if err != nil {
			return nil, err
		}
		return ast.Let{Name: bindName, Rhs: rhs, IsTemp: isTemp, Body: body}, nil

	default:
		if len(name) != 1 {
			return nil, ast.NewParserError(fmt.Errorf("matrix names must be a single letter, got %q", name))
		}
		p.next()
		return ast.Leaf{Name: name}, nil
	}
}

func (p *exprParser) expect(tt lexer.TokenType) ast.MError {
	if p.cur.Type != tt {
		return ast.NewParserError(fmt.Errorf("unexpected token %q", p.cur.Lexeme))
	}
	p.next()
	return nil
}
