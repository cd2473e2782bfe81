package query

import (
	"strconv"

	"github.com/pkg/errors"

	"github.com/vegasq/awkstudio/internal/awk"
)

// Parser turns tokens into filter conditions
type Parser struct {
	tokens   []Token
	pos      int
	resolver ColumnResolver
}

// NewParser creates a new parser. resolver may be nil, in which case only
// $N columns are accepted.
func NewParser(tokens []Token, resolver ColumnResolver) *Parser {
	return &Parser{
		tokens:   tokens,
		resolver: resolver,
	}
}

// current returns the current token
func (p *Parser) current() Token {
	if p.pos >= len(p.tokens) {
		return Token{Type: TokenEOF, Value: ""}
	}
	return p.tokens[p.pos]
}

// advance moves to the next token
func (p *Parser) advance() {
	p.pos++
}

// Parse parses a filter expression. An empty expression yields no conditions.
func Parse(expr string, resolver ColumnResolver) ([]awk.FilterCondition, error) {
	if err := ValidateExpression(expr); err != nil {
		return nil, err
	}

	tokens := Tokenize(expr)

	if err := ValidateTokens(tokens); err != nil {
		return nil, err
	}

	return NewParser(tokens, resolver).parseConditions()
}

// parseConditions parses: cond { connector cond }
func (p *Parser) parseConditions() ([]awk.FilterCondition, error) {
	var conds []awk.FilterCondition
	if p.current().Type == TokenEOF {
		return conds, nil
	}

	first, err := p.parseComparison()
	if err != nil {
		return nil, err
	}
	conds = append(conds, first)

	for {
		var connector awk.Connector
		switch p.current().Type {
		case TokenEOF:
			return conds, nil
		case TokenAnd:
			connector = awk.And
		case TokenOr:
			connector = awk.Or
		default:
			return nil, p.unexpected("&& or ||")
		}
		p.advance()

		cond, err := p.parseComparison()
		if err != nil {
			return nil, err
		}
		cond.Connector = connector
		conds = append(conds, cond)
	}
}

// parseComparison parses: column operator value
func (p *Parser) parseComparison() (awk.FilterCondition, error) {
	column, err := p.parseColumn()
	if err != nil {
		return awk.FilterCondition{}, err
	}

	var op awk.Operator
	switch p.current().Type {
	case TokenEqual:
		op = awk.OpEqual
	case TokenNotEqual:
		op = awk.OpNotEqual
	case TokenMatch:
		op = awk.OpMatch
	case TokenLess:
		op = awk.OpLess
	case TokenGreater:
		op = awk.OpGreater
	default:
		return awk.FilterCondition{}, p.unexpected("comparison operator")
	}
	p.advance()

	tok := p.current()
	switch tok.Type {
	case TokenString, TokenNumber, TokenIdent:
		p.advance()
	default:
		return awk.FilterCondition{}, p.unexpected("value")
	}

	return awk.FilterCondition{
		Column:   column,
		Operator: op,
		Value:    tok.Value,
	}, nil
}

// parseColumn parses a $N field, a bare positive number or a column name
func (p *Parser) parseColumn() (int, error) {
	tok := p.current()
	switch tok.Type {
	case TokenField, TokenNumber:
		col, err := strconv.Atoi(tok.Value)
		if err != nil || col <= 0 {
			return 0, errors.Wrapf(ErrSyntax, "invalid column %q", tok.Value)
		}
		p.advance()
		return col, nil
	case TokenIdent, TokenString:
		if err := ValidateColumnName(tok.Value); err != nil {
			return 0, err
		}
		if p.resolver == nil {
			return 0, errors.Wrapf(ErrUnknownColumn, "%q (use $N without a header)", tok.Value)
		}
		col, err := p.resolver.ResolveColumn(tok.Value)
		if err != nil {
			return 0, err
		}
		p.advance()
		return col, nil
	default:
		return 0, p.unexpected("column")
	}
}

func (p *Parser) unexpected(want string) error {
	tok := p.current()
	if tok.Type == TokenError {
		return errors.Wrapf(ErrSyntax, "unexpected %q", tok.Value)
	}
	if tok.Value == "" {
		return errors.Wrapf(ErrSyntax, "expected %s, got %v", want, tok.Type)
	}
	return errors.Wrapf(ErrSyntax, "expected %s, got %v %q", want, tok.Type, tok.Value)
}
