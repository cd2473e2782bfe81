package query

import (
	"strings"
	"unicode"
)

// Lexer tokenizes filter expressions
type Lexer struct {
	input []rune
	pos   int
	ch    rune
}

// NewLexer creates a new lexer
func NewLexer(input string) *Lexer {
	l := &Lexer{input: []rune(input)}
	l.readChar()
	return l
}

// readChar reads the next character
func (l *Lexer) readChar() {
	if l.pos >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.pos]
	}
	l.pos++
}

// peekChar looks at the next character without advancing
func (l *Lexer) peekChar() rune {
	if l.pos >= len(l.input) {
		return 0
	}
	return l.input[l.pos]
}

func (l *Lexer) skipWhitespace() {
	for unicode.IsSpace(l.ch) {
		l.readChar()
	}
}

// readString reads a quoted string
func (l *Lexer) readString(quote rune) string {
	var result strings.Builder
	l.readChar() // skip opening quote

	for l.ch != quote && l.ch != 0 {
		if l.ch == '\\' && l.peekChar() == quote {
			l.readChar()
		}
		result.WriteRune(l.ch)
		l.readChar()
	}

	if l.ch == quote {
		l.readChar() // skip closing quote
	}

	return result.String()
}

// readDigits reads a run of decimal digits
func (l *Lexer) readDigits() string {
	var result strings.Builder
	for l.ch >= '0' && l.ch <= '9' {
		result.WriteRune(l.ch)
		l.readChar()
	}
	return result.String()
}

// isDelimiter reports whether r ends a bare word
func isDelimiter(r rune) bool {
	return r == 0 || unicode.IsSpace(r) || strings.ContainsRune(`=!<>~&|"'`, r)
}

// readWord reads a bare word up to whitespace or an operator character
func (l *Lexer) readWord() string {
	var result strings.Builder
	for !isDelimiter(l.ch) {
		result.WriteRune(l.ch)
		l.readChar()
	}
	return result.String()
}

// twoChar emits a two-character token when the next character is want,
// otherwise an error token for the single character.
func (l *Lexer) twoChar(want rune, typ TokenType) Token {
	first := l.ch
	if l.peekChar() != want {
		l.readChar()
		return Token{Type: TokenError, Value: string(first)}
	}
	l.readChar()
	l.readChar()
	return Token{Type: typ, Value: string([]rune{first, want})}
}

// NextToken returns the next token
func (l *Lexer) NextToken() Token {
	l.skipWhitespace()

	var tok Token

	switch l.ch {
	case 0:
		tok = Token{Type: TokenEOF, Value: ""}
	case '=':
		l.readChar()
		if l.ch == '=' {
			l.readChar()
		}
		tok = Token{Type: TokenEqual, Value: "=="}
	case '!':
		tok = l.twoChar('=', TokenNotEqual)
	case '~':
		tok = Token{Type: TokenMatch, Value: "~"}
		l.readChar()
	case '<', '>':
		typ, value := TokenLess, "<"
		if l.ch == '>' {
			typ, value = TokenGreater, ">"
		}
		if l.peekChar() == '=' {
			// <= and >= are not part of the grammar
			l.readChar()
			typ, value = TokenError, value+"="
		}
		l.readChar()
		tok = Token{Type: typ, Value: value}
	case '&':
		tok = l.twoChar('&', TokenAnd)
	case '|':
		tok = l.twoChar('|', TokenOr)
	case '\'', '"':
		tok = Token{Type: TokenString, Value: l.readString(l.ch)}
	case '$':
		l.readChar()
		digits := l.readDigits()
		if digits == "" || !isDelimiter(l.ch) {
			tok = Token{Type: TokenError, Value: "$" + digits + l.readWord()}
		} else {
			tok = Token{Type: TokenField, Value: digits}
		}
	default:
		word := l.readWord()
		tok = Token{Type: wordType(word), Value: word}
	}

	return tok
}

// wordType classifies a bare word
func wordType(word string) TokenType {
	switch strings.ToLower(word) {
	case "and":
		return TokenAnd
	case "or":
		return TokenOr
	}
	if isNumber(word) {
		return TokenNumber
	}
	return TokenIdent
}

// isNumber reports whether word looks like a decimal number with an
// optional sign
func isNumber(word string) bool {
	word = strings.TrimLeft(word, "+-")
	if word == "" {
		return false
	}
	dot := false
	digits := false
	for _, r := range word {
		switch {
		case r >= '0' && r <= '9':
			digits = true
		case r == '.' && !dot:
			dot = true
		default:
			return false
		}
	}
	return digits
}

// Tokenize returns all tokens from the input
func Tokenize(input string) []Token {
	lexer := NewLexer(input)
	var tokens []Token

	for {
		tok := lexer.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == TokenEOF || tok.Type == TokenError {
			break
		}
	}

	return tokens
}
