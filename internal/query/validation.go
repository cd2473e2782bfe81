package query

import (
	"github.com/pkg/errors"
)

// Validation limits for user supplied expressions
const (
	// MaxExpressionLength is the maximum allowed expression length (64KB)
	MaxExpressionLength = 64 * 1024

	// MaxTokens is the maximum number of tokens in an expression
	MaxTokens = 1000

	// MaxColumnNameLength is the maximum length for a column name
	MaxColumnNameLength = 256
)

var (
	// ErrExpressionTooLong is returned when expression exceeds MaxExpressionLength
	ErrExpressionTooLong = errors.New("expression too long")

	// ErrTooManyTokens is returned when expression has too many tokens
	ErrTooManyTokens = errors.New("too many tokens in expression")

	// ErrColumnNameTooLong is returned when column name is too long
	ErrColumnNameTooLong = errors.New("column name too long")

	// ErrUnknownColumn is returned when a column name cannot be resolved
	ErrUnknownColumn = errors.New("unknown column")

	// ErrSyntax is returned for malformed expressions
	ErrSyntax = errors.New("syntax error")
)

// ValidateExpression performs length validation on expression input
func ValidateExpression(expr string) error {
	if len(expr) > MaxExpressionLength {
		return errors.Wrapf(ErrExpressionTooLong, "%d bytes (max %d)", len(expr), MaxExpressionLength)
	}
	return nil
}

// ValidateColumnName validates column name length
func ValidateColumnName(name string) error {
	if len(name) > MaxColumnNameLength {
		return errors.Wrapf(ErrColumnNameTooLong, "%d chars (max %d)", len(name), MaxColumnNameLength)
	}
	return nil
}

// ValidateTokens validates token count
func ValidateTokens(tokens []Token) error {
	if len(tokens) > MaxTokens {
		return errors.Wrapf(ErrTooManyTokens, "%d tokens (max %d)", len(tokens), MaxTokens)
	}
	return nil
}
