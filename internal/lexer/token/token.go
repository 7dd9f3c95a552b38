package token

import (
	"fmt"
	"strconv"
)

type Token struct {
	Kind   Kind
	Lexeme string
	Value  float64
	Pos    Pos
}

func New(lexeme string, kind Kind, position Pos) *Token {
	return &Token{Lexeme: lexeme, Kind: kind, Pos: position}
}

func NewNumber(lexeme string, value float64, position Pos) *Token {
	return &Token{Lexeme: lexeme, Kind: NUMBER, Value: value, Pos: position}
}

// Is reports whether the token is the raw character s. Punctuation never has
// a dedicated kind, so this is how the parser recognizes '(', ')' and ','.
func (token *Token) Is(s string) bool {
	return token.Kind == UNKNOWN && token.Lexeme == s
}

// Name is the text used when the token shows up in a diagnostic.
func (token *Token) Name() string {
	switch token.Kind {
	case EOF:
		return ""
	case NUMBER:
		if token.Lexeme == "" {
			return strconv.FormatFloat(token.Value, 'g', -1, 64)
		}
		return token.Lexeme
	case SEMICOLON:
		return ";"
	}
	return token.Lexeme
}

func (token *Token) String() string {
	return fmt.Sprintf("%s | %s | %s", token.Lexeme, token.Kind, token.Pos)
}
