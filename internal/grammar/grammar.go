// Package grammar holds the static lookup tables of the language: reserved
// keywords and the precedence of every binary operator.
package grammar

import "github.com/HicaroD/kvikk/internal/lexer/token"

// Returned by Precedence for anything that is not a binary operator.
const NOT_AN_OPERATOR = -1

var KEYWORDS map[string]token.Kind = map[string]token.Kind{
	"def":    token.DEF,
	"lambda": token.LAMBDA,
}

// Higher binds tighter.
var PRECEDENCES map[string]int = map[string]int{
	"<": 10,
	"+": 20,
	"-": 20,
	"*": 40,
}

// KeywordKind returns the keyword kind of word, or token.ID if word is not
// reserved.
func KeywordKind(word string) token.Kind {
	if kind, ok := KEYWORDS[word]; ok {
		return kind
	}
	return token.ID
}

// Precedence returns the binding power of op, or NOT_AN_OPERATOR.
func Precedence(op string) int {
	if prec, ok := PRECEDENCES[op]; ok {
		return prec
	}
	return NOT_AN_OPERATOR
}
