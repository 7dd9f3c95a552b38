package token

import "fmt"

type Kind int

const (
	// EOF
	EOF Kind = iota

	// Any character the lexer has no dedicated kind for: punctuation such as
	// '(', ')' and ',' and the binary operators reach the parser this way
	UNKNOWN

	// ;
	SEMICOLON

	// Keywords
	DEF
	LAMBDA

	// Identifier
	ID

	// Literals
	NUMBER
)

func (kind Kind) String() string {
	switch kind {
	case EOF:
		return "end of input"
	case UNKNOWN:
		return "unknown"
	case SEMICOLON:
		return ";"
	case DEF:
		return "def"
	case LAMBDA:
		return "lambda"
	case ID:
		return "identifier"
	case NUMBER:
		return "number"
	default:
		return fmt.Sprintf("Kind(%d)", int(kind))
	}
}
