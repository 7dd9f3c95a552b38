package lexer

import (
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/HicaroD/kvikk/internal/grammar"
	"github.com/HicaroD/kvikk/internal/lexer/token"
)

// Current character once the cursor has moved past the end of the input.
const eof rune = -1

const DEFAULT_FILENAME = "<stdin>"

// Lexer hands out tokens one at a time from a single line of input. It keeps
// no token history: a token is gone once Next has returned it.
type Lexer struct {
	Filename string
	Line     int

	src      string
	offset   int  // offset of the next unread byte
	chOffset int  // offset of ch
	ch       rune // most recently read character
	pos      token.Pos
}

func New(filename string) *Lexer {
	if filename == "" {
		filename = DEFAULT_FILENAME
	}
	lexer := new(Lexer)
	lexer.Filename = filename
	lexer.Line = 1
	lexer.ch = eof
	return lexer
}

// NewFromInput is useful for testing
func NewFromInput(src string) *Lexer {
	lexer := New("")
	lexer.SetInput(src)
	return lexer
}

// SetInput rewinds the lexer to the start of src and reads its first
// character. It can be called again to lex another line.
func (lex *Lexer) SetInput(src string) {
	lex.src = src
	lex.offset = 0
	lex.chOffset = 0
	lex.pos = token.NewPosition(lex.Filename, 0, lex.Line)
	lex.nextChar()
}

func (lex *Lexer) Next() *token.Token {
	if lex.ch == eof {
		return lex.eofToken()
	}

	lex.skipWhitespace()
	if lex.ch == eof {
		return lex.eofToken()
	}

	start := lex.pos
	ch := lex.ch

	switch {
	case unicode.IsLetter(ch):
		word := lex.readWhile(func(r rune) bool { return unicode.IsLetter(r) || unicode.IsDigit(r) })
		return token.New(word, grammar.KeywordKind(word), start)
	case isDigit(ch) || ch == '.':
		return lex.getNumberLit(start)
	case ch == '/' && lex.peekChar() == '/':
		// A comment runs to the end of the line, and the line is all the input
		// there is.
		lex.readWhile(func(rune) bool { return true })
		return lex.eofToken()
	case ch == ';':
		lex.nextChar()
		return token.New(";", token.SEMICOLON, start)
	default:
		from := lex.chOffset
		lex.nextChar()
		// sliced rather than re-encoded so invalid UTF-8 keeps its raw byte
		return token.New(lex.src[from:lex.chOffset], token.UNKNOWN, start)
	}
}

// Useful for testing
func (lex *Lexer) Tokenize() []*token.Token {
	var tokens []*token.Token
	for {
		tok := lex.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return tokens
}

// getNumberLit reads a run of digits and dots without checking where the dots
// are. Anything strconv cannot make sense of, such as "1.2.3" or a lone ".",
// becomes 0.
func (lex *Lexer) getNumberLit(start token.Pos) *token.Token {
	number := lex.readWhile(func(r rune) bool { return isDigit(r) || r == '.' })
	value, err := strconv.ParseFloat(number, 64)
	if err != nil {
		value = 0
	}
	return token.NewNumber(number, value, start)
}

func (lex *Lexer) eofToken() *token.Token {
	return token.New("", token.EOF, lex.pos)
}

func (lex *Lexer) skipWhitespace() {
	lex.readWhile(unicode.IsSpace)
}

func (lex *Lexer) readWhile(isValid func(rune) bool) string {
	start := lex.chOffset
	for lex.ch != eof && isValid(lex.ch) {
		lex.nextChar()
	}
	return lex.src[start:lex.chOffset]
}

func (lex *Lexer) nextChar() rune {
	lex.chOffset = lex.offset
	if lex.offset >= len(lex.src) {
		if lex.ch != eof || lex.pos.Column == 0 {
			lex.pos.Move()
		}
		lex.ch = eof
		return eof
	}
	character, width := utf8.DecodeRuneInString(lex.src[lex.offset:])
	lex.offset += width
	lex.ch = character
	lex.pos.Move()
	return character
}

func (lex *Lexer) peekChar() rune {
	if lex.offset >= len(lex.src) {
		return eof
	}
	character, _ := utf8.DecodeRuneInString(lex.src[lex.offset:])
	return character
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
