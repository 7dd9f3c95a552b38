package diagnostics

import "github.com/HicaroD/kvikk/internal/lexer/token"

type Severity int

const (
	// A note reports progress, such as a successfully parsed definition.
	NOTE Severity = iota
	ERROR
)

func (s Severity) String() string {
	switch s {
	case NOTE:
		return "note"
	case ERROR:
		return "error"
	}
	return "unknown"
}

type Diag struct {
	Severity Severity
	Message  string
	Pos      token.Pos
}

func Note(message string) Diag {
	return Diag{Severity: NOTE, Message: message}
}

func Error(message string, pos token.Pos) Diag {
	return Diag{Severity: ERROR, Message: message, Pos: pos}
}

func (diag Diag) IsError() bool { return diag.Severity == ERROR }

// String renders the diagnostic the way it is shown to the user. Errors are
// prefixed with "Error:" and a tab.
func (diag Diag) String() string {
	if diag.IsError() {
		return "Error:\t" + diag.Message
	}
	return diag.Message
}

func (diag Diag) Error() string {
	if diag.Pos.Column == 0 {
		return diag.Message
	}
	return diag.Pos.String() + " " + diag.Message
}
