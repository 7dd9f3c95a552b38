package diagnostics

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HicaroD/kvikk/internal/lexer/token"
)

func TestReportAndSaveWritesPlainText(t *testing.T) {
	var out bytes.Buffer
	collector := NewWithWriter(&out)

	collector.ReportAndSave(Note("Parsed anonymous expression"))
	collector.ReportAndSave(Error("Expected ')'", token.NewPosition("<stdin>", 4, 1)))

	assert.Equal(t, "Parsed anonymous expression\nError:\tExpected ')'\n", out.String())
	require.Len(t, collector.Diags, 2)
	assert.Equal(t, NOTE, collector.Diags[0].Severity)
	assert.Equal(t, ERROR, collector.Diags[1].Severity)
}

func TestNilWriterOnlySaves(t *testing.T) {
	collector := NewWithWriter(nil)
	collector.ReportAndSave(Error("Expected ')'", token.Pos{}))
	assert.Len(t, collector.Diags, 1)
}

func TestColoredRenderingKeepsMessage(t *testing.T) {
	var out bytes.Buffer
	collector := NewWithWriter(&out)
	collector.SetColored(true)

	collector.ReportAndSave(Error("Expected name in function definition", token.NewPosition("<stdin>", 5, 2)))

	assert.Contains(t, out.String(), "Error:")
	assert.Contains(t, out.String(), "Expected name in function definition")
	assert.Contains(t, out.String(), "[<stdin>:2:5]")
}

func TestErrorsAndHasErrors(t *testing.T) {
	collector := NewWithWriter(nil)
	collector.ReportAndSave(Note("Parsed a function definition"))
	assert.False(t, collector.HasErrors())
	assert.Empty(t, collector.Errors())
	assert.NoError(t, collector.Err())

	collector.ReportAndSave(Error("Expected ')'", token.Pos{}))
	assert.True(t, collector.HasErrors())
	assert.Len(t, collector.Errors(), 1)
}

func TestErrAggregatesEveryError(t *testing.T) {
	collector := NewWithWriter(nil)
	collector.ReportAndSave(Error("Unexpected token ')'", token.NewPosition("<stdin>", 1, 1)))
	collector.ReportAndSave(Note("Parsed anonymous expression"))
	collector.ReportAndSave(Error("Expected ')'", token.NewPosition("<stdin>", 7, 1)))

	err := collector.Err()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ERROR_FOUND))
	assert.Contains(t, err.Error(), "Unexpected token ')'")
	assert.Contains(t, err.Error(), "[<stdin>:1:7] Expected ')'")
	assert.Contains(t, err.Error(), "2 errors occurred")
}

func TestReset(t *testing.T) {
	collector := NewWithWriter(nil)
	collector.ReportAndSave(Error("Expected ')'", token.Pos{}))
	collector.Reset()
	assert.Empty(t, collector.Diags)
	assert.NoError(t, collector.Err())
}
