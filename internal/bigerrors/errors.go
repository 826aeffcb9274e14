// Package bigerrors provides the tagged-result error type shared by every
// compiler phase, plus formatting that prints a source snippet and a caret
// pointing at the offending position.
package bigerrors

import (
	"fmt"
	"strings"

	"github.com/smack0007/bigc/internal/token"
)

// Kind classifies a CompilerError. The zero value, Unknown, is produced
// only by the parser when a source file cannot be read, and the CLI's
// argument parser (cmd/bigc/cmd) reports only NoInputFiles and
// UnknownOption.
type Kind int

const (
	Unknown Kind = iota

	// Argument errors.
	NoInputFiles
	UnknownOption

	// Parser errors.
	UnexpectedTokenType
	UnknownTopLevelStatement
	UnknownBlockLevelStatement
	UnknownExpression
	InvalidAssignmentTarget
	TokenTextIsNull

	// Binder errors.
	MissingSymbol
	Unexpected
)

var kindNames = map[Kind]string{
	Unknown:                    "Unknown",
	NoInputFiles:               "NoInputFiles",
	UnknownOption:              "UnknownOption",
	UnexpectedTokenType:        "UnexpectedTokenType",
	UnknownTopLevelStatement:   "UnknownTopLevelStatement",
	UnknownBlockLevelStatement: "UnknownBlockLevelStatement",
	UnknownExpression:          "UnknownExpression",
	InvalidAssignmentTarget:    "InvalidAssignmentTarget",
	TokenTextIsNull:            "TokenTextIsNull",
	MissingSymbol:              "MissingSymbol",
	Unexpected:                 "Unexpected",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// CompilerError is the single error shape returned by every fallible
// compiler operation: scanning is total and never produces one, but
// parsing and binding do, and abort the enclosing phase on the first one.
type CompilerError struct {
	Kind    Kind
	Pos     token.Position
	Message string

	// Source and File are optional context used only for Format; they are
	// not part of error identity.
	Source string
	File   string
}

func New(kind Kind, pos token.Position, message string) *CompilerError {
	return &CompilerError{Kind: kind, Pos: pos, Message: message}
}

// WithSource attaches source text and a file name, used by the CLI driver
// to render a caret-annotated message.
func (e *CompilerError) WithSource(source, file string) *CompilerError {
	e.Source = source
	e.File = file
	return e
}

func (e *CompilerError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("%s:%s: %s: %s", e.File, e.Pos, e.Kind, e.Message)
	}
	return fmt.Sprintf("%s: %s: %s", e.Pos, e.Kind, e.Message)
}

// Format renders the error with a source line and a caret under the
// offending column.
func (e *CompilerError) Format() string {
	var sb strings.Builder

	if e.File != "" {
		fmt.Fprintf(&sb, "Error in %s:%d:%d\n", e.File, e.Pos.Line, e.Pos.Column)
	} else {
		fmt.Fprintf(&sb, "Error at line %d:%d\n", e.Pos.Line, e.Pos.Column)
	}

	if line := sourceLine(e.Source, e.Pos.Line); line != "" {
		prefix := fmt.Sprintf("%4d | ", e.Pos.Line)
		sb.WriteString(prefix)
		sb.WriteString(line)
		sb.WriteString("\n")
		col := e.Pos.Column - 1
		if col < 0 {
			col = 0
		}
		sb.WriteString(strings.Repeat(" ", len(prefix)+col))
		sb.WriteString("^\n")
	}

	fmt.Fprintf(&sb, "[%s] %s", e.Kind, e.Message)
	return sb.String()
}

func sourceLine(source string, lineNum int) string {
	if source == "" || lineNum < 1 {
		return ""
	}
	lines := strings.Split(source, "\n")
	if lineNum > len(lines) {
		return ""
	}
	return lines[lineNum-1]
}
