// Package errors implements the error taxonomy of the unit-algebra engine.
// Every failure the engine can produce is one of a closed set of Kinds,
// each carrying a message and, when available, a source location. The
// engine never recovers from an error: it surfaces the first one to the
// caller with a message formatted for direct display, the way the
// teacher's internal/errors package formats compiler diagnostics.
package errors

import (
	"fmt"
	"strings"
)

// Kind identifies which member of the error taxonomy an Error belongs to.
type Kind int

const (
	SyntaxError Kind = iota
	UnknownUnitName
	UnknownPropertyName
	DuplicateUnitName
	DuplicatePropertyName
	DuplicateDerivedProperty
	IncompatibleUnits
	IncompatibleBaseUnit
	InvalidEmptyProperty
	NonAdditiveQuantities
	ArithmeticError
)

func (k Kind) String() string {
	switch k {
	case SyntaxError:
		return "SyntaxError"
	case UnknownUnitName:
		return "UnknownUnitName"
	case UnknownPropertyName:
		return "UnknownPropertyName"
	case DuplicateUnitName:
		return "DuplicateUnitName"
	case DuplicatePropertyName:
		return "DuplicatePropertyName"
	case DuplicateDerivedProperty:
		return "DuplicateDerivedProperty"
	case IncompatibleUnits:
		return "IncompatibleUnits"
	case IncompatibleBaseUnit:
		return "IncompatibleBaseUnit"
	case InvalidEmptyProperty:
		return "InvalidEmptyProperty"
	case NonAdditiveQuantities:
		return "NonAdditiveQuantities"
	case ArithmeticError:
		return "ArithmeticError"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Position locates a token or diagnostic in a source file. File is empty
// when the source has no associated name (e.g. a query typed by a user).
type Position struct {
	Line   int
	Column int
	File   string
}

// Error is the single error type returned throughout the engine. Callers
// distinguish members of the taxonomy with errors.As and Kind, never by
// matching on the message text.
type Error struct {
	Kind    Kind
	Message string
	Pos     *Position
	Source  string // full source text, for Format's source-line-and-caret rendering
	Token   string // offending token's textual form, for SyntaxError
}

// New constructs an Error of the given kind with no position attached.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// NewAt constructs an Error of the given kind carrying a source position.
func NewAt(kind Kind, pos Position, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Pos: &pos}
}

func (e *Error) Error() string {
	if e.Pos != nil {
		if e.Pos.File != "" {
			return fmt.Sprintf("%s: %s:%d:%d: %s", e.Kind, e.Pos.File, e.Pos.Line, e.Pos.Column, e.Message)
		}
		return fmt.Sprintf("%s: line %d:%d: %s", e.Kind, e.Pos.Line, e.Pos.Column, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Format renders the error with source context and a caret pointing at the
// offending column, the same layout the teacher's CompilerError.Format
// uses. If color is true, ANSI codes highlight the caret and message.
func (e *Error) Format(color bool) string {
	var sb strings.Builder

	if e.Pos == nil {
		if color {
			sb.WriteString("\033[1m")
		}
		sb.WriteString(e.Message)
		if color {
			sb.WriteString("\033[0m")
		}
		return sb.String()
	}

	if e.Pos.File != "" {
		fmt.Fprintf(&sb, "Error in %s:%d:%d\n", e.Pos.File, e.Pos.Line, e.Pos.Column)
	} else {
		fmt.Fprintf(&sb, "Error at line %d:%d\n", e.Pos.Line, e.Pos.Column)
	}

	if line := sourceLine(e.Source, e.Pos.Line); line != "" {
		lineNumStr := fmt.Sprintf("%4d | ", e.Pos.Line)
		sb.WriteString(lineNumStr)
		sb.WriteString(line)
		sb.WriteString("\n")

		sb.WriteString(strings.Repeat(" ", len(lineNumStr)+e.Pos.Column-1))
		if color {
			sb.WriteString("\033[1;31m")
		}
		sb.WriteString("^")
		if color {
			sb.WriteString("\033[0m")
		}
		sb.WriteString("\n")
	}

	if color {
		sb.WriteString("\033[1m")
	}
	sb.WriteString(e.Message)
	if color {
		sb.WriteString("\033[0m")
	}

	return sb.String()
}

func sourceLine(source string, lineNum int) string {
	if source == "" {
		return ""
	}
	lines := strings.Split(source, "\n")
	if lineNum < 1 || lineNum > len(lines) {
		return ""
	}
	return lines[lineNum-1]
}

// Is reports whether err is an *Error of the given Kind.
func Is(err error, kind Kind) bool {
	if e, ok := err.(*Error); ok {
		return e.Kind == kind
	}
	return false
}
