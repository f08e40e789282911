package errors

import (
	"fmt"
	"strings"
)

// FormatWithSource renders a compile error with the offending source line
// and a caret pointing at the column (Position.Column is 0-based, as the
// lexer records it). No command in cmd/golox calls it; it's strictly more
// detailed than the one-line Error() form used for ordinary runs.
func FormatWithSource(e *CompileError, source string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "[line %d] Error %s: %s\n", e.Pos.Line, e.Where, e.Message)

	line := sourceLine(source, e.Pos.Line)
	if line == "" {
		return sb.String()
	}
	lineNum := fmt.Sprintf("%4d | ", e.Pos.Line)
	sb.WriteString(lineNum)
	sb.WriteString(line)
	sb.WriteString("\n")

	col := e.Pos.Column
	if col < 0 {
		col = 0
	}
	sb.WriteString(strings.Repeat(" ", len(lineNum)+col))
	sb.WriteString("^")
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
