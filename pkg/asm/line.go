package asm

import "strings"

type lineKind int

const (
	lineBlank lineKind = iota
	lineLabel
	lineAddress
	lineCompute
)

// sourceLine is one classified line of source. text holds the label name,
// the address operand, or the compute body, depending on kind.
type sourceLine struct {
	kind lineKind
	text string
}

// classify strips the line terminator and any // comment, then decides
// what the line is from its first character: '(' opens a label
// declaration, '@' an address instruction, anything else is a compute
// instruction. Lines that are empty after stripping are blank.
func classify(raw string) sourceLine {
	line := strings.TrimRight(raw, "\r\n")
	if i := strings.Index(line, "//"); i >= 0 {
		line = line[:i]
	}
	line = strings.TrimSpace(line)

	switch {
	case line == "":
		return sourceLine{kind: lineBlank}
	case line[0] == '(':
		name := line[1:]
		if end := strings.IndexByte(name, ')'); end >= 0 {
			name = name[:end]
		}
		return sourceLine{kind: lineLabel, text: name}
	case line[0] == '@':
		return sourceLine{kind: lineAddress, text: line[1:]}
	default:
		return sourceLine{kind: lineCompute, text: line}
	}
}

// splitCompute breaks a compute body into its mnemonic fields. A '='
// appearing before any ';' separates the destination from the
// computation; a ';' separates the computation from the jump, which runs
// to the end of the body or the first space. Absent fields come back as
// the empty string, which the encoding tables accept as the all-zero
// field.
func splitCompute(body string) (dest, comp, jump string) {
	rest := body
	if eq := strings.IndexByte(rest, '='); eq >= 0 {
		semi := strings.IndexByte(rest, ';')
		if semi < 0 || eq < semi {
			dest = rest[:eq]
			rest = rest[eq+1:]
		}
	}
	if semi := strings.IndexByte(rest, ';'); semi >= 0 {
		comp = rest[:semi]
		jump = rest[semi+1:]
		if sp := strings.IndexByte(jump, ' '); sp >= 0 {
			jump = jump[:sp]
		}
	} else {
		comp = rest
	}
	return dest, comp, jump
}

// isDecimal reports whether s is a non-empty run of ASCII digits. Address
// operands that pass this are literals; everything else is a symbol.
func isDecimal(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
