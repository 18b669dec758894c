// Package asm assembles Hack assembly source into 16-bit binary
// instruction strings.
//
// Assembly is a two-pass batch over an in-memory line slice: pass 1
// binds each label declaration to the address of the instruction that
// follows it, pass 2 encodes every real instruction in source order,
// allocating RAM slots for variable symbols on first reference. Lines
// that fail to encode are dropped and reported as diagnostics; they
// never abort the run.
package asm

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"hackasm/pkg/hack"
)

// DiagKind identifies the recoverable failure classes.
type DiagKind int

const (
	UnknownComp DiagKind = iota
	UnknownDest
	UnknownJump
	OutOfRange
)

func (k DiagKind) String() string {
	switch k {
	case UnknownComp:
		return "unknown computation mnemonic"
	case UnknownDest:
		return "unknown destination mnemonic"
	case UnknownJump:
		return "unknown jump mnemonic"
	case OutOfRange:
		return "address out of range"
	default:
		return "unknown diagnostic"
	}
}

// Diagnostic records one dropped instruction: which field failed, the
// 1-based source line, and the offending token.
type Diagnostic struct {
	Kind  DiagKind
	Line  int
	Token string
}

func (d Diagnostic) Error() string {
	return fmt.Sprintf("line %d: %s: %q", d.Line, d.Kind, d.Token)
}

// Assembler holds the state of one assembly run: the symbol table and
// the diagnostics collected so far. Each call to Assemble starts from a
// fresh table, so an Assembler may be reused across runs.
type Assembler struct {
	symbols *SymbolTable
	diags   []Diagnostic
}

func NewAssembler() *Assembler {
	return &Assembler{
		symbols: NewSymbolTable(),
	}
}

// Assemble runs both passes over code and returns the encoded
// instruction lines together with the diagnostics for any dropped ones.
func Assemble(code string) ([]string, []Diagnostic) {
	a := NewAssembler()
	out, _ := a.Assemble(code)
	return out, a.Diagnostics()
}

// Assemble runs both passes over code. It returns one 16-character
// binary string per successfully encoded instruction, in source order,
// and a source map from instruction address to 1-based source line.
// Dropped instructions are reported through Diagnostics.
func (a *Assembler) Assemble(code string) ([]string, map[uint16]int) {
	a.symbols = NewSymbolTable()
	a.diags = nil

	lines := strings.Split(code, "\n")
	a.pass1(lines)
	return a.pass2(lines)
}

// AssembleStream reads the whole source from r, assembles it, and
// writes one instruction line per output row to w. Read and write
// failures are fatal; encoding failures are not, and remain available
// through Diagnostics after the call.
func (a *Assembler) AssembleStream(r io.Reader, w io.Writer) error {
	src, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("reading source: %w", err)
	}

	code, _ := a.Assemble(string(src))
	for _, word := range code {
		if _, err := io.WriteString(w, word+"\n"); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
	}
	return nil
}

// Diagnostics returns the recoverable findings of the last run, in
// source order.
func (a *Assembler) Diagnostics() []Diagnostic {
	return a.diags
}

// Symbols returns the symbol table of the last run, fully populated
// with labels and variables.
func (a *Assembler) Symbols() *SymbolTable {
	return a.symbols
}

// pass1 walks the source counting real instructions and binds each
// label to the address the next real instruction will occupy. Labels do
// not advance the address.
func (a *Assembler) pass1(lines []string) {
	var address uint16
	for _, raw := range lines {
		switch l := classify(raw); l.kind {
		case lineBlank:
		case lineLabel:
			a.symbols.Insert(l.text, address)
		default:
			address++
		}
	}
}

// pass2 re-walks the same lines, encoding every real instruction. The
// Nth output row is the Nth instruction that encoded successfully.
func (a *Assembler) pass2(lines []string) ([]string, map[uint16]int) {
	out := make([]string, 0, len(lines))
	sourceMap := make(map[uint16]int)

	for i, raw := range lines {
		lineNo := i + 1

		var word string
		var diag *Diagnostic
		switch l := classify(raw); l.kind {
		case lineBlank, lineLabel:
			continue
		case lineAddress:
			word, diag = a.encodeAddress(l.text, lineNo)
		case lineCompute:
			word, diag = encodeCompute(l.text, lineNo)
		}

		if diag != nil {
			a.diags = append(a.diags, *diag)
			continue
		}
		sourceMap[uint16(len(out))] = lineNo
		out = append(out, word)
	}
	return out, sourceMap
}

// encodeAddress resolves an address-instruction operand. An all-digit
// operand is a literal; anything else is a symbol, allocated a variable
// slot on first sight. Values past the 15-bit address space are
// reported instead of wrapped.
func (a *Assembler) encodeAddress(operand string, lineNo int) (string, *Diagnostic) {
	if isDecimal(operand) {
		value, err := strconv.ParseUint(operand, 10, 64)
		if err != nil || value > hack.MaxAddress {
			return "", &Diagnostic{Kind: OutOfRange, Line: lineNo, Token: operand}
		}
		return hack.EncodeA(uint16(value)), nil
	}

	addr := a.symbols.AllocateVariable(operand)
	if addr > hack.MaxAddress {
		return "", &Diagnostic{Kind: OutOfRange, Line: lineNo, Token: operand}
	}
	return hack.EncodeA(addr), nil
}

// encodeCompute splits a compute body into its fields and encodes them.
// Validation order follows the field layout: computation first, then
// destination, then jump; the first unknown mnemonic is the one
// reported.
func encodeCompute(body string, lineNo int) (string, *Diagnostic) {
	destMn, compMn, jumpMn := splitCompute(body)

	comp, ok := hack.CompCode(compMn)
	if !ok {
		return "", &Diagnostic{Kind: UnknownComp, Line: lineNo, Token: compMn}
	}
	dest, ok := hack.DestCode(destMn)
	if !ok {
		return "", &Diagnostic{Kind: UnknownDest, Line: lineNo, Token: destMn}
	}
	jump, ok := hack.JumpCode(jumpMn)
	if !ok {
		return "", &Diagnostic{Kind: UnknownJump, Line: lineNo, Token: jumpMn}
	}
	return hack.EncodeC(comp, dest, jump), nil
}
