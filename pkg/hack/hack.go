// Package hack defines the Hack instruction set: the mnemonic encoding
// tables for compute instructions and the architecture's predefined
// symbols and address limits.
package hack

const (
	// MaxAddress is the largest value an address instruction can load;
	// addresses are 15 bits wide.
	MaxAddress = 32767

	// VarBase is the first RAM slot handed out to variable symbols.
	VarBase = 16

	// ScreenBase and KeyboardAddr are the memory-mapped I/O locations.
	ScreenBase   = 16384
	KeyboardAddr = 24576

	// WordSize is the instruction width in bits.
	WordSize = 16
)

type encoding struct {
	mnemonic string
	code     string
}

// compTable maps computation mnemonics to their 7-bit field. The high bit
// is the "a" bit: 0 selects the A register as the second operand, 1
// selects M (the word A points at). Lookup is exact-match, case-sensitive.
var compTable = []encoding{
	{"0", "0101010"},
	{"1", "0111111"},
	{"-1", "0111010"},
	{"D", "0001100"},
	{"A", "0110000"},
	{"!D", "0001101"},
	{"!A", "0110001"},
	{"-D", "0001111"},
	{"-A", "0110011"},
	{"D+1", "0011111"},
	{"A+1", "0110111"},
	{"D-1", "0001110"},
	{"A-1", "0110010"},
	{"D+A", "0000010"},
	{"D-A", "0010011"},
	{"A-D", "0000111"},
	{"D&A", "0000000"},
	{"D|A", "0010101"},
	{"M", "1110000"},
	{"!M", "1110001"},
	{"-M", "1110011"},
	{"M+1", "1110111"},
	{"M-1", "1110010"},
	{"D+M", "1000010"},
	{"D-M", "1010011"},
	{"M-D", "1000111"},
	{"D&M", "1000000"},
	{"D|M", "1010101"},
}

// destTable maps destination mnemonics to their 3-bit field
// (bit 2 = A, bit 1 = D, bit 0 = M). The empty mnemonic is a valid
// entry meaning "store nowhere".
var destTable = []encoding{
	{"", "000"},
	{"M", "001"},
	{"D", "010"},
	{"MD", "011"},
	{"A", "100"},
	{"AM", "101"},
	{"AD", "110"},
	{"AMD", "111"},
}

// jumpTable maps jump mnemonics to their 3-bit field. The empty mnemonic
// means "never jump".
var jumpTable = []encoding{
	{"", "000"},
	{"JGT", "001"},
	{"JEQ", "010"},
	{"JGE", "011"},
	{"JLT", "100"},
	{"JNE", "101"},
	{"JLE", "110"},
	{"JMP", "111"},
}

func lookupCode(table []encoding, mnemonic string) (string, bool) {
	for _, e := range table {
		if e.mnemonic == mnemonic {
			return e.code, true
		}
	}
	return "", false
}

// CompCode returns the 7-bit field for a computation mnemonic.
func CompCode(mnemonic string) (string, bool) {
	return lookupCode(compTable, mnemonic)
}

// DestCode returns the 3-bit field for a destination mnemonic. The empty
// string is a valid mnemonic and encodes as "000".
func DestCode(mnemonic string) (string, bool) {
	return lookupCode(destTable, mnemonic)
}

// JumpCode returns the 3-bit field for a jump mnemonic. The empty string
// is a valid mnemonic and encodes as "000".
func JumpCode(mnemonic string) (string, bool) {
	return lookupCode(jumpTable, mnemonic)
}

// Symbol is one predefined name/address pair.
type Symbol struct {
	Name    string
	Address uint16
}

// predefined lists the architecture's built-in symbols in table order.
// R0..R15 alias the first sixteen RAM words; SP/LCL/ARG/THIS/THAT overlap
// R0..R4 on purpose.
var predefined = []Symbol{
	{"R0", 0}, {"R1", 1}, {"R2", 2}, {"R3", 3},
	{"R4", 4}, {"R5", 5}, {"R6", 6}, {"R7", 7},
	{"R8", 8}, {"R9", 9}, {"R10", 10}, {"R11", 11},
	{"R12", 12}, {"R13", 13}, {"R14", 14}, {"R15", 15},
	{"SCREEN", ScreenBase},
	{"KBD", KeyboardAddr},
	{"SP", 0},
	{"LCL", 1},
	{"ARG", 2},
	{"THIS", 3},
	{"THAT", 4},
}

// Predefined returns the built-in symbols in seed order. The returned
// slice is a copy; callers may keep and extend it.
func Predefined() []Symbol {
	out := make([]Symbol, len(predefined))
	copy(out, predefined)
	return out
}

// EncodeA renders an address instruction: a leading 0 followed by the
// 15-bit value, most significant bit first. The value must already be
// within MaxAddress.
func EncodeA(value uint16) string {
	buf := make([]byte, WordSize)
	for bit := WordSize - 1; bit >= 0; bit-- {
		if value&(1<<uint(bit)) != 0 {
			buf[WordSize-1-bit] = '1'
		} else {
			buf[WordSize-1-bit] = '0'
		}
	}
	// Bit 15 is the instruction-type flag, forced clear for A instructions.
	buf[0] = '0'
	return string(buf)
}

// EncodeC renders a compute instruction from already-resolved bit fields:
// the 111 prefix, then comp (7 bits), dest (3 bits), jump (3 bits).
func EncodeC(comp, dest, jump string) string {
	return "111" + comp + dest + jump
}
