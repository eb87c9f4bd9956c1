package cpu

// Basic opcode constants. The zero value (SPC) marks a word as a special
// instruction: its "opcode" field is read from the b-field instead.
const (
	SPC = iota // pseudo-opcode: word encodes a special instruction
	SET
	ADD
	SUB
	MUL
	MLI
	DIV
	DVI
	MOD
	MDI
	AND
	BOR
	XOR
	SHR
	ASR
	SHL
	IFB
	IFC
	IFE
	IFN
	IFG
	IFA
	IFL
	IFU
	_ // reserved
	_ // reserved
	ADX
	SBX
	_ // reserved
	_ // reserved
	STI
	STD
)

// Special opcode constants, read from the b-field when op == SPC.
const (
	RES = iota // reserved: halting fault
	JSR
	_
	_
	_
	_
	_
	_
	INT
	IAG
	IAS
	RFI
	IAQ
	_
	_
	_
	HWN
	HWQ
	HWI
)

// basicCycles holds the base cycle cost for each basic opcode, indexed by
// opcode. One cycle of each cost is already charged by the opcode fetch;
// see execBasic.
var basicCycles = [0x20]uint64{
	0, 1, 2, 2, 2, 2, 3, 3, 3, 3, 1, 1, 1, 1, 1, 1,
	2, 2, 2, 2, 2, 2, 2, 2, 0, 0, 3, 3, 0, 0, 2, 2,
}

// specialCycles holds the base cycle cost for each special opcode, indexed
// by opcode. Unlike basicCycles these are charged in full (the fetch cycle
// for the instruction word is separate and already accounted for).
var specialCycles = [0x20]uint64{
	0, 3, 0, 0, 0, 0, 0, 0, 4, 1, 1, 3, 2, 0, 0, 0,
	2, 4, 4, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
}

// gprNames names the eight general-purpose registers in register-index order.
var gprNames = [8]string{"A", "B", "C", "X", "Y", "Z", "I", "J"}

// isConditional reports whether op is one of the IFB..IFU conditional
// opcodes, which skip rather than halt or fall through.
func isConditional(op uint16) bool {
	return op >= IFB && op <= IFU
}

// consumesNextWord reports whether operand code v reads an extra word from
// the instruction stream during evaluation (register+offset, [SP+offset],
// [next word], and the bare next-word literal). The set of codes for which
// this holds is exactly {0x10-0x17, 0x1A, 0x1E, 0x1F}.
func consumesNextWord(v uint16) bool {
	switch {
	case v >= 0x10 && v <= 0x17:
		return true
	case v == 0x1A, v == 0x1E, v == 0x1F:
		return true
	default:
		return false
	}
}
