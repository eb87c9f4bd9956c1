// Package disasm renders a single encoded DCPU-16 instruction as text. Its
// mnemonic tables are keyed by package cpu's opcode constants and it decodes
// with cpu's field masks, so opcode numbering cannot drift; the mnemonic
// strings and register names are its own. It does not execute or mutate any
// machine state: it follows
// the same "next word" consumption rules as the executor by reading ahead
// through a WordReader cursor.
package disasm

import (
	"fmt"
	"io"

	"github.com/markcol/dcpu16/cpu"
)

// WordReader supplies the words of a memory image to the disassembler, one
// at a time, starting from whatever cursor position the caller chose.
type WordReader interface {
	ReadWord() (w uint16, err error)
}

// sliceReader is the WordReader over an in-memory slice, used by Disassemble.
type sliceReader struct {
	words []uint16
	pos   int
}

// NewWordReader returns a WordReader over m, starting at its first element.
func NewWordReader(m []uint16) WordReader { return &sliceReader{words: m} }

func (r *sliceReader) ReadWord() (uint16, error) {
	if r.pos >= len(r.words) {
		return 0, io.EOF
	}
	w := r.words[r.pos]
	r.pos++
	return w, nil
}

var (
	basicMnemonics = map[uint16]string{
		cpu.SET: "SET", cpu.ADD: "ADD", cpu.SUB: "SUB", cpu.MUL: "MUL",
		cpu.MLI: "MLI", cpu.DIV: "DIV", cpu.DVI: "DVI", cpu.MOD: "MOD",
		cpu.MDI: "MDI", cpu.AND: "AND", cpu.BOR: "BOR", cpu.XOR: "XOR",
		cpu.SHR: "SHR", cpu.ASR: "ASR", cpu.SHL: "SHL",
		cpu.IFB: "IFB", cpu.IFC: "IFC", cpu.IFE: "IFE", cpu.IFN: "IFN",
		cpu.IFG: "IFG", cpu.IFA: "IFA", cpu.IFL: "IFL", cpu.IFU: "IFU",
		cpu.ADX: "ADX", cpu.SBX: "SBX", cpu.STI: "STI", cpu.STD: "STD",
	}

	specialMnemonics = map[uint16]string{
		cpu.JSR: "JSR", cpu.INT: "INT", cpu.IAG: "IAG", cpu.IAS: "IAS",
		cpu.RFI: "RFI", cpu.IAQ: "IAQ", cpu.HWN: "HWN", cpu.HWQ: "HWQ",
		cpu.HWI: "HWI",
	}

	gprNames = [8]string{"A", "B", "C", "X", "Y", "Z", "I", "J"}
)

// Disassemble decodes one instruction starting at the current position of
// r and writes its rendering, terminated by a newline, to w. It returns the
// number of words consumed (one plus the count of "next word" operands),
// which matches exactly what executing the same word would have fetched.
func Disassemble(r WordReader, w io.Writer) (int, error) {
	word, err := r.ReadWord()
	if err != nil {
		return 0, err
	}
	words := 1

	op := word & cpu.OPCODE_MASK
	aCode := (word & cpu.ARGA_MASK) >> cpu.ARGA_SHIFT
	bCode := (word & cpu.ARGB_MASK) >> cpu.ARGB_SHIFT

	if op != cpu.SPC {
		aText, n, err := renderOperand(aCode, r, true)
		if err != nil {
			return 0, err
		}
		words += n
		bText, n, err := renderOperand(bCode, r, false)
		if err != nil {
			return 0, err
		}
		words += n
		fmt.Fprintf(w, "%s %s, %s\n", basicMnemonics[op], bText, aText)
		return words, nil
	}

	if bCode == cpu.RES {
		fmt.Fprintf(w, "DAT 0x%04x\n", word)
		return words, nil
	}
	aText, n, err := renderOperand(aCode, r, true)
	if err != nil {
		return 0, err
	}
	words += n
	// Reserved special opcodes with no table entry render with an empty
	// mnemonic rather than falling back to DAT, matching the original
	// disassembler's empty-string table slots: DAT is reserved strictly
	// for the all-zero word (op == SPC, special-op == RES).
	fmt.Fprintf(w, "%s %s\n", specialMnemonics[bCode], aText)
	return words, nil
}

// renderOperand renders one operand code and reports how many extra words
// (0 or 1) it consumed from r. asSource distinguishes the a-field rendering
// of code 0x18 (POP) from the b-field rendering (PUSH), matching cpu.lea's
// read/write split for the same code.
func renderOperand(code uint16, r WordReader, asSource bool) (string, int, error) {
	switch {
	case code <= 0x07:
		return gprNames[code], 0, nil
	case code <= 0x0f:
		return fmt.Sprintf("[%s]", gprNames[code-0x08]), 0, nil
	case code <= 0x17:
		next, err := r.ReadWord()
		if err != nil {
			return "", 0, err
		}
		return fmt.Sprintf("[0x%04x+%s]", next, gprNames[code-0x10]), 1, nil
	case code == 0x18:
		if asSource {
			return "POP", 0, nil
		}
		return "PUSH", 0, nil
	case code == 0x19:
		return "PEEK", 0, nil
	case code == 0x1a:
		next, err := r.ReadWord()
		if err != nil {
			return "", 0, err
		}
		return fmt.Sprintf("[SP+0x%04x]", next), 1, nil
	case code == 0x1b:
		return "SP", 0, nil
	case code == 0x1c:
		return "PC", 0, nil
	case code == 0x1d:
		return "EX", 0, nil
	case code == 0x1e:
		next, err := r.ReadWord()
		if err != nil {
			return "", 0, err
		}
		return fmt.Sprintf("[0x%04x]", next), 1, nil
	case code == 0x1f:
		next, err := r.ReadWord()
		if err != nil {
			return "", 0, err
		}
		return fmt.Sprintf("0x%04x", next), 1, nil
	default: // 0x20-0x3f: small signed literal
		return fmt.Sprintf("0x%04x", code-0x21), 0, nil
	}
}
