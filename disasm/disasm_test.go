package disasm

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func disassembleOne(t *testing.T, words ...uint16) (string, int) {
	t.Helper()
	var buf bytes.Buffer
	n, err := Disassemble(NewWordReader(words), &buf)
	require.NoError(t, err)
	return buf.String(), n
}

func TestDisassembleSetImmediate(t *testing.T) {
	text, n := disassembleOne(t, 0x7c01, 0x0030)
	assert.Equal(t, "SET A, 0x0030\n", text)
	assert.Equal(t, 2, n)
}

func TestDisassembleRegisterIndirect(t *testing.T) {
	text, n := disassembleOne(t, 0x2801) // SET A, [C]
	assert.Equal(t, "SET A, [C]\n", text)
	assert.Equal(t, 1, n)
}

func TestDisassemblePushAndPop(t *testing.T) {
	text, n := disassembleOne(t, 0x8b01) // SET PUSH, 1
	assert.Equal(t, "SET PUSH, 0x0001\n", text)
	assert.Equal(t, 1, n)

	text, n = disassembleOne(t, 0x6001) // SET A, POP
	assert.Equal(t, "SET A, POP\n", text)
	assert.Equal(t, 1, n)
}

func TestDisassembleSpecialJSR(t *testing.T) {
	text, n := disassembleOne(t, 0x7c20, 0x0020) // JSR 0x0020
	assert.Equal(t, "JSR 0x0020\n", text)
	assert.Equal(t, 2, n)
}

func TestDisassembleLiteralZeroWordIsDAT(t *testing.T) {
	text, n := disassembleOne(t, 0x0000)
	assert.Equal(t, "DAT 0x0000\n", text)
	assert.Equal(t, 1, n)
}

func TestDisassembleReservedSpecialOpcodeHasEmptyMnemonic(t *testing.T) {
	text, n := disassembleOne(t, 0x8440) // op=SPC, special-op=2 (reserved), a=literal 0
	assert.Equal(t, " 0x0000\n", text)
	assert.Equal(t, 1, n)
}

func TestDisassembleWordCountMatchesOperandFetches(t *testing.T) {
	// b = [I+offset] (0x16), a = [next word] (0x1e); a's next word precedes
	// b's in the stream, so 0x2000 belongs to a and 0x1000 to b's offset.
	text, n := disassembleOne(t, 0x7ac1, 0x2000, 0x1000)
	assert.Equal(t, "SET [0x1000+I], [0x2000]\n", text)
	assert.Equal(t, 3, n)
}
