package cpu

// execute fetches and executes one instruction at PC. The bit layout of an
// instruction word (LSB on the right) is aaaaaabbbbbooooo: bits 0-4 are
// the opcode, bits 5-9 the b-field, bits 10-15 the a-field.
func (c *DCPU16) execute() {
	word := c.nextWord()
	op := word & OPCODE_MASK
	aCode := (word & ARGA_MASK) >> ARGA_SHIFT
	bCode := (word & ARGB_MASK) >> ARGB_SHIFT

	if op == SPC {
		// In a special-form word, the b-field holds the special opcode.
		c.execSpecial(bCode, aCode)
		return
	}
	c.execBasic(op, aCode, bCode)
}

// execBasic dispatches a basic (non-special) opcode. a is evaluated before
// b, and any "next word" consumed by a precedes any consumed by b.
func (c *DCPU16) execBasic(op, aCode, bCode uint16) {
	var tmpA, tmpB uint16
	a := c.aValue(aCode, &tmpA)
	b := c.bSlot(bCode, &tmpB)

	c.tick(basicCycles[op] - 1)

	switch op {
	case SET:
		*b = a
	case ADD:
		v := uint32(*b) + uint32(a)
		c.ex = uint16(v >> 16)
		*b = uint16(v)
	case SUB:
		v := int32(*b) - int32(a)
		c.ex = uint16(v >> 16)
		*b = uint16(v)
	case MUL:
		v := uint32(*b) * uint32(a)
		c.ex = uint16(v >> 16)
		*b = uint16(v)
	case MLI:
		v := int32(int16(*b)) * int32(int16(a))
		c.ex = uint16(v >> 16)
		*b = uint16(v)
	case DIV:
		if a == 0 {
			c.ex = 0
			*b = 0
		} else {
			v := (uint32(*b) << 16) / uint32(a)
			c.ex = uint16(v)
			*b = *b / a
		}
	case DVI:
		if a == 0 {
			c.ex = 0
			*b = 0
		} else {
			v := (int32(int16(*b)) << 16) / int32(int16(a))
			c.ex = uint16(v)
			*b = uint16(int16(*b) / int16(a))
		}
	case MOD:
		if a == 0 {
			*b = 0
		} else {
			*b %= a
		}
	case MDI:
		if a == 0 {
			*b = 0
		} else {
			*b = uint16(int16(*b) % int16(a))
		}
	case AND:
		*b &= a
	case BOR:
		*b |= a
	case XOR:
		*b ^= a
	case SHR:
		c.ex = uint16((uint32(*b) << 16) >> a)
		*b >>= a
	case ASR:
		c.ex = uint16((uint32(*b) << 16) >> a)
		*b = uint16(int16(*b) >> a)
	case SHL:
		c.ex = uint16((uint32(*b) << a) >> 16)
		*b <<= a
	case IFB:
		if (*b & a) == 0 {
			c.skip()
		}
	case IFC:
		if (*b & a) != 0 {
			c.skip()
		}
	case IFE:
		if *b != a {
			c.skip()
		}
	case IFN:
		if *b == a {
			c.skip()
		}
	case IFG:
		if !(*b > a) {
			c.skip()
		}
	case IFA:
		if !(int16(*b) > int16(a)) {
			c.skip()
		}
	case IFL:
		if !(*b < a) {
			c.skip()
		}
	case IFU:
		if !(int16(*b) < int16(a)) {
			c.skip()
		}
	case ADX:
		v := uint32(*b) + uint32(a) + uint32(c.ex)
		ex := uint16(v >> 16)
		*b = uint16(v)
		c.ex = ex
	case SBX:
		v := int32(int16(*b)) - int32(int16(a)) - int32(int16(c.ex))
		ex := uint16(v >> 16)
		*b = uint16(v)
		c.ex = ex
	case STI:
		*b = a
		c.register[I]++
		c.register[J]++
	case STD:
		*b = a
		c.register[I]--
		c.register[J]--
	default:
		c.state = HALT
	}
}

// execSpecial dispatches a special-form instruction: op is the special
// opcode (from the word's b-field), aCode its single operand code (the
// word's a-field). Reserved opcode 0 is a halting fault.
func (c *DCPU16) execSpecial(op, aCode uint16) {
	if op == RES {
		c.state = HALT
		return
	}

	var tmp uint16
	var slot *uint16
	var a uint16
	if aCode < 0x20 && aCode != 0x18 {
		// POP (0x18) is evaluated as a plain read below, leaving slot nil
		// so that IAG/HWN writes to it are discarded.
		slot = c.lea(aCode, &tmp, true)
		a = *slot
	} else {
		a = c.aValue(aCode, &tmp)
	}

	c.tick(specialCycles[op])

	switch op {
	case JSR:
		c.pushValue(c.pc)
		c.pc = a
	case INT:
		c.Interrupt(a)
	case IAG:
		if slot != nil {
			*slot = c.ia
		}
	case IAS:
		c.ia = a
	case RFI:
		c.iaqEnabled = true
		c.register[A] = c.popValue()
		c.pc = c.popValue()
	case IAQ:
		c.iaqEnabled = a != 0
	case HWN:
		if slot != nil {
			*slot = uint16(len(c.devices))
		}
	case HWQ:
		c.hardwareQuery(a)
	case HWI:
		c.hardwareInterrupt(a)
	default:
		c.state = HALT
	}
}
