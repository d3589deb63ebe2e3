package cpu

// shortJump handles 0xEB: jmp rel8. The displacement is relative to
// the end of the 2-byte instruction and may wrap around the address
// space.
func (c *CPU) shortJump() error {
	disp, err := c.signCode8(1)
	if err != nil {
		return err
	}
	c.EIP += uint32(int32(disp)) + 2
	return nil
}

// nearJump handles 0xE9: jmp rel32, relative to the end of the 5-byte
// instruction.
func (c *CPU) nearJump() error {
	disp, err := c.code32(1)
	if err != nil {
		return err
	}
	c.EIP += disp + 5
	return nil
}

// jcc builds a handler for one conditional-jump opcode. A taken branch
// adds the sign-extended 8-bit displacement plus the 2-byte instruction
// length to EIP; an untaken branch just steps over the instruction.
// The jn* variants pass negate.
func jcc(cond func(*CPU) bool, negate bool) Handler {
	return func(c *CPU) error {
		disp, err := c.signCode8(1)
		if err != nil {
			return err
		}
		if cond(c) != negate {
			c.EIP += uint32(int32(disp)) + 2
		} else {
			c.EIP += 2
		}
		return nil
	}
}

// callRel32 handles 0xE8: call rel32. The address of the following
// instruction is pushed before control transfers.
func (c *CPU) callRel32() error {
	disp, err := c.signCode32(1)
	if err != nil {
		return err
	}
	if err := c.push32(c.EIP + 5); err != nil {
		return err
	}
	c.EIP += uint32(disp) + 5
	return nil
}

// ret handles 0xC3: pop the return address and jump to it directly.
func (c *CPU) ret() error {
	addr, err := c.pop32()
	if err != nil {
		return err
	}
	c.EIP = addr
	return nil
}

// leave handles 0xC9: copy EBP into ESP, then pop the saved EBP. This
// undoes the push-ebp/mov-ebp-esp prologue.
func (c *CPU) leave() error {
	c.Regs[ESP] = c.Regs[EBP]
	value, err := c.pop32()
	if err != nil {
		return err
	}
	c.Regs[EBP] = value
	c.EIP++
	return nil
}
