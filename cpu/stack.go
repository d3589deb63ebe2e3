package cpu

// push32 decrements ESP by four and stores the value at the new top of
// stack. There is no stack-bounds checking beyond the memory image.
func (c *CPU) push32(value uint32) error {
	addr := c.Regs[ESP] - 4
	c.Regs[ESP] = addr
	return c.WriteU32(addr, value)
}

// pop32 loads the value at the top of stack and increments ESP by four.
func (c *CPU) pop32() (uint32, error) {
	addr := c.Regs[ESP]
	value, err := c.ReadU32(addr)
	if err != nil {
		return 0, err
	}
	c.Regs[ESP] = addr + 4
	return value, nil
}

// pushR32 handles the 0x50+r family: push r32.
func (c *CPU) pushR32() error {
	code, err := c.code8(0)
	if err != nil {
		return err
	}
	if err := c.push32(c.Regs[code-0x50]); err != nil {
		return err
	}
	c.EIP++
	return nil
}

// popR32 handles the 0x58+r family: pop r32.
func (c *CPU) popR32() error {
	code, err := c.code8(0)
	if err != nil {
		return err
	}
	value, err := c.pop32()
	if err != nil {
		return err
	}
	c.Regs[code-0x58] = value
	c.EIP++
	return nil
}

// pushImm32 handles 0x68: push imm32.
func (c *CPU) pushImm32() error {
	value, err := c.code32(1)
	if err != nil {
		return err
	}
	if err := c.push32(value); err != nil {
		return err
	}
	c.EIP += 5
	return nil
}

// pushImm8 handles 0x6A: push imm8. The immediate is zero-extended.
func (c *CPU) pushImm8() error {
	value, err := c.code8(1)
	if err != nil {
		return err
	}
	if err := c.push32(uint32(value)); err != nil {
		return err
	}
	c.EIP += 2
	return nil
}
