package cpu

// movR32Imm32 handles the 0xB8+r family: mov r32, imm32. The register
// is encoded in the opcode byte itself.
func (c *CPU) movR32Imm32() error {
	code, err := c.code8(0)
	if err != nil {
		return err
	}
	value, err := c.code32(1)
	if err != nil {
		return err
	}
	c.Regs[code-0xB8] = value
	c.EIP += 5
	return nil
}

// movRM32Imm32 handles 0xC7: mov rm32, imm32.
func (c *CPU) movRM32Imm32() error {
	c.EIP++
	m, err := c.parseModRM()
	if err != nil {
		return err
	}
	value, err := c.code32(0)
	if err != nil {
		return err
	}
	c.EIP += 4
	return c.SetRM32(m, value)
}

// movRM32R32 handles 0x89: mov rm32, r32.
func (c *CPU) movRM32R32() error {
	c.EIP++
	m, err := c.parseModRM()
	if err != nil {
		return err
	}
	return c.SetRM32(m, c.GetR32(m))
}

// movR32RM32 handles 0x8B: mov r32, rm32.
func (c *CPU) movR32RM32() error {
	c.EIP++
	m, err := c.parseModRM()
	if err != nil {
		return err
	}
	value, err := c.GetRM32(m)
	if err != nil {
		return err
	}
	c.SetR32(m, value)
	return nil
}

// movR8Imm8 handles the 0xB0+r family: mov r8, imm8.
func (c *CPU) movR8Imm8() error {
	code, err := c.code8(0)
	if err != nil {
		return err
	}
	value, err := c.code8(1)
	if err != nil {
		return err
	}
	c.SetRegister8(code-0xB0, value)
	c.EIP += 2
	return nil
}

// movRM8R8 handles 0x88: mov rm8, r8.
func (c *CPU) movRM8R8() error {
	c.EIP++
	m, err := c.parseModRM()
	if err != nil {
		return err
	}
	return c.SetRM8(m, c.GetR8(m))
}

// movR8RM8 handles 0x8A: mov r8, rm8.
func (c *CPU) movR8RM8() error {
	c.EIP++
	m, err := c.parseModRM()
	if err != nil {
		return err
	}
	value, err := c.GetRM8(m)
	if err != nil {
		return err
	}
	c.SetR8(m, value)
	return nil
}
