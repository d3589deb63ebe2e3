package cpu

// inALDX handles 0xEC: in al, dx. The port address is the low 16 bits
// of EDX. Without a device the read returns zero.
func (c *CPU) inALDX() error {
	var value byte
	if c.Ports != nil {
		value = c.Ports.In8(uint16(c.Regs[EDX]))
	}
	c.SetRegister8(AL, value)
	c.EIP++
	return nil
}

// outDXAL handles 0xEE: out dx, al. Without a device the write is
// discarded.
func (c *CPU) outDXAL() error {
	if c.Ports != nil {
		c.Ports.Out8(uint16(c.Regs[EDX]), c.Register8(AL))
	}
	c.EIP++
	return nil
}
