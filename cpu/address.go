package cpu

import "fmt"

// EffectiveAddress computes the memory address a non-register ModRM
// operand refers to. The SIB forms are recognised but not implemented,
// and a register-direct operand has no address; both are decode errors.
func (c *CPU) EffectiveAddress(m ModRM) (uint32, error) {
	switch m.Mod {
	case 0:
		switch m.RM {
		case 4:
			return 0, fmt.Errorf("unsupported SIB addressing (mod=0, rm=4, sib=%02X)", m.SIB)
		case 5:
			// Bare 32-bit displacement, no base register.
			return uint32(m.Disp), nil
		default:
			return c.Regs[m.RM], nil
		}
	case 1, 2:
		if m.RM == 4 {
			return 0, fmt.Errorf("unsupported SIB addressing (mod=%d, rm=4, sib=%02X)", m.Mod, m.SIB)
		}
		return c.Regs[m.RM] + uint32(m.Disp), nil
	case 3:
		return 0, fmt.Errorf("no effective address for register-direct operand %s", RegisterName(int(m.RM)))
	}
	return 0, fmt.Errorf("invalid ModRM mode %d", m.Mod)
}

// GetRM32 reads the 32-bit operand selected by the mod and rm fields,
// from a register or from memory.
func (c *CPU) GetRM32(m ModRM) (uint32, error) {
	if m.IsRegister() {
		return c.Regs[m.RM], nil
	}
	addr, err := c.EffectiveAddress(m)
	if err != nil {
		return 0, err
	}
	return c.ReadU32(addr)
}

// SetRM32 writes the 32-bit operand selected by the mod and rm fields.
func (c *CPU) SetRM32(m ModRM, value uint32) error {
	if m.IsRegister() {
		c.Regs[m.RM] = value
		return nil
	}
	addr, err := c.EffectiveAddress(m)
	if err != nil {
		return err
	}
	return c.WriteU32(addr, value)
}

// GetRM8 reads the 8-bit operand selected by the mod and rm fields.
func (c *CPU) GetRM8(m ModRM) (byte, error) {
	if m.IsRegister() {
		return c.Register8(m.RM), nil
	}
	addr, err := c.EffectiveAddress(m)
	if err != nil {
		return 0, err
	}
	return c.ReadU8(addr)
}

// SetRM8 writes the 8-bit operand selected by the mod and rm fields.
func (c *CPU) SetRM8(m ModRM, value byte) error {
	if m.IsRegister() {
		c.SetRegister8(m.RM, value)
		return nil
	}
	addr, err := c.EffectiveAddress(m)
	if err != nil {
		return err
	}
	return c.WriteU8(addr, value)
}

// GetR32 reads the 32-bit register named by the reg field.
func (c *CPU) GetR32(m ModRM) uint32 {
	return c.Regs[m.Reg]
}

// SetR32 writes the 32-bit register named by the reg field.
func (c *CPU) SetR32(m ModRM, value uint32) {
	c.Regs[m.Reg] = value
}

// GetR8 reads the 8-bit register named by the reg field.
func (c *CPU) GetR8(m ModRM) byte {
	return c.Register8(m.Reg)
}

// SetR8 writes the 8-bit register named by the reg field.
func (c *CPU) SetR8(m ModRM, value byte) {
	c.SetRegister8(m.Reg, value)
}

// Register8 reads an 8-bit register. Indices 0-3 are the low byte of
// the parent register; 4-7 are the second byte of index-4.
func (c *CPU) Register8(index uint8) byte {
	if index < 4 {
		return byte(c.Regs[index])
	}
	return byte(c.Regs[index-4] >> 8)
}

// SetRegister8 writes an 8-bit register. Writes to the low byte leave
// bits 8-31 of the parent untouched; writes to the high byte leave
// bits 0-7 and 16-31 untouched.
func (c *CPU) SetRegister8(index uint8, value byte) {
	if index < 4 {
		c.Regs[index] = c.Regs[index]&0xFFFFFF00 | uint32(value)
		return
	}
	parent := index - 4
	c.Regs[parent] = c.Regs[parent]&0xFFFF00FF | uint32(value)<<8
}
